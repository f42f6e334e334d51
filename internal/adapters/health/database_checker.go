package health

import (
	"context"
	"fmt"

	"onboarding/internal/platform/database/postgres"
	"onboarding/internal/platform/health"
)

// Connector hands out the current pool, nil while disconnected.
type Connector interface {
	Connection() *postgres.DB
}

// DatabaseChecker pings the registration database. A pool with every
// connection checked out is reported degraded without pinging, since the
// ping would only queue behind those requests.
type DatabaseChecker struct {
	db   Connector
	name string
}

func NewDatabaseChecker(db Connector, name string) *DatabaseChecker {
	return &DatabaseChecker{db: db, name: name}
}

func (c *DatabaseChecker) Name() string {
	return c.name
}

func (c *DatabaseChecker) Check(ctx context.Context) health.CheckResult {
	db := c.db.Connection()
	if db == nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "registration database is not connected",
		}
	}

	stats := db.Stats()
	if stats.MaxOpenConnections > 0 && stats.InUse >= stats.MaxOpenConnections {
		return health.CheckResult{
			Status:  health.StatusDegraded,
			Message: fmt.Sprintf("connection pool saturated, %d of %d in use", stats.InUse, stats.MaxOpenConnections),
		}
	}

	if err := db.Ping(ctx); err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "registration database unreachable",
			Error:   err.Error(),
		}
	}

	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("registration database reachable, %d open connections", stats.OpenConnections),
	}
}
