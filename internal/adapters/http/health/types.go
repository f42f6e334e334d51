package health

import (
	"time"

	"onboarding/internal/platform/health"
)

// Status uses the vocabulary of the draft "Health Check Response Format for
// HTTP APIs".
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

func statusOf(s health.Status) Status {
	switch s {
	case health.StatusHealthy:
		return StatusPass
	case health.StatusUnhealthy:
		return StatusFail
	default:
		return StatusWarn
	}
}

func (s Status) rank() int {
	switch s {
	case StatusPass:
		return 0
	case StatusWarn:
		return 1
	default:
		return 2
	}
}

// worse keeps whichever of the two statuses is more severe.
func (s Status) worse(other Status) Status {
	if other.rank() > s.rank() {
		return other
	}
	return s
}

type LivenessResponse struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version,omitempty"`
	Uptime    string    `json:"uptime,omitempty"`
}

type ReadinessResponse struct {
	Status    Status                   `json:"status"`
	Version   string                   `json:"version"`
	ReleaseID string                   `json:"releaseId,omitempty"`
	Notes     []string                 `json:"notes,omitempty"`
	Checks    map[string][]CheckDetail `json:"checks,omitempty"`
}

// CheckDetail describes one store. Every checked component is a datastore:
// the form store or the registration store.
type CheckDetail struct {
	ComponentID   string    `json:"componentId,omitempty"`
	ComponentType string    `json:"componentType,omitempty"`
	Status        Status    `json:"status"`
	Time          time.Time `json:"time"`
	Latency       string    `json:"latency,omitempty"`
	Output        string    `json:"output,omitempty"`
}

func detailOf(name string, result health.CheckResult, at time.Time) CheckDetail {
	detail := CheckDetail{
		ComponentID:   name,
		ComponentType: "datastore",
		Status:        statusOf(result.Status),
		Time:          at,
		Output:        result.Message,
	}
	if result.Latency > 0 {
		detail.Latency = result.Latency.String()
	}
	if result.Error != "" {
		detail.Output = result.Error
	}
	return detail
}

// note is the readiness note for a non passing store, or "".
func (d CheckDetail) note() string {
	switch d.Status {
	case StatusFail:
		return "Dependency " + d.ComponentID + " is unavailable"
	case StatusWarn:
		return "Dependency " + d.ComponentID + " is degraded"
	default:
		return ""
	}
}
