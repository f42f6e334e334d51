package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"onboarding/internal/adapters/database"
	"onboarding/internal/config"
	"onboarding/internal/core/domain/registration"
	"onboarding/internal/platform/logger"
)

type RegistrationRepositoryIntegrationSuite struct {
	suite.Suite
	db   *database.Lifecycle
	repo *RegistrationRepository
	pg   *tcpostgres.PostgresContainer
}

func (s *RegistrationRepositoryIntegrationSuite) SetupSuite() {
	ctx := context.Background()

	pg, err := tcpostgres.Run(ctx,
		"postgres:15.3-alpine",
		tcpostgres.WithDatabase("onboarding"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	s.Require().NoError(err)
	s.pg = pg

	host, err := pg.Host(ctx)
	s.Require().NoError(err)
	port, err := pg.MappedPort(ctx, "5432")
	s.Require().NoError(err)

	cfg := &config.DatabaseConfig{
		Postgres: config.PostgresConfig{
			Host:     host,
			Port:     port.Int(),
			User:     "postgres",
			Password: "postgres",
			Database: "onboarding",
			SSLMode:  "disable",
		},
	}

	s.db = database.NewDatabaseLifecycle(cfg, logger.NewNop())
	s.db.OnConnect(Migrate)
	s.Require().NoError(s.db.Start(ctx))

	s.repo = NewRegistrationRepository(s.db)
}

func (s *RegistrationRepositoryIntegrationSuite) SetupTest() {
	_, err := s.db.Connection().ExecContext(context.Background(), "TRUNCATE TABLE registrations")
	s.Require().NoError(err)
}

func (s *RegistrationRepositoryIntegrationSuite) TearDownSuite() {
	ctx := context.Background()
	if s.db != nil {
		s.Require().NoError(s.db.Stop(ctx))
	}
	if s.pg != nil {
		s.Require().NoError(s.pg.Terminate(ctx))
	}
}

func (s *RegistrationRepositoryIntegrationSuite) newRegistration(id, email string) *registration.Registration {
	return &registration.Registration{
		ID:            id,
		Names:         "José Ñandú",
		Surnames:      "Güemes Pérez",
		Email:         email,
		Phone:         "300123456",
		Password:      "Abcdef12",
		TermsAccepted: true,
		CreatedAt:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *RegistrationRepositoryIntegrationSuite) TestSaveAndGetByID() {
	ctx := context.Background()
	reg := s.newRegistration("reg-1", "jose@example.com")

	s.Require().NoError(s.repo.Save(ctx, reg))

	got, err := s.repo.GetByID(ctx, "reg-1")
	s.Require().NoError(err)
	s.Equal(reg.Names, got.Names)
	s.Equal(reg.Surnames, got.Surnames)
	s.Equal(reg.Email, got.Email)
	s.Equal(reg.Phone, got.Phone)
	s.True(got.TermsAccepted)
	s.True(reg.CreatedAt.Equal(got.CreatedAt))
	s.Empty(got.Password)
}

func (s *RegistrationRepositoryIntegrationSuite) TestSave_EmailTakenIgnoresCase() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Save(ctx, s.newRegistration("reg-1", "jose@example.com")))

	err := s.repo.Save(ctx, s.newRegistration("reg-2", "JOSE@example.com"))

	var taken *registration.EmailTakenError
	s.Require().ErrorAs(err, &taken)
	s.Equal("JOSE@example.com", taken.Email)
}

func (s *RegistrationRepositoryIntegrationSuite) TestGetByID_NotFound() {
	got, err := s.repo.GetByID(context.Background(), "missing")

	s.ErrorIs(err, registration.ErrNotFound)
	s.Nil(got)
}

func (s *RegistrationRepositoryIntegrationSuite) TestSave_SQLInjectionPrevention() {
	ctx := context.Background()
	reg := s.newRegistration("reg-sql", "x'; DROP TABLE registrations; --@example.com")
	reg.Names = strings.Repeat("a", 255)

	s.Require().NoError(s.repo.Save(ctx, reg))

	var count int
	err := s.db.Connection().QueryRowContext(ctx, "SELECT COUNT(*) FROM registrations").Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func TestRegistrationRepositoryIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	suite.Run(t, new(RegistrationRepositoryIntegrationSuite))
}
