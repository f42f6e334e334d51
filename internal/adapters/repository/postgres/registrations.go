package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"onboarding/internal/core/domain/registration"
	"onboarding/internal/platform/database/postgres"
)

const (
	uniqueViolation = "23505"
	emailConstraint = "registrations_email_key"
)

var ErrNotConnected = errors.New("database connection is not initialized")

// Connector hands out the current pool. database.Lifecycle satisfies it.
type Connector interface {
	Connection() *postgres.DB
}

// RegistrationRepository persists registrations. The password is never
// written; the table has no column for it.
type RegistrationRepository struct {
	db Connector
}

func NewRegistrationRepository(db Connector) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) conn() (*postgres.DB, error) {
	db := r.db.Connection()
	if db == nil {
		return nil, ErrNotConnected
	}
	return db, nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*registration.Registration, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	query := `SELECT id, names, surnames, email, phone, terms_accepted, created_at FROM registrations WHERE id = $1`

	var reg registration.Registration
	err = db.QueryRowContext(ctx, query, id).Scan(
		&reg.ID,
		&reg.Names,
		&reg.Surnames,
		&reg.Email,
		&reg.Phone,
		&reg.TermsAccepted,
		&reg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, registration.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load registration %s: %w", id, err)
	}

	reg.CreatedAt = reg.CreatedAt.UTC()
	return &reg, nil
}

func (r *RegistrationRepository) Save(ctx context.Context, reg *registration.Registration) error {
	db, err := r.conn()
	if err != nil {
		return err
	}

	query := `INSERT INTO registrations (id, names, surnames, email, phone, terms_accepted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = db.ExecContext(ctx, query,
		reg.ID,
		reg.Names,
		reg.Surnames,
		reg.Email,
		reg.Phone,
		reg.TermsAccepted,
		reg.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == emailConstraint {
			return &registration.EmailTakenError{Email: reg.Email}
		}
		return fmt.Errorf("failed to save registration %s: %w", reg.ID, err)
	}

	return nil
}

// Migrate creates the registrations schema. It is idempotent and fits
// database.Lifecycle.OnConnect.
func Migrate(ctx context.Context, db *postgres.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS registrations (
			id VARCHAR(64) PRIMARY KEY,
			names VARCHAR(255) NOT NULL,
			surnames VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(32) NOT NULL,
			terms_accepted BOOLEAN NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX IF NOT EXISTS registrations_email_key ON registrations (LOWER(email));
	`

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to migrate registrations: %w", err)
	}
	return nil
}
