package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/ihealth/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

var ErrUserNotFound = errors.New("user not found")

type pgxConn interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repo struct {
	db pgxConn
}

func NewRepo(db pgxConn) *Repo {
	return &Repo{
		db: db,
	}
}

const userColumns = `id, email, name, password_hash, date_of_birth, height_cm, weight_kg, activity_level, health_goals, created_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.DateOfBirth,
		&u.HeightCm, &u.WeightKg, &u.ActivityLevel, &u.HealthGoals, &u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Upsert inserts the user, or returns the already stored one with the same email untouched.
func (r *Repo) Upsert(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.HealthGoals == nil {
		user.HealthGoals = []string{}
	}

	stored, err := scanUser(r.db.QueryRow(
		ctx,
		`INSERT INTO users
				(id, email, name, password_hash, date_of_birth, height_cm, weight_kg, activity_level, health_goals)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
			RETURNING `+userColumns+`;`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.DateOfBirth,
		user.HeightCm, user.WeightKg, user.ActivityLevel, user.HealthGoals,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert user %s: %w", user.Email, err)
	}

	span.SetAttributes(attribute.String("user.id", stored.ID.String()))
	return stored, nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getById")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id.String()))

	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1;`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}
