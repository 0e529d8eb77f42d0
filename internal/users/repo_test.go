package users_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/2beens/ihealth/internal/users"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var userColumns = []string{
	"id", "email", "name", "password_hash", "date_of_birth", "height_cm", "weight_kg",
	"activity_level", "health_goals", "created_at",
}

func TestRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := users.NewRepo(mock)

	height, weight := 175.0, 70.0
	dob := time.Date(1990, time.January, 15, 0, 0, 0, 0, time.UTC)
	u := users.User{
		ID:            uuid.New(),
		Email:         "demo@ihealth.com",
		Name:          "Demo User",
		PasswordHash:  "$2a$12$hash",
		DateOfBirth:   &dob,
		HeightCm:      &height,
		WeightKg:      &weight,
		ActivityLevel: users.ActivityModeratelyActive,
		HealthGoals:   []string{"weight_loss", "better_sleep"},
	}

	// the stored row keeps its original id and name
	storedID := uuid.New()
	createdAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("ON CONFLICT \\(email\\) DO UPDATE SET email = EXCLUDED.email").
		WithArgs(u.ID, u.Email, u.Name, u.PasswordHash, u.DateOfBirth, u.HeightCm, u.WeightKg, u.ActivityLevel, u.HealthGoals).
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(
			storedID, u.Email, "Original Name", "$2a$12$old", &dob, &height, &weight,
			users.ActivityModeratelyActive, []string{"weight_loss"}, createdAt,
		))

	stored, err := repo.Upsert(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, storedID, stored.ID)
	assert.Equal(t, "Original Name", stored.Name)
	assert.Equal(t, createdAt, stored.CreatedAt)
	assert.True(t, stored.HasAnthropometrics())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Upsert_GeneratesID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := users.NewRepo(mock)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), "new@ihealth.com", "New", "", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), users.ActivityLevel(""), []string{}).
		WillReturnError(errors.New("db down"))

	_, err = repo.Upsert(context.Background(), users.User{Email: "new@ihealth.com", Name: "New"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert user new@ihealth.com")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := users.NewRepo(mock)

	id := uuid.New()
	mock.ExpectQuery("FROM users WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(
			id, "a@b.c", "A", "h", (*time.Time)(nil), (*float64)(nil), (*float64)(nil),
			users.ActivitySedentary, []string{}, time.Now(),
		))

	u, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", u.Email)
	assert.False(t, u.HasAnthropometrics())

	mock.ExpectQuery("FROM users WHERE id = \\$1").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)
	_, err = repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, users.ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := users.NewRepo(mock)

	mock.ExpectQuery("FROM users WHERE email = \\$1").
		WithArgs("missing@ihealth.com").
		WillReturnError(pgx.ErrNoRows)
	_, err = repo.GetByEmail(context.Background(), "missing@ihealth.com")
	assert.ErrorIs(t, err, users.ErrUserNotFound)

	mock.ExpectQuery("FROM users WHERE email = \\$1").
		WithArgs("broken@ihealth.com").
		WillReturnError(errors.New("conn closed"))
	_, err = repo.GetByEmail(context.Background(), "broken@ihealth.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, users.ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
