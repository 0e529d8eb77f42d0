package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/ihealth/internal/telemetry/tracing"
	"github.com/2beens/ihealth/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var ErrRecordExists = errors.New("record for this date already exists")

// pgxConn is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock.
type pgxConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ListParams struct {
	UserID uuid.UUID
	From   *time.Time
	To     *time.Time
	// Limit <= 0 means no limit.
	Limit int
}

// LastDays returns params covering the last n days up to and including now's date.
func LastDays(userID uuid.UUID, now time.Time, n int) ListParams {
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := to.AddDate(0, 0, -(n - 1))
	return ListParams{
		UserID: userID,
		From:   &from,
		To:     &to,
	}
}

func (p ListParams) limitArg() any {
	if p.Limit <= 0 {
		return nil
	}
	return p.Limit
}

func (p ListParams) setSpanAttributes(span trace.Span) {
	span.SetAttributes(attribute.String("user_id", p.UserID.String()))
	span.SetAttributes(attribute.Int("limit", p.Limit))
	if p.From != nil {
		span.SetAttributes(attribute.String("from", p.From.Format(time.DateOnly)))
	}
	if p.To != nil {
		span.SetAttributes(attribute.String("to", p.To.Format(time.DateOnly)))
	}
}

type Repo struct {
	db pgxConn
}

func NewRepo(db pgxConn) *Repo {
	return &Repo{
		db: db,
	}
}

// WithConn returns a repo bound to another connection, typically a transaction.
func (r *Repo) WithConn(db pgxConn) *Repo {
	return &Repo{db: db}
}

func mapInsertErr(what string, date time.Time, err error) error {
	if pkg.IsUniqueViolationError(err) {
		return fmt.Errorf("%s for %s: %w", what, date.Format(time.DateOnly), ErrRecordExists)
	}
	return fmt.Errorf("insert %s: %w", what, err)
}

func (r *Repo) AddHealthRecord(ctx context.Context, rec HealthRecord) (_ *HealthRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.addHealth")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO health_record
				(user_id, date, steps, calories, distance, heart_rate, weight,
				 blood_pressure_systolic, blood_pressure_diastolic, resting_heart_rate,
				 body_fat_percentage, bmi, source)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING id;`,
		rec.UserID, rec.Date, rec.Steps, rec.Calories, rec.Distance, rec.HeartRate, rec.Weight,
		rec.BloodPressureSystolic, rec.BloodPressureDiastolic, rec.RestingHeartRate,
		rec.BodyFatPercentage, rec.BMI, rec.Source,
	).Scan(&rec.ID); err != nil {
		return nil, mapInsertErr("health record", rec.Date, err)
	}

	span.SetAttributes(attribute.Int64("health_record.id", rec.ID))
	return &rec, nil
}

func (r *Repo) ListHealthRecords(ctx context.Context, params ListParams) (_ []HealthRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.listHealth")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	params.setSpanAttributes(span)

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, user_id, date, steps, calories, distance, heart_rate, weight,
				blood_pressure_systolic, blood_pressure_diastolic, resting_heart_rate,
				body_fat_percentage, bmi, source
			FROM health_record
			WHERE user_id = $1
				AND ($2::date IS NULL OR date >= $2)
				AND ($3::date IS NULL OR date <= $3)
			ORDER BY date DESC, id DESC
			LIMIT $4;`,
		params.UserID, params.From, params.To, params.limitArg(),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var result []HealthRecord
	for rows.Next() {
		var rec HealthRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Date, &rec.Steps, &rec.Calories, &rec.Distance, &rec.HeartRate, &rec.Weight,
			&rec.BloodPressureSystolic, &rec.BloodPressureDiastolic, &rec.RestingHeartRate,
			&rec.BodyFatPercentage, &rec.BMI, &rec.Source,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return result, nil
}

func (r *Repo) AddWorkout(ctx context.Context, w Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.addWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.type", string(w.Type)))

	if !w.Type.IsValid() {
		return nil, fmt.Errorf("invalid workout type: %s", w.Type)
	}

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout
				(user_id, date, type, duration, calories, distance, average_heart_rate, max_heart_rate, notes, source)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;`,
		w.UserID, w.Date, w.Type, w.Duration, w.Calories, w.Distance,
		w.AverageHeartRate, w.MaxHeartRate, w.Notes, w.Source,
	).Scan(&w.ID); err != nil {
		return nil, mapInsertErr("workout", w.Date, err)
	}

	span.SetAttributes(attribute.Int64("workout.id", w.ID))
	return &w, nil
}

func (r *Repo) ListWorkouts(ctx context.Context, params ListParams) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.listWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	params.setSpanAttributes(span)

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, user_id, date, type, duration, calories, distance, average_heart_rate, max_heart_rate, notes, source
			FROM workout
			WHERE user_id = $1
				AND ($2::date IS NULL OR date >= $2)
				AND ($3::date IS NULL OR date <= $3)
			ORDER BY date DESC, id DESC
			LIMIT $4;`,
		params.UserID, params.From, params.To, params.limitArg(),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var result []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Date, &w.Type, &w.Duration, &w.Calories, &w.Distance,
			&w.AverageHeartRate, &w.MaxHeartRate, &w.Notes, &w.Source,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return result, nil
}

func (r *Repo) AddSleepRecord(ctx context.Context, s SleepRecord) (_ *SleepRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.addSleep")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sleep record: %w", err)
	}

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO sleep_data
				(user_id, date, bedtime, sleep_start, sleep_end, wake_time,
				 total_sleep, deep_sleep, light_sleep, rem_sleep, awake_time,
				 sleep_efficiency, sleep_score, restfulness, source)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING id;`,
		s.UserID, s.Date, s.Bedtime, s.SleepStart, s.SleepEnd, s.WakeTime,
		s.TotalSleep, s.DeepSleep, s.LightSleep, s.RemSleep, s.AwakeTime,
		s.SleepEfficiency, s.SleepScore, s.Restfulness, s.Source,
	).Scan(&s.ID); err != nil {
		return nil, mapInsertErr("sleep record", s.Date, err)
	}

	span.SetAttributes(attribute.Int64("sleep.id", s.ID))
	return &s, nil
}

func (r *Repo) ListSleepRecords(ctx context.Context, params ListParams) (_ []SleepRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.listSleep")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	params.setSpanAttributes(span)

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, user_id, date, bedtime, sleep_start, sleep_end, wake_time,
				total_sleep, deep_sleep, light_sleep, rem_sleep, awake_time,
				sleep_efficiency, sleep_score, restfulness, source
			FROM sleep_data
			WHERE user_id = $1
				AND ($2::date IS NULL OR date >= $2)
				AND ($3::date IS NULL OR date <= $3)
			ORDER BY date DESC, id DESC
			LIMIT $4;`,
		params.UserID, params.From, params.To, params.limitArg(),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var result []SleepRecord
	for rows.Next() {
		var s SleepRecord
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Date, &s.Bedtime, &s.SleepStart, &s.SleepEnd, &s.WakeTime,
			&s.TotalSleep, &s.DeepSleep, &s.LightSleep, &s.RemSleep, &s.AwakeTime,
			&s.SleepEfficiency, &s.SleepScore, &s.Restfulness, &s.Source,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return result, nil
}

func (r *Repo) AddActivityRecord(ctx context.Context, a ActivityRecord) (_ *ActivityRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.addActivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO activity_data
				(user_id, date, steps, calories, active_calories, distance, floors,
				 active_minutes, sedentary_minutes, average_heart_rate, max_heart_rate,
				 min_heart_rate, activity_score, source)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING id;`,
		a.UserID, a.Date, a.Steps, a.Calories, a.ActiveCalories, a.Distance, a.Floors,
		a.ActiveMinutes, a.SedentaryMinutes, a.AverageHeartRate, a.MaxHeartRate,
		a.MinHeartRate, a.ActivityScore, a.Source,
	).Scan(&a.ID); err != nil {
		return nil, mapInsertErr("activity record", a.Date, err)
	}

	span.SetAttributes(attribute.Int64("activity.id", a.ID))
	return &a, nil
}

func (r *Repo) ListActivityRecords(ctx context.Context, params ListParams) (_ []ActivityRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.listActivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	params.setSpanAttributes(span)

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, user_id, date, steps, calories, active_calories, distance, floors,
				active_minutes, sedentary_minutes, average_heart_rate, max_heart_rate,
				min_heart_rate, activity_score, source
			FROM activity_data
			WHERE user_id = $1
				AND ($2::date IS NULL OR date >= $2)
				AND ($3::date IS NULL OR date <= $3)
			ORDER BY date DESC, id DESC
			LIMIT $4;`,
		params.UserID, params.From, params.To, params.limitArg(),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var result []ActivityRecord
	for rows.Next() {
		var a ActivityRecord
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Date, &a.Steps, &a.Calories, &a.ActiveCalories, &a.Distance, &a.Floors,
			&a.ActiveMinutes, &a.SedentaryMinutes, &a.AverageHeartRate, &a.MaxHeartRate,
			&a.MinHeartRate, &a.ActivityScore, &a.Source,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return result, nil
}
