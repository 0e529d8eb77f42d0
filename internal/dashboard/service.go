package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/ihealth/internal/healthstats"
	"github.com/2beens/ihealth/internal/records"
	"github.com/2beens/ihealth/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const (
	weekDays          = 7
	recentWorkoutsMax = 5
)

// HealthMetrics is a one-line summary of a day (or an average over several days).
// Sleep is in minutes.
type HealthMetrics struct {
	Steps     int      `json:"steps"`
	Calories  int      `json:"calories"`
	Distance  float64  `json:"distance"`
	HeartRate int      `json:"heartRate"`
	Sleep     int      `json:"sleep"`
	Weight    *float64 `json:"weight,omitempty"`
}

type DashboardData struct {
	TodayMetrics   HealthMetrics          `json:"todayMetrics"`
	WeeklyAverage  HealthMetrics          `json:"weeklyAverage"`
	RecentWorkouts []records.Workout      `json:"recentWorkouts"`
	SleepData      []records.SleepRecord  `json:"sleepData"`
	HealthRecords  []records.HealthRecord `json:"healthRecords"`

	BMI         *float64                `json:"bmi,omitempty"`
	BMICategory healthstats.BMICategory `json:"bmiCategory,omitempty"`

	FormattedSleep string `json:"formattedSleep"`
	FormattedDate  string `json:"formattedDate"`
	Locale         string `json:"locale"`
}

type Service struct {
	users   usersRepo
	records recordsRepo
}

func NewService(usersRepo usersRepo, recordsRepo recordsRepo) *Service {
	return &Service{
		users:   usersRepo,
		records: recordsRepo,
	}
}

// Get builds the dashboard with en-US formatting in now's location.
func (s *Service) Get(ctx context.Context, userID uuid.UUID, now time.Time) (*DashboardData, error) {
	formatter, err := healthstats.NewFormatter("", now.Location())
	if err != nil {
		return nil, err
	}
	return s.GetFormatted(ctx, userID, now, formatter)
}

func (s *Service) GetFormatted(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	formatter *healthstats.Formatter,
) (_ *DashboardData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.service.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.String("locale", formatter.Locale()))

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	week := records.LastDays(userID, now, weekDays)
	week.Limit = weekDays

	healthRecords, err := s.records.ListHealthRecords(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("list health records: %w", err)
	}
	sleepRecords, err := s.records.ListSleepRecords(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("list sleep records: %w", err)
	}
	workouts, err := s.records.ListWorkouts(ctx, records.ListParams{
		UserID: userID,
		Limit:  recentWorkoutsMax,
	})
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	today := todayMetrics(now, healthRecords, sleepRecords)
	data := &DashboardData{
		TodayMetrics:   today,
		WeeklyAverage:  weeklyAverage(healthRecords, sleepRecords),
		RecentWorkouts: nonNil(workouts),
		SleepData:      nonNil(sleepRecords),
		HealthRecords:  nonNil(healthRecords),
		FormattedSleep: healthstats.FormatDuration(today.Sleep),
		FormattedDate:  formatter.FormatDate(now),
		Locale:         formatter.Locale(),
	}

	if user.HasAnthropometrics() {
		bmi := healthstats.CalculateBMI(*user.WeightKg, *user.HeightCm)
		data.BMI = &bmi
		data.BMICategory = healthstats.GetBMICategory(bmi)
	}

	return data, nil
}

func sameDate(a, b time.Time) bool {
	return a.Format(time.DateOnly) == b.Format(time.DateOnly)
}

func todayMetrics(now time.Time, health []records.HealthRecord, sleep []records.SleepRecord) HealthMetrics {
	var m HealthMetrics
	for _, rec := range health {
		if !sameDate(rec.Date, now) {
			continue
		}
		weight := rec.Weight
		m.Steps = rec.Steps
		m.Calories = rec.Calories
		m.Distance = rec.Distance
		m.HeartRate = rec.HeartRate
		m.Weight = &weight
		break
	}
	for _, rec := range sleep {
		if sameDate(rec.Date, now) {
			m.Sleep = rec.TotalSleep
			break
		}
	}
	return m
}

func weeklyAverage(health []records.HealthRecord, sleep []records.SleepRecord) HealthMetrics {
	var m HealthMetrics
	if n := float64(len(health)); n > 0 {
		var steps, calories, distance, heartRate, weight float64
		for _, rec := range health {
			steps += float64(rec.Steps)
			calories += float64(rec.Calories)
			distance += rec.Distance
			heartRate += float64(rec.HeartRate)
			weight += rec.Weight
		}
		avgWeight := healthstats.Round(weight/n, 1)
		m.Steps = int(healthstats.Round(steps/n, 0))
		m.Calories = int(healthstats.Round(calories/n, 0))
		m.Distance = healthstats.Round(distance/n, 2)
		m.HeartRate = int(healthstats.Round(heartRate/n, 0))
		m.Weight = &avgWeight
	}
	if n := float64(len(sleep)); n > 0 {
		var total float64
		for _, rec := range sleep {
			total += float64(rec.TotalSleep)
		}
		m.Sleep = int(healthstats.Round(total/n, 0))
	}
	return m
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
