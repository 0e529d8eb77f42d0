package seed

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/2beens/ihealth/internal/healthstats"
	"github.com/2beens/ihealth/internal/records"

	"github.com/google/uuid"
)

type GeneratorConfig struct {
	Days               int
	WorkoutProbability float64
	ReferenceHeightCm  float64
	ReferenceWeightKg  float64
	// BMIFromDailyWeight computes each day's BMI from that day's weight
	// instead of the reference weight.
	BMIFromDailyWeight bool
	Location           *time.Location
}

func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Days:               31,
		WorkoutProbability: 0.7,
		ReferenceHeightCm:  175,
		ReferenceWeightKg:  70,
		Location:           time.UTC,
	}
}

func (c GeneratorConfig) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be positive, got %d", c.Days)
	}
	if c.WorkoutProbability < 0 || c.WorkoutProbability > 1 {
		return fmt.Errorf("workout probability must be within [0, 1], got %v", c.WorkoutProbability)
	}
	if c.ReferenceHeightCm <= 0 || c.ReferenceWeightKg <= 0 {
		return errors.New("reference height and weight must be positive")
	}
	return nil
}

// DayRecords holds everything generated for a single day.
type DayRecords struct {
	Date     time.Time
	Health   records.HealthRecord
	Workout  *records.Workout
	Sleep    records.SleepRecord
	Activity records.ActivityRecord
}

// Dataset is the generator output, oldest day first.
type Dataset struct {
	UserID uuid.UUID
	Days   []DayRecords
}

func (d Dataset) WorkoutCount() int {
	n := 0
	for _, day := range d.Days {
		if day.Workout != nil {
			n++
		}
	}
	return n
}

type Generator struct {
	cfg GeneratorConfig
	rng Rand
}

func NewGenerator(cfg GeneratorConfig, rng Rand) (*Generator, error) {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("random source is nil")
	}
	return &Generator{
		cfg: cfg,
		rng: rng,
	}, nil
}

// Generate produces cfg.Days consecutive days of records ending with today.
// Days are drawn sequentially from one random stream, so a seeded source
// always yields the same dataset.
func (g *Generator) Generate(userID uuid.UUID, today time.Time) Dataset {
	today = today.In(g.cfg.Location)
	lastDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, g.cfg.Location)

	ds := Dataset{
		UserID: userID,
		Days:   make([]DayRecords, 0, g.cfg.Days),
	}
	for i := g.cfg.Days - 1; i >= 0; i-- {
		day := lastDay.AddDate(0, 0, -i)
		ds.Days = append(ds.Days, DayRecords{
			Date:     day,
			Health:   g.healthRecord(userID, day),
			Workout:  g.workout(userID, day),
			Sleep:    g.sleepRecord(userID, day),
			Activity: g.activityRecord(userID, day),
		})
	}
	return ds
}

// ShouldGenerateWorkout draws once and reports whether a workout happens.
func ShouldGenerateWorkout(probability float64, rng Rand) bool {
	return rng.Float64Range(0, 1) < probability
}

func round2(v float64) float64 {
	return healthstats.Round(v, 2)
}

func round1(v float64) float64 {
	return healthstats.Round(v, 1)
}

func (g *Generator) healthRecord(userID uuid.UUID, day time.Time) records.HealthRecord {
	rec := records.HealthRecord{
		UserID:                 userID,
		Date:                   day,
		Steps:                  g.rng.Number(5000, 9999),
		Calories:               g.rng.Number(1800, 2299),
		Distance:               round2(g.rng.Float64Range(2, 5)),
		HeartRate:              g.rng.Number(70, 89),
		Weight:                 round1(g.cfg.ReferenceWeightKg + (g.rng.Float64Range(0, 1)-0.5)*4),
		BloodPressureSystolic:  g.rng.Number(110, 129),
		BloodPressureDiastolic: g.rng.Number(70, 84),
		RestingHeartRate:       g.rng.Number(55, 69),
		BodyFatPercentage:      round1(g.rng.Float64Range(15, 20)),
		Source:                 records.SourceManual,
	}

	weight := g.cfg.ReferenceWeightKg
	if g.cfg.BMIFromDailyWeight {
		weight = rec.Weight
	}
	rec.BMI = healthstats.CalculateBMI(weight, g.cfg.ReferenceHeightCm)

	return rec
}

func (g *Generator) workout(userID uuid.UUID, day time.Time) *records.Workout {
	if !ShouldGenerateWorkout(g.cfg.WorkoutProbability, g.rng) {
		return nil
	}

	workoutType := records.WorkoutTypes[g.rng.Number(0, len(records.WorkoutTypes)-1)]
	duration := g.rng.Number(30, 89)
	w := &records.Workout{
		UserID:   userID,
		Date:     day,
		Type:     workoutType,
		Duration: duration,
		Calories: int(math.Floor(float64(duration) * g.rng.Float64Range(3, 10))),
	}
	if workoutType.HasDistance() {
		distance := round2(float64(duration)*0.1 + g.rng.Float64Range(0, 5))
		w.Distance = &distance
	}
	w.AverageHeartRate = g.rng.Number(120, 159)
	w.MaxHeartRate = g.rng.Number(160, 189)
	w.Notes = fmt.Sprintf("Great %s session!", workoutType)
	w.Source = records.SourceManual

	return w
}

// awake minutes already subtracted from light sleep
const sleepAwakeOffset = 20

func (g *Generator) sleepRecord(userID uuid.UUID, day time.Time) records.SleepRecord {
	bedHour := 22 + g.rng.Number(0, 1)
	bedMinute := g.rng.Number(0, 59)
	bedtime := time.Date(day.Year(), day.Month(), day.Day(), bedHour, bedMinute, 0, 0, day.Location())
	sleepStart := bedtime.Add(time.Duration(g.rng.Number(0, 29)) * time.Minute)
	totalSleep := g.rng.Number(360, 479)
	sleepEnd := sleepStart.Add(time.Duration(totalSleep) * time.Minute)
	wakeTime := sleepEnd.Add(time.Duration(g.rng.Number(0, 29)) * time.Minute)

	deepSleep := int(math.Floor(float64(totalSleep) * g.rng.Float64Range(0.15, 0.25)))
	remSleep := int(math.Floor(float64(totalSleep) * g.rng.Float64Range(0.20, 0.30)))
	lightSleep := max(totalSleep-deepSleep-remSleep-sleepAwakeOffset, 0)
	awakeTime := sleepAwakeOffset + g.rng.Number(0, 19)

	return records.SleepRecord{
		UserID:          userID,
		Date:            day,
		Bedtime:         bedtime,
		SleepStart:      sleepStart,
		SleepEnd:        sleepEnd,
		WakeTime:        wakeTime,
		TotalSleep:      totalSleep,
		DeepSleep:       deepSleep,
		LightSleep:      lightSleep,
		RemSleep:        remSleep,
		AwakeTime:       awakeTime,
		SleepEfficiency: int(math.Round(float64(totalSleep) / float64(totalSleep+awakeTime) * 100)),
		SleepScore:      g.rng.Number(70, 99),
		Restfulness:     round2(g.rng.Float64Range(0.7, 1.0)),
		Source:          records.SourceManual,
	}
}

const (
	minutesPerDay   = 1440
	assumedSleepMin = 480
)

func (g *Generator) activityRecord(userID uuid.UUID, day time.Time) records.ActivityRecord {
	steps := g.rng.Number(5000, 9999)
	activeMinutes := g.rng.Number(30, 89)
	calories := int(math.Floor(float64(steps)*0.04+g.rng.Float64Range(0, 200))) + 1800
	activeCalories := int(math.Floor(float64(activeMinutes)*8 + g.rng.Float64Range(0, 100)))

	return records.ActivityRecord{
		UserID:           userID,
		Date:             day,
		Steps:            steps,
		Calories:         calories,
		ActiveCalories:   activeCalories,
		Distance:         round2(float64(steps) * 0.0008),
		Floors:           g.rng.Number(5, 24),
		ActiveMinutes:    activeMinutes,
		SedentaryMinutes: minutesPerDay - activeMinutes - assumedSleepMin,
		AverageHeartRate: g.rng.Number(70, 89),
		MaxHeartRate:     g.rng.Number(140, 179),
		MinHeartRate:     g.rng.Number(50, 64),
		ActivityScore:    g.rng.Number(70, 99),
		Source:           records.SourceManual,
	}
}
