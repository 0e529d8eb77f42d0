package records

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Source tells where a record came from: manual entry (and seeding) or a device.
type Source string

const (
	SourceManual Source = "manual"
	SourceOura   Source = "oura"
)

type WorkoutType string

const (
	WorkoutRunning          WorkoutType = "running"
	WorkoutCycling          WorkoutType = "cycling"
	WorkoutSwimming         WorkoutType = "swimming"
	WorkoutStrengthTraining WorkoutType = "strength_training"
	WorkoutYoga             WorkoutType = "yoga"
	WorkoutWalking          WorkoutType = "walking"
)

// WorkoutTypes lists every workout type in a stable order.
var WorkoutTypes = []WorkoutType{
	WorkoutRunning,
	WorkoutCycling,
	WorkoutSwimming,
	WorkoutStrengthTraining,
	WorkoutYoga,
	WorkoutWalking,
}

func (t WorkoutType) IsValid() bool {
	for _, wt := range WorkoutTypes {
		if wt == t {
			return true
		}
	}
	return false
}

// HasDistance reports whether workouts of this type track a distance.
func (t WorkoutType) HasDistance() bool {
	return t == WorkoutRunning || t == WorkoutCycling
}

type HealthRecord struct {
	ID                     int64     `json:"id"`
	UserID                 uuid.UUID `json:"userId"`
	Date                   time.Time `json:"date"`
	Steps                  int       `json:"steps"`
	Calories               int       `json:"calories"`
	Distance               float64   `json:"distance"`
	HeartRate              int       `json:"heartRate"`
	Weight                 float64   `json:"weight"`
	BloodPressureSystolic  int       `json:"bloodPressureSystolic"`
	BloodPressureDiastolic int       `json:"bloodPressureDiastolic"`
	RestingHeartRate       int       `json:"restingHeartRate"`
	BodyFatPercentage      float64   `json:"bodyFatPercentage"`
	BMI                    float64   `json:"bmi"`
	Source                 Source    `json:"source"`
}

type Workout struct {
	ID               int64       `json:"id"`
	UserID           uuid.UUID   `json:"userId"`
	Date             time.Time   `json:"date"`
	Type             WorkoutType `json:"type"`
	Duration         int         `json:"duration"`
	Calories         int         `json:"calories"`
	Distance         *float64    `json:"distance,omitempty"`
	AverageHeartRate int         `json:"averageHeartRate"`
	MaxHeartRate     int         `json:"maxHeartRate"`
	Notes            string      `json:"notes"`
	Source           Source      `json:"source"`
}

// SleepRecord durations are minutes. Bedtime <= SleepStart <= SleepEnd <= WakeTime.
type SleepRecord struct {
	ID              int64     `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	Date            time.Time `json:"date"`
	Bedtime         time.Time `json:"bedtime"`
	SleepStart      time.Time `json:"sleepStart"`
	SleepEnd        time.Time `json:"sleepEnd"`
	WakeTime        time.Time `json:"wakeTime"`
	TotalSleep      int       `json:"totalSleep"`
	DeepSleep       int       `json:"deepSleep"`
	LightSleep      int       `json:"lightSleep"`
	RemSleep        int       `json:"remSleep"`
	AwakeTime       int       `json:"awakeTime"`
	SleepEfficiency int       `json:"sleepEfficiency"`
	SleepScore      int       `json:"sleepScore"`
	Restfulness     float64   `json:"restfulness"`
	Source          Source    `json:"source"`
}

// Validate checks the ordering of the sleep timestamps and the stage totals.
func (s SleepRecord) Validate() error {
	if s.SleepStart.Before(s.Bedtime) {
		return fmt.Errorf("sleep start %s before bedtime %s", s.SleepStart, s.Bedtime)
	}
	if s.SleepEnd.Before(s.SleepStart) {
		return fmt.Errorf("sleep end %s before sleep start %s", s.SleepEnd, s.SleepStart)
	}
	if s.WakeTime.Before(s.SleepEnd) {
		return fmt.Errorf("wake time %s before sleep end %s", s.WakeTime, s.SleepEnd)
	}
	if s.LightSleep < 0 || s.DeepSleep < 0 || s.RemSleep < 0 {
		return fmt.Errorf("negative sleep stage: deep %d, light %d, rem %d", s.DeepSleep, s.LightSleep, s.RemSleep)
	}
	if s.DeepSleep+s.LightSleep+s.RemSleep > s.TotalSleep {
		return fmt.Errorf("sleep stages exceed total sleep %d", s.TotalSleep)
	}
	return nil
}

type ActivityRecord struct {
	ID               int64     `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	Date             time.Time `json:"date"`
	Steps            int       `json:"steps"`
	Calories         int       `json:"calories"`
	ActiveCalories   int       `json:"activeCalories"`
	Distance         float64   `json:"distance"`
	Floors           int       `json:"floors"`
	ActiveMinutes    int       `json:"activeMinutes"`
	SedentaryMinutes int       `json:"sedentaryMinutes"`
	AverageHeartRate int       `json:"averageHeartRate"`
	MaxHeartRate     int       `json:"maxHeartRate"`
	MinHeartRate     int       `json:"minHeartRate"`
	ActivityScore    int       `json:"activityScore"`
	Source           Source    `json:"source"`
}

// Kind names a record table in the API.
type Kind string

const (
	KindHealth   Kind = "health"
	KindWorkouts Kind = "workouts"
	KindSleep    Kind = "sleep"
	KindActivity Kind = "activity"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindHealth, KindWorkouts, KindSleep, KindActivity:
		return k, nil
	default:
		return "", fmt.Errorf("unknown record kind: %s", s)
	}
}
