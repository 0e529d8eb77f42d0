package users

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
)

type User struct {
	ID            uuid.UUID     `json:"id"`
	Email         string        `json:"email"`
	Name          string        `json:"name"`
	PasswordHash  string        `json:"-"`
	DateOfBirth   *time.Time    `json:"dateOfBirth,omitempty"`
	HeightCm      *float64      `json:"height,omitempty"`
	WeightKg      *float64      `json:"weight,omitempty"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	HealthGoals   []string      `json:"healthGoals"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// HasAnthropometrics reports whether BMI can be computed for the user.
func (u User) HasAnthropometrics() bool {
	return u.HeightCm != nil && *u.HeightCm > 0 && u.WeightKg != nil && *u.WeightKg > 0
}
