package seed

import (
	"time"

	"github.com/2beens/ihealth/internal/chat"
	"github.com/2beens/ihealth/internal/users"
)

const (
	DemoEmail    = "demo@ihealth.com"
	DemoName     = "Demo User"
	DemoPassword = "demo123"

	ConversationTitle = "Health Goals Discussion"
)

// DemoUser returns the fixed demo account with the given password hash.
func DemoUser(passwordHash string) users.User {
	dob := time.Date(1990, time.January, 15, 0, 0, 0, 0, time.UTC)
	height := 175.0
	weight := 70.0
	return users.User{
		Email:         DemoEmail,
		Name:          DemoName,
		PasswordHash:  passwordHash,
		DateOfBirth:   &dob,
		HeightCm:      &height,
		WeightKg:      &weight,
		ActivityLevel: users.ActivityModeratelyActive,
		HealthGoals:   []string{"weight_loss", "better_sleep", "fitness_improvement"},
	}
}

// ConversationMessages returns the sample chat, user and assistant alternating.
func ConversationMessages() []chat.NewMessage {
	return []chat.NewMessage{
		{
			Role:    chat.RoleUser,
			Content: "Hi! I want to improve my overall health. Can you help me analyze my data?",
		},
		{
			Role:    chat.RoleAssistant,
			Content: "Hello! I'd be happy to help you improve your health. Based on your recent data, I can see you're averaging about 7,500 steps per day and getting around 7 hours of sleep. Your workout consistency is good with about 4-5 sessions per week. Would you like me to focus on any specific area like sleep optimization, workout planning, or nutrition?",
		},
		{
			Role:    chat.RoleUser,
			Content: "I'd like to focus on improving my sleep quality. I notice I sometimes feel tired even after 7-8 hours of sleep.",
		},
		{
			Role:    chat.RoleAssistant,
			Content: "Great question! Looking at your sleep data, I notice a few patterns that might help explain this. Your sleep efficiency is averaging around 85%, which is good, but there's room for improvement. I also see that your bedtime varies quite a bit - sometimes you're going to bed at 10 PM, other times closer to midnight. Consistency in your sleep schedule can significantly impact sleep quality. Would you like me to suggest a personalized sleep optimization plan?",
		},
	}
}
