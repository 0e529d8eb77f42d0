package dashboard

import (
	"context"

	"github.com/2beens/ihealth/internal/chat"
	"github.com/2beens/ihealth/internal/records"
	"github.com/2beens/ihealth/internal/users"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=repos_mocks_test.go -package=dashboard_test

type usersRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*users.User, error)
}

type recordsRepo interface {
	ListHealthRecords(ctx context.Context, params records.ListParams) ([]records.HealthRecord, error)
	ListWorkouts(ctx context.Context, params records.ListParams) ([]records.Workout, error)
	ListSleepRecords(ctx context.Context, params records.ListParams) ([]records.SleepRecord, error)
	ListActivityRecords(ctx context.Context, params records.ListParams) ([]records.ActivityRecord, error)
}

type chatRepo interface {
	ListConversations(ctx context.Context, userID uuid.UUID) ([]chat.Conversation, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]chat.Message, error)
	AppendMessages(ctx context.Context, conversationID uuid.UUID, messages []chat.NewMessage) ([]chat.Message, error)
}
