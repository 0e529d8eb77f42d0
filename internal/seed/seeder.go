package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/ihealth/internal/chat"
	"github.com/2beens/ihealth/internal/records"
	"github.com/2beens/ihealth/internal/telemetry/metrics"
	"github.com/2beens/ihealth/internal/telemetry/tracing"
	"github.com/2beens/ihealth/internal/users"
	"github.com/2beens/ihealth/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=seeder_mocks_test.go -package=seed_test

type userStore interface {
	Upsert(ctx context.Context, user users.User) (*users.User, error)
}

type recordsStore interface {
	AddHealthRecord(ctx context.Context, rec records.HealthRecord) (*records.HealthRecord, error)
	AddWorkout(ctx context.Context, w records.Workout) (*records.Workout, error)
	AddSleepRecord(ctx context.Context, s records.SleepRecord) (*records.SleepRecord, error)
	AddActivityRecord(ctx context.Context, a records.ActivityRecord) (*records.ActivityRecord, error)
}

type chatStore interface {
	CreateConversation(ctx context.Context, userID uuid.UUID, title string) (*chat.Conversation, error)
	AppendMessages(ctx context.Context, conversationID uuid.UUID, messages []chat.NewMessage) ([]chat.Message, error)
}

type Summary struct {
	UserID          uuid.UUID
	Users           int
	HealthRecords   int
	Workouts        int
	SleepRecords    int
	ActivityRecords int
	Conversations   int
	Messages        int
}

// PublishMetrics adds the counts to the seeded records counter.
// Only call it for a committed run.
func (s *Summary) PublishMetrics(metricsManager *metrics.Manager) {
	if s == nil || metricsManager == nil {
		return
	}
	for kind, n := range map[string]int{
		"health":       s.HealthRecords,
		"workout":      s.Workouts,
		"sleep":        s.SleepRecords,
		"activity":     s.ActivityRecords,
		"conversation": s.Conversations,
	} {
		metricsManager.CounterSeededRecords.WithLabelValues(kind).Add(float64(n))
	}
}

type SeederParams struct {
	Users     userStore
	Records   recordsStore
	Chat      chatStore
	Generator *Generator
	// optional
	HashPassword func(password string) (string, error)
}

// Seeder writes the demo user, a generated dataset and the sample chat.
// It stops at the first failed write; callers run it inside a transaction.
type Seeder struct {
	users        userStore
	records      recordsStore
	chat         chatStore
	generator    *Generator
	hashPassword func(password string) (string, error)
}

func NewSeeder(params SeederParams) (*Seeder, error) {
	if params.Users == nil || params.Records == nil || params.Chat == nil {
		return nil, errors.New("seeder stores must be set")
	}
	if params.Generator == nil {
		return nil, errors.New("generator must be set")
	}
	hashPassword := params.HashPassword
	if hashPassword == nil {
		hashPassword = pkg.HashPassword
	}
	return &Seeder{
		users:        params.Users,
		records:      params.Records,
		chat:         params.Chat,
		generator:    params.Generator,
		hashPassword: hashPassword,
	}, nil
}

func (s *Seeder) Run(ctx context.Context, today time.Time) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "seed.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	log.Infoln("starting database seed ...")

	passwordHash, err := s.hashPassword(DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	user, err := s.users.Upsert(ctx, DemoUser(passwordHash))
	if err != nil {
		return nil, fmt.Errorf("upsert demo user: %w", err)
	}
	span.SetAttributes(attribute.String("user.id", user.ID.String()))
	log.Infof("created demo user: %s", user.Email)

	summary := &Summary{
		UserID: user.ID,
		Users:  1,
	}

	dataset := s.generator.Generate(user.ID, today)
	for _, day := range dataset.Days {
		if err := s.insertDay(ctx, day, summary); err != nil {
			return summary, err
		}
	}
	log.Infof("created %d health records", summary.HealthRecords)
	log.Infof("created %d workouts", summary.Workouts)
	log.Infof("created %d sleep records", summary.SleepRecords)
	log.Infof("created %d activity records", summary.ActivityRecords)

	conversation, err := s.chat.CreateConversation(ctx, user.ID, ConversationTitle)
	if err != nil {
		return summary, fmt.Errorf("create conversation: %w", err)
	}
	summary.Conversations++

	messages, err := s.chat.AppendMessages(ctx, conversation.ID, ConversationMessages())
	if err != nil {
		return summary, fmt.Errorf("append conversation messages: %w", err)
	}
	summary.Messages += len(messages)
	log.Infoln("created sample chat conversation")

	log.Infoln("database seed completed")
	return summary, nil
}

func (s *Seeder) insertDay(ctx context.Context, day DayRecords, summary *Summary) error {
	date := day.Date.Format(time.DateOnly)

	if _, err := s.records.AddHealthRecord(ctx, day.Health); err != nil {
		return fmt.Errorf("seed health record for %s: %w", date, err)
	}
	summary.HealthRecords++

	if day.Workout != nil {
		if _, err := s.records.AddWorkout(ctx, *day.Workout); err != nil {
			return fmt.Errorf("seed workout for %s: %w", date, err)
		}
		summary.Workouts++
	}

	if _, err := s.records.AddSleepRecord(ctx, day.Sleep); err != nil {
		return fmt.Errorf("seed sleep record for %s: %w", date, err)
	}
	summary.SleepRecords++

	if _, err := s.records.AddActivityRecord(ctx, day.Activity); err != nil {
		return fmt.Errorf("seed activity record for %s: %w", date, err)
	}
	summary.ActivityRecords++

	return nil
}
