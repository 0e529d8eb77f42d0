package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/ihealth/internal/telemetry/tracing"
	"github.com/2beens/ihealth/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrInvalidMessage       = errors.New("invalid message")
)

type pgxConn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repo stores conversations and their messages. Messages are append only.
type Repo struct {
	db pgxConn
}

func NewRepo(db pgxConn) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) CreateConversation(ctx context.Context, userID uuid.UUID, title string) (_ *Conversation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.chat.createConversation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	c := Conversation{
		ID:     uuid.New(),
		UserID: userID,
		Title:  title,
	}
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO chat_conversation (id, user_id, title) VALUES ($1, $2, $3) RETURNING created_at;`,
		c.ID, c.UserID, c.Title,
	).Scan(&c.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert conversation: %w", err)
	}

	span.SetAttributes(attribute.String("conversation.id", c.ID.String()))
	return &c, nil
}

// AppendMessages inserts all messages with one statement, keeping their order.
func (r *Repo) AppendMessages(ctx context.Context, conversationID uuid.UUID, messages []NewMessage) (_ []Message, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.chat.appendMessages")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("conversation.id", conversationID.String()))
	span.SetAttributes(attribute.Int("messages", len(messages)))

	if len(messages) == 0 {
		return nil, nil
	}

	var (
		sb   strings.Builder
		args = make([]any, 0, 1+2*len(messages))
	)
	args = append(args, conversationID)
	sb.WriteString(`INSERT INTO chat_message (conversation_id, role, content) VALUES `)
	for i, m := range messages {
		if !m.Role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidMessage, m.Role)
		}
		if strings.TrimSpace(m.Content) == "" {
			return nil, fmt.Errorf("%w: empty content", ErrInvalidMessage)
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($1, $%d, $%d)", len(args)+1, len(args)+2)
		args = append(args, m.Role, m.Content)
	}
	sb.WriteString(` RETURNING id, conversation_id, role, content, created_at;`)

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, mapMessageErr(err)
	}
	defer rows.Close()

	stored, err := rows2messages(rows)
	if err != nil {
		return nil, mapMessageErr(err)
	}
	return stored, nil
}

func mapMessageErr(err error) error {
	if pkg.IsForeignKeyViolationError(err) {
		return ErrConversationNotFound
	}
	return fmt.Errorf("insert messages: %w", err)
}

func (r *Repo) ListConversations(ctx context.Context, userID uuid.UUID) (_ []Conversation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.chat.listConversations")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, title, created_at
			FROM chat_conversation
			WHERE user_id = $1
			ORDER BY created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var conversations []Conversation
	for rows.Next() {
		var c Conversation
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		conversations = append(conversations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return conversations, nil
}

func (r *Repo) ListMessages(ctx context.Context, conversationID uuid.UUID) (_ []Message, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.chat.listMessages")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("conversation.id", conversationID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, conversation_id, role, content, created_at
			FROM chat_message
			WHERE conversation_id = $1
			ORDER BY id;`,
		conversationID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2messages(rows)
}

func rows2messages(rows pgx.Rows) ([]Message, error) {
	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}
