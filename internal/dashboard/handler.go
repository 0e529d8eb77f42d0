package dashboard

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/2beens/ihealth/internal/chat"
	"github.com/2beens/ihealth/internal/healthstats"
	"github.com/2beens/ihealth/internal/records"
	"github.com/2beens/ihealth/internal/telemetry/metrics"
	"github.com/2beens/ihealth/internal/users"
	"github.com/2beens/ihealth/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	defaultRecordDays = 7
	maxRecordDays     = 366
	maxMessageBytes   = 16 << 10
)

type Handler struct {
	service        *Service
	records        recordsRepo
	chat           chatRepo
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewHandler(
	service *Service,
	recordsRepo recordsRepo,
	chatRepo chatRepo,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		service:        service,
		records:        recordsRepo,
		chat:           chatRepo,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/users/{uid}/dashboard", handler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
	r.HandleFunc("/users/{uid}/records/{kind}", handler.HandleRecords).Methods("GET", "OPTIONS").Name("records")
	r.HandleFunc("/users/{uid}/conversations", handler.HandleConversations).Methods("GET", "OPTIONS").Name("conversations")
	r.HandleFunc("/conversations/{id}/messages", handler.HandleMessages).Methods("GET", "OPTIONS").Name("messages")
	r.HandleFunc("/conversations/{id}/messages", handler.HandleAppendMessage).Methods("POST").Name("append-message")
}

func uuidVar(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// requestLocation reads the optional ?tz= IANA zone. Without it days are UTC days.
func requestLocation(r *http.Request) (*time.Location, error) {
	tz := r.URL.Query().Get("tz")
	if tz == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(tz)
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidVar(r, "uid")
	if !ok {
		pkg.WriteResponse(w, pkg.ContentType.Text, "invalid user id", http.StatusBadRequest)
		return
	}

	loc, err := requestLocation(r)
	if err != nil {
		pkg.WriteResponse(w, pkg.ContentType.Text, "invalid tz", http.StatusBadRequest)
		return
	}
	formatter, err := healthstats.NewFormatter(r.URL.Query().Get("locale"), loc)
	if err != nil {
		pkg.WriteResponse(w, pkg.ContentType.Text, "invalid locale", http.StatusBadRequest)
		return
	}

	data, err := handler.service.GetFormatted(r.Context(), userID, handler.now().In(loc), formatter)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			pkg.WriteResponse(w, pkg.ContentType.Text, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get dashboard for %s: %s", userID, err)
		pkg.WriteResponse(w, pkg.ContentType.Text, "failed to get dashboard", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, data, http.StatusOK)
}

func (handler *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidVar(r, "uid")
	if !ok {
		pkg.WriteResponse(w, pkg.ContentType.Text, "invalid user id", http.StatusBadRequest)
		return
	}
	kind, err := records.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		pkg.WriteResponse(w, pkg.ContentType.Text, err.Error(), http.StatusBadRequest)
		return
	}

	days := defaultRecordDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		days, err = strconv.Atoi(daysParam)
		if err != nil || days < 1 || days > maxRecordDays {
			pkg.WriteResponse(w, pkg.ContentType.Text, "invalid days", http.StatusBadRequest)
			return
		}
	}

	loc, err := requestLocation(r)
	if err != nil {
		pkg.WriteResponse(w, pkg.ContentType.Text, "invalid tz", http.StatusBadRequest)
		return
	}
	params := records.LastDays(userID, handler.now().In(loc), days)

	var result any
	switch kind {
	case records.KindHealth:
		var recs []records.HealthRecord
		recs, err = handler.records.ListHealthRecords(r.Context(), params)
		result = nonNil(recs)
	case records.KindWorkouts:
		var recs []records.Workout
		recs, err = handler.records.ListWorkouts(r.Context(), params)
		result = nonNil(recs)
	case records.KindSleep:
		var recs []records.SleepRecord
		recs, err = handler.records.ListSleepRecords(r.Context(), params)
		result = nonNil(recs)
	case records.KindActivity:
		var recs []records.ActivityRecord
		recs, err = handler.records.ListActivityRecords(r.Context(), params)
		result = nonNil(recs)
	}
	if err != nil {
		log.Errorf("list %s records for %s: %s", kind, userID, err)
		pkg.WriteResponse(w, pkg.ContentType.Text, "failed to list records", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}

func (handler *Handler) HandleConversations(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidVar(r, "uid")
	if !ok {
		pkg.WriteResponse(w, pkg.ContentType.Text, "invalid user id", http.StatusBadRequest)
		return
	}

	conversations, err := handler.chat.ListConversations(r.Context(), userID)
	if err != nil {
		log.Errorf("list conversations for %s: %s", userID, err)
		pkg.WriteResponse(w, pkg.ContentType.Text, "failed to list conversations", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, nonNil(conversations), http.StatusOK)
}

func (handler *Handler) HandleMessages(w http.ResponseWriter, r *http.Request) {
	conversationID, ok := uuidVar(r, "id")
	if !ok {
		pkg.WriteResponse(w, pkg.ContentType.Text, "invalid conversation id", http.StatusBadRequest)
		return
	}

	messages, err := handler.chat.ListMessages(r.Context(), conversationID)
	if err != nil {
		log.Errorf("list messages for %s: %s", conversationID, err)
		pkg.WriteResponse(w, pkg.ContentType.Text, "failed to list messages", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, nonNil(messages), http.StatusOK)
}

type appendMessageRequest struct {
	Content string `json:"content"`
}

// HandleAppendMessage stores a user message. Assistant replies are not generated here.
func (handler *Handler) HandleAppendMessage(w http.ResponseWriter, r *http.Request) {
	conversationID, ok := uuidVar(r, "id")
	if !ok {
		pkg.WriteResponse(w, pkg.ContentType.Text, "invalid conversation id", http.StatusBadRequest)
		return
	}

	var req appendMessageRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxMessageBytes)).Decode(&req); err != nil {
		pkg.WriteResponse(w, pkg.ContentType.Text, "invalid request body", http.StatusBadRequest)
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		pkg.WriteResponse(w, pkg.ContentType.Text, "error, content empty", http.StatusBadRequest)
		return
	}

	added, err := handler.chat.AppendMessages(r.Context(), conversationID, []chat.NewMessage{
		{Role: chat.RoleUser, Content: content},
	})
	if err != nil {
		if errors.Is(err, chat.ErrConversationNotFound) {
			pkg.WriteResponse(w, pkg.ContentType.Text, "conversation not found", http.StatusNotFound)
			return
		}
		log.Errorf("append message to %s: %s", conversationID, err)
		pkg.WriteResponse(w, pkg.ContentType.Text, "failed to append message", http.StatusInternalServerError)
		return
	}
	if len(added) != 1 {
		log.Errorf("append message to %s: expected 1 message, got %d", conversationID, len(added))
		pkg.WriteResponse(w, pkg.ContentType.Text, "failed to append message", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterChatMessages.Inc()
	}
	log.Debugf("message %d appended to conversation %s", added[0].ID, conversationID)
	pkg.WriteJSON(w, added[0], http.StatusCreated)
}
