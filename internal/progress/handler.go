package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adithyatb/fittrack/internal/auth"
	"github.com/adithyatb/fittrack/internal/fitness"
	"github.com/adithyatb/fittrack/internal/telemetry/tracing"
	"github.com/adithyatb/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type progressService interface {
	Add(ctx context.Context, userID int, sub fitness.ProgressSubmission) (*fitness.Progress, error)
	List(ctx context.Context, userID int) ([]fitness.Progress, error)
	Analytics(ctx context.Context, userID int) (*fitness.Analytics, error)
}

type Handler struct {
	service progressService
}

func NewHandler(service progressService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/progress", h.HandleList).Methods("GET", "OPTIONS").Name("list-progress")
	r.HandleFunc("/api/progress", h.HandleAdd).Methods("POST", "OPTIONS").Name("add-progress")
	r.HandleFunc("/api/progress/analytics", h.HandleAnalytics).Methods("GET", "OPTIONS").Name("analytics")
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.add")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var sub fitness.ProgressSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		log.Tracef("add progress, unmarshal json params: %s", err)
		http.Error(w, "invalid progress entry", http.StatusBadRequest)
		return
	}

	entry, err := h.service.Add(ctx, userID, sub)
	if err != nil {
		if errors.Is(err, fitness.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add progress for user %d: %s", userID, err)
		http.Error(w, "failed to add progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	entries, err := h.service.List(ctx, userID)
	if err != nil {
		log.Errorf("list progress for user %d: %s", userID, err)
		http.Error(w, "failed to get progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.analytics")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	analytics, err := h.service.Analytics(ctx, userID)
	if err != nil {
		log.Errorf("analytics for user %d: %s", userID, err)
		http.Error(w, "failed to compute analytics", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, analytics, http.StatusOK)
}
