package reports

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/adithyatb/fittrack/internal/auth"
	"github.com/adithyatb/fittrack/internal/fitness"
	"github.com/adithyatb/fittrack/internal/telemetry/tracing"
	"github.com/adithyatb/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=reports_test

type reportsService interface {
	Summary(ctx context.Context, userID int, period fitness.ReportPeriod) (*fitness.Report, error)
	Workouts(ctx context.Context, userID int, period fitness.ReportPeriod) ([]fitness.Workout, error)
}

type Handler struct {
	service reportsService
	loc     *time.Location
}

func NewHandler(service reportsService, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		service: service,
		loc:     loc,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/reports/summary", h.HandleSummary).Methods("GET", "OPTIONS").Name("report-summary")
	r.HandleFunc("/api/reports/workouts.csv", h.HandleWorkoutsCSV).Methods("GET", "OPTIONS").Name("report-csv")
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reports.summary")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	period, err := fitness.ParseReportPeriod(r.URL.Query().Get("type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.service.Summary(ctx, userID, period)
	if err != nil {
		log.Errorf("%s report for user %d: %s", period, userID, err)
		http.Error(w, "failed to generate report", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) HandleWorkoutsCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reports.csv")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	period, err := fitness.ParseReportPeriod(r.URL.Query().Get("type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	workouts, err := h.service.Workouts(ctx, userID, period)
	if err != nil {
		log.Errorf("export workouts for user %d: %s", userID, err)
		http.Error(w, "failed to export workouts", http.StatusInternalServerError)
		return
	}

	csvBytes, err := WorkoutsCSV(workouts, h.loc)
	if err != nil {
		log.Errorf("render workouts csv for user %d: %s", userID, err)
		http.Error(w, "failed to export workouts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="fittrack-%s-workouts.csv"`, period))
	pkg.WriteResponseBytes(w, pkg.ContentType.CSV, csvBytes, http.StatusOK)
}
