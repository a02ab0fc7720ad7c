package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adithyatb/fittrack/internal/fitness"
	"github.com/adithyatb/fittrack/internal/profiles"
	"github.com/adithyatb/fittrack/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=reports_test

type workoutLister interface {
	List(ctx context.Context, userID int, since *time.Time) ([]fitness.Workout, error)
}

type profileGetter interface {
	Get(ctx context.Context, userID int) (*fitness.Profile, error)
}

type reportCache interface {
	Get(userID int, period fitness.ReportPeriod) (*fitness.Report, bool)
	Set(userID int, period fitness.ReportPeriod, report fitness.Report)
}

type Service struct {
	workouts workoutLister
	profiles profileGetter
	cache    reportCache
	loc      *time.Location
	now      func() time.Time
}

func NewService(workouts workoutLister, profiles profileGetter, cache reportCache, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		workouts: workouts,
		profiles: profiles,
		cache:    cache,
		loc:      loc,
		now:      time.Now,
	}
}

func (s *Service) Summary(ctx context.Context, userID int, period fitness.ReportPeriod) (_ *fitness.Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.summary")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.String("period", string(period)))

	if report, ok := s.cache.Get(userID, period); ok {
		return report, nil
	}

	now := s.now().In(s.loc)
	workouts, err := s.workouts.List(ctx, userID, period.Since(now))
	if err != nil {
		return nil, fmt.Errorf("report workouts for user %d: %w", userID, err)
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil && !errors.Is(err, profiles.ErrProfileNotFound) {
		return nil, fmt.Errorf("report profile for user %d: %w", userID, err)
	}

	report := fitness.SummarizeReport(period, workouts, profile, now)
	s.cache.Set(userID, period, report)
	return &report, nil
}

// Workouts returns the workouts of the report period, newest first.
func (s *Service) Workouts(ctx context.Context, userID int, period fitness.ReportPeriod) (_ []fitness.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.workouts")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	workouts, err := s.workouts.List(ctx, userID, period.Since(s.now().In(s.loc)))
	if err != nil {
		return nil, fmt.Errorf("export workouts for user %d: %w", userID, err)
	}
	return workouts, nil
}
