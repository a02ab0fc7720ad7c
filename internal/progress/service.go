package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adithyatb/fittrack/internal/fitness"
	"github.com/adithyatb/fittrack/internal/profiles"
	"github.com/adithyatb/fittrack/internal/telemetry/metrics"
	"github.com/adithyatb/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progress_test

type progressRepo interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
	List(ctx context.Context, userID int) ([]fitness.Progress, error)
}

type workoutLister interface {
	List(ctx context.Context, userID int, since *time.Time) ([]fitness.Workout, error)
}

type profileStore interface {
	Get(ctx context.Context, userID int) (*fitness.Profile, error)
	ResetStreak(ctx context.Context, userID int, lastWorkoutDate time.Time) (bool, error)
}

type streakPublisher interface {
	StreakReset(ctx context.Context, userID int, lastWorkoutDate time.Time) error
}

type reportInvalidator interface {
	InvalidateUser(userID int)
}

type Service struct {
	repo           progressRepo
	workouts       workoutLister
	profiles       profileStore
	publisher      streakPublisher
	reports        reportInvalidator
	metricsManager *metrics.Manager
	loc            *time.Location
	now            func() time.Time
}

func NewService(
	repo progressRepo,
	workouts workoutLister,
	profiles profileStore,
	publisher streakPublisher,
	reports reportInvalidator,
	metricsManager *metrics.Manager,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:           repo,
		workouts:       workouts,
		profiles:       profiles,
		publisher:      publisher,
		reports:        reports,
		metricsManager: metricsManager,
		loc:            loc,
		now:            time.Now,
	}
}

// Add stores a progress entry. When it is the user's newest entry its weight
// becomes the profile's current weight and bmi and health score follow.
func (s *Service) Add(ctx context.Context, userID int, sub fitness.ProgressSubmission) (_ *fitness.Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	entry := sub.ToProgress(userID, s.now().In(s.loc))
	err = s.repo.InTx(ctx, func(tx Tx) error {
		profile, err := tx.LockProfile(ctx, userID)
		if err != nil && !errors.Is(err, profiles.ErrProfileNotFound) {
			return err
		}

		if err := tx.Insert(ctx, &entry); err != nil {
			return err
		}
		if profile == nil {
			return nil
		}

		newest, err := tx.IsNewest(ctx, entry)
		if err != nil {
			return err
		}
		if !newest {
			return nil
		}

		profile.CurrentWeight = entry.Weight
		profile.ApplyBiometrics()
		return tx.SaveProfile(ctx, profile)
	})
	if err != nil {
		return nil, fmt.Errorf("add progress for user %d: %w", userID, err)
	}

	s.metricsManager.CounterProgressEntries.Inc()
	return &entry, nil
}

func (s *Service) List(ctx context.Context, userID int) (_ []fitness.Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	entries, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list progress for user %d: %w", userID, err)
	}
	return entries, nil
}

// Analytics computes the two week analytics view. An expired streak is
// reset in storage before it is reported as zero. When a workout was logged
// in the meantime the reset is skipped and the stored streak is reported.
func (s *Service) Analytics(ctx context.Context, userID int) (_ *fitness.Analytics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.analytics")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	now := s.now().In(s.loc)
	since := fitness.AnalyticsWindowStart(now)
	workouts, err := s.workouts.List(ctx, userID, &since)
	if err != nil {
		return nil, fmt.Errorf("analytics workouts for user %d: %w", userID, err)
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	analytics := fitness.ComputeAnalytics(workouts, profile, now)
	reset := analytics.PendingStreakReset
	if reset == nil {
		return &analytics, nil
	}

	applied, err := s.resetStreak(ctx, *reset)
	if err != nil {
		return nil, err
	}
	if applied {
		return &analytics, nil
	}

	log.Debugf("streak of user %d changed concurrently, reset skipped", userID)
	if workouts, err = s.workouts.List(ctx, userID, &since); err != nil {
		return nil, fmt.Errorf("analytics workouts for user %d: %w", userID, err)
	}
	if profile, err = s.profile(ctx, userID); err != nil {
		return nil, err
	}
	analytics = fitness.ComputeAnalytics(workouts, profile, now)
	// a further expiry is left to the next read
	analytics.PendingStreakReset = nil
	return &analytics, nil
}

func (s *Service) profile(ctx context.Context, userID int) (*fitness.Profile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil && !errors.Is(err, profiles.ErrProfileNotFound) {
		return nil, fmt.Errorf("analytics profile for user %d: %w", userID, err)
	}
	return profile, nil
}

// resetStreak persists a pending reset. It reports false when the streak was
// advanced concurrently and nothing was written.
func (s *Service) resetStreak(ctx context.Context, reset fitness.StreakReset) (bool, error) {
	applied, err := s.profiles.ResetStreak(ctx, reset.UserID, reset.LastWorkoutDate)
	if err != nil {
		s.metricsManager.CounterStreakResetFailures.Inc()
		return false, fmt.Errorf("reset streak for user %d: %w", reset.UserID, err)
	}
	if !applied {
		return false, nil
	}

	s.metricsManager.CounterStreakResets.Inc()
	s.reports.InvalidateUser(reset.UserID)
	if err := s.publisher.StreakReset(ctx, reset.UserID, reset.LastWorkoutDate); err != nil {
		log.Errorf("publish streak reset for user %d: %s", reset.UserID, err)
	}
	return true, nil
}
