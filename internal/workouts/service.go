package workouts

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

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
	List(ctx context.Context, userID int, since *time.Time) ([]fitness.Workout, error)
	Get(ctx context.Context, userID, id int) (*fitness.Workout, error)
	Delete(ctx context.Context, userID, id int) error
}

type eventPublisher interface {
	WorkoutLogged(ctx context.Context, workout fitness.Workout, estimated bool, streak int) error
	BadgesAwarded(ctx context.Context, userID int, awarded []fitness.Achievement) error
}

type reportInvalidator interface {
	InvalidateUser(userID int)
}

type SubmitResult struct {
	Workout         fitness.Workout       `json:"workout"`
	NewAchievements []fitness.Achievement `json:"newAchievements"`
	Streak          int                   `json:"streak"`
}

type Service struct {
	repo           workoutsRepo
	publisher      eventPublisher
	reports        reportInvalidator
	metricsManager *metrics.Manager
	loc            *time.Location
	now            func() time.Time
}

func NewService(
	repo workoutsRepo,
	publisher eventPublisher,
	reports reportInvalidator,
	metricsManager *metrics.Manager,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:           repo,
		publisher:      publisher,
		reports:        reports,
		metricsManager: metricsManager,
		loc:            loc,
		now:            time.Now,
	}
}

// Submit stores the workout and applies it to the owner's streak and
// achievements. All of it happens while the profile row is locked, so
// concurrent submissions of one user are serialized.
// Users without a profile get their workout stored with calories estimated
// from the default body weight, but no gamification.
func (s *Service) Submit(ctx context.Context, userID int, sub fitness.WorkoutSubmission) (_ *SubmitResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.submit")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	estimated := sub.CaloriesBurned == nil
	result := &SubmitResult{
		NewAchievements: []fitness.Achievement{},
	}

	err = s.repo.InTx(ctx, func(tx Tx) error {
		profile, err := tx.LockProfile(ctx, userID)
		if err != nil && !errors.Is(err, profiles.ErrProfileNotFound) {
			return err
		}

		workout := sub.ToWorkout(userID, now)
		if estimated {
			workout.CaloriesBurned = fitness.EstimateCalories(workout.Type, workout.Duration, bodyWeight(profile))
		}
		if err := tx.Insert(ctx, &workout); err != nil {
			return err
		}
		result.Workout = workout

		if profile == nil {
			log.Warnf("workout %d logged for user %d without a profile, skipping streak and achievements", workout.ID, userID)
			return nil
		}

		stats, err := tx.Stats(ctx, userID)
		if err != nil {
			return err
		}

		awarded := fitness.RecordWorkout(profile, stats, workout.Date.In(s.loc), now)
		if err := tx.SaveProfile(ctx, profile); err != nil {
			return err
		}

		result.NewAchievements = awarded
		result.Streak = profile.Streak
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("submit workout for user %d: %w", userID, err)
	}

	s.metricsManager.CounterWorkoutsLogged.WithLabelValues(string(result.Workout.Type)).Inc()
	if estimated {
		s.metricsManager.CounterCaloriesEstimated.Inc()
	}
	for _, a := range result.NewAchievements {
		s.metricsManager.CounterBadgesAwarded.WithLabelValues(a.ID).Inc()
	}
	s.reports.InvalidateUser(userID)

	// the workout is committed at this point, publishing is best effort
	if err := s.publisher.WorkoutLogged(ctx, result.Workout, estimated, result.Streak); err != nil {
		log.Errorf("publish workout logged %d: %s", result.Workout.ID, err)
	}
	if err := s.publisher.BadgesAwarded(ctx, userID, result.NewAchievements); err != nil {
		log.Errorf("publish badges awarded for user %d: %s", userID, err)
	}

	log.Debugf("workout %d logged for user %d, streak %d, %d new badges",
		result.Workout.ID, userID, result.Streak, len(result.NewAchievements))
	return result, nil
}

// Update overwrites an owned workout. Omitted calories are estimated again
// and an omitted date keeps the stored one. Streak and achievements are not
// recomputed.
func (s *Service) Update(ctx context.Context, userID, id int, sub fitness.WorkoutSubmission) (_ *fitness.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("workout.id", id))

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	var updated fitness.Workout
	err = s.repo.InTx(ctx, func(tx Tx) error {
		profile, err := tx.LockProfile(ctx, userID)
		if err != nil && !errors.Is(err, profiles.ErrProfileNotFound) {
			return err
		}

		existing, err := tx.GetForUpdate(ctx, userID, id)
		if err != nil {
			return err
		}

		updated = sub.ToWorkout(userID, existing.Date)
		updated.ID = existing.ID
		if sub.CaloriesBurned == nil {
			updated.CaloriesBurned = fitness.EstimateCalories(updated.Type, updated.Duration, bodyWeight(profile))
		}
		return tx.Update(ctx, &updated)
	})
	if err != nil {
		return nil, fmt.Errorf("update workout %d: %w", id, err)
	}

	s.reports.InvalidateUser(userID)
	return &updated, nil
}

// Delete removes an owned workout. Badges already earned are kept.
func (s *Service) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete workout %d: %w", id, err)
	}

	s.reports.InvalidateUser(userID)
	return nil
}

func (s *Service) Get(ctx context.Context, userID, id int) (_ *fitness.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	w, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get workout %d: %w", id, err)
	}
	return w, nil
}

func (s *Service) List(ctx context.Context, userID int) (_ []fitness.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	workouts, err := s.repo.List(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("list workouts for user %d: %w", userID, err)
	}
	return workouts, nil
}

func bodyWeight(p *fitness.Profile) float64 {
	if p == nil {
		return 0
	}
	return p.CurrentWeight
}
