package profiles

import (
	"context"
	"fmt"

	"github.com/adithyatb/fittrack/internal/fitness"
	"github.com/adithyatb/fittrack/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=profiles_test

type profilesRepo interface {
	Get(ctx context.Context, userID int) (*fitness.Profile, error)
	Update(ctx context.Context, userID int, fn func(p *fitness.Profile) error) (*fitness.Profile, error)
}

type Service struct {
	repo profilesRepo
}

func NewService(repo profilesRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Get(ctx context.Context, userID int) (_ *fitness.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profiles.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	profile, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile %d: %w", userID, err)
	}
	return profile, nil
}

// Update validates and applies the profile edit. BMI and the health score are
// recomputed when both height and weight are known. Gamification state is
// never touched by a profile edit.
func (s *Service) Update(ctx context.Context, userID int, update fitness.ProfileUpdate) (_ *fitness.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profiles.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := update.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.repo.Update(ctx, userID, func(p *fitness.Profile) error {
		update.Apply(p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update profile %d: %w", userID, err)
	}
	return profile, nil
}
