package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adithyatb/fittrack/internal/fitness"
	"github.com/adithyatb/fittrack/internal/telemetry/metrics"
	"github.com/adithyatb/fittrack/internal/telemetry/tracing"
	"github.com/adithyatb/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users_test

const loginHistoryLimit = 10

type usersRepo interface {
	Create(ctx context.Context, user User, profile fitness.Profile) (*User, error)
	Get(ctx context.Context, id int) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	AddLogin(ctx context.Context, userID int, record LoginRecord) error
	LoginHistory(ctx context.Context, userID, limit int) ([]LoginRecord, error)
}

type sessions interface {
	Login(ctx context.Context, userID int, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) error
}

type profileGetter interface {
	Get(ctx context.Context, userID int) (*fitness.Profile, error)
}

type Service struct {
	repo           usersRepo
	sessions       sessions
	profiles       profileGetter
	metricsManager *metrics.Manager
	// injectable for tests, bcrypt is slow on purpose
	HashPasswordFunc func(password string) (string, error)
	now              func() time.Time
}

func NewService(
	repo usersRepo,
	sessions sessions,
	profiles profileGetter,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:             repo,
		sessions:         sessions,
		profiles:         profiles,
		metricsManager:   metricsManager,
		HashPasswordFunc: pkg.HashPassword,
		now:              time.Now,
	}
}

// Register creates the user and its profile, then logs the user in.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (_ *AuthResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.register")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	req.Email = NormalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := s.HashPasswordFunc(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile := fitness.NewProfile(0)
	req.ProfileUpdate.Apply(&profile)

	user, err := s.repo.Create(ctx, User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}, profile)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.sessions.Login(ctx, user.ID, s.now())
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	log.Infof("new user registered: %d", user.ID)
	return &AuthResponse{Token: token, User: user}, nil
}

// Login checks the credentials, records the login and returns a new session.
func (s *Service) Login(ctx context.Context, req LoginRequest, ip, device string) (_ *AuthResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.login")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	result := "ok"
	defer func() {
		if err != nil {
			result = "failed"
		}
		if s.metricsManager != nil {
			s.metricsManager.CounterLogins.WithLabelValues(result).Inc()
		}
	}()

	user, err := s.repo.GetByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrWrongCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrWrongCredentials
	}

	now := s.now()
	if err := s.repo.AddLogin(ctx, user.ID, LoginRecord{
		IP:        ip,
		Device:    device,
		CreatedAt: now,
	}); err != nil {
		// login history is informative only
		log.Errorf("add login history for user %d: %s", user.ID, err)
	}

	token, err := s.sessions.Login(ctx, user.ID, now)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &AuthResponse{Token: token, User: user}, nil
}

func (s *Service) Logout(ctx context.Context, token string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.logout")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return s.sessions.Logout(ctx, token)
}

func (s *Service) Me(ctx context.Context, userID int) (_ *MeResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.me")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile %d: %w", userID, err)
	}

	history, err := s.repo.LoginHistory(ctx, userID, loginHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("get login history %d: %w", userID, err)
	}

	return &MeResponse{
		User:         user,
		Profile:      profile,
		LoginHistory: history,
	}, nil
}
