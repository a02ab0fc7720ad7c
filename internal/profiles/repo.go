package profiles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adithyatb/fittrack/internal/db"
	"github.com/adithyatb/fittrack/internal/fitness"
	"github.com/adithyatb/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrProfileNotFound = errors.New("profile not found")

const profileColumns = `
	user_id, age, gender, bio, height, current_weight, target_weight,
	goal, fitness_level, activity_level, bmi, health_score,
	profile_picture, banner, streak, last_workout_date, achievements,
	created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanProfile(row pgx.Row) (*fitness.Profile, error) {
	p := &fitness.Profile{}
	if err := row.Scan(
		&p.UserID, &p.Age, &p.Gender, &p.Bio, &p.Height, &p.CurrentWeight, &p.TargetWeight,
		&p.Goal, &p.FitnessLevel, &p.ActivityLevel, &p.BMI, &p.HealthScore,
		&p.ProfilePicture, &p.Banner, &p.Streak, &p.LastWorkoutDate, &p.Achievements,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if p.Achievements == nil {
		p.Achievements = []fitness.Achievement{}
	}
	return p, nil
}

func (r *Repo) Get(ctx context.Context, userID int) (_ *fitness.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	return scanProfile(r.db.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE user_id = $1
	`, userID))
}

// Update locks the profile row, applies fn and saves the result in one transaction.
func (r *Repo) Update(ctx context.Context, userID int, fn func(p *fitness.Profile) error) (_ *fitness.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	var updated *fitness.Profile
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		p, err := LockForUpdate(ctx, tx, userID)
		if err != nil {
			return err
		}
		if err := fn(p); err != nil {
			return err
		}
		if err := Save(ctx, tx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ResetStreak zeroes an expired streak. The update only applies while the
// profile still has the observed last workout date, so a workout logged in
// the meantime is never overwritten.
func (r *Repo) ResetStreak(ctx context.Context, userID int, lastWorkoutDate time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.resetstreak")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	tag, err := r.db.Exec(ctx, `
		UPDATE profiles
		SET streak = 0, updated_at = now()
		WHERE user_id = $1 AND streak > 0 AND last_workout_date = $2
	`, userID, lastWorkoutDate)
	if err != nil {
		return false, fmt.Errorf("reset streak: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Insert stores a new profile within the given transaction.
func Insert(ctx context.Context, tx pgx.Tx, p fitness.Profile) error {
	if p.Achievements == nil {
		p.Achievements = []fitness.Achievement{}
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO profiles (
			user_id, age, gender, bio, height, current_weight, target_weight,
			goal, fitness_level, activity_level, bmi, health_score,
			profile_picture, banner, streak, last_workout_date, achievements
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`,
		p.UserID, p.Age, p.Gender, p.Bio, p.Height, p.CurrentWeight, p.TargetWeight,
		p.Goal, p.FitnessLevel, p.ActivityLevel, p.BMI, p.HealthScore,
		p.ProfilePicture, p.Banner, p.Streak, p.LastWorkoutDate, p.Achievements,
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// LockForUpdate reads the profile and holds its row lock until the
// transaction ends. Profile writes are serialized through this lock.
func LockForUpdate(ctx context.Context, tx pgx.Tx, userID int) (*fitness.Profile, error) {
	p, err := scanProfile(tx.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE user_id = $1
		FOR UPDATE
	`, userID))
	if err != nil {
		return nil, fmt.Errorf("lock profile %d: %w", userID, err)
	}
	return p, nil
}

func Save(ctx context.Context, tx pgx.Tx, p *fitness.Profile) error {
	if p.Achievements == nil {
		p.Achievements = []fitness.Achievement{}
	}
	err := tx.QueryRow(ctx, `
		UPDATE profiles
		SET age = $2, gender = $3, bio = $4, height = $5, current_weight = $6, target_weight = $7,
			goal = $8, fitness_level = $9, activity_level = $10, bmi = $11, health_score = $12,
			profile_picture = $13, banner = $14, streak = $15, last_workout_date = $16,
			achievements = $17, updated_at = now()
		WHERE user_id = $1
		RETURNING updated_at
	`,
		p.UserID, p.Age, p.Gender, p.Bio, p.Height, p.CurrentWeight, p.TargetWeight,
		p.Goal, p.FitnessLevel, p.ActivityLevel, p.BMI, p.HealthScore,
		p.ProfilePicture, p.Banner, p.Streak, p.LastWorkoutDate, p.Achievements,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("save profile %d: %w", p.UserID, err)
	}
	return nil
}
