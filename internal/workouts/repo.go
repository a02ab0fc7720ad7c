package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adithyatb/fittrack/internal/db"
	"github.com/adithyatb/fittrack/internal/fitness"
	"github.com/adithyatb/fittrack/internal/profiles"
	"github.com/adithyatb/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

const workoutColumns = `
	id, user_id, type, duration, calories_burned, distance, steps,
	intensity, mood, notes, date, created_at, updated_at`

//go:generate mockgen -source=$GOFILE -destination=repo_mocks_test.go -package=workouts_test

// Tx is a unit of work holding the profile row lock of one user.
type Tx interface {
	LockProfile(ctx context.Context, userID int) (*fitness.Profile, error)
	SaveProfile(ctx context.Context, p *fitness.Profile) error
	GetForUpdate(ctx context.Context, userID, id int) (*fitness.Workout, error)
	Insert(ctx context.Context, w *fitness.Workout) error
	Update(ctx context.Context, w *fitness.Workout) error
	Stats(ctx context.Context, userID int) (fitness.WorkoutStats, error)
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanWorkout(row pgx.Row) (*fitness.Workout, error) {
	w := &fitness.Workout{}
	if err := row.Scan(
		&w.ID, &w.UserID, &w.Type, &w.Duration, &w.CaloriesBurned, &w.Distance, &w.Steps,
		&w.Intensity, &w.Mood, &w.Notes, &w.Date, &w.CreatedAt, &w.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return w, nil
}

func (r *Repo) InTx(ctx context.Context, fn func(tx Tx) error) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.tx")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		return fn(&pgTx{tx: tx})
	})
}

// List returns the user's workouts, newest first. A nil since returns all of them.
func (r *Repo) List(ctx context.Context, userID int, since *time.Time) (_ []fitness.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	var rows pgx.Rows
	if since == nil {
		rows, err = r.db.Query(ctx, `
			SELECT `+workoutColumns+`
			FROM workouts
			WHERE user_id = $1
			ORDER BY date DESC, id DESC
		`, userID)
	} else {
		rows, err = r.db.Query(ctx, `
			SELECT `+workoutColumns+`
			FROM workouts
			WHERE user_id = $1 AND date >= $2
			ORDER BY date DESC, id DESC
		`, userID, *since)
	}
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer rows.Close()

	workouts := []fitness.Workout{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}
	return workouts, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *fitness.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("workout.id", id))

	return scanWorkout(r.db.QueryRow(ctx, `
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE id = $1 AND user_id = $2
	`, id, userID))
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("workout.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) LockProfile(ctx context.Context, userID int) (*fitness.Profile, error) {
	return profiles.LockForUpdate(ctx, t.tx, userID)
}

func (t *pgTx) SaveProfile(ctx context.Context, p *fitness.Profile) error {
	return profiles.Save(ctx, t.tx, p)
}

func (t *pgTx) GetForUpdate(ctx context.Context, userID, id int) (*fitness.Workout, error) {
	return scanWorkout(t.tx.QueryRow(ctx, `
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`, id, userID))
}

func (t *pgTx) Insert(ctx context.Context, w *fitness.Workout) error {
	err := t.tx.QueryRow(ctx, `
		INSERT INTO workouts (
			user_id, type, duration, calories_burned, distance, steps,
			intensity, mood, notes, date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`,
		w.UserID, w.Type, w.Duration, w.CaloriesBurned, w.Distance, w.Steps,
		w.Intensity, w.Mood, w.Notes, w.Date,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert workout: %w", err)
	}
	return nil
}

func (t *pgTx) Update(ctx context.Context, w *fitness.Workout) error {
	err := t.tx.QueryRow(ctx, `
		UPDATE workouts
		SET type = $3, duration = $4, calories_burned = $5, distance = $6, steps = $7,
			intensity = $8, mood = $9, notes = $10, date = $11, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING created_at, updated_at
	`,
		w.ID, w.UserID, w.Type, w.Duration, w.CaloriesBurned, w.Distance, w.Steps,
		w.Intensity, w.Mood, w.Notes, w.Date,
	).Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrWorkoutNotFound
		}
		return fmt.Errorf("update workout: %w", err)
	}
	return nil
}

func (t *pgTx) Stats(ctx context.Context, userID int) (fitness.WorkoutStats, error) {
	var stats fitness.WorkoutStats
	err := t.tx.QueryRow(ctx, `
		SELECT count(*), coalesce(sum(calories_burned), 0)
		FROM workouts
		WHERE user_id = $1
	`, userID).Scan(&stats.TotalWorkouts, &stats.TotalCalories)
	if err != nil {
		return stats, fmt.Errorf("workout stats: %w", err)
	}
	return stats, nil
}
