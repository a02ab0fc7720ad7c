package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/adithyatb/fittrack/internal/db"
	"github.com/adithyatb/fittrack/internal/fitness"
	"github.com/adithyatb/fittrack/internal/profiles"
	"github.com/adithyatb/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=repo_mocks_test.go -package=progress_test

// Tx is a unit of work holding the profile row lock of one user.
type Tx interface {
	LockProfile(ctx context.Context, userID int) (*fitness.Profile, error)
	SaveProfile(ctx context.Context, p *fitness.Profile) error
	Insert(ctx context.Context, p *fitness.Progress) error
	IsNewest(ctx context.Context, p fitness.Progress) (bool, error)
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) InTx(ctx context.Context, fn func(tx Tx) error) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.tx")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		return fn(&pgTx{tx: tx})
	})
}

// List returns the user's progress entries, newest first.
func (r *Repo) List(ctx context.Context, userID int) (_ []fitness.Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, weight, sleep_hours, water_intake, steps, heart_rate, date, created_at
		FROM progress
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer rows.Close()

	entries := []fitness.Progress{}
	for rows.Next() {
		var p fitness.Progress
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Weight, &p.SleepHours, &p.WaterIntake,
			&p.Steps, &p.HeartRate, &p.Date, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		entries = append(entries, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress: %w", err)
	}
	return entries, nil
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

func (t *pgTx) Insert(ctx context.Context, p *fitness.Progress) error {
	err := t.tx.QueryRow(ctx, `
		INSERT INTO progress (user_id, weight, sleep_hours, water_intake, steps, heart_rate, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, p.UserID, p.Weight, p.SleepHours, p.WaterIntake, p.Steps, p.HeartRate, p.Date).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert progress: %w", err)
	}
	return nil
}

// IsNewest reports whether no other entry of the user is dated after p.
func (t *pgTx) IsNewest(ctx context.Context, p fitness.Progress) (bool, error) {
	var newestID int
	err := t.tx.QueryRow(ctx, `
		SELECT id
		FROM progress
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
		LIMIT 1
	`, p.UserID).Scan(&newestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("newest progress: %w", err)
	}
	return newestID == p.ID, nil
}
