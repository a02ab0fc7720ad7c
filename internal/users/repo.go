package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/adithyatb/fittrack/internal/db"
	"github.com/adithyatb/fittrack/internal/fitness"
	"github.com/adithyatb/fittrack/internal/profiles"
	"github.com/adithyatb/fittrack/internal/telemetry/tracing"
	"github.com/adithyatb/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create stores the user together with its profile.
func (r *Repo) Create(ctx context.Context, user User, profile fitness.Profile) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `
			INSERT INTO users (name, email, password_hash)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, updated_at
		`,
			user.Name,
			user.Email,
			user.PasswordHash,
		).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
			if pkg.IsUniqueViolationError(err) {
				return ErrEmailTaken
			}
			return fmt.Errorf("insert user: %w", err)
		}

		profile.UserID = user.ID
		return profiles.Insert(ctx, tx, profile)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repo) getBy(ctx context.Context, where string, arg any) (*User, error) {
	user := &User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE `+where+` = $1
	`, arg).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return r.getBy(ctx, "id", id)
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getbyemail")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return r.getBy(ctx, "email", email)
}

func (r *Repo) AddLogin(ctx context.Context, userID int, record LoginRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.addlogin")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO login_history (user_id, ip, device, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, record.IP, record.Device, record.CreatedAt)
	return err
}

func (r *Repo) LoginHistory(ctx context.Context, userID, limit int) (_ []LoginRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.loginhistory")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT ip, device, created_at
		FROM login_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []LoginRecord{}
	for rows.Next() {
		var record LoginRecord
		if err := rows.Scan(&record.IP, &record.Device, &record.CreatedAt); err != nil {
			return nil, err
		}
		history = append(history, record)
	}
	return history, rows.Err()
}
