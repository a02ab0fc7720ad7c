package users

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/adithyatb/fittrack/internal/fitness"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("user already exists")
	ErrWrongCredentials = errors.New("invalid email or password")
)

const minPasswordLength = 6

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type LoginRecord struct {
	IP        string    `json:"ip"`
	Device    string    `json:"device"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterRequest carries the account data and, optionally, the initial profile fields.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	fitness.ProfileUpdate
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fitness.NewValidationError("name", "name is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fitness.NewValidationError("email", "invalid email")
	}
	if len(r.Password) < minPasswordLength {
		return fitness.NewValidationError("password", "password must be at least 6 characters")
	}
	return r.ProfileUpdate.Validate()
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type MeResponse struct {
	User         *User            `json:"user"`
	Profile      *fitness.Profile `json:"profile"`
	LoginHistory []LoginRecord    `json:"loginHistory"`
}
