package domain

import (
	"context"
	"time"
)

// DefaultIcon is assigned at registration when the caller supplies no icon.
const DefaultIcon = "cat_icon.png"

type Creator struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Phone        string    `json:"phone" db:"phone"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Github       string    `json:"github" db:"github"`
	Linkedin     string    `json:"linkedin" db:"linkedin"`
	Role         string    `json:"role" db:"role"`
	Country      string    `json:"country" db:"country"`
	City         string    `json:"city" db:"city"`
	About        string    `json:"about" db:"about"`
	Icon         string    `json:"icon" db:"icon"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Profile is the read model returned by GET /profile/:id. Optional fields
// render as empty strings, never null, and Skills is never nil.
type Profile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Github    string    `json:"github"`
	Linkedin  string    `json:"linkedin"`
	Role      string    `json:"role"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	About     string    `json:"about"`
	Icon      string    `json:"icon"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterInput carries the registration payload. Password is plaintext
// here and must never be persisted or logged as-is.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Role     string `json:"role"`
	Country  string `json:"country"`
	City     string `json:"city"`
	About    string `json:"about"`
	Icon     string `json:"icon"`
}

// LoginResult is the whole authentication surface: no token is issued, the
// returned id is what clients use on subsequent calls.
type LoginResult struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreatorRepository interface {
	Create(ctx context.Context, creator *Creator) error
	GetByID(ctx context.Context, id int64) (*Creator, error)
	GetByEmail(ctx context.Context, email string) (*Creator, error)
	// UpdateFields applies a sparse update; fields maps column names from
	// the mutable-field whitelist to their new values.
	UpdateFields(ctx context.Context, id int64, fields map[string]string) error
	// Delete removes the creator and every skill referencing it in one
	// transaction.
	Delete(ctx context.Context, id int64) error
}

type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type CreatorUsecase interface {
	GetProfile(ctx context.Context, id int64) (*Profile, error)
	UpdateProfile(ctx context.Context, id int64, fields map[string]string) error
	DeleteProfile(ctx context.Context, id int64) error
}
