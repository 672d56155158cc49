package usecase

import (
	"context"
	"errors"

	"go-creators-backend/internal/domain"
	"go-creators-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type authUsecase struct {
	creatorRepo domain.CreatorRepository
	validate    *validator.Validate
}

func NewAuthUsecase(creatorRepo domain.CreatorRepository, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{creatorRepo: creatorRepo, validate: validate}
}

// Register hashes the password with a fresh salt and inserts the creator.
// The plaintext never reaches storage or the logs. A missing icon gets the
// placeholder.
func (u *authUsecase) Register(ctx context.Context, input *domain.RegisterInput) error {
	if err := u.validate.Struct(input); err != nil {
		return apperror.BadRequest(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return apperror.Internal(err)
	}

	icon := input.Icon
	if icon == "" {
		icon = domain.DefaultIcon
	}

	creator := &domain.Creator{
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		PasswordHash: string(hash),
		Github:       input.Github,
		Linkedin:     input.Linkedin,
		Role:         input.Role,
		Country:      input.Country,
		City:         input.City,
		About:        input.About,
		Icon:         icon,
	}

	return u.creatorRepo.Create(ctx, creator)
}

// Login looks the creator up by email and verifies the password against the
// stored hash. An unknown email is NotFound, a mismatch is Unauthorized,
// and any other verification failure is Internal. No credential is issued:
// the returned id is the whole authentication surface.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	creator, err := u.creatorRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if creator == nil {
		return nil, apperror.NotFound("creator not found")
	}

	err = bcrypt.CompareHashAndPassword([]byte(creator.PasswordHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperror.Unauthorized("wrong password")
		}
		// Malformed stored hash or any other verifier fault
		return nil, apperror.Internal(err)
	}

	return &domain.LoginResult{ID: creator.ID, Name: creator.Name}, nil
}
