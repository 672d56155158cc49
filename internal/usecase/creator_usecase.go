package usecase

import (
	"context"

	"go-creators-backend/internal/domain"
	"go-creators-backend/pkg/apperror"
)

type creatorUsecase struct {
	creatorRepo domain.CreatorRepository
	skillRepo   domain.SkillRepository
}

func NewCreatorUsecase(creatorRepo domain.CreatorRepository, skillRepo domain.SkillRepository) domain.CreatorUsecase {
	return &creatorUsecase{creatorRepo: creatorRepo, skillRepo: skillRepo}
}

// GetProfile returns the full profile plus the current skill names.
func (u *creatorUsecase) GetProfile(ctx context.Context, id int64) (*domain.Profile, error) {
	creator, err := u.creatorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if creator == nil {
		return nil, apperror.NotFound("profile not found")
	}

	skills, err := u.skillRepo.ListNames(ctx, id)
	if err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []string{}
	}

	return &domain.Profile{
		ID:        creator.ID,
		Name:      creator.Name,
		Phone:     creator.Phone,
		Email:     creator.Email,
		Github:    creator.Github,
		Linkedin:  creator.Linkedin,
		Role:      creator.Role,
		Country:   creator.Country,
		City:      creator.City,
		About:     creator.About,
		Icon:      creator.Icon,
		Skills:    skills,
		CreatedAt: creator.CreatedAt,
		UpdatedAt: creator.UpdatedAt,
	}, nil
}

// UpdateProfile applies a sparse update. An empty field set is rejected
// before the repository is touched, so existing data stays as-is.
func (u *creatorUsecase) UpdateProfile(ctx context.Context, id int64, fields map[string]string) error {
	if len(fields) == 0 {
		return apperror.BadRequest("no fields to update")
	}
	return u.creatorRepo.UpdateFields(ctx, id, fields)
}

// DeleteProfile removes the creator and all of its skills. Unknown ids are
// NotFound and mutate nothing.
func (u *creatorUsecase) DeleteProfile(ctx context.Context, id int64) error {
	creator, err := u.creatorRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if creator == nil {
		return apperror.NotFound("creator not found")
	}
	return u.creatorRepo.Delete(ctx, id)
}
