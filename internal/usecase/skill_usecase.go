package usecase

import (
	"context"

	"go-creators-backend/internal/domain"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
}

func NewSkillUsecase(skillRepo domain.SkillRepository) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo}
}

func (u *skillUsecase) List(ctx context.Context, creatorID int64) ([]string, error) {
	names, err := u.skillRepo.ListNames(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Replace swaps the creator's whole skill set for the given names. An empty
// list simply clears the set; the creator id itself is not verified.
func (u *skillUsecase) Replace(ctx context.Context, creatorID int64, names []string) error {
	if names == nil {
		names = []string{}
	}
	return u.skillRepo.Replace(ctx, creatorID, names)
}
