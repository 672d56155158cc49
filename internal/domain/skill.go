package domain

import "context"

// Skill is a free-text tag owned by one creator. Names are not unique and
// their order is the insertion order.
type Skill struct {
	ID        int64  `json:"id" db:"id"`
	CreatorID int64  `json:"creator_id" db:"creator_id"`
	Name      string `json:"name" db:"name"`
}

type SkillRepository interface {
	// ListNames returns the skill names for a creator in stored order.
	// An unknown creator id yields an empty list, not an error.
	ListNames(ctx context.Context, creatorID int64) ([]string, error)
	// Replace swaps the full skill set for a creator: delete everything,
	// then insert the given names, in one transaction.
	Replace(ctx context.Context, creatorID int64, names []string) error
}

type SkillUsecase interface {
	List(ctx context.Context, creatorID int64) ([]string, error)
	Replace(ctx context.Context, creatorID int64, names []string) error
}
