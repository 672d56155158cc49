package postgres

import (
	"context"

	"go-creators-backend/internal/domain"
	"go-creators-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

// ListNames returns the skill names for a creator in insertion order. The
// creator itself is not checked; an unknown id is just an empty list.
func (r *skillRepo) ListNames(ctx context.Context, creatorID int64) ([]string, error) {
	query := `SELECT COALESCE(array_agg(name ORDER BY id), '{}')
              FROM skills WHERE creator_id = $1`

	// pq.Array parses the text wire format; the pool's simple protocol
	// guarantees that's what arrives.
	names := []string{}
	if err := r.db.QueryRow(ctx, query, creatorID).Scan(pq.Array(&names)); err != nil {
		return nil, apperror.Internal(err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Replace swaps the whole skill set: delete everything for the creator,
// then insert the supplied names. One transaction, so a failure mid-insert
// never leaves a half-applied set. Input is not deduplicated.
func (r *skillRepo) Replace(ctx context.Context, creatorID int64, names []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM skills WHERE creator_id = $1`, creatorID); err != nil {
		return apperror.Internal(err)
	}

	insert := `INSERT INTO skills (creator_id, name) VALUES ($1, $2)`
	for _, name := range names {
		if _, err := tx.Exec(ctx, insert, creatorID, name); err != nil {
			return apperror.Internal(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
