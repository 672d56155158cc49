package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go-creators-backend/internal/domain"
	"go-creators-backend/pkg/apperror"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

const creatorColumns = `id, name, phone, email, password_hash, github, linkedin, role, country, city, about, icon, created_at, updated_at`

// mutableColumns is the whitelist for sparse profile updates. Column names
// never come from the request; handler field names are mapped onto this set
// and anything else is rejected.
var mutableColumns = map[string]bool{
	"name":     true,
	"phone":    true,
	"email":    true,
	"github":   true,
	"linkedin": true,
	"role":     true,
	"country":  true,
	"city":     true,
	"about":    true,
	"icon":     true,
}

type creatorRepo struct {
	db *pgxpool.Pool
}

func NewCreatorRepository(db *pgxpool.Pool) domain.CreatorRepository {
	return &creatorRepo{db: db}
}

func (r *creatorRepo) Create(ctx context.Context, creator *domain.Creator) error {
	query := `INSERT INTO creators (name, phone, email, password_hash, github, linkedin, role, country, city, about, icon)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
              RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		creator.Name, creator.Phone, creator.Email, creator.PasswordHash,
		creator.Github, creator.Linkedin, creator.Role, creator.Country,
		creator.City, creator.About, creator.Icon,
	).Scan(&creator.ID, &creator.CreatedAt, &creator.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("email already registered")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *creatorRepo) GetByID(ctx context.Context, id int64) (*domain.Creator, error) {
	query := fmt.Sprintf(`SELECT %s FROM creators WHERE id = $1`, creatorColumns)

	var c domain.Creator
	err := pgxscan.Get(ctx, r.db, &c, query, id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *creatorRepo) GetByEmail(ctx context.Context, email string) (*domain.Creator, error) {
	query := fmt.Sprintf(`SELECT %s FROM creators WHERE email = $1`, creatorColumns)

	var c domain.Creator
	err := pgxscan.Get(ctx, r.db, &c, query, email)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// UpdateFields applies a sparse update inside a transaction. Only columns
// from the whitelist are touched; a conflicting email surfaces as Conflict.
func (r *creatorRepo) UpdateFields(ctx context.Context, id int64, fields map[string]string) error {
	query, args, err := buildCreatorUpdate(id, fields)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("email already registered")
		}
		return apperror.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// buildCreatorUpdate assembles the UPDATE statement from the supplied
// field map. Columns are emitted in sorted order so the statement is
// deterministic for a given field set.
func buildCreatorUpdate(id int64, fields map[string]string) (string, []interface{}, error) {
	if len(fields) == 0 {
		return "", nil, apperror.BadRequest("no fields to update")
	}

	columns := make([]string, 0, len(fields))
	for col := range fields {
		if !mutableColumns[col] {
			return "", nil, apperror.BadRequest(fmt.Sprintf("unknown field %q", col))
		}
		columns = append(columns, col)
	}
	sort.Strings(columns)

	setClauses := make([]string, 0, len(columns)+1)
	args := make([]interface{}, 0, len(columns)+1)
	for i, col := range columns {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, fields[col])
	}
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE creators SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), len(args))
	return query, args, nil
}

// Delete removes the creator's skills and then the creator row. Both
// deletes ride in one transaction so no skill row is ever left pointing at
// a missing creator.
func (r *creatorRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM skills WHERE creator_id = $1`, id); err != nil {
		return apperror.Internal(err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM creators WHERE id = $1`, id); err != nil {
		return apperror.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
