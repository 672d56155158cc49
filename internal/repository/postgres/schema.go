package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is created in place at startup; there is no migration tool. Both
// statements are guarded with IF NOT EXISTS so running them on every boot
// is safe.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS creators (
		id            BIGSERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		phone         TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		github        TEXT NOT NULL DEFAULT '',
		linkedin      TEXT NOT NULL DEFAULT '',
		role          TEXT NOT NULL DEFAULT '',
		country       TEXT NOT NULL DEFAULT '',
		city          TEXT NOT NULL DEFAULT '',
		about         TEXT NOT NULL DEFAULT '',
		icon          TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id         BIGSERIAL PRIMARY KEY,
		creator_id BIGINT NOT NULL REFERENCES creators(id),
		name       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_skills_creator_id ON skills (creator_id)`,
}

// EnsureSchema creates the creators and skills tables if they are absent.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
