package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Reaction store schema. The unique index is what rejects a second
// concurrent like for the same pair.
var likesSchema = []string{
	`CREATE TABLE IF NOT EXISTS "Likes" (
		id uuid PRIMARY KEY,
		"postId" uuid NOT NULL,
		"petId" uuid NOT NULL,
		"createdAt" timestamp NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS "Likes_postId_petId_key" ON "Likes" ("postId", "petId")`,
}

// Pets and Posts belong to other services; these are for local environments.
var petsSchema = []string{
	`CREATE TABLE IF NOT EXISTS "Pets" (
		id uuid PRIMARY KEY,
		name text,
		"responsibleId" uuid NOT NULL
	)`,
}

var postsSchema = []string{
	`CREATE TABLE IF NOT EXISTS "Posts" (
		id uuid PRIMARY KEY,
		"petId" uuid NOT NULL,
		likes integer NOT NULL DEFAULT 0 CHECK (likes >= 0)
	)`,
}

func MigrateLikes(ctx context.Context, db *sql.DB) error { return apply(ctx, db, likesSchema) }
func MigratePets(ctx context.Context, db *sql.DB) error  { return apply(ctx, db, petsSchema) }
func MigratePosts(ctx context.Context, db *sql.DB) error { return apply(ctx, db, postsSchema) }

func apply(ctx context.Context, db *sql.DB, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
