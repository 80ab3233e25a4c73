package seeder

import (
	"context"

	"trackmycareer/internal/database"
)

// SchemaSeeder creates the role catalog tables when they do not exist yet.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS roles (
			id   UUID PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS role_skills (
			role_id  UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			skill    TEXT NOT NULL,
			position INT  NOT NULL,
			PRIMARY KEY (role_id, skill)
		)`,
		`CREATE TABLE IF NOT EXISTS role_projects (
			role_id     UUID   NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			title       TEXT   NOT NULL,
			description TEXT   NOT NULL DEFAULT '',
			tech_stack  TEXT[] NOT NULL DEFAULT '{}',
			PRIMARY KEY (role_id, title)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
