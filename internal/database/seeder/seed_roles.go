package seeder

import (
	"context"
	"fmt"

	"trackmycareer/internal/catalog"
	"trackmycareer/internal/database"

	"github.com/google/uuid"
)

// RoleSeeder mirrors an in-memory catalog into the database. Existing roles
// are kept by name; their skills and projects are replaced wholesale so the
// database always reflects the source file.
type RoleSeeder struct {
	Catalog *catalog.Catalog
}

func (RoleSeeder) Name() string { return "roles" }

func (s RoleSeeder) Run(ctx context.Context, db database.DB) error {
	if s.Catalog == nil || s.Catalog.Len() == 0 {
		return fmt.Errorf("empty catalog")
	}

	for _, key := range s.Catalog.Keys() {
		role, ok := s.Catalog.Get(key)
		if !ok {
			continue
		}
		if err := s.seedRole(ctx, db, role); err != nil {
			return fmt.Errorf("role %s: %w", key, err)
		}
	}
	return nil
}

func (s RoleSeeder) seedRole(ctx context.Context, db database.DB, role catalog.Role) error {
	var roleID uuid.UUID
	err := db.QueryRow(
		ctx,
		`INSERT INTO roles (id, name) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		uuid.New(), role.Name,
	).Scan(&roleID)
	if err != nil {
		return err
	}

	if _, err := db.Exec(ctx, `DELETE FROM role_skills WHERE role_id = $1`, roleID); err != nil {
		return err
	}
	for i, skill := range role.Skills {
		if _, err := db.Exec(
			ctx,
			`INSERT INTO role_skills (role_id, skill, position) VALUES ($1, $2, $3)`,
			roleID, skill, i,
		); err != nil {
			return err
		}
	}

	if _, err := db.Exec(ctx, `DELETE FROM role_projects WHERE role_id = $1`, roleID); err != nil {
		return err
	}
	for _, p := range role.Projects {
		stack := p.TechStack
		if stack == nil {
			stack = []string{}
		}
		if _, err := db.Exec(
			ctx,
			`INSERT INTO role_projects (role_id, title, description, tech_stack) VALUES ($1, $2, $3, $4)`,
			roleID, p.Title, p.Description, stack,
		); err != nil {
			return err
		}
	}
	return nil
}
