package repository

import (
	"context"

	"trackmycareer/internal/catalog"
	"trackmycareer/internal/database"

	"github.com/google/uuid"
)

type RoleRepository interface {
	LoadCatalog(ctx context.Context) (*catalog.Catalog, error)
}

type PostgresRoleRepository struct {
	db database.DB
}

func NewPostgresRoleRepository(db database.DB) *PostgresRoleRepository {
	return &PostgresRoleRepository{db: db}
}

// LoadCatalog reads the whole role database in three passes and assembles an
// in-memory catalog. Analysis never queries the database afterwards.
func (r *PostgresRoleRepository) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	roles, order, err := r.loadRoles(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.loadSkills(ctx, roles); err != nil {
		return nil, err
	}
	if err := r.loadProjects(ctx, roles); err != nil {
		return nil, err
	}

	out := make([]catalog.Role, 0, len(order))
	for _, id := range order {
		out = append(out, *roles[id])
	}
	return catalog.New(out), nil
}

func (r *PostgresRoleRepository) loadRoles(ctx context.Context) (map[uuid.UUID]*catalog.Role, []uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM roles ORDER BY name ASC`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	roles := make(map[uuid.UUID]*catalog.Role)
	order := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, nil, err
		}
		roles[id] = &catalog.Role{Name: name}
		order = append(order, id)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return roles, order, nil
}

func (r *PostgresRoleRepository) loadSkills(ctx context.Context, roles map[uuid.UUID]*catalog.Role) error {
	rows, err := r.db.Query(ctx, `SELECT role_id, skill FROM role_skills ORDER BY position ASC`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var roleID uuid.UUID
		var skill string
		if err := rows.Scan(&roleID, &skill); err != nil {
			return err
		}
		if role, ok := roles[roleID]; ok {
			role.Skills = append(role.Skills, skill)
		}
	}
	return rows.Err()
}

func (r *PostgresRoleRepository) loadProjects(ctx context.Context, roles map[uuid.UUID]*catalog.Role) error {
	rows, err := r.db.Query(ctx, `SELECT role_id, title, description, tech_stack FROM role_projects ORDER BY title ASC`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var roleID uuid.UUID
		var p catalog.Project
		if err := rows.Scan(&roleID, &p.Title, &p.Description, &p.TechStack); err != nil {
			return err
		}
		if role, ok := roles[roleID]; ok {
			role.Projects = append(role.Projects, p)
		}
	}
	return rows.Err()
}
