package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mradulpatle03/IDE/pkg/model"
)

// ProjectRepository is the concrete implementation for code-snippet projects.
// All reads and writes are scoped to the owning user.
type ProjectRepository struct {
	db *pgxpool.Pool
}

// Create inserts a new project and fills in the generated id.
func (r *ProjectRepository) Create(ctx context.Context, p *model.Project) error {
	p.ProjectID = uuid.New()
	const q = `
INSERT INTO projects (project_id, name, proj_language, version, code, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
`
	_, err := r.db.Exec(ctx, q, p.ProjectID, p.Name, p.ProjLanguage, p.Version, p.Code, p.CreatedBy)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// SaveCode overwrites the code field. Last write wins; there is no
// concurrency check across tabs.
func (r *ProjectRepository) SaveCode(ctx context.Context, projectID, owner uuid.UUID, code string) error {
	const q = `
UPDATE projects
SET code = $3, updated_at = now()
WHERE project_id = $1 AND created_by = $2
`
	ct, err := r.db.Exec(ctx, q, projectID, owner, code)
	if err != nil {
		return fmt.Errorf("save project code: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByOwner returns the owner's projects, newest first.
func (r *ProjectRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]model.Project, error) {
	const q = `
SELECT project_id, name, proj_language, version, code, created_by, created_at, updated_at
FROM projects
WHERE created_by = $1
ORDER BY created_at DESC
`
	rows, err := r.db.Query(ctx, q, owner)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var out []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ProjectID, &p.Name, &p.ProjLanguage, &p.Version, &p.Code, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByIDAndOwner fetches one project; other users' projects look absent.
func (r *ProjectRepository) GetByIDAndOwner(ctx context.Context, projectID, owner uuid.UUID) (model.Project, error) {
	const q = `
SELECT project_id, name, proj_language, version, code, created_by, created_at, updated_at
FROM projects
WHERE project_id = $1 AND created_by = $2
`
	var p model.Project
	row := r.db.QueryRow(ctx, q, projectID, owner)
	if err := row.Scan(&p.ProjectID, &p.Name, &p.ProjLanguage, &p.Version, &p.Code, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Project{}, ErrNotFound
		}
		return model.Project{}, fmt.Errorf("scan project: %w", err)
	}
	return p, nil
}

// Rename updates the project name.
func (r *ProjectRepository) Rename(ctx context.Context, projectID, owner uuid.UUID, name string) error {
	const q = `
UPDATE projects
SET name = $3, updated_at = now()
WHERE project_id = $1 AND created_by = $2
`
	ct, err := r.db.Exec(ctx, q, projectID, owner, name)
	if err != nil {
		return fmt.Errorf("rename project: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the project.
func (r *ProjectRepository) Delete(ctx context.Context, projectID, owner uuid.UUID) error {
	const q = `DELETE FROM projects WHERE project_id = $1 AND created_by = $2`
	ct, err := r.db.Exec(ctx, q, projectID, owner)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
