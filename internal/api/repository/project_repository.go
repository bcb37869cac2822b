package repository

import (
	"collaband/CollaBand/internal/api/models"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ProjectRepository defines the interface for project data operations.
// Every lookup that takes an ownerID filters by it, so one user's projects
// are never visible through another user's calls.
type ProjectRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	DeleteByIDAndOwner(ctx context.Context, id, ownerID int64) (bool, error)
}

type sqliteProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository creates a new SQLite-based ProjectRepository.
func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &sqliteProjectRepository{db: db}
}

// ListByOwner returns all projects owned by ownerID.
func (r *sqliteProjectRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Project, error) {
	projects := []models.Project{}
	query := `SELECT id, name, description, user_id FROM projects WHERE user_id = ? ORDER BY id`
	if err := r.db.SelectContext(ctx, &projects, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Create inserts a new project row and writes the generated id back.
func (r *sqliteProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `INSERT INTO projects (name, description, user_id) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, project.Name, project.Description, project.UserID)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	project.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new project id: %w", err)
	}
	return nil
}

// GetByIDAndOwner retrieves a project by id, scoped to its owner. Returns
// (nil, nil) when no such row exists or the row belongs to someone else.
func (r *sqliteProjectRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.Project, error) {
	var project models.Project
	query := `SELECT id, name, description, user_id FROM projects WHERE id = ? AND user_id = ?`
	err := r.db.GetContext(ctx, &project, query, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

// Update overwrites the name and description of the project row, still
// scoped to the owner.
func (r *sqliteProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `UPDATE projects SET name = ?, description = ? WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, project.Name, project.Description, project.ID, project.UserID); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// DeleteByIDAndOwner removes the project row scoped to its owner and
// reports whether a row was actually deleted.
func (r *sqliteProjectRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID int64) (bool, error) {
	query := `DELETE FROM projects WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
