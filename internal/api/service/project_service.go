package service

import (
	"collaband/CollaBand/internal/api/models"
	"collaband/CollaBand/internal/api/repository"
	"context"
	"strings"
)

// ProjectService defines the interface for project business logic. Every
// call takes the owner id explicitly; there is no ambient current user.
type ProjectService interface {
	List(ctx context.Context, ownerID int64) ([]models.Project, error)
	Create(ctx context.Context, ownerID int64, name string) (*models.Project, error)
	Modify(ctx context.Context, ownerID int64, req *models.ModifyProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, ownerID, projectID int64) error
	Get(ctx context.Context, ownerID, projectID int64) (*models.Project, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

// List returns all projects owned by ownerID.
func (s *projectService) List(ctx context.Context, ownerID int64) ([]models.Project, error) {
	return s.projectRepo.ListByOwner(ctx, ownerID)
}

// Create inserts a new project for ownerID. The name must be non-empty.
func (s *projectService) Create(ctx context.Context, ownerID int64, name string) (*models.Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrProjectNameRequired
	}
	project := &models.Project{
		Name:   name,
		UserID: ownerID,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Modify applies a partial update: only fields present in the payload
// change, the rest keep their stored values. The lookup is owner-scoped,
// so a project owned by someone else reads as not found.
func (s *projectService) Modify(ctx context.Context, ownerID int64, req *models.ModifyProjectRequest) (*models.Project, error) {
	project, err := s.projectRepo.GetByIDAndOwner(ctx, req.ProjectID, ownerID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	if req.ProjectName != nil {
		project.Name = *req.ProjectName
	}
	if req.Description != nil {
		project.Description = *req.Description
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes the project, owner-scoped.
func (s *projectService) Delete(ctx context.Context, ownerID, projectID int64) error {
	deleted, err := s.projectRepo.DeleteByIDAndOwner(ctx, projectID, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProjectNotFound
	}
	return nil
}

// Get returns a single owned project, or ErrProjectNotFound.
func (s *projectService) Get(ctx context.Context, ownerID, projectID int64) (*models.Project, error) {
	project, err := s.projectRepo.GetByIDAndOwner(ctx, projectID, ownerID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}
