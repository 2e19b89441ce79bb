package service

import (
	"context"
	"fmt"

	"esrs-platform/internal/cache"
	"esrs-platform/internal/models"
	"esrs-platform/internal/repository"
)

// ProjectService resolves which projects a user can see
type ProjectService struct {
	projectRepo  *repository.ProjectRepository
	profileCache *cache.ProfileCache
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo *repository.ProjectRepository, profileCache *cache.ProfileCache) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		profileCache: profileCache,
	}
}

// ListVisibleProjects lists the projects the user may work on: global
// admins see every project, everyone else their memberships.
func (s *ProjectService) ListVisibleProjects(ctx context.Context, userID uint) ([]models.ProjectWithOrg, error) {
	profile, err := s.profileCache.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	if profile.GlobalRole == models.RoleAdmin {
		return s.projectRepo.GetAllWithOrg(ctx)
	}

	return s.projectRepo.GetForUserWithOrg(ctx, userID)
}

// GetProject retrieves a project with its organization details
func (s *ProjectService) GetProject(ctx context.Context, projectID uint) (*models.ProjectWithOrg, error) {
	project, err := s.projectRepo.GetByIDWithOrg(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}

	return project, nil
}
