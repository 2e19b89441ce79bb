package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"esrs-platform/internal/cache"
	"esrs-platform/internal/database"
	"esrs-platform/internal/models"
	"esrs-platform/internal/repository"
	"esrs-platform/pkg/validator"
)

var (
	ErrDuplicateProject = errors.New("a project for this organization and reporting year already exists")
	ErrDuplicateMember  = errors.New("user is already a member of this project")
	ErrInvalidRole      = errors.New("unknown role")
	ErrNotFound         = errors.New("not found")
)

// AdminService handles organization, project, user and membership
// administration. Every mutation is written to the audit log.
type AdminService struct {
	orgRepo      *repository.OrganizationRepository
	projectRepo  *repository.ProjectRepository
	profileRepo  *repository.ProfileRepository
	auditRepo    *repository.AuditRepository
	profileCache *cache.ProfileCache
}

// NewAdminService creates a new admin service
func NewAdminService(
	orgRepo *repository.OrganizationRepository,
	projectRepo *repository.ProjectRepository,
	profileRepo *repository.ProfileRepository,
	auditRepo *repository.AuditRepository,
	profileCache *cache.ProfileCache,
) *AdminService {
	return &AdminService{
		orgRepo:      orgRepo,
		projectRepo:  projectRepo,
		profileRepo:  profileRepo,
		auditRepo:    auditRepo,
		profileCache: profileCache,
	}
}

// CreateOrganization creates an organization
func (s *AdminService) CreateOrganization(ctx context.Context, actorID uint, name, sector string) (*models.Organization, error) {
	name = validator.SanitizeString(name)
	if err := validator.ValidateRequired("name", name); err != nil {
		return nil, err
	}

	org := &models.Organization{Name: name}
	if sector = validator.SanitizeString(sector); sector != "" {
		org.Sector = &sector
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	s.audit(ctx, actorID, "organization.create", fmt.Sprintf("organizations/%d", org.ID), org.Name)
	return org, nil
}

// ListOrganizations lists all organizations
func (s *AdminService) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	return s.orgRepo.GetAll(ctx)
}

// DeleteOrganization deletes an organization and all its projects
func (s *AdminService) DeleteOrganization(ctx context.Context, actorID, orgID uint) error {
	if err := s.orgRepo.Delete(ctx, orgID); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	s.audit(ctx, actorID, "organization.delete", fmt.Sprintf("organizations/%d", orgID), "")
	return nil
}

// CreateProject creates a reporting project for an organization
func (s *AdminService) CreateProject(ctx context.Context, actorID, orgID uint, reportingYear int) (*models.Project, error) {
	if err := validator.ValidateReportingYear(reportingYear); err != nil {
		return nil, err
	}

	project := &models.Project{
		OrganizationID: orgID,
		ReportingYear:  reportingYear,
		Status:         "active",
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateProject
		}
		if database.IsForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.audit(ctx, actorID, "project.create", fmt.Sprintf("projects/%d", project.ID),
		fmt.Sprintf("organization %d, year %d", orgID, reportingYear))
	return project, nil
}

// ListProjects lists all projects with organization details
func (s *AdminService) ListProjects(ctx context.Context) ([]models.ProjectWithOrg, error) {
	return s.projectRepo.GetAllWithOrg(ctx)
}

// DeleteProject deletes a project with its assessments and entries
func (s *AdminService) DeleteProject(ctx context.Context, actorID, projectID uint) error {
	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.audit(ctx, actorID, "project.delete", fmt.Sprintf("projects/%d", projectID), "")
	return nil
}

// ListProfiles lists all user profiles
func (s *AdminService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.GetAll(ctx)
}

// UpdateGlobalRole changes a user's global role and invalidates the
// cached profile so the change takes effect immediately.
func (s *AdminService) UpdateGlobalRole(ctx context.Context, actorID, userID uint, role string) error {
	if !isValidRole(role) {
		return ErrInvalidRole
	}

	if err := s.profileRepo.UpdateGlobalRole(ctx, userID, role); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update role: %w", err)
	}

	s.profileCache.Invalidate(ctx, userID)
	s.audit(ctx, actorID, "profile.role_update", fmt.Sprintf("profiles/%d", userID), role)
	return nil
}

// AddProjectMember assigns a user to a project with a role
func (s *AdminService) AddProjectMember(ctx context.Context, actorID, projectID, userID uint, role string) (*models.ProjectMember, error) {
	if role == "" {
		role = models.RoleDataCollector
	}
	if !isValidRole(role) {
		return nil, ErrInvalidRole
	}

	member := &models.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
	}

	if err := s.projectRepo.AddMember(ctx, member); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateMember
		}
		if database.IsForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to add project member: %w", err)
	}

	s.profileCache.Invalidate(ctx, userID)
	s.audit(ctx, actorID, "project.member_add", fmt.Sprintf("projects/%d", projectID),
		fmt.Sprintf("user %d as %s", userID, role))
	return member, nil
}

// RemoveProjectMember removes a membership
func (s *AdminService) RemoveProjectMember(ctx context.Context, actorID, memberID uint) error {
	userID, err := s.projectRepo.RemoveMember(ctx, memberID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return fmt.Errorf("failed to remove project member: %w", err)
	}

	s.profileCache.Invalidate(ctx, userID)
	s.audit(ctx, actorID, "project.member_remove", fmt.Sprintf("project_members/%d", memberID),
		fmt.Sprintf("user %d", userID))
	return nil
}

// ListProjectMembers lists all memberships with user and project details
func (s *AdminService) ListProjectMembers(ctx context.Context) ([]models.ProjectMemberWithDetails, error) {
	return s.projectRepo.GetMembersWithDetails(ctx)
}

// RecentAuditLogs returns the most recent audit log entries
func (s *AdminService) RecentAuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.auditRepo.GetRecent(ctx, limit)
}

// audit records an administrative action. A failed audit write is
// logged but does not fail the mutation it describes.
func (s *AdminService) audit(ctx context.Context, actorID uint, action, resource, details string) {
	entry := &models.AuditLog{
		UserID:   &actorID,
		Action:   action,
		Resource: resource,
		Details:  details,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		slog.Error("Failed to write audit log", "action", action, "resource", resource, "error", err)
	}
}

func isValidRole(role string) bool {
	switch role {
	case models.RoleAdmin, models.RoleDataCollector, models.RoleReviewer:
		return true
	}
	return false
}
