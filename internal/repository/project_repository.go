package repository

import (
	"context"
	"database/sql"

	"esrs-platform/internal/models"
)

// ProjectRepository handles database operations for projects and
// project memberships
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (organization_id, reporting_year, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	return r.db.QueryRowContext(
		ctx,
		query,
		project.OrganizationID,
		project.ReportingYear,
		project.Status,
	).Scan(&project.ID, &project.CreatedAt)
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	query := `
		SELECT id, organization_id, reporting_year, status, created_at
		FROM projects
		WHERE id = $1
	`

	project := &models.Project{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID,
		&project.OrganizationID,
		&project.ReportingYear,
		&project.Status,
		&project.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return project, err
}

// GetAllWithOrg retrieves all projects with their organization joined,
// newest reporting year first.
func (r *ProjectRepository) GetAllWithOrg(ctx context.Context) ([]models.ProjectWithOrg, error) {
	query := `
		SELECT p.id, p.organization_id, p.reporting_year, p.status, p.created_at,
		       o.name, o.sector
		FROM projects p
		JOIN organizations o ON o.id = p.organization_id
		ORDER BY p.reporting_year DESC, o.name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProjectsWithOrg(rows)
}

// GetForUserWithOrg retrieves the projects the user is a member of,
// with their organization joined.
func (r *ProjectRepository) GetForUserWithOrg(ctx context.Context, userID uint) ([]models.ProjectWithOrg, error) {
	query := `
		SELECT p.id, p.organization_id, p.reporting_year, p.status, p.created_at,
		       o.name, o.sector
		FROM projects p
		JOIN organizations o ON o.id = p.organization_id
		JOIN project_members pm ON pm.project_id = p.id
		WHERE pm.user_id = $1
		ORDER BY p.reporting_year DESC, o.name
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProjectsWithOrg(rows)
}

// GetByIDWithOrg retrieves a project with its organization joined
func (r *ProjectRepository) GetByIDWithOrg(ctx context.Context, id uint) (*models.ProjectWithOrg, error) {
	query := `
		SELECT p.id, p.organization_id, p.reporting_year, p.status, p.created_at,
		       o.name, o.sector
		FROM projects p
		JOIN organizations o ON o.id = p.organization_id
		WHERE p.id = $1
	`

	p := &models.ProjectWithOrg{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.OrganizationID,
		&p.ReportingYear,
		&p.Status,
		&p.CreatedAt,
		&p.OrganizationName,
		&p.OrganizationSector,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return p, err
}

// Delete deletes a project and its dependent data via cascade
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// AddMember assigns a user to a project
func (r *ProjectRepository) AddMember(ctx context.Context, member *models.ProjectMember) error {
	query := `
		INSERT INTO project_members (project_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	return r.db.QueryRowContext(
		ctx,
		query,
		member.ProjectID,
		member.UserID,
		member.Role,
	).Scan(&member.ID, &member.CreatedAt)
}

// RemoveMember removes a membership by ID and returns the user it
// belonged to, for cache invalidation.
func (r *ProjectRepository) RemoveMember(ctx context.Context, memberID uint) (uint, error) {
	var userID uint
	err := r.db.QueryRowContext(
		ctx,
		`DELETE FROM project_members WHERE id = $1 RETURNING user_id`,
		memberID,
	).Scan(&userID)
	if err == sql.ErrNoRows {
		return 0, sql.ErrNoRows
	}

	return userID, err
}

// GetMembersWithDetails lists all memberships with profile and project
// information joined.
func (r *ProjectRepository) GetMembersWithDetails(ctx context.Context) ([]models.ProjectMemberWithDetails, error) {
	query := `
		SELECT pm.id, pm.project_id, pm.user_id, pm.role, pm.created_at,
		       pr.email, pr.full_name, p.reporting_year, o.name
		FROM project_members pm
		JOIN profiles pr ON pr.id = pm.user_id
		JOIN projects p ON p.id = pm.project_id
		JOIN organizations o ON o.id = p.organization_id
		ORDER BY o.name, p.reporting_year DESC, pr.email
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []models.ProjectMemberWithDetails{}
	for rows.Next() {
		var m models.ProjectMemberWithDetails
		if err := rows.Scan(
			&m.ID,
			&m.ProjectID,
			&m.UserID,
			&m.Role,
			&m.CreatedAt,
			&m.UserEmail,
			&m.UserFullName,
			&m.ReportingYear,
			&m.OrganizationName,
		); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// GetProjectRole returns the membership role of a user within a
// project. The bool is false when the user is not a member.
func (r *ProjectRepository) GetProjectRole(ctx context.Context, projectID, userID uint) (string, bool, error) {
	var role string
	err := r.db.QueryRowContext(
		ctx,
		`SELECT role FROM project_members WHERE project_id = $1 AND user_id = $2`,
		projectID,
		userID,
	).Scan(&role)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return role, true, nil
}

func scanProjectsWithOrg(rows *sql.Rows) ([]models.ProjectWithOrg, error) {
	projects := []models.ProjectWithOrg{}
	for rows.Next() {
		var p models.ProjectWithOrg
		if err := rows.Scan(
			&p.ID,
			&p.OrganizationID,
			&p.ReportingYear,
			&p.Status,
			&p.CreatedAt,
			&p.OrganizationName,
			&p.OrganizationSector,
		); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}
