package repository

import (
	"context"
	"database/sql"

	"esrs-platform/internal/models"
)

// AssessmentRepository handles database operations for materiality
// assessments
type AssessmentRepository struct {
	db *sql.DB
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(db *sql.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Create creates a new assessment. The UNIQUE (project_id,
// standard_code) constraint rejects a second assessment of the same
// standard; callers classify that via database.IsUniqueViolation.
func (r *AssessmentRepository) Create(ctx context.Context, a *models.MaterialityAssessment) error {
	query := `
		INSERT INTO materiality_assessments
			(project_id, standard_code, topic_name, impact_score, financial_score, is_material, rationale)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, last_updated
	`

	return r.db.QueryRowContext(
		ctx,
		query,
		a.ProjectID,
		a.StandardCode,
		a.TopicName,
		a.ImpactScore,
		a.FinancialScore,
		a.IsMaterial,
		a.Rationale,
	).Scan(&a.ID, &a.LastUpdated)
}

// GetByProject retrieves all assessments of a project ordered by
// standard code.
func (r *AssessmentRepository) GetByProject(ctx context.Context, projectID uint) ([]models.MaterialityAssessment, error) {
	query := `
		SELECT id, project_id, standard_code, topic_name, impact_score, financial_score,
		       is_material, rationale, last_updated
		FROM materiality_assessments
		WHERE project_id = $1
		ORDER BY standard_code
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assessments := []models.MaterialityAssessment{}
	for rows.Next() {
		var a models.MaterialityAssessment
		if err := rows.Scan(
			&a.ID,
			&a.ProjectID,
			&a.StandardCode,
			&a.TopicName,
			&a.ImpactScore,
			&a.FinancialScore,
			&a.IsMaterial,
			&a.Rationale,
			&a.LastUpdated,
		); err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}

	return assessments, rows.Err()
}

// GetMaterialCodes retrieves the normalized standard codes assessed as
// material for a project.
func (r *AssessmentRepository) GetMaterialCodes(ctx context.Context, projectID uint) ([]string, error) {
	query := `
		SELECT standard_code
		FROM materiality_assessments
		WHERE project_id = $1 AND is_material = TRUE
		ORDER BY standard_code
	`

	return r.queryCodes(ctx, query, projectID)
}

// GetAssessedCodes retrieves every standard code already assessed for
// a project, material or not.
func (r *AssessmentRepository) GetAssessedCodes(ctx context.Context, projectID uint) ([]string, error) {
	query := `
		SELECT standard_code
		FROM materiality_assessments
		WHERE project_id = $1
		ORDER BY standard_code
	`

	return r.queryCodes(ctx, query, projectID)
}

func (r *AssessmentRepository) queryCodes(ctx context.Context, query string, projectID uint) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}

	return codes, rows.Err()
}
