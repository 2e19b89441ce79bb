package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"esrs-platform/internal/database"
	"esrs-platform/internal/esrs"
	"esrs-platform/internal/models"
	"esrs-platform/internal/repository"
)

var ErrAlreadyAssessed = errors.New("standard has already been assessed for this project")

// MaterialityService evaluates and stores double-materiality
// assessments.
type MaterialityService struct {
	assessmentRepo *repository.AssessmentRepository
	auditRepo      *repository.AuditRepository
}

// NewMaterialityService creates a new materiality service
func NewMaterialityService(assessmentRepo *repository.AssessmentRepository, auditRepo *repository.AuditRepository) *MaterialityService {
	return &MaterialityService{
		assessmentRepo: assessmentRepo,
		auditRepo:      auditRepo,
	}
}

// AssessInput carries one materiality evaluation request
type AssessInput struct {
	StandardCode   string
	TopicName      string
	ImpactScore    float64
	FinancialScore float64
	Rationale      string
}

// Assess validates the scores, derives materiality and stores the
// assessment under the normalized standard code. A second assessment
// of the same standard fails with ErrAlreadyAssessed; the storage
// constraint is the authority, not a prior read.
func (s *MaterialityService) Assess(ctx context.Context, actorID, projectID uint, in AssessInput) (*models.MaterialityAssessment, error) {
	isMaterial, err := esrs.EvaluateMateriality(in.ImpactScore, in.FinancialScore)
	if err != nil {
		return nil, err
	}

	code := esrs.NormalizeStandardCode(in.StandardCode)
	if code == "" {
		return nil, errors.New("standard code is required")
	}

	topic := in.TopicName
	if topic == "" {
		topic = esrs.StandardName(code)
	}
	if topic == "" {
		return nil, errors.New("topic name is required for unknown standards")
	}

	assessment := &models.MaterialityAssessment{
		ProjectID:      projectID,
		StandardCode:   code,
		TopicName:      topic,
		ImpactScore:    in.ImpactScore,
		FinancialScore: in.FinancialScore,
		IsMaterial:     isMaterial,
	}
	if in.Rationale != "" {
		assessment.Rationale = &in.Rationale
	}

	if err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrAlreadyAssessed
		}
		return nil, fmt.Errorf("failed to store assessment: %w", err)
	}

	s.auditAssess(ctx, actorID, assessment)
	return assessment, nil
}

// ListAssessments lists the assessments of a project. One row per
// standard is guaranteed by the storage constraint.
func (s *MaterialityService) ListAssessments(ctx context.Context, projectID uint) ([]models.MaterialityAssessment, error) {
	return s.assessmentRepo.GetByProject(ctx, projectID)
}

// AssessedCodes returns the normalized codes already assessed for a
// project. Clients use it to gate the assessment form; the storage
// constraint remains the real guard.
func (s *MaterialityService) AssessedCodes(ctx context.Context, projectID uint) ([]string, error) {
	return s.assessmentRepo.GetAssessedCodes(ctx, projectID)
}

func (s *MaterialityService) auditAssess(ctx context.Context, actorID uint, a *models.MaterialityAssessment) {
	entry := &models.AuditLog{
		UserID:   &actorID,
		Action:   "materiality.assess",
		Resource: fmt.Sprintf("projects/%d/assessments/%d", a.ProjectID, a.ID),
		Details:  fmt.Sprintf("%s impact=%.1f financial=%.1f material=%t", a.StandardCode, a.ImpactScore, a.FinancialScore, a.IsMaterial),
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		slog.Error("Failed to write audit log", "action", entry.Action, "error", err)
	}
}
