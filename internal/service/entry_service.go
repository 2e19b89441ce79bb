package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"esrs-platform/internal/esrs"
	"esrs-platform/internal/models"
	"esrs-platform/internal/repository"
)

var (
	ErrRequirementNotFound = errors.New("disclosure requirement not found")
	ErrEntryNotFound       = errors.New("entry not found")
)

// EntryService handles datapoint entry collection and the review
// workflow.
type EntryService struct {
	entryRepo      *repository.EntryRepository
	catalogRepo    *repository.CatalogRepository
	assessmentRepo *repository.AssessmentRepository
	auditRepo      *repository.AuditRepository
}

// NewEntryService creates a new entry service
func NewEntryService(
	entryRepo *repository.EntryRepository,
	catalogRepo *repository.CatalogRepository,
	assessmentRepo *repository.AssessmentRepository,
	auditRepo *repository.AuditRepository,
) *EntryService {
	return &EntryService{
		entryRepo:      entryRepo,
		catalogRepo:    catalogRepo,
		assessmentRepo: assessmentRepo,
		auditRepo:      auditRepo,
	}
}

// CreateEntryInput carries a new datapoint entry submission. Either
// CatalogID or Code identifies the requirement.
type CreateEntryInput struct {
	CatalogID   *uint
	Code        string
	Value       string
	EvidenceURL string
}

// CreateEntry validates the submitted value against the requirement's
// catalog data type and stores the entry in the In Progress state. The
// evidence URL is frozen at creation; corrections are new entries.
func (s *EntryService) CreateEntry(ctx context.Context, actorID, projectID uint, in CreateEntryInput) (*models.DataPointEntry, error) {
	dp, err := s.resolveDatapoint(ctx, in)
	if err != nil {
		return nil, err
	}

	var dataType *string
	if dp != nil {
		dataType = dp.DataType
	}
	if err := esrs.ValidateValue(in.Value, dataType); err != nil {
		return nil, err
	}

	entry := &models.DataPointEntry{
		ProjectID: projectID,
		Code:      in.Code,
		Value:     in.Value,
		Status:    esrs.EntryInProgress,
		CreatedBy: &actorID,
	}
	if dp != nil {
		entry.CatalogID = &dp.ID
		entry.Code = dp.DatapointCode
		entry.Label = dp.Label
	}
	if in.EvidenceURL != "" {
		entry.EvidenceURL = &in.EvidenceURL
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to store entry: %w", err)
	}

	s.audit(ctx, actorID, "entry.create", fmt.Sprintf("projects/%d/entries/%d", projectID, entry.ID), entry.Code)
	return entry, nil
}

// ListEntries lists the entries of a project, newest first
func (s *EntryService) ListEntries(ctx context.Context, projectID uint) ([]models.DataPointEntry, error) {
	return s.entryRepo.GetByProject(ctx, projectID)
}

// ListEntriesGrouped groups the entries of a project by the standard
// extracted from their datapoint code, standards in code order.
func (s *EntryService) ListEntriesGrouped(ctx context.Context, projectID uint) ([]models.EntriesByStandard, error) {
	entries, err := s.entryRepo.GetByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	byStandard := map[string][]models.DataPointEntry{}
	for _, e := range entries {
		code := esrs.StandardFromDatapointCode(e.Code)
		byStandard[code] = append(byStandard[code], e)
	}

	codes := make([]string, 0, len(byStandard))
	for code := range byStandard {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	groups := []models.EntriesByStandard{}
	for _, code := range codes {
		groups = append(groups, models.EntriesByStandard{
			StandardCode: code,
			Entries:      byStandard[code],
		})
	}

	return groups, nil
}

// Transition moves an entry to a new workflow status. Approved and
// Rejected are terminal; a transition from either fails.
func (s *EntryService) Transition(ctx context.Context, actorID, projectID, entryID uint, newStatus string) (*models.DataPointEntry, error) {
	if !esrs.IsEntryStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", esrs.ErrInvalidTransition, newStatus)
	}

	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry: %w", err)
	}
	if entry == nil || entry.ProjectID != projectID {
		return nil, ErrEntryNotFound
	}

	if !esrs.CanTransition(entry.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s to %s", esrs.ErrInvalidTransition, entry.Status, newStatus)
	}

	if err := s.entryRepo.UpdateStatus(ctx, entryID, newStatus); err != nil {
		return nil, fmt.Errorf("failed to update entry status: %w", err)
	}
	entry.Status = newStatus

	s.audit(ctx, actorID, "entry.transition", fmt.Sprintf("projects/%d/entries/%d", projectID, entryID), newStatus)
	return entry, nil
}

// Summary computes the KPI counters of a project
func (s *EntryService) Summary(ctx context.Context, projectID uint, activeRequirements int) (*models.ProjectSummary, error) {
	assessed, err := s.assessmentRepo.GetAssessedCodes(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assessments: %w", err)
	}
	material, err := s.assessmentRepo.GetMaterialCodes(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load material standards: %w", err)
	}

	total, approved, rejected, pending, err := s.entryRepo.CountByStatus(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to count entries: %w", err)
	}

	return &models.ProjectSummary{
		AssessedStandards:  len(assessed),
		MaterialStandards:  len(material),
		ActiveRequirements: activeRequirements,
		TotalEntries:       total,
		ApprovedEntries:    approved,
		RejectedEntries:    rejected,
		PendingEntries:     pending,
	}, nil
}

// resolveDatapoint finds the catalog row an entry refers to. A missing
// catalog reference by ID is an error; a bare unknown code is accepted
// as a free entry, matching how imported catalogs with gaps behave.
func (s *EntryService) resolveDatapoint(ctx context.Context, in CreateEntryInput) (*models.CatalogDatapoint, error) {
	if in.CatalogID != nil {
		dp, err := s.catalogRepo.GetByID(ctx, *in.CatalogID)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog datapoint: %w", err)
		}
		if dp == nil {
			return nil, ErrRequirementNotFound
		}
		return dp, nil
	}

	if in.Code == "" {
		return nil, ErrRequirementNotFound
	}

	dp, err := s.catalogRepo.GetByDatapointCode(ctx, in.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog datapoint: %w", err)
	}
	return dp, nil
}

func (s *EntryService) audit(ctx context.Context, actorID uint, action, resource, details string) {
	entry := &models.AuditLog{
		UserID:   &actorID,
		Action:   action,
		Resource: resource,
		Details:  details,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		slog.Error("Failed to write audit log", "action", action, "error", err)
	}
}
