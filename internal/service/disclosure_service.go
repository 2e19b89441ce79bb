package service

import (
	"context"
	"fmt"

	"esrs-platform/internal/esrs"
	"esrs-platform/internal/models"
	"esrs-platform/internal/repository"
)

// fallbackCatalogLimit caps the full-catalog scan used when the
// exact-match query finds nothing.
const fallbackCatalogLimit = 2000

// DisclosureService resolves the active disclosure requirements of a
// project from its material standards.
type DisclosureService struct {
	assessmentRepo *repository.AssessmentRepository
	catalogRepo    *repository.CatalogRepository
	entryRepo      *repository.EntryRepository
}

// NewDisclosureService creates a new disclosure service
func NewDisclosureService(
	assessmentRepo *repository.AssessmentRepository,
	catalogRepo *repository.CatalogRepository,
	entryRepo *repository.EntryRepository,
) *DisclosureService {
	return &DisclosureService{
		assessmentRepo: assessmentRepo,
		catalogRepo:    catalogRepo,
		entryRepo:      entryRepo,
	}
}

// ActiveRequirements returns the catalog datapoints of the project's
// material standards, each with its derived completion status, ordered
// by datapoint code. statusFilter narrows the result to one completion
// state when non-empty.
func (s *DisclosureService) ActiveRequirements(ctx context.Context, projectID uint, statusFilter string) ([]models.RequirementWithStatus, error) {
	datapoints, err := s.materialDatapoints(ctx, projectID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.GetByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	requirements := []models.RequirementWithStatus{}
	for _, dp := range datapoints {
		status := esrs.DeriveStatus(dp, entries)
		if statusFilter != "" && status != statusFilter {
			continue
		}
		requirements = append(requirements, models.RequirementWithStatus{
			CatalogDatapoint: dp,
			CompletionStatus: status,
		})
	}

	return requirements, nil
}

// Progress returns per-standard completion counts over the project's
// material standards.
func (s *DisclosureService) Progress(ctx context.Context, projectID uint) ([]models.StandardProgress, error) {
	assessments, err := s.assessmentRepo.GetByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assessments: %w", err)
	}

	datapoints, err := s.materialDatapoints(ctx, projectID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.GetByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	topicByCode := map[string]string{}
	for _, a := range assessments {
		topicByCode[a.StandardCode] = a.TopicName
	}

	byCode := map[string]*models.StandardProgress{}
	order := []string{}
	for _, dp := range datapoints {
		code := esrs.NormalizeStandardCode(dp.StandardCode)
		p := byCode[code]
		if p == nil {
			p = &models.StandardProgress{StandardCode: code, TopicName: topicByCode[code]}
			byCode[code] = p
			order = append(order, code)
		}

		p.Total++
		switch esrs.DeriveStatus(dp, entries) {
		case esrs.StatusCompleted:
			p.Completed++
		case esrs.StatusInProgress:
			p.InProgress++
		default:
			p.NotStarted++
		}
	}

	progress := []models.StandardProgress{}
	for _, code := range order {
		progress = append(progress, *byCode[code])
	}

	return progress, nil
}

// materialDatapoints loads the catalog rows of the project's material
// standards. Exact code match first; when that yields nothing the full
// catalog is scanned and filtered on normalized codes, covering
// catalogs imported with unnormalized standard codes.
func (s *DisclosureService) materialDatapoints(ctx context.Context, projectID uint) ([]models.CatalogDatapoint, error) {
	codes, err := s.assessmentRepo.GetMaterialCodes(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load material standards: %w", err)
	}
	if len(codes) == 0 {
		return []models.CatalogDatapoint{}, nil
	}

	datapoints, err := s.catalogRepo.GetByStandardCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	if len(datapoints) > 0 {
		return datapoints, nil
	}

	catalog, err := s.catalogRepo.GetAll(ctx, fallbackCatalogLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to scan catalog: %w", err)
	}

	return esrs.FilterCatalogByStandards(catalog, codes), nil
}
