package service

import (
	"context"
	"fmt"
	"time"

	"esrs-platform/internal/esrs"
	"esrs-platform/internal/models"
	"esrs-platform/internal/report"
)

// ReportService assembles the data behind the downloadable workbook
type ReportService struct {
	projects   *ProjectService
	disclosure *DisclosureService
	entries    *EntryService
}

// NewReportService creates a new report service
func NewReportService(projects *ProjectService, disclosure *DisclosureService, entries *EntryService) *ReportService {
	return &ReportService{
		projects:   projects,
		disclosure: disclosure,
		entries:    entries,
	}
}

// BuildReport gathers the project's assessments, entries and KPIs and
// returns the report data ready for rendering.
func (s *ReportService) BuildReport(ctx context.Context, projectID uint) (*report.Data, error) {
	project, err := s.projects.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	assessments, err := s.disclosure.assessmentRepo.GetByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assessments: %w", err)
	}

	requirements, err := s.disclosure.ActiveRequirements(ctx, projectID, "")
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.ListEntries(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	summary, err := s.entries.Summary(ctx, projectID, len(requirements))
	if err != nil {
		return nil, err
	}

	data := &report.Data{
		OrganizationName: project.OrganizationName,
		ReportingYear:    project.ReportingYear,
		GeneratedAt:      time.Now(),
		Summary:          *summary,
		Assessments:      assessments,
		Sections:         buildSections(assessments, entries, dataTypesByCode(requirements)),
		AuditEntries:     entries,
		Evidence:         buildEvidence(entries),
	}
	if project.OrganizationSector != nil {
		data.Sector = *project.OrganizationSector
	}

	return data, nil
}

// buildSections groups the filled entries under each material
// standard. Standards without data keep their section with an explicit
// empty state.
func buildSections(assessments []models.MaterialityAssessment, entries []models.DataPointEntry, dataTypes map[string]string) []report.StandardSection {
	sections := []report.StandardSection{}

	for _, a := range assessments {
		if !a.IsMaterial {
			continue
		}

		section := report.StandardSection{
			StandardCode: a.StandardCode,
			TopicName:    a.TopicName,
			Requirements: []report.FilledRequirement{},
		}

		for _, e := range entries {
			if e.Value == "" || esrs.StandardFromDatapointCode(e.Code) != a.StandardCode {
				continue
			}
			req := report.FilledRequirement{
				Code:     e.Code,
				Value:    e.Value,
				Status:   e.Status,
				DataType: dataTypes[e.Code],
			}
			if e.Label != nil {
				req.Label = *e.Label
			}
			section.Requirements = append(section.Requirements, req)
		}

		sections = append(sections, section)
	}

	return sections
}

func dataTypesByCode(requirements []models.RequirementWithStatus) map[string]string {
	types := map[string]string{}
	for _, r := range requirements {
		if r.DataType != nil {
			types[r.DatapointCode] = *r.DataType
		}
	}
	return types
}

func buildEvidence(entries []models.DataPointEntry) []report.EvidenceRow {
	evidence := []report.EvidenceRow{}
	for _, e := range entries {
		if e.EvidenceURL == nil || *e.EvidenceURL == "" {
			continue
		}
		evidence = append(evidence, report.EvidenceRow{
			Code:  e.Code,
			Value: e.Value,
			URL:   *e.EvidenceURL,
		})
	}
	return evidence
}
