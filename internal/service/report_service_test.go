package service

import (
	"testing"

	"esrs-platform/internal/models"
)

func strPtr(s string) *string { return &s }

func TestBuildSections(t *testing.T) {
	assessments := []models.MaterialityAssessment{
		{StandardCode: "E1", TopicName: "Climate Change", IsMaterial: true},
		{StandardCode: "S1", TopicName: "Own Workforce", IsMaterial: true},
		{StandardCode: "G1", TopicName: "Business Conduct", IsMaterial: false},
	}
	entries := []models.DataPointEntry{
		{Code: "E1-6", Label: strPtr("Gross GHG emissions"), Value: "1200", Status: "Approved"},
		{Code: "E1-5", Value: "", Status: "In Progress"},
		{Code: "G1-4", Value: "0", Status: "In Progress"},
	}
	dataTypes := map[string]string{"E1-6": "Mass (tonnes CO2e)"}

	sections := buildSections(assessments, entries, dataTypes)

	if len(sections) != 2 {
		t.Fatalf("expected 2 sections for material standards, got %d", len(sections))
	}

	e1 := sections[0]
	if e1.StandardCode != "E1" {
		t.Errorf("first section = %q, want E1", e1.StandardCode)
	}
	if len(e1.Requirements) != 1 {
		t.Fatalf("E1 requirements = %d, want 1 (empty values excluded)", len(e1.Requirements))
	}
	req := e1.Requirements[0]
	if req.Code != "E1-6" || req.Label != "Gross GHG emissions" || req.DataType != "Mass (tonnes CO2e)" {
		t.Errorf("unexpected requirement: %+v", req)
	}

	// S1 is material but has no entries; the section stays with an
	// empty requirement list so the report can state that.
	if sections[1].StandardCode != "S1" || len(sections[1].Requirements) != 0 {
		t.Errorf("unexpected S1 section: %+v", sections[1])
	}
}

func TestBuildEvidence(t *testing.T) {
	entries := []models.DataPointEntry{
		{Code: "E1-6", Value: "1200", EvidenceURL: strPtr("https://files.example.com/ghg.pdf")},
		{Code: "E1-5", Value: "430"},
		{Code: "S1-6", Value: "87", EvidenceURL: strPtr("")},
	}

	evidence := buildEvidence(entries)

	if len(evidence) != 1 {
		t.Fatalf("evidence rows = %d, want 1", len(evidence))
	}
	if evidence[0].Code != "E1-6" || evidence[0].URL != "https://files.example.com/ghg.pdf" {
		t.Errorf("unexpected evidence row: %+v", evidence[0])
	}
}
