package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"esrs-platform/internal/models"
)

func strPtr(s string) *string { return &s }

func roundTrip(t *testing.T, data Data) *excelize.File {
	t.Helper()

	f, err := Build(data)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer() error = %v", err)
	}

	reopened, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	return reopened
}

func cellValue(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell)
	if err != nil {
		t.Fatalf("GetCellValue(%s!%s) error = %v", sheet, cell, err)
	}
	return v
}

func TestFilename(t *testing.T) {
	generated := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	if got := Filename(generated); got != "esrs-report-2025-03-14.xlsx" {
		t.Errorf("Filename() = %q", got)
	}
}

func TestBuildEmptyReport(t *testing.T) {
	f := roundTrip(t, Data{
		OrganizationName: "Acme SpA",
		ReportingYear:    2025,
		GeneratedAt:      time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
	})

	sheets := f.GetSheetList()
	want := []string{SheetSummary, SheetMateriality, SheetData, SheetAudit, SheetEvidence}
	if len(sheets) != len(want) {
		t.Fatalf("sheet list = %v, want %v", sheets, want)
	}
	for i, name := range want {
		if sheets[i] != name {
			t.Errorf("sheet %d = %q, want %q", i, sheets[i], name)
		}
	}

	if got := cellValue(t, f, SheetSummary, "B2"); got != "Acme SpA" {
		t.Errorf("organization cell = %q", got)
	}
	if got := cellValue(t, f, SheetMateriality, "A2"); got != "No materiality assessments recorded." {
		t.Errorf("materiality empty state = %q", got)
	}
	if got := cellValue(t, f, SheetData, "A1"); got != "No material standards assessed." {
		t.Errorf("data empty state = %q", got)
	}
	if got := cellValue(t, f, SheetAudit, "A2"); got != "No entries recorded." {
		t.Errorf("audit empty state = %q", got)
	}
	if got := cellValue(t, f, SheetEvidence, "A2"); got != "No evidence attached." {
		t.Errorf("evidence empty state = %q", got)
	}
}

func TestBuildPopulatedReport(t *testing.T) {
	created := time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)

	data := Data{
		OrganizationName: "Acme SpA",
		Sector:           "Manufacturing",
		ReportingYear:    2025,
		GeneratedAt:      time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
		Summary: models.ProjectSummary{
			AssessedStandards:  2,
			MaterialStandards:  1,
			ActiveRequirements: 4,
			TotalEntries:       2,
			ApprovedEntries:    1,
			PendingEntries:     1,
		},
		Assessments: []models.MaterialityAssessment{
			{StandardCode: "E1", TopicName: "Climate Change", ImpactScore: 4, FinancialScore: 2.5, IsMaterial: true},
			{StandardCode: "S1", TopicName: "Own Workforce", ImpactScore: 2, FinancialScore: 1, IsMaterial: false},
		},
		Sections: []StandardSection{
			{
				StandardCode: "E1",
				TopicName:    "Climate Change",
				Requirements: []FilledRequirement{
					{Code: "E1-6", Label: "Gross GHG emissions", Value: "1200", DataType: "Mass (tonnes CO2e)", Status: "Approved"},
				},
			},
			{StandardCode: "S1", TopicName: "Own Workforce"},
		},
		AuditEntries: []models.DataPointEntry{
			{Code: "E1-6", Value: "1200", Status: "Approved", EvidenceURL: strPtr("https://files.example.com/ghg.pdf"), CreatedAt: created},
			{Code: "E1-5", Value: "430", Status: "In Progress", CreatedAt: created},
		},
		Evidence: []EvidenceRow{
			{Code: "E1-6", Value: "1200", URL: "https://files.example.com/ghg.pdf"},
		},
	}

	f := roundTrip(t, data)

	// Materiality table carries one row per assessment with Yes/No.
	if got := cellValue(t, f, SheetMateriality, "A2"); got != "E1" {
		t.Errorf("materiality row 1 code = %q", got)
	}
	if got := cellValue(t, f, SheetMateriality, "E2"); got != "Yes" {
		t.Errorf("materiality row 1 material = %q", got)
	}
	if got := cellValue(t, f, SheetMateriality, "E3"); got != "No" {
		t.Errorf("materiality row 2 material = %q", got)
	}

	// Data section: heading, table header, one value row, then the
	// empty-state section for S1.
	if got := cellValue(t, f, SheetData, "A1"); got != "E1 - Climate Change" {
		t.Errorf("section heading = %q", got)
	}
	if got := cellValue(t, f, SheetData, "C3"); got != "1200" {
		t.Errorf("requirement value = %q", got)
	}
	if got := cellValue(t, f, SheetData, "A5"); got != "S1 - Own Workforce" {
		t.Errorf("second section heading = %q", got)
	}
	if got := cellValue(t, f, SheetData, "A6"); got != "No data collected for this standard yet." {
		t.Errorf("second section empty state = %q", got)
	}

	// Audit trail marks evidence presence.
	if got := cellValue(t, f, SheetAudit, "E2"); got != "Attached" {
		t.Errorf("audit evidence marker = %q", got)
	}
	if got := cellValue(t, f, SheetAudit, "E3"); got != "Missing" {
		t.Errorf("audit evidence marker = %q", got)
	}

	// Evidence registry.
	if got := cellValue(t, f, SheetEvidence, "C2"); got != "https://files.example.com/ghg.pdf" {
		t.Errorf("evidence url = %q", got)
	}

	// Summary KPIs.
	if got := cellValue(t, f, SheetSummary, "B9"); got != "1" {
		t.Errorf("material standards KPI = %q", got)
	}
}
