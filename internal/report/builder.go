// Package report renders the sustainability statement workbook that is
// downloaded from the report endpoint. One sheet per section: summary
// KPIs, materiality matrix, collected data per material standard, the
// full audit trail and the evidence registry. Empty sections state
// that explicitly instead of rendering nothing.
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"esrs-platform/internal/models"
)

const (
	SheetSummary     = "Summary"
	SheetMateriality = "Materiality"
	SheetData        = "Collected Data"
	SheetAudit       = "Audit Trail"
	SheetEvidence    = "Evidence"
)

// FilledRequirement is one collected value shown in the data section
type FilledRequirement struct {
	Code     string
	Label    string
	Value    string
	DataType string
	Status   string
}

// StandardSection groups the filled requirements of one material
// standard.
type StandardSection struct {
	StandardCode string
	TopicName    string
	Requirements []FilledRequirement
}

// EvidenceRow is one evidence registry line
type EvidenceRow struct {
	Code  string
	Value string
	URL   string
}

// Data carries everything the workbook renders
type Data struct {
	OrganizationName string
	Sector           string
	ReportingYear    int
	GeneratedAt      time.Time
	Summary          models.ProjectSummary
	Assessments      []models.MaterialityAssessment
	Sections         []StandardSection
	AuditEntries     []models.DataPointEntry
	Evidence         []EvidenceRow
}

// Filename returns the date-stamped attachment name for the workbook
func Filename(generatedAt time.Time) string {
	return fmt.Sprintf("esrs-report-%s.xlsx", generatedAt.Format("2006-01-02"))
}

// Build renders the workbook
func Build(data Data) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := buildSummary(f, data); err != nil {
		return nil, err
	}
	if err := buildMateriality(f, data.Assessments); err != nil {
		return nil, err
	}
	if err := buildSections(f, data.Sections); err != nil {
		return nil, err
	}
	if err := buildAudit(f, data.AuditEntries); err != nil {
		return nil, err
	}
	if err := buildEvidence(f, data.Evidence); err != nil {
		return nil, err
	}

	// excelize starts with a default sheet named Sheet1
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	if idx, err := f.GetSheetIndex(SheetSummary); err == nil {
		f.SetActiveSheet(idx)
	}

	return f, nil
}

func buildSummary(f *excelize.File, data Data) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"ESRS Sustainability Report"},
		{"Organization", data.OrganizationName},
		{"Sector", data.Sector},
		{"Reporting year", data.ReportingYear},
		{"Generated", data.GeneratedAt.Format("2006-01-02")},
		{},
		{"Key figures"},
		{"Standards assessed", data.Summary.AssessedStandards},
		{"Material standards", data.Summary.MaterialStandards},
		{"Active requirements", data.Summary.ActiveRequirements},
		{"Entries collected", data.Summary.TotalEntries},
		{"Entries approved", data.Summary.ApprovedEntries},
		{"Entries rejected", data.Summary.RejectedEntries},
		{"Entries pending review", data.Summary.PendingEntries},
	}

	return writeRows(f, SheetSummary, 1, rows)
}

func buildMateriality(f *excelize.File, assessments []models.MaterialityAssessment) error {
	if _, err := f.NewSheet(SheetMateriality); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Standard", "Topic", "Impact score", "Financial score", "Material"},
	}

	if len(assessments) == 0 {
		rows = append(rows, []interface{}{"No materiality assessments recorded."})
	}
	for _, a := range assessments {
		rows = append(rows, []interface{}{
			a.StandardCode, a.TopicName, a.ImpactScore, a.FinancialScore, yesNo(a.IsMaterial),
		})
	}

	return writeRows(f, SheetMateriality, 1, rows)
}

func buildSections(f *excelize.File, sections []StandardSection) error {
	if _, err := f.NewSheet(SheetData); err != nil {
		return err
	}

	rows := [][]interface{}{}
	if len(sections) == 0 {
		rows = append(rows, []interface{}{"No material standards assessed."})
	}

	for _, section := range sections {
		rows = append(rows, []interface{}{fmt.Sprintf("%s - %s", section.StandardCode, section.TopicName)})
		if len(section.Requirements) == 0 {
			rows = append(rows, []interface{}{"No data collected for this standard yet."}, []interface{}{})
			continue
		}

		rows = append(rows, []interface{}{"Code", "Requirement", "Value", "Data type", "Status"})
		for _, req := range section.Requirements {
			rows = append(rows, []interface{}{req.Code, req.Label, req.Value, req.DataType, req.Status})
		}
		rows = append(rows, []interface{}{})
	}

	return writeRows(f, SheetData, 1, rows)
}

func buildAudit(f *excelize.File, entries []models.DataPointEntry) error {
	if _, err := f.NewSheet(SheetAudit); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Date", "Code", "Value", "Status", "Evidence"},
	}

	if len(entries) == 0 {
		rows = append(rows, []interface{}{"No entries recorded."})
	}
	for _, e := range entries {
		evidence := "Missing"
		if e.EvidenceURL != nil && *e.EvidenceURL != "" {
			evidence = "Attached"
		}
		rows = append(rows, []interface{}{
			e.CreatedAt.Format("2006-01-02"), e.Code, e.Value, e.Status, evidence,
		})
	}

	return writeRows(f, SheetAudit, 1, rows)
}

func buildEvidence(f *excelize.File, evidence []EvidenceRow) error {
	if _, err := f.NewSheet(SheetEvidence); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Code", "Value", "Evidence URL"},
	}

	if len(evidence) == 0 {
		rows = append(rows, []interface{}{"No evidence attached."})
	}
	for _, row := range evidence {
		rows = append(rows, []interface{}{row.Code, row.Value, row.URL})
	}

	return writeRows(f, SheetEvidence, 1, rows)
}

func writeRows(f *excelize.File, sheet string, startRow int, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, startRow+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
