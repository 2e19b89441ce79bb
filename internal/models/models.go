package models

import (
	"time"
)

// Role names used for both the global role on a profile and the
// per-project override on a membership.
const (
	RoleAdmin         = "Admin"
	RoleDataCollector = "DataCollector"
	RoleReviewer      = "Reviewer"
)

// Organization groups reporting projects
type Organization struct {
	ID        uint      `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Sector    *string   `json:"sector,omitempty" db:"sector"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Project is the unit of tenant isolation for all reporting data
type Project struct {
	ID             uint      `json:"id" db:"id"`
	OrganizationID uint      `json:"organization_id" db:"organization_id"`
	ReportingYear  int       `json:"reporting_year" db:"reporting_year"`
	Status         string    `json:"status" db:"status"` // active, archived
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// ProjectWithOrg extends Project with joined organization fields
type ProjectWithOrg struct {
	Project
	OrganizationName   string  `json:"organization_name"`
	OrganizationSector *string `json:"organization_sector,omitempty"`
}

// Profile represents a user identity with a global role
type Profile struct {
	ID           uint      `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     *string   `json:"full_name,omitempty" db:"full_name"`
	GlobalRole   string    `json:"global_role" db:"global_role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ProjectMember assigns a profile to a project with an overriding role
type ProjectMember struct {
	ID        uint      `json:"id" db:"id"`
	ProjectID uint      `json:"project_id" db:"project_id"`
	UserID    uint      `json:"user_id" db:"user_id"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ProjectMemberWithDetails includes profile and project information
type ProjectMemberWithDetails struct {
	ProjectMember
	UserEmail        string  `json:"user_email"`
	UserFullName     *string `json:"user_full_name,omitempty"`
	ReportingYear    int     `json:"reporting_year"`
	OrganizationName string  `json:"organization_name"`
}

// MaterialityAssessment holds one double-materiality evaluation per
// (project, normalized standard code). The standard code is stored
// normalized at write time so it can serve directly as the join key
// against the catalog.
type MaterialityAssessment struct {
	ID             uint      `json:"id" db:"id"`
	ProjectID      uint      `json:"project_id" db:"project_id"`
	StandardCode   string    `json:"standard_code" db:"standard_code"`
	TopicName      string    `json:"topic_name" db:"topic_name"`
	ImpactScore    float64   `json:"impact_score" db:"impact_score"`
	FinancialScore float64   `json:"financial_score" db:"financial_score"`
	IsMaterial     bool      `json:"is_material" db:"is_material"`
	Rationale      *string   `json:"rationale,omitempty" db:"rationale"`
	LastUpdated    time.Time `json:"last_updated" db:"last_updated"`
}

// CatalogDatapoint is one disclosure requirement from the ESRS
// reference catalog. Reference data, not project-scoped.
type CatalogDatapoint struct {
	ID                    uint    `json:"id" db:"id"`
	StandardCode          string  `json:"standard_code" db:"standard_code"`
	DatapointCode         string  `json:"datapoint_code" db:"datapoint_code"`
	Label                 *string `json:"label,omitempty" db:"label"`
	DataType              *string `json:"data_type,omitempty" db:"data_type"`
	DisclosureRequirement *string `json:"disclosure_requirement,omitempty" db:"disclosure_requirement"`
	IsVoluntary           bool    `json:"is_voluntary" db:"is_voluntary"`
}

// RequirementWithStatus extends a catalog datapoint with its derived
// completion status for a project. The status is recomputed on every
// read, never persisted.
type RequirementWithStatus struct {
	CatalogDatapoint
	CompletionStatus string `json:"completion_status"`
}

// DataPointEntry is a collected value for a catalog requirement,
// routed through the review workflow.
type DataPointEntry struct {
	ID          uint      `json:"id" db:"id"`
	ProjectID   uint      `json:"project_id" db:"project_id"`
	CatalogID   *uint     `json:"catalog_id,omitempty" db:"catalog_id"`
	Code        string    `json:"code" db:"code"`
	Label       *string   `json:"label,omitempty" db:"label"`
	Value       string    `json:"value" db:"value"`
	EvidenceURL *string   `json:"evidence_url,omitempty" db:"evidence_url"`
	Status      string    `json:"status" db:"status"` // In Progress, Approved, Rejected
	CreatedBy   *uint     `json:"created_by,omitempty" db:"created_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// AuditLog records administrative and workflow actions
type AuditLog struct {
	ID        uint      `json:"id" db:"id"`
	UserID    *uint     `json:"user_id,omitempty" db:"user_id"`
	Action    string    `json:"action" db:"action"`
	Resource  string    `json:"resource" db:"resource"`
	Details   string    `json:"details,omitempty" db:"details"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// StandardProgress summarizes requirement completion for one material
// standard within a project.
type StandardProgress struct {
	StandardCode string `json:"standard_code"`
	TopicName    string `json:"topic_name"`
	Total        int    `json:"total"`
	NotStarted   int    `json:"not_started"`
	InProgress   int    `json:"in_progress"`
	Completed    int    `json:"completed"`
}

// ProjectSummary holds the KPI counters shown on the project dashboard
// and in the report's first section.
type ProjectSummary struct {
	AssessedStandards  int `json:"assessed_standards"`
	MaterialStandards  int `json:"material_standards"`
	ActiveRequirements int `json:"active_requirements"`
	TotalEntries       int `json:"total_entries"`
	ApprovedEntries    int `json:"approved_entries"`
	RejectedEntries    int `json:"rejected_entries"`
	PendingEntries     int `json:"pending_entries"`
}

// EntriesByStandard groups audit entries under the standard extracted
// from their datapoint code.
type EntriesByStandard struct {
	StandardCode string           `json:"standard_code"`
	Entries      []DataPointEntry `json:"entries"`
}
