package esrs

import (
	"esrs-platform/internal/models"
)

// Completion states derived for a requirement. Derived on every read,
// never stored.
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// DeriveStatus computes the completion state of a catalog requirement
// from the entries collected for its project. An entry belongs to the
// requirement when it references the catalog row by ID or carries the
// same datapoint code. Any matched entry counts as at least in
// progress; a value with evidence attached means completed.
func DeriveStatus(dp models.CatalogDatapoint, entries []models.DataPointEntry) string {
	var match *models.DataPointEntry
	for i := range entries {
		e := &entries[i]
		if (e.CatalogID != nil && *e.CatalogID == dp.ID) || e.Code == dp.DatapointCode {
			match = e
			break
		}
	}
	if match == nil {
		return StatusNotStarted
	}
	if match.Value != "" && match.EvidenceURL != nil && *match.EvidenceURL != "" {
		return StatusCompleted
	}
	return StatusInProgress
}
