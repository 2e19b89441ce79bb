package esrs

import (
	"testing"

	"esrs-platform/internal/models"
)

func uintPtr(v uint) *uint { return &v }

func TestDeriveStatus(t *testing.T) {
	dp := models.CatalogDatapoint{ID: 10, StandardCode: "E1", DatapointCode: "E1-1"}

	tests := []struct {
		name    string
		entries []models.DataPointEntry
		want    string
	}{
		{"no entries", nil, StatusNotStarted},
		{
			"unrelated entry",
			[]models.DataPointEntry{{CatalogID: uintPtr(99), Code: "E2-1", Value: "5"}},
			StatusNotStarted,
		},
		{
			"matched by catalog id without evidence",
			[]models.DataPointEntry{{CatalogID: uintPtr(10), Code: "other", Value: "120"}},
			StatusInProgress,
		},
		{
			"matched by code without evidence",
			[]models.DataPointEntry{{Code: "E1-1", Value: "120"}},
			StatusInProgress,
		},
		{
			"matched with evidence",
			[]models.DataPointEntry{{CatalogID: uintPtr(10), Value: "120", EvidenceURL: strPtr("https://files.example.com/a.pdf")}},
			StatusCompleted,
		},
		{
			"matched with empty evidence url",
			[]models.DataPointEntry{{CatalogID: uintPtr(10), Value: "120", EvidenceURL: strPtr("")}},
			StatusInProgress,
		},
		{
			"matched entry with empty value",
			[]models.DataPointEntry{{CatalogID: uintPtr(10), Value: ""}},
			StatusInProgress,
		},
		{
			"first match wins",
			[]models.DataPointEntry{
				{Code: "E1-1", Value: "120"},
				{CatalogID: uintPtr(10), Value: "old", EvidenceURL: strPtr("https://files.example.com/b.pdf")},
			},
			StatusInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(dp, tt.entries)
			if got != tt.want {
				t.Errorf("DeriveStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}
