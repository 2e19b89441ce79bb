package esrs

import (
	"testing"

	"esrs-platform/internal/models"
)

func TestFilterCatalogByStandards(t *testing.T) {
	catalog := []models.CatalogDatapoint{
		{ID: 1, StandardCode: "ESRS E1", DatapointCode: "E1-6"},
		{ID: 2, StandardCode: "ESRS E1", DatapointCode: "E1-1"},
		{ID: 3, StandardCode: "ESRS S1", DatapointCode: "S1-1"},
		{ID: 4, StandardCode: "ESRS-2", DatapointCode: "ESRS 2.BP-1"},
		{ID: 5, StandardCode: "ESRS G1", DatapointCode: "G1-1"},
	}

	t.Run("filters by normalized membership and sorts by code", func(t *testing.T) {
		got := FilterCatalogByStandards(catalog, []string{"E1", "ESRS 2"})
		if len(got) != 3 {
			t.Fatalf("expected 3 datapoints, got %d", len(got))
		}
		wantOrder := []string{"E1-1", "E1-6", "ESRS 2.BP-1"}
		for i, code := range wantOrder {
			if got[i].DatapointCode != code {
				t.Errorf("position %d: got %q, want %q", i, got[i].DatapointCode, code)
			}
		}
	})

	t.Run("no material standards yields empty slice", func(t *testing.T) {
		got := FilterCatalogByStandards(catalog, nil)
		if got == nil {
			t.Fatal("expected empty slice, got nil")
		}
		if len(got) != 0 {
			t.Errorf("expected no datapoints, got %d", len(got))
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		got := FilterCatalogByStandards(nil, []string{"E1"})
		if len(got) != 0 {
			t.Errorf("expected no datapoints, got %d", len(got))
		}
	})
}

func TestStandardName(t *testing.T) {
	if got := StandardName("E1"); got != "Climate Change" {
		t.Errorf("StandardName(E1) = %q", got)
	}
	if got := StandardName("ESRS 2"); got != "General Disclosures" {
		t.Errorf("StandardName(ESRS 2) = %q", got)
	}
	if got := StandardName("X9"); got != "" {
		t.Errorf("StandardName(X9) = %q, want empty", got)
	}
	if len(Standards) != 11 {
		t.Errorf("expected 11 standards, got %d", len(Standards))
	}
}
