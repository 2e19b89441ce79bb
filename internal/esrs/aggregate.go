package esrs

import (
	"sort"

	"esrs-platform/internal/models"
)

// FilterCatalogByStandards keeps the datapoints whose normalized
// standard code appears in the given set and returns them ordered by
// datapoint code. Used as the fallback path when an exact-match catalog
// query comes back empty because the catalog stores unnormalized codes.
func FilterCatalogByStandards(catalog []models.CatalogDatapoint, normalizedCodes []string) []models.CatalogDatapoint {
	wanted := make(map[string]bool, len(normalizedCodes))
	for _, c := range normalizedCodes {
		wanted[c] = true
	}

	filtered := []models.CatalogDatapoint{}
	for _, dp := range catalog {
		if wanted[NormalizeStandardCode(dp.StandardCode)] {
			filtered = append(filtered, dp)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].DatapointCode < filtered[j].DatapointCode
	})
	return filtered
}
