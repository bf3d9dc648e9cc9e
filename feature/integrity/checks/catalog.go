package checks

import (
	"fmt"

	"artifact-planner/core/catalog"
)

// CatalogReport summarizes a loaded catalog.
type CatalogReport struct {
	Items     int      `json:"items"`
	Artifacts int      `json:"artifacts"`
	Stones    int      `json:"stones"`
	Problems  []string `json:"problems"`
	Status    string   `json:"status"` // "ok", "error"
}

// CheckCatalog counts the catalog entries and flags entries the planner
// cannot use correctly.
func CheckCatalog(cat *catalog.Catalog) CatalogReport {
	report := CatalogReport{Problems: []string{}, Status: "ok"}

	for _, e := range cat.Entries() {
		report.Items++
		switch e.Kind {
		case catalog.KindArtifact:
			report.Artifacts++
			if e.Slots < 0 {
				report.Problems = append(report.Problems, fmt.Sprintf("%s: negative slot count %d", e.Key, e.Slots))
			}
		case catalog.KindStone:
			report.Stones++
			if e.Slots != 0 {
				report.Problems = append(report.Problems, fmt.Sprintf("%s: stone with %d slots", e.Key, e.Slots))
			}
		default:
			report.Problems = append(report.Problems, fmt.Sprintf("%s: unknown kind %q", e.Key, e.Kind))
		}
	}

	if len(report.Problems) > 0 {
		report.Status = "error"
	}
	return report
}
