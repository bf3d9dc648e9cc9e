package checks

import (
	"fmt"

	"artifact-planner/core/catalog"
	"artifact-planner/core/database"

	"gorm.io/gorm"
)

// ServerReport strictly types the result of a database schema check.
type ServerReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckServerIntegrity verifies the artifact_catalog table has every column
// the catalog database source maps.
func CheckServerIntegrity(db *gorm.DB) (*ServerReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	table := catalog.Row{}.TableName()
	report := &ServerReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	missing, err := database.MissingColumns(db, table, catalog.Columns())
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
		report.Matched = false
		return report, nil
	}

	tbl := TableReport{MissingColumns: []string{}, Status: "ok"}
	if len(missing) > 0 {
		tbl.MissingColumns = missing
		tbl.Status = "error"
		report.Matched = false
	}
	report.Tables[table] = tbl
	return report, nil
}
