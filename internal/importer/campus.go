package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/campuscard/recap/internal/model"
)

// CampusParser parses the card center "transaction detail" CSV export.
type CampusParser struct{}

const (
	campusNumFields  = 4
	campusColTime    = 0
	campusColType    = 1
	campusColService = 2
	campusColAmount  = 3
)

// Format returns the parser name.
func (p *CampusParser) Format() string { return "campus" }

// Parse reads a campus card CSV and returns raw Rows. Fields stay
// untouched strings; normalization and classification happen downstream.
func (p *CampusParser) Parse(r io.Reader) ([]model.Row, error) {
	cr := csv.NewReader(r)
	// Some terminals pad a trailing serial column, so field counts vary.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading campus CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []model.Row
	for i, rec := range records[1:] {
		if len(rec) < campusNumFields {
			return nil, fmt.Errorf("row %d: expected at least %d fields, got %d", i+2, campusNumFields, len(rec))
		}
		rows = append(rows, model.Row{
			DateTime: rec[campusColTime],
			Type:     rec[campusColType],
			Service:  rec[campusColService],
			Amount:   rec[campusColAmount],
		})
	}
	return rows, nil
}
