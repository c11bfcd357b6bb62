package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads one numeric column of a CSV file with a header row.
// If column is empty the first column whose first data cell parses as a
// number is used. Cells that do not parse are skipped.
func LoadCSV(path, column string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) < 2 {
		return nil, errors.New("csv: no data rows")
	}
	header := recs[0]
	idx := -1
	if column != "" {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), column) {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, fmt.Errorf("csv: column %q not found", column)
		}
	} else {
		for i := range header {
			if i >= len(recs[1]) {
				break
			}
			if _, err := strconv.ParseFloat(strings.TrimSpace(recs[1][i]), 64); err == nil {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, errors.New("csv: no numeric column")
		}
	}
	var values []float64
	for _, row := range recs[1:] {
		if idx >= len(row) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, errors.New("csv: no valid values parsed")
	}
	return values, nil
}
