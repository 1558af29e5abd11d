package helpers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/evotrace-org/evotrace/engine"
	"github.com/evotrace-org/evotrace/schema"
)

// ============================================================================
// CSV HELPER — Parses tabular track data into an engine.History
// ============================================================================
// Consumers read the CSV from wherever it lives; this helper converts the
// raw bytes into the engine's column-oriented history. Headers are
// normalized through the schema catalog, unknown columns are kept under
// their normalized name. Histories are machine-produced, so a cell that
// does not parse as a number is an error, not something to skip.
// ============================================================================

// ParseCSV parses CSV bytes into a History.
func ParseCSV(data []byte) (*engine.History, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	keys := make([]string, len(headers))
	for i, h := range headers {
		keys[i] = schema.Normalize(h)
	}

	columns := make(map[string][]float64, len(keys))
	for _, key := range keys {
		columns[key] = []float64{}
	}

	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", row+1, err)
		}
		if len(record) != len(keys) {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", row+1, len(record), len(keys))
		}

		for i, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", row+1, keys[i], err)
			}
			columns[keys[i]] = append(columns[keys[i]], v)
		}
		row++
	}

	return engine.NewHistory(columns)
}
