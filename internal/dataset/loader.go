package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// requiredColumns must all be present in the CSV header. Their absence is a
// fatal load error; there is no partial-load mode.
var requiredColumns = []string{"GEOID", "COUNTY_NAME", "STATE_NAME"}

// Load reads the county master table from a CSV file.
func Load(path string) ([]CountyRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: load %s", path)
	}
	return records, nil
}

// Parse reads county records from CSV data. All cells are read as text and
// only the whitelisted metric columns are coerced to numeric; cells that fail
// to parse become missing values, never errors.
func Parse(r io.Reader) ([]CountyRecord, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // allow variable fields

	header, err := reader.Read()
	if err != nil {
		return nil, eris.Wrap(err, "dataset: read CSV header")
	}

	colIdx := mapColumns(header)
	for _, col := range requiredColumns {
		if _, ok := colIdx[strings.ToLower(col)]; !ok {
			return nil, eris.Errorf("dataset: missing required column %q", col)
		}
	}

	log := zap.L().With(zap.String("component", "dataset.loader"))

	var (
		records    []CountyRecord
		byGEOID    = make(map[string]int)
		duplicates int
		degenerate int
	)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "dataset: read CSV row")
		}

		geoid := padGEOID(getCol(row, colIdx, "GEOID"))
		if geoid == "00000" {
			continue // blank identifier, unjoinable
		}

		rec := CountyRecord{
			GEOID:      geoid,
			CountyName: getCol(row, colIdx, "COUNTY_NAME"),
			StateName:  getCol(row, colIdx, "STATE_NAME"),
			Metrics:    make(map[Key]Value, len(numericColumns)),
		}
		rec.Label = rec.CountyName + ", " + rec.StateName

		if rec.CountyName == "" || rec.StateName == "" {
			// Degenerate label; keep the row so its metrics stay usable.
			degenerate++
			log.Warn("county row with empty name field",
				zap.String("geoid", geoid),
				zap.String("county", rec.CountyName),
				zap.String("state", rec.StateName),
			)
		}

		for _, col := range numericColumns {
			rec.Metrics[col.Key] = parseValue(getCol(row, colIdx, col.Column))
		}

		if prev, ok := byGEOID[geoid]; ok {
			// Identifier must be unique; last row wins.
			duplicates++
			records[prev] = rec
			continue
		}
		byGEOID[geoid] = len(records)
		records = append(records, rec)
	}

	if duplicates > 0 {
		log.Warn("duplicate county identifiers in dataset", zap.Int("count", duplicates))
	}

	log.Info("county dataset loaded",
		zap.Int("rows", len(records)),
		zap.Int("degenerate_labels", degenerate),
	)

	return records, nil
}
