// Package mapview joins county boundaries to dataset records for choropleth
// rendering.
package mapview

import (
	"github.com/rotisserie/eris"

	"github.com/hidden-champions/county-atlas/internal/boundary"
	"github.com/hidden-champions/county-atlas/internal/catalog"
	"github.com/hidden-champions/county-atlas/internal/dataset"
)

// ErrMetricUnavailable is returned when a coming-soon metric is selected.
// The caller renders the placeholder message instead of a map.
var ErrMetricUnavailable = eris.New("mapview: metric not yet available")

// Row is one renderable county: a boundary matched to its record, with the
// selected metric present.
type Row struct {
	County boundary.County
	Record dataset.CountyRecord
	Value  float64
}

// Join left-joins boundaries to records by GEOID, then drops rows where the
// selected metric is missing. Inputs are never mutated and the result order
// follows the boundary order, so the same inputs always produce the same
// rows. An empty result is valid and means "no data for this selection".
func Join(counties []boundary.County, records []dataset.CountyRecord, metric dataset.Key) ([]Row, error) {
	entry, ok := catalog.Lookup(metric)
	if !ok {
		return nil, eris.Errorf("mapview: unknown metric %q", metric)
	}
	if !entry.Available {
		return nil, eris.Wrapf(ErrMetricUnavailable, "metric %q", metric)
	}

	byGEOID := make(map[string]int, len(records))
	for i, rec := range records {
		byGEOID[rec.GEOID] = i
	}

	rows := make([]Row, 0, len(counties))
	for _, c := range counties {
		i, ok := byGEOID[c.GEOID]
		if !ok {
			continue // unmatched boundary: record columns would be null
		}
		rec := records[i]
		v := rec.Metric(metric)
		if !v.Valid {
			continue
		}
		rows = append(rows, Row{County: c, Record: rec, Value: v.Float})
	}

	return rows, nil
}
