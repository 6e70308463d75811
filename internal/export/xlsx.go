// Package export writes dashboard views to spreadsheet files.
package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/hidden-champions/county-atlas/internal/catalog"
	"github.com/hidden-champions/county-atlas/internal/dataset"
)

// WriteRankings writes ranked county records to an XLSX workbook. Missing
// metric cells are left blank.
func WriteRankings(path string, records []dataset.CountyRecord, metric dataset.Key) error {
	entry, ok := catalog.Lookup(metric)
	if !ok {
		return eris.Errorf("export: unknown metric %q", metric)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Rankings")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	context := contextKeys(metric)

	header := sheet.AddRow()
	for _, h := range []string{"Rank", "GEOID", "County", entry.Label} {
		header.AddCell().Value = h
	}
	for _, k := range context {
		header.AddCell().Value = metricLabel(k)
	}

	for i, rec := range records {
		row := sheet.AddRow()
		row.AddCell().SetInt(i + 1)
		row.AddCell().Value = rec.GEOID
		row.AddCell().Value = rec.Label
		addMetricCell(row, rec.Metric(metric))
		for _, k := range context {
			addMetricCell(row, rec.Metric(k))
		}
	}

	if err := file.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}

// contextKeys returns every dataset metric except the ranked one, in column
// order, so the workbook carries the full table for each county.
func contextKeys(metric dataset.Key) []dataset.Key {
	var out []dataset.Key
	for _, k := range dataset.MetricKeys() {
		if k != metric {
			out = append(out, k)
		}
	}
	return out
}

func metricLabel(k dataset.Key) string {
	if e, ok := catalog.Lookup(k); ok {
		return e.Label
	}
	return string(k)
}

func addMetricCell(row *xlsx.Row, v dataset.Value) {
	cell := row.AddCell()
	if v.Valid {
		cell.SetFloat(v.Float)
	}
}
