package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/hidden-champions/county-atlas/internal/dataset"
)

func testRecords() []dataset.CountyRecord {
	return []dataset.CountyRecord{
		{
			GEOID: "06075",
			Label: "San Francisco, California",
			Metrics: map[dataset.Key]dataset.Value{
				dataset.KeySAFCentrality: dataset.Some(0.42),
				dataset.KeyGDP:           dataset.Some(501.2),
				dataset.KeyPopulation:    dataset.Some(815201),
			},
		},
		{
			GEOID: "17031",
			Label: "Cook, Illinois",
			Metrics: map[dataset.Key]dataset.Value{
				dataset.KeySAFCentrality: dataset.Some(0.31),
			},
		},
	}
}

func TestWriteRankings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rankings.xlsx")

	err := WriteRankings(path, testRecords(), dataset.KeySAFCentrality)
	require.NoError(t, err)

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)

	sheet := f.Sheets[0]
	assert.Equal(t, "Rankings", sheet.Name)
	require.Len(t, sheet.Rows, 3) // header + 2 counties

	// Ranked metric column first, then every remaining metric in column order.
	header := sheet.Rows[0]
	require.Len(t, header.Cells, 3+len(dataset.MetricKeys()))
	assert.Equal(t, "SAF Centrality", header.Cells[3].Value)
	assert.Equal(t, "GDP", header.Cells[4].Value)
	assert.Equal(t, "SAF Firm Count", header.Cells[len(header.Cells)-1].Value)

	first := sheet.Rows[1]
	assert.Equal(t, "06075", first.Cells[1].Value)
	assert.Equal(t, "San Francisco, California", first.Cells[2].Value)

	v, err := first.Cells[3].Float()
	require.NoError(t, err)
	assert.InDelta(t, 0.42, v, 1e-9)

	// Missing GDP for Cook stays blank.
	second := sheet.Rows[2]
	assert.Equal(t, "", second.Cells[4].Value)
}

func TestWriteRankings_UnknownMetric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rankings.xlsx")
	err := WriteRankings(path, testRecords(), dataset.Key("nope"))
	require.Error(t, err)
}
