package mapview

import (
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/hidden-champions/county-atlas/internal/dataset"
)

// hoverKeys is the fixed set of context metrics attached to every feature for
// tooltip display, independent of the selected metric.
var hoverKeys = []dataset.Key{
	dataset.KeyGDP,
	dataset.KeyPopulation,
	dataset.KeyAirportCount,
	dataset.KeySAFCentrality,
	dataset.KeyDepartures,
	dataset.KeyArrivals,
	dataset.KeyPassengers,
	dataset.KeyEnplanements,
	dataset.KeyFreight,
	dataset.KeyMail,
}

// FeatureCollection encodes joined rows as GeoJSON. The selected metric is
// written under "value"; missing hover metrics are null properties.
func FeatureCollection(rows []Row) *geojson.FeatureCollection {
	features := make([]*geojson.Feature, 0, len(rows))

	for _, row := range rows {
		props := map[string]interface{}{
			"geoid": row.County.GEOID,
			"label": row.Record.Label,
			"value": row.Value,
		}
		for _, k := range hoverKeys {
			props[string(k)] = propValue(row.Record.Metric(k))
		}

		features = append(features, &geojson.Feature{
			ID:         row.County.GEOID,
			Geometry:   row.County.Geom,
			Properties: props,
		})
	}

	return &geojson.FeatureCollection{Features: features}
}

func propValue(v dataset.Value) interface{} {
	if !v.Valid {
		return nil
	}
	return v.Float
}
