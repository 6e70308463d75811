// Package boundary loads county polygons from a cartographic boundary
// shapefile and derives the 5-character GEOID join key.
package boundary

import (
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
)

// County is one county boundary feature.
type County struct {
	GEOID      string // state FIPS (2) + county FIPS (3), zero-padded
	StateFIPS  string
	CountyFIPS string
	Name       string
	Geom       *geom.MultiPolygon
}

// LoadShapefile reads county boundaries and derives the GEOID join key.
// Missing STATEFP or COUNTYFP attributes are a fatal load error.
func LoadShapefile(shpPath string) ([]County, error) {
	reader, err := shp.Open(shpPath)
	if err != nil {
		return nil, eris.Wrapf(err, "boundary: open shapefile %s", shpPath)
	}
	defer func() { _ = reader.Close() }()

	// Build field name → index map. DBF field names are NUL-padded.
	fields := reader.Fields()
	fieldIdx := make(map[string]int, len(fields))
	for i, f := range fields {
		name := strings.TrimRight(f.String(), "\x00")
		fieldIdx[strings.ToLower(name)] = i
	}

	stateIdx, ok := fieldIdx["statefp"]
	if !ok {
		return nil, eris.Errorf("boundary: shapefile %s missing STATEFP field", shpPath)
	}
	countyIdx, ok := fieldIdx["countyfp"]
	if !ok {
		return nil, eris.Errorf("boundary: shapefile %s missing COUNTYFP field", shpPath)
	}
	nameIdx, hasName := fieldIdx["name"]

	var counties []County
	var skipped int

	for reader.Next() {
		_, shape := reader.Shape()

		poly, ok := shape.(*shp.Polygon)
		if !ok {
			skipped++
			continue
		}
		mp := polygonToMultiPolygon(poly)
		if mp == nil {
			skipped++
			continue
		}

		stateFIPS := zeroPad(attribute(reader, stateIdx), 2)
		countyFIPS := zeroPad(attribute(reader, countyIdx), 3)

		c := County{
			GEOID:      stateFIPS + countyFIPS,
			StateFIPS:  stateFIPS,
			CountyFIPS: countyFIPS,
			Geom:       mp,
		}
		if hasName {
			c.Name = attribute(reader, nameIdx)
		}
		counties = append(counties, c)
	}

	if skipped > 0 {
		zap.L().Debug("boundary: skipped shapefile records",
			zap.String("path", shpPath),
			zap.Int("skipped", skipped),
		)
	}

	zap.L().Info("county boundaries loaded",
		zap.String("path", shpPath),
		zap.Int("counties", len(counties)),
	)

	return counties, nil
}

// attribute reads a DBF attribute with NUL padding and whitespace stripped.
func attribute(reader *shp.Reader, idx int) string {
	val := strings.TrimRight(reader.Attribute(idx), "\x00")
	return strings.TrimSpace(val)
}

// zeroPad left-pads s with zeros to the given width.
func zeroPad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
