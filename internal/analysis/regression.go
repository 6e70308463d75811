// Package analysis implements the scatter regression and ranking views over
// the county dataset.
package analysis

import (
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/hidden-champions/county-atlas/internal/dataset"
)

// ErrUnfittable is returned when a regression has fewer than two
// complete-case rows or the independent variable has zero variance. The
// caller reports "slope unavailable" and may still plot the raw points.
var ErrUnfittable = eris.New("analysis: regression is unfittable")

// Point is one complete-case observation.
type Point struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Fit is an ordinary-least-squares line fitted to the complete cases.
// Intercept is computed alongside the slope but only the slope is surfaced
// in the views.
type Fit struct {
	Slope     float64
	Intercept float64
	N         int
}

// CompleteCases selects the rows where both metrics are present. Rows missing
// either value are excluded from the fit entirely, never imputed.
func CompleteCases(records []dataset.CountyRecord, x, y dataset.Key) []Point {
	points := make([]Point, 0, len(records))
	for _, rec := range records {
		xv := rec.Metric(x)
		yv := rec.Metric(y)
		if !xv.Valid || !yv.Valid {
			continue
		}
		points = append(points, Point{Label: rec.Label, X: xv.Float, Y: yv.Float})
	}
	return points
}

// FitOLS fits y = intercept + slope·x over the complete cases using the
// closed-form normal-equations solution, in full float64 precision.
func FitOLS(records []dataset.CountyRecord, x, y dataset.Key) (*Fit, error) {
	return FitPoints(CompleteCases(records, x, y))
}

// FitPoints fits the line to pre-selected points.
func FitPoints(points []Point) (*Fit, error) {
	n := len(points)
	if n < 2 {
		return nil, eris.Wrapf(ErrUnfittable, "%d complete-case rows", n)
	}

	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var sxx, sxy float64
	for _, p := range points {
		dx := p.X - meanX
		sxx += dx * dx
		sxy += dx * (p.Y - meanY)
	}

	if sxx == 0 {
		return nil, eris.Wrap(ErrUnfittable, "independent variable has zero variance")
	}

	slope := sxy / sxx
	return &Fit{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
		N:         n,
	}, nil
}

// FormatSlope renders a slope at 4 decimal places for display. Internal
// computation always keeps full precision.
func FormatSlope(slope float64) string {
	return strconv.FormatFloat(slope, 'f', 4, 64)
}
