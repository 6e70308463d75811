package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/hidden-champions/county-atlas/internal/analysis"
	"github.com/hidden-champions/county-atlas/internal/catalog"
	"github.com/hidden-champions/county-atlas/internal/dataset"
	"github.com/hidden-champions/county-atlas/internal/mapview"
)

const defaultRankLimit = 25

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"counties":  len(s.snap.Counties),
		"records":   len(s.snap.Records),
		"loaded_at": s.snap.LoadedAt.Format(time.RFC3339),
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"metrics": catalog.All(),
	})
}

// rankingRow mirrors the hidden-champions table columns.
type rankingRow struct {
	GEOID         string        `json:"geoid"`
	Label         string        `json:"label"`
	Value         dataset.Value `json:"value"`
	GDP           dataset.Value `json:"gdp"`
	Population    dataset.Value `json:"population"`
	AirportCount  dataset.Value `json:"airport_count"`
	SAFCentrality dataset.Value `json:"saf_degree_centrality"`
	SAFFirmCount  dataset.Value `json:"saf_firm_count"`
}

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	metric := dataset.Key(r.URL.Query().Get("metric"))
	if metric == "" {
		metric = dataset.KeySAFCentrality
	}

	entry, ok := catalog.Lookup(metric)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown metric")
		return
	}
	if !entry.Available {
		writeComingSoon(w, entry)
		return
	}

	limit := defaultRankLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	top := analysis.TopN(s.snap.Records, metric, limit)
	rows := make([]rankingRow, 0, len(top))
	for _, rec := range top {
		rows = append(rows, rankingRow{
			GEOID:         rec.GEOID,
			Label:         rec.Label,
			Value:         rec.Metric(metric),
			GDP:           rec.Metric(dataset.KeyGDP),
			Population:    rec.Metric(dataset.KeyPopulation),
			AirportCount:  rec.Metric(dataset.KeyAirportCount),
			SAFCentrality: rec.Metric(dataset.KeySAFCentrality),
			SAFFirmCount:  rec.Metric(dataset.KeySAFFirmCount),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"metric": metric,
		"label":  entry.Label,
		"rows":   rows,
	})
}

func (s *Server) handleScatter(w http.ResponseWriter, r *http.Request) {
	x := dataset.Key(r.URL.Query().Get("x"))
	y := dataset.Key(r.URL.Query().Get("y"))
	if x == "" {
		x = dataset.KeyGDP
	}
	if y == "" {
		y = dataset.KeySAFCentrality
	}

	for _, key := range []dataset.Key{x, y} {
		entry, ok := catalog.Lookup(key)
		if !ok || !entry.Available {
			writeError(w, http.StatusBadRequest, "metric not selectable for scatter")
			return
		}
	}

	points := analysis.CompleteCases(s.snap.Records, x, y)

	resp := map[string]interface{}{
		"x":      x,
		"y":      y,
		"n":      len(points),
		"points": points,
		"slope":  nil,
	}

	fit, err := analysis.FitPoints(points)
	switch {
	case err == nil:
		resp["slope"] = fit.Slope
		resp["slope_display"] = analysis.FormatSlope(fit.Slope)
		resp["intercept"] = fit.Intercept
	case eris.Is(err, analysis.ErrUnfittable):
		// Chart still renders the raw points, just without a trendline.
		resp["slope_reason"] = "slope unavailable"
	default:
		zap.L().Error("scatter fit failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "regression failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	metric := dataset.Key(chi.URLParam(r, "metric"))

	entry, ok := catalog.Lookup(metric)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown metric")
		return
	}
	if !entry.Available {
		writeComingSoon(w, entry)
		return
	}

	rows, err := mapview.Join(s.snap.Counties, s.snap.Records, metric)
	if err != nil {
		zap.L().Error("map join failed", zap.String("metric", string(metric)), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "map join failed")
		return
	}

	writeJSON(w, http.StatusOK, mapview.FeatureCollection(rows))
}

func writeComingSoon(w http.ResponseWriter, entry catalog.Entry) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "coming_soon",
		"metric": entry.Key,
		"label":  entry.Label,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
