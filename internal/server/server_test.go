package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/hidden-champions/county-atlas/internal/atlas"
	"github.com/hidden-champions/county-atlas/internal/boundary"
	"github.com/hidden-champions/county-atlas/internal/config"
	"github.com/hidden-champions/county-atlas/internal/dataset"
)

func testSnapshot() *atlas.Snapshot {
	mp := geom.NewMultiPolygon(geom.XY)
	mp.SetSRID(4326)
	poly := geom.NewPolygon(geom.XY)
	_ = poly.Push(geom.NewLinearRingFlat(geom.XY, []float64{0, 0, 0, 1, 1, 1, 1, 0, 0, 0}))
	_ = mp.Push(poly)

	return &atlas.Snapshot{
		Records: []dataset.CountyRecord{
			{
				GEOID: "06075",
				Label: "San Francisco, California",
				Metrics: map[dataset.Key]dataset.Value{
					dataset.KeyGDP:           dataset.Some(501.2),
					dataset.KeyPopulation:    dataset.Some(815201),
					dataset.KeySAFCentrality: dataset.Some(0.42),
				},
			},
			{
				GEOID: "17031",
				Label: "Cook, Illinois",
				Metrics: map[dataset.Key]dataset.Value{
					dataset.KeyGDP:           dataset.Some(398.1),
					dataset.KeyPopulation:    dataset.Some(5150233),
					dataset.KeySAFCentrality: dataset.Some(0.31),
				},
			},
		},
		Counties: []boundary.County{
			{GEOID: "06075", StateFIPS: "06", CountyFIPS: "075", Geom: mp},
		},
		LoadedAt: time.Now().UTC(),
	}
}

func testServer() *Server {
	return New(testSnapshot(), config.ServerConfig{
		Port:      0,
		RateLimit: 1000,
		RateBurst: 1000,
	})
}

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	testServer().Router().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	rec := get(t, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(1), body["counties"])
	assert.Equal(t, float64(2), body["records"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	loaded, err := time.Parse(time.RFC3339, body["loaded_at"].(string))
	require.NoError(t, err)
	assert.False(t, loaded.IsZero())
}

func TestMetrics(t *testing.T) {
	rec := get(t, "/api/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	metrics := decode(t, rec)["metrics"].([]interface{})
	assert.Len(t, metrics, 14)

	first := metrics[0].(map[string]interface{})
	assert.Equal(t, "saf_degree_centrality", first["key"])
	assert.Equal(t, true, first["available"])
}

func TestRankings_Default(t *testing.T) {
	rec := get(t, "/api/rankings")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "saf_degree_centrality", body["metric"])

	rows := body["rows"].([]interface{})
	require.Len(t, rows, 2)
	top := rows[0].(map[string]interface{})
	assert.Equal(t, "06075", top["geoid"])
	assert.Equal(t, 0.42, top["value"])
}

func TestRankings_Limit(t *testing.T) {
	rec := get(t, "/api/rankings?metric=gdp&limit=1")
	require.Equal(t, http.StatusOK, rec.Code)

	rows := decode(t, rec)["rows"].([]interface{})
	require.Len(t, rows, 1)
	assert.Equal(t, "San Francisco, California", rows[0].(map[string]interface{})["label"])
}

func TestRankings_UnknownMetric(t *testing.T) {
	rec := get(t, "/api/rankings?metric=nope")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRankings_InvalidLimit(t *testing.T) {
	rec := get(t, "/api/rankings?limit=frog")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRankings_PlaceholderMetric(t *testing.T) {
	rec := get(t, "/api/rankings?metric=hydrogen")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "coming_soon", body["status"])
	assert.NotContains(t, body, "rows")
}

func TestScatter(t *testing.T) {
	rec := get(t, "/api/scatter?x=gdp&y=saf_degree_centrality")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, float64(2), body["n"])
	require.NotNil(t, body["slope"])
	assert.NotEmpty(t, body["slope_display"])
	assert.Contains(t, body, "intercept")
}

func TestScatter_UnfittableStillReturnsPoints(t *testing.T) {
	// population vs gdp over one county after filtering gives two points, so
	// force a degenerate case with a single-record server.
	snap := testSnapshot()
	snap.Records = snap.Records[:1]
	srv := New(snap, config.ServerConfig{RateLimit: 1000, RateBurst: 1000})

	req := httptest.NewRequest(http.MethodGet, "/api/scatter?x=gdp&y=population", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Nil(t, body["slope"])
	assert.Equal(t, "slope unavailable", body["slope_reason"])
	assert.Len(t, body["points"].([]interface{}), 1)
}

func TestScatter_PlaceholderRejected(t *testing.T) {
	rec := get(t, "/api/scatter?x=hydrogen&y=gdp")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMap(t *testing.T) {
	rec := get(t, "/api/map/gdp")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "FeatureCollection", body["type"])

	features := body["features"].([]interface{})
	require.Len(t, features, 1)
	props := features[0].(map[string]interface{})["properties"].(map[string]interface{})
	assert.Equal(t, 501.2, props["value"])
	assert.Equal(t, "San Francisco, California", props["label"])
}

func TestMap_PlaceholderMetric(t *testing.T) {
	rec := get(t, "/api/map/ccs")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "coming_soon", decode(t, rec)["status"])
}

func TestMap_UnknownMetric(t *testing.T) {
	rec := get(t, "/api/map/nope")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimit(t *testing.T) {
	srv := New(testSnapshot(), config.ServerConfig{RateLimit: 1, RateBurst: 1})
	router := srv.Router()

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
