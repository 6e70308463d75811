// Package dataset loads the county master table and exposes its records
// with explicit missing-value semantics.
package dataset

import "encoding/json"

// Key identifies a numeric metric column in the county master table.
type Key string

const (
	KeyGDP           Key = "gdp"
	KeyPopulation    Key = "population"
	KeyAirportCount  Key = "airport_count"
	KeyEnplanements  Key = "enplanements"
	KeyPassengers    Key = "passengers"
	KeyDepartures    Key = "departures"
	KeyArrivals      Key = "arrivals"
	KeyFreight       Key = "freight"
	KeyMail          Key = "mail"
	KeySAFCentrality Key = "saf_degree_centrality"
	KeySAFFirmCount  Key = "saf_firm_count"
)

// numericColumns is the fixed whitelist of CSV columns coerced to numeric,
// in catalog order. Everything else stays text.
var numericColumns = []struct {
	Key    Key
	Column string
}{
	{KeyGDP, "gdp"},
	{KeyPopulation, "population"},
	{KeyAirportCount, "airport_count"},
	{KeyEnplanements, "enplanements"},
	{KeyPassengers, "passengers"},
	{KeyDepartures, "departures"},
	{KeyArrivals, "arrivals"},
	{KeyFreight, "freight"},
	{KeyMail, "mail"},
	{KeySAFCentrality, "Sustainable_Aviation_Fuels_degree_centrality"},
	{KeySAFFirmCount, "SAF_FIRM_COUNT"},
}

// MetricKeys returns the whitelisted metric keys in column order.
func MetricKeys() []Key {
	keys := make([]Key, 0, len(numericColumns))
	for _, c := range numericColumns {
		keys = append(keys, c.Key)
	}
	return keys
}

// Value is a numeric metric cell. Absent or unparseable source values are
// invalid, never zero.
type Value struct {
	Float float64
	Valid bool
}

// Some returns a present value.
func Some(f float64) Value { return Value{Float: f, Valid: true} }

// None returns a missing value.
func None() Value { return Value{} }

// MarshalJSON renders missing values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Float)
}

// CountyRecord is one row of the county master table. Records are built once
// at load time and never mutated.
type CountyRecord struct {
	GEOID      string
	CountyName string
	StateName  string
	Label      string // "<county>, <state>"
	Metrics    map[Key]Value
}

// Metric returns the named metric cell, missing if the key is unknown.
func (r CountyRecord) Metric(key Key) Value {
	return r.Metrics[key]
}
