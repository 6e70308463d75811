// Package catalog defines the ordered set of selectable dashboard metrics.
package catalog

import "github.com/hidden-champions/county-atlas/internal/dataset"

// Entry describes one selectable metric. Placeholder technologies are listed
// but flagged unavailable; selecting one must never reach the joiner.
type Entry struct {
	Key       dataset.Key `json:"key"`
	Label     string      `json:"label"`
	Available bool        `json:"available"`
}

// Placeholder technology keys. They have no column in the dataset yet.
const (
	KeyBiomass  dataset.Key = "biomass"
	KeyCCS      dataset.Key = "ccs"
	KeyHydrogen dataset.Key = "hydrogen"
)

// entries is the catalog in dropdown order: SAF centrality first, then the
// economic and transport metrics, then coming-soon technologies.
var entries = []Entry{
	{dataset.KeySAFCentrality, "SAF Centrality", true},
	{dataset.KeyGDP, "GDP", true},
	{dataset.KeyPopulation, "Population", true},
	{dataset.KeyAirportCount, "Airport Count", true},
	{dataset.KeyEnplanements, "Enplanements", true},
	{dataset.KeyPassengers, "Passengers", true},
	{dataset.KeyDepartures, "Departures", true},
	{dataset.KeyArrivals, "Arrivals", true},
	{dataset.KeyFreight, "Freight", true},
	{dataset.KeyMail, "Mail", true},
	{dataset.KeySAFFirmCount, "SAF Firm Count", true},
	{KeyBiomass, "Biomass (Coming Soon)", false},
	{KeyCCS, "CCS (Coming Soon)", false},
	{KeyHydrogen, "Hydrogen (Coming Soon)", false},
}

// All returns every catalog entry in order.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Available returns only the selectable entries, in order.
func Available() []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Available {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds a catalog entry by key.
func Lookup(key dataset.Key) (Entry, bool) {
	for _, e := range entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}
