package dataset

import (
	"strconv"
	"strings"
)

// mapColumns builds a case-insensitive column name to index map.
func mapColumns(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, col := range header {
		m[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return m
}

// getCol gets a column value by name from a CSV record, returning empty string if not found.
func getCol(record []string, colIdx map[string]int, name string) string {
	idx, ok := colIdx[strings.ToLower(name)]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// parseValue parses a string as a metric cell. Empty strings, census
// suppression flags, and anything else that fails to parse are missing.
func parseValue(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" || s == "N" || s == "S" || s == "D" || s == "*" || s == "**" || s == "#" {
		return None()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return None()
	}
	return Some(v)
}

// padGEOID left-pads a county identifier with zeros to the standard
// 5-character state+county width.
func padGEOID(s string) string {
	s = strings.TrimSpace(s)
	for len(s) < 5 {
		s = "0" + s
	}
	return s
}
