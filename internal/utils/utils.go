package utils

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CoerceHours normalizes a client-supplied hours value to a non-negative
// integer. Clients send it as a JSON number or a numeric string; anything
// non-numeric (or negative) counts as zero.
func CoerceHours(v any) int {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return 0
		}
		return int(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil || i < 0 {
			return 0
		}
		return int(i)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || i < 0 {
			return 0
		}
		return i
	default:
		return 0
	}
}

// TitleOrDefault falls back to "Untitled" for blank titles.
func TitleOrDefault(title string) string {
	if strings.TrimSpace(title) == "" {
		return "Untitled"
	}
	return title
}
