package openapi

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Schema extensions read by the builder.
const (
	ExtWidget = "x-formview-widget"
	ExtRow    = "x-formview-row"
	ExtWeight = "x-formview-weight"
	ExtOrder  = "x-formview-order"
)

type placementHints struct {
	widget   string
	row      int
	weight   int
	order    int
	hasOrder bool
}

func readHints(ext map[string]any) placementHints {
	hints := placementHints{weight: 1}
	if len(ext) == 0 {
		return hints
	}
	hints.widget = toStringValue(ext[ExtWidget])
	if row, ok := toIntValue(ext[ExtRow]); ok && row > 0 {
		hints.row = row
	}
	if weight, ok := toIntValue(ext[ExtWeight]); ok && weight > 0 {
		hints.weight = weight
	}
	if order, ok := toIntValue(ext[ExtOrder]); ok {
		hints.order = order
		hints.hasOrder = true
	}
	return hints
}

func toIntValue(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
	case json.RawMessage:
		var n float64
		if err := json.Unmarshal(v, &n); err == nil {
			return toIntValue(n)
		}
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		if n, err := strconv.Atoi(trimmed); err == nil {
			return n, true
		}
	}
	return 0, false
}

func toStringValue(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.RawMessage:
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
