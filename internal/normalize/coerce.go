package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// The backend is loosely typed: numbers arrive as float64, string or int
// depending on the endpoint, booleans as bool or 0/1. These helpers coerce
// with a fallback instead of erroring so every normalizer stays total.

func pick(rec map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := rec[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
		if f, err := n.Float64(); err == nil {
			return int(f)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return int(f)
		}
	case bool:
		if n {
			return 1
		}
	}
	return 0
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	case bool:
		if n {
			return 1
		}
	}
	return 0
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	}
	return ""
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case int:
		return b != 0
	case int64:
		return b != 0
	case string:
		return b == "1" || strings.EqualFold(b, "true")
	}
	return false
}

func intField(rec map[string]any, keys ...string) int {
	if v, ok := pick(rec, keys...); ok {
		return asInt(v)
	}
	return 0
}

func floatField(rec map[string]any, keys ...string) float64 {
	if v, ok := pick(rec, keys...); ok {
		return asFloat(v)
	}
	return 0
}

func strField(rec map[string]any, keys ...string) string {
	if v, ok := pick(rec, keys...); ok {
		return asString(v)
	}
	return ""
}

func boolField(rec map[string]any, keys ...string) bool {
	if v, ok := pick(rec, keys...); ok {
		return asBool(v)
	}
	return false
}

// optIntField is for nullable numeric fields: absent or null stays nil rather
// than collapsing to zero.
func optIntField(rec map[string]any, keys ...string) *int {
	if v, ok := pick(rec, keys...); ok {
		n := asInt(v)
		return &n
	}
	return nil
}

// zeroDate is the backend's "unset" timestamp sentinel.
const zeroDate = "0000-00-00 00:00:00"

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// timeField parses a timestamp field, mapping absence, the zero-date sentinel
// and unparseable values to nil.
func timeField(rec map[string]any, keys ...string) *time.Time {
	v, ok := pick(rec, keys...)
	if !ok {
		return nil
	}
	if t, isTime := v.(time.Time); isTime {
		return &t
	}
	s := strings.TrimSpace(asString(v))
	if s == "" || s == zeroDate {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
