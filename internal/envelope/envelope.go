// Package envelope strips the backend's inconsistent response envelopes.
//
// Depending on the endpoint the API returns a bare array, {"matches": [...]},
// or {"match": {...}}. Callers pass the candidate keys they accept and always
// get back a flat record or list of records, never raw JSON shapes.
package envelope

// UnwrapArray extracts a list of records from a decoded JSON body. If data is
// itself an array it is returned as-is; if it is an object, the first
// candidate key holding an array wins. Anything else yields an empty list.
func UnwrapArray(data any, keys ...string) []map[string]any {
	switch v := data.(type) {
	case []any:
		return toRecords(v)
	case []map[string]any:
		return v
	case map[string]any:
		for _, key := range keys {
			if arr, ok := v[key].([]any); ok {
				return toRecords(arr)
			}
			if recs, ok := v[key].([]map[string]any); ok {
				return recs
			}
		}
	}
	return []map[string]any{}
}

// UnwrapObject extracts a single record from a decoded JSON body. Arrays yield
// their first element, objects yield the first candidate key holding a nested
// object, and an object matching no candidate key is assumed to already be the
// payload. nil and non-object input yield nil.
func UnwrapObject(data any, keys ...string) map[string]any {
	switch v := data.(type) {
	case []any:
		if len(v) == 0 {
			return nil
		}
		rec, _ := v[0].(map[string]any)
		return rec
	case []map[string]any:
		if len(v) == 0 {
			return nil
		}
		return v[0]
	case map[string]any:
		for _, key := range keys {
			if rec, ok := v[key].(map[string]any); ok {
				return rec
			}
		}
		return v
	}
	return nil
}

func toRecords(arr []any) []map[string]any {
	records := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		if rec, ok := item.(map[string]any); ok {
			records = append(records, rec)
		}
	}
	return records
}
