package models

import "time"

// Converters from the loosely typed documents the store hands back. Numbers
// arrive as int64 from Firestore but may be float64 after a JSON round trip,
// and slices may be []interface{} instead of []string.

func stringField(fields map[string]interface{}, key string) string {
	if s, ok := fields[key].(string); ok {
		return s
	}
	return ""
}

func boolField(fields map[string]interface{}, key string) bool {
	if b, ok := fields[key].(bool); ok {
		return b
	}
	return false
}

func intField(fields map[string]interface{}, key string) int64 {
	switch v := fields[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

func timeField(fields map[string]interface{}, key string) time.Time {
	if t, ok := fields[key].(time.Time); ok {
		return t
	}
	return time.Time{}
}

func stringSliceField(fields map[string]interface{}, key string) []string {
	switch v := fields[key].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}
