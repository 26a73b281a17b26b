package parser

import "math"

// mapGetString extracts a string from m[key], or "" when absent or mistyped.
func mapGetString(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// mapGetBool extracts a bool from m[key], or false when absent or mistyped.
func mapGetBool(m map[string]any, key string) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return false
}

// mapGetStringSlice extracts a []string from m[key], handling the []any that
// yaml.Unmarshal / json.Unmarshal produce.
func mapGetStringSlice(m map[string]any, key string) []string {
	v, ok := m[key]
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// mapGetAnySlice extracts a []any from m[key].
func mapGetAnySlice(m map[string]any, key string) []any {
	v, ok := m[key]
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	return arr
}

// mapGetFloat64Ptr extracts a *float64 from m[key].
// Handles both float64 (from JSON) and int (from YAML) numeric values.
func mapGetFloat64Ptr(m map[string]any, key string) *float64 {
	v, ok := m[key]
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case uint64:
		f := float64(n)
		return &f
	case uint:
		f := float64(n)
		return &f
	default:
		return nil
	}
}

// mapGetIntPtr extracts a *int from m[key].
// Handles both float64 (from JSON) and int (from YAML) numeric values.
func mapGetIntPtr(m map[string]any, key string) *int {
	v, ok := m[key]
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case float64:
		i := int(n)
		return &i
	case int:
		return &n
	case int64:
		i := int(n)
		return &i
	case uint64:
		if n > math.MaxInt {
			return nil
		}
		i := int(n)
		return &i
	case uint:
		if n > math.MaxInt {
			return nil
		}
		i := int(n)
		return &i
	default:
		return nil
	}
}

// mapGetBoolPtr extracts a *bool from m[key].
func mapGetBoolPtr(m map[string]any, key string) *bool {
	v, ok := m[key]
	if !ok {
		return nil
	}
	if b, ok := v.(bool); ok {
		return &b
	}
	return nil
}

// mapGetStringMap extracts a map[string]string from m[key].
func mapGetStringMap(m map[string]any, key string) map[string]string {
	v, ok := m[key]
	if !ok {
		return nil
	}
	sub, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	result := make(map[string]string, len(sub))
	for k, val := range sub {
		if s, ok := val.(string); ok {
			result[k] = s
		}
	}
	return result
}

// mapGetAnyMap extracts a map[string]any from m[key].
func mapGetAnyMap(m map[string]any, key string) map[string]any {
	v, ok := m[key]
	if !ok {
		return nil
	}
	sub, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return sub
}

// decodeSecurityRequirements decodes a []any into []SecurityRequirement.
func decodeSecurityRequirements(arr []any) []SecurityRequirement {
	if arr == nil {
		return nil
	}
	result := make([]SecurityRequirement, 0, len(arr))
	for _, item := range arr {
		im, ok := item.(map[string]any)
		if !ok {
			continue
		}
		sr := make(SecurityRequirement, len(im))
		for sk, sv := range im {
			strs := []string{}
			if sarr, ok := sv.([]any); ok {
				for _, s := range sarr {
					if str, ok := s.(string); ok {
						strs = append(strs, str)
					}
				}
			}
			sr[sk] = strs
		}
		result = append(result, sr)
	}
	return result
}
