package parser

import "strings"

// ExtensionPrefix is the reserved prefix for specification extension keys.
const ExtensionPrefix = "x-"

// ExtensionNullable is the vendor extension Swagger 2.0 documents use to mark
// a schema as nullable; OpenAPI 3.x expresses the same thing through the type
// tag instead.
const ExtensionNullable = "x-nullable"

// Extensions is an open mapping of specification extension keys (fields
// starting with "x-") to arbitrary values. Non-extension keys are filtered
// out on decode.
type Extensions map[string]any

// isExtensionKey reports whether key carries the reserved extension prefix.
func isExtensionKey(key string) bool {
	return strings.HasPrefix(key, ExtensionPrefix)
}

// Nullable reports whether the x-nullable extension is present and true.
func (e Extensions) Nullable() bool {
	v, ok := e[ExtensionNullable]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// WithoutNullable returns the extensions with the x-nullable flag stripped,
// or nil if nothing else remains. The flag is consumed during conversion and
// must not propagate into the output document.
func (e Extensions) WithoutNullable() Extensions {
	if len(e) == 0 {
		return nil
	}
	out := make(Extensions, len(e))
	for k, v := range e {
		if k == ExtensionNullable {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// extractExtensions collects x-* keys from a map into an Extensions value.
// Returns nil if no extensions found (not an empty map).
func extractExtensions(m map[string]any) Extensions {
	var ext Extensions
	for k, v := range m {
		if isExtensionKey(k) {
			if ext == nil {
				ext = make(Extensions)
			}
			ext[k] = v
		}
	}
	return ext
}
