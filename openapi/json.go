package openapi

import (
	"bytes"
	"encoding/json"
	"strings"
)

// mergeExtensions marshals v, then merges the x- keys of ext into the
// resulting object. Non-extension keys in ext are ignored so a caller can
// never clobber a real field through the extension map.
func mergeExtensions(v any, ext map[string]any) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil || len(ext) == 0 {
		return base, err
	}
	merged := make(map[string]any)
	dec := json.NewDecoder(bytes.NewReader(base))
	dec.UseNumber()
	if err := dec.Decode(&merged); err != nil {
		return nil, err
	}
	for k, val := range ext {
		if strings.HasPrefix(k, "x-") {
			merged[k] = val
		}
	}
	return json.Marshal(merged)
}

// MarshalJSON implements json.Marshaler.
func (d Document) MarshalJSON() ([]byte, error) {
	type alias Document
	return mergeExtensions(alias(d), d.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (i Info) MarshalJSON() ([]byte, error) {
	type alias Info
	return mergeExtensions(alias(i), i.Extensions)
}

// MarshalJSON implements json.Marshaler. A schema with a non-empty Ref
// marshals as a bare $ref object.
func (s Schema) MarshalJSON() ([]byte, error) {
	if s.Ref != "" {
		return json.Marshal(map[string]string{"$ref": s.Ref})
	}
	type alias Schema
	return mergeExtensions(alias(s), s.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (p Paths) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Items)+len(p.Extensions))
	for k, v := range p.Items {
		out[k] = v
	}
	for k, v := range p.Extensions {
		if strings.HasPrefix(k, "x-") {
			out[k] = v
		}
	}
	return json.Marshal(out)
}

// MarshalJSON implements json.Marshaler.
func (o Operation) MarshalJSON() ([]byte, error) {
	type alias Operation
	return mergeExtensions(alias(o), o.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (p Parameter) MarshalJSON() ([]byte, error) {
	type alias Parameter
	return mergeExtensions(alias(p), p.Extensions)
}

// MarshalJSON implements json.Marshaler. The default response and the status
// code responses marshal as keys of a single object.
func (r Responses) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Codes)+len(r.Extensions)+1)
	for k, v := range r.Codes {
		out[k] = v
	}
	if r.Default != nil {
		out["default"] = r.Default
	}
	for k, v := range r.Extensions {
		if strings.HasPrefix(k, "x-") {
			out[k] = v
		}
	}
	return json.Marshal(out)
}

// MarshalJSON implements json.Marshaler. A response with a non-empty Ref
// marshals as a bare $ref object.
func (r Response) MarshalJSON() ([]byte, error) {
	if r.Ref != "" {
		return json.Marshal(map[string]string{"$ref": r.Ref})
	}
	type alias Response
	return mergeExtensions(alias(r), r.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (s SecurityScheme) MarshalJSON() ([]byte, error) {
	type alias SecurityScheme
	return mergeExtensions(alias(s), s.Extensions)
}
