package converter

import (
	"github.com/swagtools/swagconvert/openapi"
	"github.com/swagtools/swagconvert/parser"
)

// convertSchemaRef converts a reference-or-schema value. References are
// rewritten into the components namespace and never followed.
func (c *Converter) convertSchemaRef(ref *parser.SchemaRef, path string, result *ConversionResult) *openapi.Schema {
	if ref == nil {
		return nil
	}
	if ref.IsRef() {
		rewritten := rewriteRef(ref.Ref)
		if rewritten == ref.Ref {
			c.addIssue(result, path,
				"reference is not a local pointer and was left unchanged", SeverityWarning)
		}
		return &openapi.Schema{Ref: rewritten}
	}
	return c.convertSchema(ref.Schema, path, result)
}

func (c *Converter) convertSchema(schema parser.Schema, path string, result *ConversionResult) *openapi.Schema {
	switch s := schema.(type) {
	case *parser.ArraySchema:
		return c.convertArraySchema(s, path, result)
	case *parser.ObjectSchema:
		return c.convertObjectSchema(s, path, result)
	case *parser.AllOfSchema:
		return c.convertAllOfSchema(s, path, result)
	default:
		// Unreachable for documents produced by the parser
		return &openapi.Schema{}
	}
}

func (c *Converter) convertArraySchema(s *parser.ArraySchema, path string, result *ConversionResult) *openapi.Schema {
	return &openapi.Schema{
		Type:        widenNullable(s.Type, s.Extensions.Nullable()),
		Title:       s.Title,
		Description: s.Description,
		Items:       c.convertSchemaRef(s.Items, path+".items", result),
		Example:     s.Example,
		Default:     s.Default,
		MaxItems:    s.MaxItems,
		MinItems:    s.MinItems,
		UniqueItems: s.UniqueItems,
		XML:         convertXML(s.XML),
		Extensions:  s.Extensions.WithoutNullable(),
	}
}

func (c *Converter) convertObjectSchema(s *parser.ObjectSchema, path string, result *ConversionResult) *openapi.Schema {
	out := &openapi.Schema{
		Type:             widenNullable(s.Type, s.Extensions.Nullable()),
		Format:           s.Format,
		Title:            s.Title,
		Description:      s.Description,
		Default:          s.Default,
		MultipleOf:       s.MultipleOf,
		Maximum:          s.Maximum,
		ExclusiveMaximum: s.ExclusiveMaximum,
		Minimum:          s.Minimum,
		ExclusiveMinimum: s.ExclusiveMinimum,
		MaxLength:        s.MaxLength,
		MinLength:        s.MinLength,
		Pattern:          s.Pattern,
		MaxProperties:    s.MaxProperties,
		MinProperties:    s.MinProperties,
		Required:         s.Required,
		Enum:             s.Enum,
		ReadOnly:         s.ReadOnly,
		XML:              convertXML(s.XML),
		Example:          s.Example,
		Extensions:       s.Extensions.WithoutNullable(),
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*openapi.Schema, len(s.Properties))
		for name, ref := range s.Properties {
			out.Properties[name] = c.convertSchemaRef(ref, path+".properties."+name, result)
		}
	}

	if ap := s.AdditionalProperties; ap != nil {
		apPath := path + ".additionalProperties"
		switch {
		case ap.Schema != nil:
			out.AdditionalProperties = c.convertSchemaRef(ap.Schema, apPath, result)
		case ap.FreeForm != nil:
			out.AdditionalProperties = *ap.FreeForm
		default:
			// Unrecognized shape: degrade to an unconstrained schema
			out.AdditionalProperties = &openapi.Schema{}
			c.addIssue(result, apPath,
				"unrecognized additionalProperties value replaced with an empty schema", SeverityInfo)
		}
	}

	return out
}

func (c *Converter) convertAllOfSchema(s *parser.AllOfSchema, path string, result *ConversionResult) *openapi.Schema {
	out := &openapi.Schema{
		Title:       s.Title,
		Description: s.Description,
		Default:     s.Default,
		Example:     s.Example,
		Extensions:  s.Extensions.WithoutNullable(),
	}
	if s.Discriminator != "" {
		out.Discriminator = &openapi.Discriminator{PropertyName: s.Discriminator}
	}
	if s.Extensions.Nullable() {
		// An allOf node has no type tag to widen
		c.addIssue(result, path,
			"x-nullable on an allOf schema cannot be expressed and was dropped", SeverityInfo)
	}
	out.AllOf = make([]*openapi.Schema, 0, len(s.Items))
	for i, ref := range s.Items {
		out.AllOf = append(out.AllOf, c.convertSchemaRef(ref, indexedPath(path+".allOf", i), result))
	}
	return out
}

// widenNullable widens a type tag into a two-element type set when the
// schema was marked nullable. A type that already admits null is returned
// as is.
func widenNullable(typ any, nullable bool) any {
	if !nullable || typ == nil {
		return typ
	}
	switch t := typ.(type) {
	case string:
		if t == "null" {
			return t
		}
		return []string{t, "null"}
	case []any:
		for _, v := range t {
			if v == "null" {
				return t
			}
		}
		return append(append([]any{}, t...), "null")
	case []string:
		for _, v := range t {
			if v == "null" {
				return t
			}
		}
		return append(append([]string{}, t...), "null")
	default:
		return typ
	}
}

func convertXML(xml *parser.XML) *openapi.XML {
	if xml == nil {
		return nil
	}
	return &openapi.XML{
		Name:      xml.Name,
		Namespace: xml.Namespace,
		Prefix:    xml.Prefix,
		Attribute: xml.Attribute,
		Wrapped:   xml.Wrapped,
	}
}
