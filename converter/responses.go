package converter

import (
	"fmt"

	"github.com/swagtools/swagconvert/openapi"
	"github.com/swagtools/swagconvert/parser"
)

func (c *Converter) convertResponses(resps *parser.Responses, path string, result *ConversionResult) *openapi.Responses {
	if resps == nil {
		return nil
	}
	out := &openapi.Responses{
		Codes:      make(map[string]*openapi.Response, len(resps.Codes)),
		Extensions: resps.Extensions,
	}
	if resps.Default != nil {
		out.Default = c.convertResponseRef(resps.Default, path+".default", result)
	}
	for code, ref := range resps.Codes {
		out.Codes[code] = c.convertResponseRef(ref, path+"."+code, result)
	}
	return out
}

func (c *Converter) convertResponseRef(ref *parser.ResponseRef, path string, result *ConversionResult) *openapi.Response {
	if ref.IsRef() {
		rewritten := rewriteRef(ref.Ref)
		if rewritten == ref.Ref {
			c.addIssue(result, path,
				"reference is not a local pointer and was left unchanged", SeverityWarning)
		}
		return &openapi.Response{Ref: rewritten}
	}
	return c.convertResponse(ref.Response, path, result)
}

// convertResponse maps a response onto a single application/json media type.
// Swagger 2.0 responses have no per-media-type payloads, so the converted
// content always carries exactly one entry.
func (c *Converter) convertResponse(resp *parser.Response, path string, result *ConversionResult) *openapi.Response {
	media := &openapi.MediaType{}
	if resp.Schema != nil {
		media.Schema = c.convertSchemaRef(resp.Schema, path+".schema", result)
	}
	if len(resp.Examples) > 0 {
		media.Examples = make(map[string]*openapi.Example, len(resp.Examples))
		for name, value := range resp.Examples {
			media.Examples[name] = &openapi.Example{Value: value}
		}
	}

	out := &openapi.Response{
		Description: resp.Description,
		Content:     map[string]*openapi.MediaType{"application/json": media},
		Extensions:  resp.Extensions,
	}

	if len(resp.Headers) > 0 {
		out.Headers = make(map[string]*openapi.Header, len(resp.Headers))
		for name, header := range resp.Headers {
			schema, err := convertParameterSchema(header.Schema)
			if err != nil {
				c.addIssue(result, path+".headers."+name,
					fmt.Sprintf("header %q dropped: %v", name, err), SeverityWarning)
				continue
			}
			out.Headers[name] = &openapi.Header{
				Description: header.Description,
				Schema:      schema,
			}
		}
	}

	return out
}
