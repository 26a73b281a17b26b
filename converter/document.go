package converter

import (
	"github.com/swagtools/swagconvert/openapi"
	"github.com/swagtools/swagconvert/parser"
)

// convertDocument assembles the full OpenAPI 3.0 document. Every part of the
// source is visited exactly once; the input document is never mutated.
func (c *Converter) convertDocument(doc *parser.Document, result *ConversionResult) *openapi.Document {
	out := &openapi.Document{
		OpenAPI:    openapi.Version,
		Info:       convertInfo(doc.Info),
		Servers:    c.convertServers(doc, result),
		Paths:      c.convertPaths(doc.Paths, result),
		Security:   convertSecurityRequirements(doc.Security),
		Tags:       convertTags(doc.Tags),
		Extensions: doc.Extensions,
	}
	if doc.ExternalDocs != nil {
		out.ExternalDocs = convertExternalDocs(doc.ExternalDocs)
	}

	components := &openapi.Components{}
	hasComponents := false

	if len(doc.Definitions) > 0 {
		components.Schemas = make(map[string]*openapi.Schema, len(doc.Definitions))
		for name, ref := range doc.Definitions {
			components.Schemas[name] = c.convertSchemaRef(ref, "definitions."+name, result)
		}
		hasComponents = true
	}

	if len(doc.Responses) > 0 {
		components.Responses = make(map[string]*openapi.Response, len(doc.Responses))
		for name, ref := range doc.Responses {
			components.Responses[name] = c.convertResponseRef(ref, "responses."+name, result)
		}
		hasComponents = true
	}

	if len(doc.SecurityDefinitions) > 0 {
		components.SecuritySchemes = make(map[string]*openapi.SecurityScheme, len(doc.SecurityDefinitions))
		for name, scheme := range doc.SecurityDefinitions {
			components.SecuritySchemes[name] = convertSecurityScheme(scheme)
		}
		hasComponents = true
	}

	if hasComponents {
		out.Components = components
	}
	return out
}

func convertInfo(info *parser.Info) *openapi.Info {
	if info == nil {
		return nil
	}
	out := &openapi.Info{
		Title:          info.Title,
		Description:    info.Description,
		TermsOfService: info.TermsOfService,
		Version:        info.Version,
		Extensions:     info.Extensions,
	}
	if info.Contact != nil {
		out.Contact = &openapi.Contact{
			Name:  info.Contact.Name,
			URL:   info.Contact.URL,
			Email: info.Contact.Email,
		}
	}
	if info.License != nil {
		out.License = &openapi.License{
			Name: info.License.Name,
			URL:  info.License.URL,
		}
	}
	return out
}

func convertExternalDocs(ed *parser.ExternalDocs) *openapi.ExternalDocs {
	return &openapi.ExternalDocs{
		Description: ed.Description,
		URL:         ed.URL,
	}
}

func convertTags(tags []*parser.Tag) []*openapi.Tag {
	if len(tags) == 0 {
		return nil
	}
	out := make([]*openapi.Tag, 0, len(tags))
	for _, tag := range tags {
		t := &openapi.Tag{
			Name:        tag.Name,
			Description: tag.Description,
		}
		if tag.ExternalDocs != nil {
			t.ExternalDocs = convertExternalDocs(tag.ExternalDocs)
		}
		out = append(out, t)
	}
	return out
}

func convertSecurityRequirements(reqs []parser.SecurityRequirement) []openapi.SecurityRequirement {
	if len(reqs) == 0 {
		return nil
	}
	out := make([]openapi.SecurityRequirement, 0, len(reqs))
	for _, req := range reqs {
		converted := make(openapi.SecurityRequirement, len(req))
		for name, scopes := range req {
			converted[name] = scopes
		}
		out = append(out, converted)
	}
	return out
}
