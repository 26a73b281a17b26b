package converter

import (
	"fmt"

	"github.com/swagtools/swagconvert/openapi"
	"github.com/swagtools/swagconvert/parser"
)

func indexedPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func (c *Converter) convertPaths(paths parser.Paths, result *ConversionResult) *openapi.Paths {
	out := &openapi.Paths{
		Items:      make(map[string]*openapi.PathItem, len(paths.Items)),
		Extensions: paths.Extensions,
	}
	for pattern, item := range paths.Items {
		out.Items[pattern] = c.convertPathItem(item, "paths."+pattern, result)
	}
	return out
}

func (c *Converter) convertPathItem(item *parser.PathItem, path string, result *ConversionResult) *openapi.PathItem {
	out := &openapi.PathItem{}

	verbs := []struct {
		name   string
		source *parser.Operation
		target **openapi.Operation
	}{
		{"get", item.Get, &out.Get},
		{"put", item.Put, &out.Put},
		{"post", item.Post, &out.Post},
		{"delete", item.Delete, &out.Delete},
		{"options", item.Options, &out.Options},
		{"head", item.Head, &out.Head},
		{"patch", item.Patch, &out.Patch},
		{"trace", item.Trace, &out.Trace},
	}
	for _, v := range verbs {
		if v.source != nil {
			*v.target = c.convertOperation(v.source, path+"."+v.name, result)
		}
	}

	// Path-level parameters cannot carry a request body; body and formData
	// entries here have nowhere to go and are dropped.
	if len(item.Parameters) > 0 {
		params := make([]*openapi.Parameter, 0, len(item.Parameters))
		for i, param := range item.Parameters {
			paramPath := indexedPath(path+".parameters", i)
			if param.In == parser.ParamInBody || param.In == parser.ParamInFormData {
				c.addIssue(result, paramPath,
					fmt.Sprintf("%s parameter %q at path level has no OpenAPI 3.0 equivalent and was dropped", param.In, param.Name),
					SeverityWarning)
				continue
			}
			if converted := c.convertGenericParameter(param, paramPath, result); converted != nil {
				params = append(params, converted)
			}
		}
		out.Parameters = params
	}

	return out
}

func (c *Converter) convertOperation(op *parser.Operation, path string, result *ConversionResult) *openapi.Operation {
	out := &openapi.Operation{
		Tags:        op.Tags,
		Summary:     op.Summary,
		Description: op.Description,
		OperationID: op.OperationID,
		Deprecated:  op.Deprecated,
		Security:    convertSecurityRequirements(op.Security),
		Responses:   c.convertResponses(op.Responses, path+".responses", result),
		Extensions:  op.Extensions,
	}
	if op.ExternalDocs != nil {
		out.ExternalDocs = convertExternalDocs(op.ExternalDocs)
	}
	if len(op.Schemes) > 0 {
		c.addIssue(result, path+".schemes",
			"operation-level schemes have no OpenAPI 3.0 equivalent and were dropped", SeverityInfo)
	}

	params := make([]*openapi.Parameter, 0, len(op.Parameters))
	for i, param := range op.Parameters {
		paramPath := indexedPath(path+".parameters", i)
		switch param.In {
		case parser.ParamInBody:
			c.setRequestBody(out, result, paramPath, &openapi.RequestBody{
				Description: param.Description,
				Required:    param.Required,
				Content: map[string]*openapi.MediaType{
					"application/json": {
						Schema: c.convertSchemaRef(param.BodySchema, paramPath+".schema", result),
					},
				},
			})
		case parser.ParamInFormData:
			schema, err := convertParameterSchema(param.Schema)
			if err != nil {
				c.addIssueWithContext(result, paramPath,
					fmt.Sprintf("formData parameter %q dropped: %v", param.Name, err),
					"the request body for this operation may be incomplete")
				continue
			}
			c.setRequestBody(out, result, paramPath, &openapi.RequestBody{
				Description: param.Description,
				Required:    param.Required,
				Content: map[string]*openapi.MediaType{
					"application/x-www-form-urlencoded": {Schema: schema},
				},
			})
		default:
			if converted := c.convertGenericParameter(param, paramPath, result); converted != nil {
				params = append(params, converted)
			}
		}
	}
	out.Parameters = params

	return out
}

// setRequestBody installs a synthesized request body on the operation. When
// several parameters produce one, the last wins.
func (c *Converter) setRequestBody(op *openapi.Operation, result *ConversionResult, path string, rb *openapi.RequestBody) {
	if op.RequestBody != nil {
		c.addIssue(result, path,
			"operation declares multiple body-like parameters, the last one wins", SeverityWarning)
	}
	op.RequestBody = rb
}

// convertGenericParameter converts a query, header, or path parameter. A
// parameter whose schema cannot be expressed is dropped with a warning
// rather than failing the document.
func (c *Converter) convertGenericParameter(param *parser.Parameter, path string, result *ConversionResult) *openapi.Parameter {
	schema, err := convertParameterSchema(param.Schema)
	if err != nil {
		c.addIssue(result, path,
			fmt.Sprintf("parameter %q dropped: %v", param.Name, err), SeverityWarning)
		return nil
	}
	return &openapi.Parameter{
		Name:            param.Name,
		In:              param.In,
		Description:     param.Description,
		Required:        param.Required,
		AllowEmptyValue: param.Schema.AllowEmptyValue,
		Schema:          schema,
		Extensions:      param.Extensions.WithoutNullable(),
	}
}

// convertParameterSchema converts the inline schema-like shape of a non-body
// parameter or response header. Only the fields the target parameter schema
// can express are carried; an array shape without items is unconvertible.
func convertParameterSchema(ps *parser.ParameterSchema) (*openapi.Schema, error) {
	if ps == nil {
		return nil, fmt.Errorf("missing schema fields")
	}
	nullable := ps.Extensions.Nullable()
	if ps.Type == "array" {
		if ps.Items == nil {
			return nil, fmt.Errorf("array type declared without items")
		}
		items, err := convertParameterSchema(ps.Items)
		if err != nil {
			return nil, err
		}
		return &openapi.Schema{
			Type:     widenNullable(ps.Type, nullable),
			Items:    items,
			Default:  ps.Default,
			MaxItems: ps.MaxItems,
			MinItems: ps.MinItems,
		}, nil
	}
	return &openapi.Schema{
		Type:       widenNullable(ps.Type, nullable),
		Format:     ps.Format,
		Default:    ps.Default,
		Enum:       ps.Enum,
		MultipleOf: ps.MultipleOf,
		Maximum:    ps.Maximum,
		Minimum:    ps.Minimum,
		MaxLength:  ps.MaxLength,
		MinLength:  ps.MinLength,
		Pattern:    ps.Pattern,
	}, nil
}
