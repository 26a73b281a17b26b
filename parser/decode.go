package parser

import "fmt"

// Structural decoding of the raw map[string]any tree produced by the JSON or
// YAML unmarshaler into the typed document model. Decode failures are fatal:
// the error carries the document path of the offending node and no partial
// document is returned.

// joinPath appends one path segment for error reporting.
func joinPath(parent, seg string) string {
	if parent == "" {
		return seg
	}
	return parent + "." + seg
}

// validateSchemes rejects transfer protocols outside the closed set the
// grammar allows. Validating here keeps server synthesis total: every scheme
// that survives the parse produces a server entry.
func validateSchemes(path string, schemes []string) error {
	for i, scheme := range schemes {
		switch scheme {
		case "http", "https", "ws", "wss":
		default:
			return fmt.Errorf("%s[%d]: unsupported scheme %q (must be one of http, https, ws, wss)", path, i, scheme)
		}
	}
	return nil
}

// decodeDocument decodes the document root.
func decodeDocument(m map[string]any) (*Document, error) {
	version, ok := m["swagger"].(string)
	if !ok {
		return nil, fmt.Errorf("missing required field %q at document root", "swagger")
	}
	if version != SwaggerVersion {
		return nil, fmt.Errorf("unsupported swagger version %q, only %q is supported", version, SwaggerVersion)
	}

	doc := &Document{
		Swagger:    version,
		Host:       mapGetString(m, "host"),
		BasePath:   mapGetString(m, "basePath"),
		Schemes:    mapGetStringSlice(m, "schemes"),
		Consumes:   mapGetStringSlice(m, "consumes"),
		Produces:   mapGetStringSlice(m, "produces"),
		Extensions: extractExtensions(m),
	}
	if err := validateSchemes("schemes", doc.Schemes); err != nil {
		return nil, err
	}

	infoMap, ok := m["info"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("missing required field %q at document root", "info")
	}
	doc.Info = decodeInfo(infoMap)

	pathsMap, ok := m["paths"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("missing required field %q at document root", "paths")
	}
	paths, err := decodePaths("paths", pathsMap)
	if err != nil {
		return nil, err
	}
	doc.Paths = paths

	if defs := mapGetAnyMap(m, "definitions"); defs != nil {
		doc.Definitions = make(map[string]*SchemaRef, len(defs))
		for name, v := range defs {
			path := joinPath("definitions", name)
			sub, ok := v.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s: expected a schema object", path)
			}
			ref, err := decodeSchemaRef(path, sub)
			if err != nil {
				return nil, err
			}
			doc.Definitions[name] = ref
		}
	}

	if resps := mapGetAnyMap(m, "responses"); resps != nil {
		doc.Responses = make(map[string]*ResponseRef, len(resps))
		for name, v := range resps {
			path := joinPath("responses", name)
			sub, ok := v.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s: expected a response object", path)
			}
			ref, err := decodeResponseRef(path, sub)
			if err != nil {
				return nil, err
			}
			doc.Responses[name] = ref
		}
	}

	if secDefs := mapGetAnyMap(m, "securityDefinitions"); secDefs != nil {
		doc.SecurityDefinitions = make(map[string]*SecurityScheme, len(secDefs))
		for name, v := range secDefs {
			path := joinPath("securityDefinitions", name)
			sub, ok := v.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s: expected a security scheme object", path)
			}
			scheme, err := decodeSecurityScheme(path, sub)
			if err != nil {
				return nil, err
			}
			doc.SecurityDefinitions[name] = scheme
		}
	}

	doc.Security = decodeSecurityRequirements(mapGetAnySlice(m, "security"))

	if tags := mapGetAnySlice(m, "tags"); tags != nil {
		doc.Tags = make([]*Tag, 0, len(tags))
		for _, item := range tags {
			if sub, ok := item.(map[string]any); ok {
				doc.Tags = append(doc.Tags, decodeTag(sub))
			}
		}
	}

	if ed := mapGetAnyMap(m, "externalDocs"); ed != nil {
		doc.ExternalDocs = decodeExternalDocs(ed)
	}

	return doc, nil
}

func decodeInfo(m map[string]any) *Info {
	info := &Info{
		Title:          mapGetString(m, "title"),
		Description:    mapGetString(m, "description"),
		TermsOfService: mapGetString(m, "termsOfService"),
		Version:        mapGetString(m, "version"),
		Extensions:     extractExtensions(m),
	}
	if c := mapGetAnyMap(m, "contact"); c != nil {
		info.Contact = &Contact{
			Name:  mapGetString(c, "name"),
			URL:   mapGetString(c, "url"),
			Email: mapGetString(c, "email"),
		}
	}
	if l := mapGetAnyMap(m, "license"); l != nil {
		info.License = &License{
			Name: mapGetString(l, "name"),
			URL:  mapGetString(l, "url"),
		}
	}
	return info
}

func decodeExternalDocs(m map[string]any) *ExternalDocs {
	return &ExternalDocs{
		Description: mapGetString(m, "description"),
		URL:         mapGetString(m, "url"),
	}
}

func decodeTag(m map[string]any) *Tag {
	tag := &Tag{
		Name:        mapGetString(m, "name"),
		Description: mapGetString(m, "description"),
	}
	if ed := mapGetAnyMap(m, "externalDocs"); ed != nil {
		tag.ExternalDocs = decodeExternalDocs(ed)
	}
	return tag
}

func decodePaths(path string, m map[string]any) (Paths, error) {
	paths := Paths{
		Items:      make(map[string]*PathItem, len(m)),
		Extensions: extractExtensions(m),
	}
	for k, v := range m {
		if isExtensionKey(k) {
			continue
		}
		itemPath := joinPath(path, k)
		sub, ok := v.(map[string]any)
		if !ok {
			return Paths{}, fmt.Errorf("%s: expected a path item object", itemPath)
		}
		item, err := decodePathItem(itemPath, sub)
		if err != nil {
			return Paths{}, err
		}
		paths.Items[k] = item
	}
	return paths, nil
}

func decodePathItem(path string, m map[string]any) (*PathItem, error) {
	item := &PathItem{}
	for verb, target := range map[string]**Operation{
		"get":     &item.Get,
		"put":     &item.Put,
		"post":    &item.Post,
		"delete":  &item.Delete,
		"options": &item.Options,
		"head":    &item.Head,
		"patch":   &item.Patch,
		"trace":   &item.Trace,
	} {
		sub, ok := m[verb].(map[string]any)
		if !ok {
			continue
		}
		op, err := decodeOperation(joinPath(path, verb), sub)
		if err != nil {
			return nil, err
		}
		*target = op
	}
	if params := mapGetAnySlice(m, "parameters"); params != nil {
		decoded, err := decodeParameters(joinPath(path, "parameters"), params)
		if err != nil {
			return nil, err
		}
		item.Parameters = decoded
	}
	return item, nil
}

func decodeOperation(path string, m map[string]any) (*Operation, error) {
	op := &Operation{
		Tags:        mapGetStringSlice(m, "tags"),
		Summary:     mapGetString(m, "summary"),
		Description: mapGetString(m, "description"),
		OperationID: mapGetString(m, "operationId"),
		Consumes:    mapGetStringSlice(m, "consumes"),
		Produces:    mapGetStringSlice(m, "produces"),
		Schemes:     mapGetStringSlice(m, "schemes"),
		Deprecated:  mapGetBool(m, "deprecated"),
		Security:    decodeSecurityRequirements(mapGetAnySlice(m, "security")),
		Extensions:  extractExtensions(m),
	}
	if err := validateSchemes(joinPath(path, "schemes"), op.Schemes); err != nil {
		return nil, err
	}
	if ed := mapGetAnyMap(m, "externalDocs"); ed != nil {
		op.ExternalDocs = decodeExternalDocs(ed)
	}
	if params := mapGetAnySlice(m, "parameters"); params != nil {
		decoded, err := decodeParameters(joinPath(path, "parameters"), params)
		if err != nil {
			return nil, err
		}
		op.Parameters = decoded
	}
	respMap, ok := m["responses"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: missing required field %q", path, "responses")
	}
	resps, err := decodeResponses(joinPath(path, "responses"), respMap)
	if err != nil {
		return nil, err
	}
	op.Responses = resps
	return op, nil
}

func decodeParameters(path string, arr []any) ([]*Parameter, error) {
	result := make([]*Parameter, 0, len(arr))
	for i, item := range arr {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		sub, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: expected a parameter object", itemPath)
		}
		p, err := decodeParameter(itemPath, sub)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

// decodeParameter validates the location/payload pairing: body parameters
// must carry a schema key, every other location carries the schema-like
// fields inline on the parameter object itself.
func decodeParameter(path string, m map[string]any) (*Parameter, error) {
	in := mapGetString(m, "in")
	switch in {
	case ParamInQuery, ParamInHeader, ParamInPath, ParamInFormData, ParamInBody:
	default:
		return nil, fmt.Errorf("%s: unknown parameter location %q", path, in)
	}

	p := &Parameter{
		Name:        mapGetString(m, "name"),
		Description: mapGetString(m, "description"),
		Required:    mapGetBool(m, "required"),
		In:          in,
		Extensions:  extractExtensions(m),
	}
	if p.Name == "" {
		return nil, fmt.Errorf("%s: missing required field %q", path, "name")
	}

	if in == ParamInBody {
		sub, ok := m["schema"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: body parameter missing required field %q", path, "schema")
		}
		ref, err := decodeSchemaRef(joinPath(path, "schema"), sub)
		if err != nil {
			return nil, err
		}
		p.BodySchema = ref
		return p, nil
	}

	ps, err := decodeParameterSchema(path, m)
	if err != nil {
		return nil, err
	}
	p.Schema = ps
	return p, nil
}

func decodeParameterSchema(path string, m map[string]any) (*ParameterSchema, error) {
	typ := mapGetString(m, "type")
	if typ == "" {
		return nil, fmt.Errorf("%s: missing required field %q", path, "type")
	}
	ps := &ParameterSchema{
		Type:             typ,
		Format:           mapGetString(m, "format"),
		AllowEmptyValue:  mapGetBoolPtr(m, "allowEmptyValue"),
		CollectionFormat: mapGetString(m, "collectionFormat"),
		Default:          m["default"],
		Maximum:          mapGetFloat64Ptr(m, "maximum"),
		ExclusiveMaximum: mapGetBoolPtr(m, "exclusiveMaximum"),
		Minimum:          mapGetFloat64Ptr(m, "minimum"),
		ExclusiveMinimum: mapGetBoolPtr(m, "exclusiveMinimum"),
		MaxLength:        mapGetIntPtr(m, "maxLength"),
		MinLength:        mapGetIntPtr(m, "minLength"),
		Pattern:          mapGetString(m, "pattern"),
		MaxItems:         mapGetIntPtr(m, "maxItems"),
		MinItems:         mapGetIntPtr(m, "minItems"),
		UniqueItems:      mapGetBoolPtr(m, "uniqueItems"),
		Enum:             mapGetAnySlice(m, "enum"),
		MultipleOf:       mapGetFloat64Ptr(m, "multipleOf"),
		Extensions:       extractExtensions(m),
	}
	if items := mapGetAnyMap(m, "items"); items != nil {
		sub, err := decodeParameterSchema(joinPath(path, "items"), items)
		if err != nil {
			return nil, err
		}
		ps.Items = sub
	}
	return ps, nil
}

func decodeResponses(path string, m map[string]any) (*Responses, error) {
	resps := &Responses{
		Codes:      make(map[string]*ResponseRef),
		Extensions: extractExtensions(m),
	}
	for k, v := range m {
		if isExtensionKey(k) {
			continue
		}
		itemPath := joinPath(path, k)
		sub, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: expected a response object", itemPath)
		}
		ref, err := decodeResponseRef(itemPath, sub)
		if err != nil {
			return nil, err
		}
		if k == "default" {
			resps.Default = ref
		} else {
			resps.Codes[k] = ref
		}
	}
	return resps, nil
}

func decodeResponseRef(path string, m map[string]any) (*ResponseRef, error) {
	if ref, ok := m["$ref"].(string); ok {
		return &ResponseRef{Ref: ref}, nil
	}
	resp, err := decodeResponse(path, m)
	if err != nil {
		return nil, err
	}
	return &ResponseRef{Response: resp}, nil
}

func decodeResponse(path string, m map[string]any) (*Response, error) {
	desc, ok := m["description"].(string)
	if !ok {
		return nil, fmt.Errorf("%s: missing required field %q", path, "description")
	}
	resp := &Response{
		Description: desc,
		Examples:    mapGetAnyMap(m, "examples"),
		Extensions:  extractExtensions(m),
	}
	if schema := mapGetAnyMap(m, "schema"); schema != nil {
		ref, err := decodeSchemaRef(joinPath(path, "schema"), schema)
		if err != nil {
			return nil, err
		}
		resp.Schema = ref
	}
	if headers := mapGetAnyMap(m, "headers"); headers != nil {
		resp.Headers = make(map[string]*ParameterHeader, len(headers))
		for name, v := range headers {
			headerPath := joinPath(joinPath(path, "headers"), name)
			sub, ok := v.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s: expected a header object", headerPath)
			}
			ps, err := decodeParameterSchema(headerPath, sub)
			if err != nil {
				return nil, err
			}
			resp.Headers[name] = &ParameterHeader{
				Description: mapGetString(sub, "description"),
				Schema:      ps,
			}
		}
	}
	return resp, nil
}

// decodeSchemaRef distinguishes references from inline schemas by the
// presence of the "$ref" key. Sibling keys next to $ref are discarded.
func decodeSchemaRef(path string, m map[string]any) (*SchemaRef, error) {
	if ref, ok := m["$ref"].(string); ok {
		return &SchemaRef{Ref: ref}, nil
	}
	schema, err := decodeSchema(path, m)
	if err != nil {
		return nil, err
	}
	return &SchemaRef{Schema: schema}, nil
}

// decodeSchema resolves the structural variant of a schema node. The shapes
// are attempted in a fixed order and the first success wins:
//
//  1. Array: type == "array" and an items key
//  2. Object: a type key
//  3. AllOf: an allOf key
//
// A shape whose gate keys are present but whose body fails to decode falls
// through to the next shape; a node the Array parse rejected is retried as
// Object, where the items key is simply not read. When every attempted shape
// fails the first shape's error is reported, and a node matching none of the
// three is a fatal parse error.
func decodeSchema(path string, m map[string]any) (Schema, error) {
	var firstErr error
	_, hasItems := m["items"]
	if typ, ok := m["type"].(string); ok && typ == "array" && hasItems {
		s, err := decodeArraySchema(path, m)
		if err == nil {
			return s, nil
		}
		firstErr = err
	}
	if _, ok := m["type"]; ok {
		s, err := decodeObjectSchema(path, m)
		if err == nil {
			return s, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if _, ok := m["allOf"]; ok {
		s, err := decodeAllOfSchema(path, m)
		if err == nil {
			return s, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, fmt.Errorf("%s: schema matches no known shape (expected array, typed, or allOf)", path)
}

func decodeArraySchema(path string, m map[string]any) (*ArraySchema, error) {
	itemsMap, ok := m["items"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: array schema %q must be an object", path, "items")
	}
	items, err := decodeSchemaRef(joinPath(path, "items"), itemsMap)
	if err != nil {
		return nil, err
	}
	s := &ArraySchema{
		Type:        m["type"],
		Title:       mapGetString(m, "title"),
		Items:       items,
		Description: mapGetString(m, "description"),
		Example:     m["example"],
		Default:     m["default"],
		MaxItems:    mapGetIntPtr(m, "maxItems"),
		MinItems:    mapGetIntPtr(m, "minItems"),
		UniqueItems: mapGetBool(m, "uniqueItems"),
		Extensions:  extractExtensions(m),
	}
	if xml := mapGetAnyMap(m, "xml"); xml != nil {
		s.XML = decodeXML(xml)
	}
	return s, nil
}

func decodeObjectSchema(path string, m map[string]any) (*ObjectSchema, error) {
	s := &ObjectSchema{
		Type:             m["type"],
		Format:           mapGetString(m, "format"),
		Title:            mapGetString(m, "title"),
		Description:      mapGetString(m, "description"),
		Default:          m["default"],
		MultipleOf:       mapGetFloat64Ptr(m, "multipleOf"),
		Maximum:          mapGetFloat64Ptr(m, "maximum"),
		ExclusiveMaximum: mapGetFloat64Ptr(m, "exclusiveMaximum"),
		Minimum:          mapGetFloat64Ptr(m, "minimum"),
		ExclusiveMinimum: mapGetFloat64Ptr(m, "exclusiveMinimum"),
		MaxLength:        mapGetIntPtr(m, "maxLength"),
		MinLength:        mapGetIntPtr(m, "minLength"),
		Pattern:          mapGetString(m, "pattern"),
		MaxProperties:    mapGetIntPtr(m, "maxProperties"),
		MinProperties:    mapGetIntPtr(m, "minProperties"),
		Required:         mapGetStringSlice(m, "required"),
		Enum:             mapGetAnySlice(m, "enum"),
		ReadOnly:         mapGetBoolPtr(m, "readOnly"),
		Example:          m["example"],
		Extensions:       extractExtensions(m),
	}
	if props := mapGetAnyMap(m, "properties"); props != nil {
		s.Properties = make(map[string]*SchemaRef, len(props))
		for name, v := range props {
			propPath := joinPath(joinPath(path, "properties"), name)
			sub, ok := v.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s: expected a schema object", propPath)
			}
			ref, err := decodeSchemaRef(propPath, sub)
			if err != nil {
				return nil, err
			}
			s.Properties[name] = ref
		}
	}
	if ap, ok := m["additionalProperties"]; ok {
		s.AdditionalProperties = decodeAdditionalProperties(joinPath(path, "additionalProperties"), ap)
	}
	if xml := mapGetAnyMap(m, "xml"); xml != nil {
		s.XML = decodeXML(xml)
	}
	return s, nil
}

func decodeAllOfSchema(path string, m map[string]any) (*AllOfSchema, error) {
	arr, ok := m["allOf"].([]any)
	if !ok {
		return nil, fmt.Errorf("%s: %q must be an array", path, "allOf")
	}
	s := &AllOfSchema{
		Items:         make([]*SchemaRef, 0, len(arr)),
		Title:         mapGetString(m, "title"),
		Description:   mapGetString(m, "description"),
		Default:       m["default"],
		Example:       m["example"],
		Discriminator: mapGetString(m, "discriminator"),
		Extensions:    extractExtensions(m),
	}
	for i, item := range arr {
		itemPath := fmt.Sprintf("%s.allOf[%d]", path, i)
		sub, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: expected a schema object", itemPath)
		}
		ref, err := decodeSchemaRef(itemPath, sub)
		if err != nil {
			return nil, err
		}
		s.Items = append(s.Items, ref)
	}
	return s, nil
}

// decodeAdditionalProperties never fails. A value that is neither a boolean
// nor a decodable schema is retained as the Invalid sentinel and degraded
// downstream instead of failing the document.
func decodeAdditionalProperties(path string, v any) *AdditionalProperties {
	switch val := v.(type) {
	case bool:
		return &AdditionalProperties{FreeForm: &val}
	case map[string]any:
		ref, err := decodeSchemaRef(path, val)
		if err != nil {
			return &AdditionalProperties{Invalid: true}
		}
		return &AdditionalProperties{Schema: ref}
	default:
		return &AdditionalProperties{Invalid: true}
	}
}

func decodeXML(m map[string]any) *XML {
	return &XML{
		Name:      mapGetString(m, "name"),
		Namespace: mapGetString(m, "namespace"),
		Prefix:    mapGetString(m, "prefix"),
		Attribute: mapGetBool(m, "attribute"),
		Wrapped:   mapGetBool(m, "wrapped"),
	}
}

// decodeSecurityScheme accepts oauth2 schemes only; the flow tag selects one
// of four variants, each with its own required endpoint URLs.
func decodeSecurityScheme(path string, m map[string]any) (*SecurityScheme, error) {
	typ := mapGetString(m, "type")
	if typ != "oauth2" {
		return nil, fmt.Errorf("%s: unsupported security scheme type %q, only %q is supported", path, typ, "oauth2")
	}
	flow := mapGetString(m, "flow")
	authURL := mapGetString(m, "authorizationUrl")
	tokenURL := mapGetString(m, "tokenUrl")

	switch flow {
	case FlowImplicit:
		if authURL == "" {
			return nil, fmt.Errorf("%s: %s flow missing required field %q", path, flow, "authorizationUrl")
		}
	case FlowPassword, FlowApplication:
		if tokenURL == "" {
			return nil, fmt.Errorf("%s: %s flow missing required field %q", path, flow, "tokenUrl")
		}
	case FlowAccessCode:
		if authURL == "" {
			return nil, fmt.Errorf("%s: %s flow missing required field %q", path, flow, "authorizationUrl")
		}
		if tokenURL == "" {
			return nil, fmt.Errorf("%s: %s flow missing required field %q", path, flow, "tokenUrl")
		}
	default:
		return nil, fmt.Errorf("%s: unknown OAuth2 flow %q", path, flow)
	}

	return &SecurityScheme{
		Description: mapGetString(m, "description"),
		Flow: OAuthFlow{
			Kind:             flow,
			AuthorizationURL: authURL,
			TokenURL:         tokenURL,
		},
		Scopes:     mapGetStringMap(m, "scopes"),
		Extensions: extractExtensions(m),
	}, nil
}
