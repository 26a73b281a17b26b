package parser

// Paths holds the relative paths to the individual endpoints
type Paths struct {
	Items      map[string]*PathItem
	Extensions Extensions
}

// PathItem describes the operations available on a single path
type PathItem struct {
	Get        *Operation
	Put        *Operation
	Post       *Operation
	Delete     *Operation
	Options    *Operation
	Head       *Operation
	Patch      *Operation
	Trace      *Operation
	Parameters []*Parameter
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags         []string
	Summary      string
	Description  string
	ExternalDocs *ExternalDocs
	OperationID  string
	Consumes     []string
	Produces     []string
	Parameters   []*Parameter
	Responses    *Responses
	Schemes      []string
	Deprecated   bool
	Security     []SecurityRequirement
	Extensions   Extensions
}

// Responses is a container for the expected responses of an operation
type Responses struct {
	Default    *ResponseRef
	Codes      map[string]*ResponseRef
	Extensions Extensions
}

// ResponseRef is either an internal pointer to a shared response or an owned
// inline response, distinguished on decode by the presence of "$ref".
type ResponseRef struct {
	Ref      string
	Response *Response
}

// IsRef reports whether the value is a reference rather than an inline response.
func (r *ResponseRef) IsRef() bool {
	return r != nil && r.Ref != ""
}

// Response describes a single response from an API Operation
type Response struct {
	Description string // Required
	Schema      *SchemaRef
	Headers     map[string]*ParameterHeader
	Examples    map[string]any
	Extensions  Extensions
}

// ParameterHeader describes a single response header: a description plus the
// generic schema-like parameter shape.
type ParameterHeader struct {
	Description string // Required
	Schema      *ParameterSchema
}
