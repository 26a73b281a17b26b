package parser

// Parameter location constants (used in Parameter.In field)
const (
	// ParamInQuery indicates the parameter is passed in the query string
	ParamInQuery = "query"
	// ParamInHeader indicates the parameter is passed in a request header
	ParamInHeader = "header"
	// ParamInPath indicates the parameter is part of the URL path
	ParamInPath = "path"
	// ParamInFormData indicates the parameter is passed as form data
	ParamInFormData = "formData"
	// ParamInBody indicates the parameter is in the request body
	ParamInBody = "body"
)

// Parameter describes a single operation parameter.
//
// The In tag determines which of the two payload fields is set: body
// parameters carry a BodySchema (a full reference-or-schema value), all
// other locations carry the generic Schema shape. Decode enforces the
// pairing; both fields are never set at once.
type Parameter struct {
	Name        string
	Description string
	Required    bool
	In          string // one of the ParamIn* constants

	// Schema holds the generic schema-like shape for query, header, path,
	// and formData parameters.
	Schema *ParameterSchema

	// BodySchema holds the referenced or inline schema for body parameters.
	BodySchema *SchemaRef

	Extensions Extensions
}

// ParameterSchema is the generic schema-like shape shared by non-body
// parameters and response headers.
type ParameterSchema struct {
	Type             string // Required
	Format           string
	Items            *ParameterSchema // Required when Type is "array" (checked at conversion)
	AllowEmptyValue  *bool
	CollectionFormat string
	Default          any

	Maximum          *float64
	ExclusiveMaximum *bool
	Minimum          *float64
	ExclusiveMinimum *bool
	MaxLength        *int
	MinLength        *int
	Pattern          string
	MaxItems         *int
	MinItems         *int
	UniqueItems      *bool
	Enum             []any
	MultipleOf       *float64

	Extensions Extensions
}
