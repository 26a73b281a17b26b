package parser

// SchemaRef is either an internal pointer to another location in the document
// or an owned inline schema. Exactly one of Ref and Schema is set; the two
// are distinguished on decode by the presence of the "$ref" key.
//
// A reference carries only the pointer string. Resolution happens once,
// during conversion, by rewriting the pointer into the target namespace;
// references are never followed to live values.
type SchemaRef struct {
	Ref    string
	Schema Schema
}

// IsRef reports whether the value is a reference rather than an inline schema.
func (r *SchemaRef) IsRef() bool {
	return r != nil && r.Ref != ""
}

// Schema is a closed polymorphic type over the three shapes a Swagger 2.0
// schema node can take: *ArraySchema, *ObjectSchema, or *AllOfSchema.
//
// The variant is determined structurally, not by an explicit tag field.
// Decoding attempts the shapes in order — Array, then Object, then AllOf —
// and keeps the first that decodes:
//
//   - Array requires type == "array" and an items key
//   - Object requires a type key
//   - AllOf requires an allOf key
//
// A shape that matches but fails to decode falls through to the next, so a
// node whose Array parse is rejected settles as Object with the items key
// unread. A node matching none of the three fails the parse. The ordering is
// load-bearing: an allOf node has no type key, so it falls past Array and
// Object and settles as AllOf.
type Schema interface {
	isSchema()
}

// ArraySchema is the array variant of a schema node.
type ArraySchema struct {
	Type        any // "array", or a type set including "array"
	Title       string
	Items       *SchemaRef // Required
	Description string
	Example     any
	Default     any
	MaxItems    *int
	MinItems    *int
	UniqueItems bool
	XML         *XML
	Extensions  Extensions
}

func (*ArraySchema) isSchema() {}

// ObjectSchema is the object/primitive variant of a schema node. Despite the
// name it covers every typed schema that is not an array: primitives carry
// the same shape with no properties.
type ObjectSchema struct {
	Type        any // string or []string
	Format      string
	Title       string
	Description string
	Default     any

	MultipleOf       *float64
	Maximum          *float64
	ExclusiveMaximum *float64
	Minimum          *float64
	ExclusiveMinimum *float64
	MaxLength        *int
	MinLength        *int
	Pattern          string
	MaxProperties    *int
	MinProperties    *int

	Required []string
	Enum     []any

	Properties           map[string]*SchemaRef
	AdditionalProperties *AdditionalProperties

	ReadOnly   *bool
	XML        *XML
	Example    any
	Extensions Extensions
}

func (*ObjectSchema) isSchema() {}

// AllOfSchema is the composition variant of a schema node.
type AllOfSchema struct {
	Items         []*SchemaRef // the allOf list, in declared order
	Title         string
	Description   string
	Default       any
	Example       any
	Discriminator string
	Extensions    Extensions
}

func (*AllOfSchema) isSchema() {}

// AdditionalProperties is the closed variant an additionalProperties value
// can take: a reference-or-schema, a boolean free-form flag, or an
// unrecognized shape. Unrecognized shapes are retained as an explicit
// sentinel (Invalid) so the converter can degrade them to a placeholder
// empty schema instead of failing the document.
type AdditionalProperties struct {
	Schema   *SchemaRef
	FreeForm *bool
	Invalid  bool
}

// XML represents metadata for XML encoding
type XML struct {
	Name      string
	Namespace string
	Prefix    string
	Attribute bool
	Wrapped   bool
}
