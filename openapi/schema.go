package openapi

// Schema describes the structure of a request or response payload. A schema
// with a non-empty Ref marshals as a bare $ref object; every other field is
// ignored in that case.
type Schema struct {
	Ref string `json:"$ref,omitempty"`

	// Type is a single type name (string) or a two-element type set
	// ([]string) when the schema admits null.
	Type   any    `json:"type,omitempty"`
	Format string `json:"format,omitempty"`

	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`

	MultipleOf       *float64 `json:"multipleOf,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMaximum *float64 `json:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `json:"minimum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`
	MaxLength        *int     `json:"maxLength,omitempty"`
	MinLength        *int     `json:"minLength,omitempty"`
	Pattern          string   `json:"pattern,omitempty"`
	MaxItems         *int     `json:"maxItems,omitempty"`
	MinItems         *int     `json:"minItems,omitempty"`
	UniqueItems      bool     `json:"uniqueItems,omitempty"`
	MaxProperties    *int     `json:"maxProperties,omitempty"`
	MinProperties    *int     `json:"minProperties,omitempty"`

	Required []string `json:"required,omitempty"`
	Enum     []any    `json:"enum,omitempty"`

	Items      *Schema            `json:"items,omitempty"`
	AllOf      []*Schema          `json:"allOf,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`

	// AdditionalProperties is either a *Schema or a bool
	AdditionalProperties any `json:"additionalProperties,omitempty"`

	Discriminator *Discriminator `json:"discriminator,omitempty"`
	ReadOnly      *bool          `json:"readOnly,omitempty"`
	XML           *XML           `json:"xml,omitempty"`
	Example       any            `json:"example,omitempty"`

	Extensions map[string]any `json:"-"`
}

// Discriminator aids in payload type selection for polymorphic schemas
type Discriminator struct {
	PropertyName string `json:"propertyName"`
}

// XML represents metadata for XML encoding
type XML struct {
	Name      string `json:"name,omitempty"`
	Namespace string `json:"namespace,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	Attribute bool   `json:"attribute,omitempty"`
	Wrapped   bool   `json:"wrapped,omitempty"`
}
