package openapi

// Paths holds the relative paths to the individual endpoints
type Paths struct {
	Items      map[string]*PathItem
	Extensions map[string]any
}

// PathItem describes the operations available on a single path
type PathItem struct {
	Get        *Operation   `json:"get,omitempty"`
	Put        *Operation   `json:"put,omitempty"`
	Post       *Operation   `json:"post,omitempty"`
	Delete     *Operation   `json:"delete,omitempty"`
	Options    *Operation   `json:"options,omitempty"`
	Head       *Operation   `json:"head,omitempty"`
	Patch      *Operation   `json:"patch,omitempty"`
	Trace      *Operation   `json:"trace,omitempty"`
	Parameters []*Parameter `json:"parameters,omitempty"`
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags         []string              `json:"tags,omitempty"`
	Summary      string                `json:"summary,omitempty"`
	Description  string                `json:"description,omitempty"`
	ExternalDocs *ExternalDocs         `json:"externalDocs,omitempty"`
	OperationID  string                `json:"operationId,omitempty"`
	Parameters   []*Parameter          `json:"parameters,omitempty"`
	RequestBody  *RequestBody          `json:"requestBody,omitempty"`
	Responses    *Responses            `json:"responses"`
	Deprecated   bool                  `json:"deprecated,omitempty"`
	Security     []SecurityRequirement `json:"security,omitempty"`
	Extensions   map[string]any        `json:"-"`
}

// Parameter describes a single operation parameter
type Parameter struct {
	Name            string         `json:"name"`
	In              string         `json:"in"` // "query", "header", or "path"
	Description     string         `json:"description,omitempty"`
	Required        bool           `json:"required,omitempty"`
	AllowEmptyValue *bool          `json:"allowEmptyValue,omitempty"`
	Schema          *Schema        `json:"schema,omitempty"`
	Extensions      map[string]any `json:"-"`
}

// RequestBody describes a single request body
type RequestBody struct {
	Description string                `json:"description,omitempty"`
	Content     map[string]*MediaType `json:"content"`
	Required    bool                  `json:"required,omitempty"`
}

// MediaType provides schema and examples for one media type
type MediaType struct {
	Schema   *Schema             `json:"schema,omitempty"`
	Example  any                 `json:"example,omitempty"`
	Examples map[string]*Example `json:"examples,omitempty"`
}

// Example holds a single named example value
type Example struct {
	Summary     string `json:"summary,omitempty"`
	Description string `json:"description,omitempty"`
	Value       any    `json:"value,omitempty"`
}

// Responses is a container for the expected responses of an operation
type Responses struct {
	Default    *Response
	Codes      map[string]*Response
	Extensions map[string]any
}

// Response describes a single response from an API operation. A response with
// a non-empty Ref marshals as a bare $ref object.
type Response struct {
	Ref         string                `json:"$ref,omitempty"`
	Description string                `json:"description,omitempty"`
	Headers     map[string]*Header    `json:"headers,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty"`
	Extensions  map[string]any        `json:"-"`
}

// Header describes a single response header
type Header struct {
	Description string  `json:"description,omitempty"`
	Schema      *Schema `json:"schema,omitempty"`
}
