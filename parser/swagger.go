package parser

// Document represents a Swagger 2.0 (OpenAPI 2.0) document
// Reference: https://swagger.io/specification/v2/
type Document struct {
	Swagger             string                     // Required: always "2.0"
	Info                *Info                      // Required
	Host                string
	BasePath            string
	Schemes             []string // e.g., ["http", "https"]
	Consumes            []string
	Produces            []string
	Paths               Paths // Required
	Definitions         map[string]*SchemaRef
	Responses           map[string]*ResponseRef
	SecurityDefinitions map[string]*SecurityScheme
	Security            []SecurityRequirement
	Tags                []*Tag
	ExternalDocs        *ExternalDocs
	Extensions          Extensions
}

// Info provides metadata about the API
type Info struct {
	Title          string
	Description    string
	TermsOfService string
	Contact        *Contact
	License        *License
	Version        string
	Extensions     Extensions
}

// Contact information for the exposed API
type Contact struct {
	Name  string
	URL   string
	Email string
}

// License information for the exposed API
type License struct {
	Name string
	URL  string
}

// ExternalDocs allows referencing external documentation
type ExternalDocs struct {
	Description string
	URL         string
}

// Tag adds metadata to a single tag used by operations
type Tag struct {
	Name         string
	Description  string
	ExternalDocs *ExternalDocs
}

// SecurityRequirement lists the required security schemes to execute an operation.
// Maps security scheme names to scopes (if applicable).
type SecurityRequirement map[string][]string
