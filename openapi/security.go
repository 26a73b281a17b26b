package openapi

// SecurityScheme defines a security scheme usable by the operations. Only
// oauth2 schemes are ever produced by conversion.
type SecurityScheme struct {
	Type        string         `json:"type"` // always "oauth2"
	Description string         `json:"description,omitempty"`
	Flows       *OAuthFlows    `json:"flows"`
	Extensions  map[string]any `json:"-"`
}

// OAuthFlows holds the configured OAuth2 flows. Exactly one is set per
// converted scheme; the others remain nil.
type OAuthFlows struct {
	Implicit          *OAuthFlow `json:"implicit,omitempty"`
	Password          *OAuthFlow `json:"password,omitempty"`
	ClientCredentials *OAuthFlow `json:"clientCredentials,omitempty"`
	AuthorizationCode *OAuthFlow `json:"authorizationCode,omitempty"`
}

// OAuthFlow is the configuration of a single OAuth2 flow
type OAuthFlow struct {
	AuthorizationURL string            `json:"authorizationUrl,omitempty"`
	TokenURL         string            `json:"tokenUrl,omitempty"`
	RefreshURL       string            `json:"refreshUrl,omitempty"`
	Scopes           map[string]string `json:"scopes"`
}
