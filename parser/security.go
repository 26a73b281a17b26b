package parser

// OAuth2 flow kind constants (used in OAuthFlow.Kind field)
const (
	// FlowImplicit is the implicit grant flow
	FlowImplicit = "implicit"
	// FlowPassword is the resource owner password flow
	FlowPassword = "password"
	// FlowApplication is the client credentials flow (Swagger 2.0 calls it "application")
	FlowApplication = "application"
	// FlowAccessCode is the authorization code flow (Swagger 2.0 calls it "accessCode")
	FlowAccessCode = "accessCode"
)

// SecurityScheme defines a security scheme that can be used by the operations.
// Only oauth2 schemes are representable; any other scheme type fails the
// parse at the document level.
type SecurityScheme struct {
	Description string
	Flow        OAuthFlow
	// Scopes maps scope names to descriptions. Optional; an absent map
	// converts to an empty scope set.
	Scopes     map[string]string
	Extensions Extensions
}

// OAuthFlow is one OAuth2 grant-type configuration. Kind discriminates the
// four mutually exclusive variants; the URL fields required by each variant
// are enforced on decode:
//
//   - implicit: AuthorizationURL
//   - password: TokenURL
//   - application: TokenURL
//   - accessCode: AuthorizationURL and TokenURL
type OAuthFlow struct {
	Kind             string // one of the Flow* constants
	AuthorizationURL string
	TokenURL         string
}
