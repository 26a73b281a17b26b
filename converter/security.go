package converter

import (
	"github.com/swagtools/swagconvert/openapi"
	"github.com/swagtools/swagconvert/parser"
)

// convertSecurityScheme maps a Swagger 2.0 oauth2 scheme onto the OpenAPI
// 3.0 flows object. Exactly one flow is populated; the Swagger flow names
// application and accessCode become clientCredentials and authorizationCode.
// An absent scopes map becomes an empty scope set, never a missing one.
func convertSecurityScheme(scheme *parser.SecurityScheme) *openapi.SecurityScheme {
	scopes := scheme.Scopes
	if scopes == nil {
		scopes = map[string]string{}
	}

	flows := &openapi.OAuthFlows{}
	switch scheme.Flow.Kind {
	case parser.FlowImplicit:
		flows.Implicit = &openapi.OAuthFlow{
			AuthorizationURL: scheme.Flow.AuthorizationURL,
			Scopes:           scopes,
		}
	case parser.FlowPassword:
		flows.Password = &openapi.OAuthFlow{
			TokenURL: scheme.Flow.TokenURL,
			Scopes:   scopes,
		}
	case parser.FlowApplication:
		flows.ClientCredentials = &openapi.OAuthFlow{
			TokenURL: scheme.Flow.TokenURL,
			Scopes:   scopes,
		}
	case parser.FlowAccessCode:
		flows.AuthorizationCode = &openapi.OAuthFlow{
			AuthorizationURL: scheme.Flow.AuthorizationURL,
			TokenURL:         scheme.Flow.TokenURL,
			Scopes:           scopes,
		}
	}

	return &openapi.SecurityScheme{
		Type:        "oauth2",
		Description: scheme.Description,
		Flows:       flows,
		Extensions:  scheme.Extensions,
	}
}
