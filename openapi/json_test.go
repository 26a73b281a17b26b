package openapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaMarshalJSON_RefFolding(t *testing.T) {
	s := &Schema{
		Ref:         "#/components/schemas/Pet",
		Description: "ignored when ref is set",
	}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"$ref":"#/components/schemas/Pet"}`, string(data))
}

func TestSchemaMarshalJSON_TypeSet(t *testing.T) {
	s := &Schema{Type: []string{"string", "null"}}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":["string","null"]}`, string(data))
}

func TestSchemaMarshalJSON_Extensions(t *testing.T) {
	s := &Schema{
		Type: "object",
		Extensions: map[string]any{
			"x-internal": true,
			"not-an-ext": "must not appear",
		},
	}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"object","x-internal":true}`, string(data))
}

func TestSchemaMarshalJSON_EmptyPlaceholder(t *testing.T) {
	data, err := json.Marshal(&Schema{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestSchemaMarshalJSON_NumberPrecision(t *testing.T) {
	// Merging extensions round-trips the base object through a map; large
	// integers must survive that trip intact.
	s := &Schema{
		Type:       "integer",
		Enum:       []any{int64(9007199254740993)},
		Extensions: map[string]any{"x-big": true},
	}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), "9007199254740993")
}

func TestResponsesMarshalJSON(t *testing.T) {
	r := &Responses{
		Default: &Response{Description: "unexpected error"},
		Codes: map[string]*Response{
			"200": {Description: "ok"},
		},
		Extensions: map[string]any{"x-order": 1},
	}
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"200": {"description": "ok"},
		"default": {"description": "unexpected error"},
		"x-order": 1
	}`, string(data))
}

func TestResponseMarshalJSON_RefFolding(t *testing.T) {
	data, err := json.Marshal(&Response{Ref: "#/components/responses/NotFound"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"$ref":"#/components/responses/NotFound"}`, string(data))
}

func TestPathsMarshalJSON(t *testing.T) {
	p := &Paths{
		Items: map[string]*PathItem{
			"/pets": {Get: &Operation{
				OperationID: "listPets",
				Responses: &Responses{
					Codes: map[string]*Response{"200": {Description: "ok"}},
				},
			}},
		},
		Extensions: map[string]any{"x-group": "pets"},
	}
	data, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Contains(t, m, "/pets")
	assert.Equal(t, "pets", m["x-group"])
}

func TestDocumentMarshalJSON(t *testing.T) {
	doc := &Document{
		OpenAPI: Version,
		Info:    &Info{Title: "t", Version: "1"},
		Servers: []*Server{{URL: "https://api.example.com/v1"}},
		Paths:   &Paths{Items: map[string]*PathItem{}},
		Components: &Components{
			SecuritySchemes: map[string]*SecurityScheme{
				"auth": {
					Type: "oauth2",
					Flows: &OAuthFlows{
						Implicit: &OAuthFlow{
							AuthorizationURL: "https://example.com/auth",
							Scopes:           map[string]string{},
						},
					},
				},
			},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "3.0.3", m["openapi"])

	// Empty scope maps stay present: scopes is required on a flow object.
	flows := m["components"].(map[string]any)["securitySchemes"].(map[string]any)["auth"].(map[string]any)["flows"].(map[string]any)
	implicit := flows["implicit"].(map[string]any)
	assert.Contains(t, implicit, "scopes")
	assert.NotContains(t, flows, "password")
}
