package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_YAMLFile(t *testing.T) {
	p := New()
	result, err := p.Parse("../testdata/petstore-2.0.yaml")
	require.NoError(t, err)

	assert.Equal(t, "2.0", result.Version)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, "../testdata/petstore-2.0.yaml", result.SourcePath)
	assert.Positive(t, result.SourceSize)

	doc := result.Document
	require.NotNil(t, doc)
	assert.Equal(t, "Petstore API", doc.Info.Title)
	assert.Equal(t, "petstore.example.com", doc.Host)
	assert.Equal(t, "/v1", doc.BasePath)
	assert.Equal(t, []string{"https"}, doc.Schemes)
	assert.Len(t, doc.Paths.Items, 2)
	assert.Len(t, doc.Definitions, 4)
	assert.Len(t, doc.SecurityDefinitions, 1)
}

func TestParse_JSONFile(t *testing.T) {
	p := New()
	result, err := p.Parse("../testdata/petstore-2.0.json")
	require.NoError(t, err)

	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	require.NotNil(t, result.Document)
	assert.Equal(t, "Petstore API", result.Document.Info.Title)
}

func TestParse_FileNotFound(t *testing.T) {
	p := New()
	_, err := p.Parse("../testdata/does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParseBytes_MinimalJSON(t *testing.T) {
	data := []byte(`{"swagger":"2.0","info":{"title":"t","version":"1"},"paths":{}}`)
	p := New()
	result, err := p.ParseBytes(data)
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Equal(t, "ParseBytes.json", result.SourcePath)
	assert.Empty(t, result.Document.Paths.Items)
}

func TestParseBytes_MinimalYAML(t *testing.T) {
	data := []byte("swagger: \"2.0\"\ninfo:\n  title: t\n  version: \"1\"\npaths: {}\n")
	p := New()
	result, err := p.ParseBytes(data)
	require.NoError(t, err)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, "ParseBytes.yaml", result.SourcePath)
}

func TestParseReader(t *testing.T) {
	data := `{"swagger":"2.0","info":{"title":"t","version":"1"},"paths":{}}`
	result, err := New().ParseReader(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "ParseReader.json", result.SourcePath)
}

func TestParseBytes_VersionRejection(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "openapi 3.0 document",
			data: `{"openapi":"3.0.3","info":{"title":"t","version":"1"},"paths":{}}`,
		},
		{
			name: "swagger 1.2 document",
			data: `{"swagger":"1.2","info":{"title":"t","version":"1"},"paths":{}}`,
		},
		{
			name: "no version field",
			data: `{"info":{"title":"t","version":"1"},"paths":{}}`,
		},
		{
			name: "numeric version",
			data: `{"swagger":2.0,"info":{"title":"t","version":"1"},"paths":{}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().ParseBytes([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "swagger")
		})
	}
}

func TestParseBytes_InvalidInput(t *testing.T) {
	_, err := New().ParseBytes([]byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON")
}

func TestDetectFormatFromPath(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromPath("api.json"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromPath("api.yaml"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromPath("api.yml"))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromPath("api.txt"))
}

func TestDetectFormatFromContent(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromContent([]byte("  {\"a\":1}")))
	assert.Equal(t, SourceFormatYAML, detectFormatFromContent([]byte("swagger: \"2.0\"")))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromContent([]byte("   ")))
}
