package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const swagger20Spec = `swagger: "2.0"
info:
  title: Test API
  version: "1.0.0"
host: api.example.com
schemes:
  - https
paths:
  /pets:
    get:
      operationId: listPets
      responses:
        "200":
          description: OK
`

func TestConvertTool_InlineContent(t *testing.T) {
	input := convertInput{
		Spec: specInput{Content: swagger20Spec},
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.Success)
	assert.Equal(t, "2.0", output.SourceVersion)
	assert.Equal(t, "3.0.3", output.TargetVersion)
	assert.NotEmpty(t, output.Document)
	assert.Empty(t, output.WrittenTo)
	// The converted document should carry the 3.0 version marker.
	assert.Contains(t, output.Document, "3.0.3")
	assert.Contains(t, output.Document, "https://api.example.com/")
}

func TestConvertTool_OutputFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "converted.yaml")

	input := convertInput{
		Spec:   specInput{Content: swagger20Spec},
		Format: "yaml",
		Output: outPath,
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.Success)
	assert.Equal(t, outPath, output.WrittenTo)
	assert.Empty(t, output.Document, "document should not be inline when written to file")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "3.0.3")
	assert.Contains(t, string(data), "Test API")
}

func TestConvertTool_FileInput(t *testing.T) {
	input := convertInput{
		Spec: specInput{File: "../../testdata/petstore-2.0.yaml"},
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.Success)
	assert.Equal(t, "2.0", output.SourceVersion)
	assert.NotEmpty(t, output.Document)
	assert.Contains(t, output.Document, "#/components/schemas/Pet")
}

func TestConvertTool_InvalidFormat(t *testing.T) {
	input := convertInput{
		Spec:   specInput{Content: swagger20Spec},
		Format: "toml",
	}
	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.SourceVersion)
}

func TestConvertTool_InvalidSpec(t *testing.T) {
	input := convertInput{
		Spec: specInput{Content: "not valid yaml: ["},
	}
	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.SourceVersion)
}

func TestConvertTool_NoInputProvided(t *testing.T) {
	input := convertInput{
		Spec: specInput{},
	}
	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.SourceVersion)
}

func TestConvertTool_BothInputsProvided(t *testing.T) {
	input := convertInput{
		Spec: specInput{File: "x.yaml", Content: swagger20Spec},
	}
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTool_InvalidOutputPath(t *testing.T) {
	input := convertInput{
		Spec:   specInput{Content: swagger20Spec},
		Output: "/nonexistent/dir/file.yaml",
	}
	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.WrittenTo)
}

func TestSanitizeError(t *testing.T) {
	err := os.ErrNotExist
	assert.NotEmpty(t, sanitizeError(err))
	assert.Empty(t, sanitizeError(nil))

	wrapped := &os.PathError{Op: "open", Path: "/home/user/secret/spec.yaml", Err: os.ErrNotExist}
	sanitized := sanitizeError(wrapped)
	assert.NotContains(t, sanitized, "/home/user")
	assert.Contains(t, sanitized, "<path>")
}
