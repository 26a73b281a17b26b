package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swagtools/swagconvert/openapi"
	"github.com/swagtools/swagconvert/parser"
)

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat(""))
	assert.NoError(t, ValidateOutputFormat(FormatJSON))
	assert.NoError(t, ValidateOutputFormat(FormatYAML))
	assert.Error(t, ValidateOutputFormat("toml"))
}

func TestResolveOutputFormat(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		output   string
		source   parser.SourceFormat
		want     string
	}{
		{name: "explicit wins over extension", explicit: FormatJSON, output: "out.yaml", source: parser.SourceFormatYAML, want: FormatJSON},
		{name: "yaml extension", output: "out.yaml", source: parser.SourceFormatJSON, want: FormatYAML},
		{name: "yml extension", output: "out.yml", source: parser.SourceFormatJSON, want: FormatYAML},
		{name: "json extension", output: "out.json", source: parser.SourceFormatYAML, want: FormatJSON},
		{name: "no hint follows yaml source", source: parser.SourceFormatYAML, want: FormatYAML},
		{name: "no hint follows json source", source: parser.SourceFormatJSON, want: FormatJSON},
		{name: "unknown extension follows source", output: "out.txt", source: parser.SourceFormatYAML, want: FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveOutputFormat(tt.explicit, tt.output, tt.source))
		})
	}
}

func TestMarshalDocument(t *testing.T) {
	doc := &openapi.Document{
		OpenAPI: openapi.Version,
		Info:    &openapi.Info{Title: "t", Version: "1"},
	}

	jsonData, err := MarshalDocument(doc, FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(jsonData), `"openapi": "3.0.3"`)

	yamlData, err := MarshalDocument(doc, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(yamlData), "openapi: 3.0.3")
	assert.NotContains(t, string(yamlData), "{")
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.yaml")
	require.NoError(t, os.WriteFile(input, []byte("x"), 0o600))

	assert.NoError(t, ValidateOutputPath(filepath.Join(dir, "out.yaml"), input))
	assert.Error(t, ValidateOutputPath(input, input), "must not overwrite the input file")
	assert.NoError(t, ValidateOutputPath(filepath.Join(dir, "out.yaml"), StdinFilePath))
}

func TestWriteOutputFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "openapi.json")

	require.NoError(t, WriteOutputFile(out, []byte("{}")))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// A second write must refuse to overwrite
	err = WriteOutputFile(out, []byte("other"))
	require.Error(t, err)
	data, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, "{}", string(data))
}

func TestRejectSymlinkOutput(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, RejectSymlinkOutput(filepath.Join(dir, "missing.yaml")))

	regular := filepath.Join(dir, "regular.yaml")
	require.NoError(t, os.WriteFile(regular, []byte("x"), 0o600))
	assert.NoError(t, RejectSymlinkOutput(regular))

	link := filepath.Join(dir, "link.yaml")
	require.NoError(t, os.Symlink(regular, link))
	assert.Error(t, RejectSymlinkOutput(link))
}

func TestFormatSpecPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatSpecPath(StdinFilePath))
	assert.Equal(t, "spec.yaml", FormatSpecPath("spec.yaml"))
}
