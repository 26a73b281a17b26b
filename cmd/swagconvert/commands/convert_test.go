package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstoreFixture = "../../../testdata/petstore-2.0.yaml"

func TestHandleConvert_FileToJSONFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "openapi.json")

	err := HandleConvert([]string{"-q", "-o", out, petstoreFixture})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"openapi": "3.0.3"`)
	assert.Contains(t, string(data), "#/components/schemas/Pet")

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestHandleConvert_FileToYAMLFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "openapi.yaml")

	err := HandleConvert([]string{"-q", "-o", out, petstoreFixture})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "openapi: 3.0.3")
	assert.Contains(t, string(data), "servers:")
}

func TestHandleConvert_ExplicitFormatWins(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "openapi.out")

	err := HandleConvert([]string{"-q", "-f", "json", "-o", out, petstoreFixture})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"openapi": "3.0.3"`)
}

func TestHandleConvert_NoArgs(t *testing.T) {
	err := HandleConvert([]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one file path")
}

func TestHandleConvert_InvalidFormat(t *testing.T) {
	err := HandleConvert([]string{"-f", "toml", petstoreFixture})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestHandleConvert_MissingFile(t *testing.T) {
	err := HandleConvert([]string{"-q", "does-not-exist.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "converting file")
}

func TestHandleConvert_RefusesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "openapi.json")
	require.NoError(t, os.WriteFile(out, []byte("already here"), 0o600))

	err := HandleConvert([]string{"-q", "-o", out, petstoreFixture})
	require.Error(t, err)
	assert.Contains(t, err.Error(), out)

	data, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, "already here", string(data), "existing output must be left untouched")
}

func TestHandleConvert_RefusesOverwritingInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "swagger.yaml")
	src, err := os.ReadFile(petstoreFixture)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(input, src, 0o600))

	err = HandleConvert([]string{"-q", "-o", input, input})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would overwrite input file")
}

func TestSetupConvertFlags_Defaults(t *testing.T) {
	fs, flags := SetupConvertFlags()
	require.NoError(t, fs.Parse([]string{"spec.yaml"}))

	assert.Equal(t, DefaultOutputPath, flags.Output)
	assert.Empty(t, flags.Format)
	assert.False(t, flags.Strict)
	assert.False(t, flags.NoWarnings)
	assert.False(t, flags.Quiet)
	assert.Equal(t, 1, fs.NArg())
}
