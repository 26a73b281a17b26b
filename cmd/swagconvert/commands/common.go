// Package commands provides CLI command handlers for swagconvert.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/swagtools/swagconvert/internal/fileutil"
	"github.com/swagtools/swagconvert/openapi"
	"github.com/swagtools/swagconvert/parser"
)

// Output format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin
// (or, as an output path, writing to stdout).
const StdinFilePath = "-"

// DefaultOutputPath is where the convert command writes the converted
// document when no output path is given.
const DefaultOutputPath = "openapi.json"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != "" && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// ResolveOutputFormat picks the serialization format for the converted
// document. An explicit --format wins; otherwise the output file extension
// decides; otherwise the document is written in the format it was read in.
func ResolveOutputFormat(explicit, outputPath string, source parser.SourceFormat) string {
	if explicit != "" {
		return explicit
	}
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	}
	if source == parser.SourceFormatYAML {
		return FormatYAML
	}
	return FormatJSON
}

// MarshalDocument marshals a converted document to bytes in the given format.
// YAML output routes through the document's JSON encoding so that vendor
// extension merging and $ref folding behave identically in both formats.
func MarshalDocument(doc *openapi.Document, format string) ([]byte, error) {
	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	if format != FormatYAML {
		return append(jsonData, '\n'), nil
	}

	var tree map[string]any
	if err := yaml.Unmarshal(jsonData, &tree); err != nil {
		return nil, fmt.Errorf("reshaping document for YAML output: %w", err)
	}
	return yaml.Marshal(tree)
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath, inputPath string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	if inputPath != StdinFilePath {
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	return nil
}

// WriteOutputFile writes the document to a new file, refusing to overwrite
// an existing one.
func WriteOutputFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileutil.OwnerReadWrite)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	return f.Close()
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an
// error if so. This prevents symlink attacks where a symlink could redirect
// output to an unintended location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		// File doesn't exist yet — safe to write.
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// FormatSpecPath returns a display-friendly path for the specification.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}
