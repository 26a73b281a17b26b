// Package converter transforms parsed Swagger 2.0 documents into OpenAPI 3.0
// documents.
//
// Conversion is a pure, single-pass transformation: structural problems are
// rejected by the parser before conversion begins, and everything the
// converter itself cannot express in the target model degrades locally to
// the nearest representable value with a recorded issue instead of failing
// the document.
package converter

import (
	"fmt"

	"github.com/swagtools/swagconvert/internal/issues"
	"github.com/swagtools/swagconvert/internal/severity"
	"github.com/swagtools/swagconvert/openapi"
	"github.com/swagtools/swagconvert/parser"
)

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates lossy conversions or best-effort transformations
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates features that cannot be converted (data loss)
	SeverityCritical = severity.SeverityCritical
)

// ConversionIssue represents a single conversion issue or limitation
type ConversionIssue = issues.Issue

// ConversionResult contains the results of converting a Swagger 2.0 document
type ConversionResult struct {
	// Document contains the produced OpenAPI 3.0 document
	Document *openapi.Document
	// SourcePath is the path of the source document, when known
	SourcePath string
	// SourceVersion is the source swagger version string (always "2.0")
	SourceVersion string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat parser.SourceFormat
	// SourceSize is the size of the source document in bytes
	SourceSize int64
	// TargetVersion is the produced OpenAPI version string
	TargetVersion string
	// Issues contains all conversion issues in the order they were found
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if conversion completed without critical issues
	Success bool
}

// HasCriticalIssues returns true if there are any critical issues
func (r *ConversionResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *ConversionResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter handles Swagger 2.0 to OpenAPI 3.0 conversion
type Converter struct {
	// StrictMode causes conversion to fail on any issues (even warnings)
	StrictMode bool
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		StrictMode:  false,
		IncludeInfo: true,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (c *Converter) log() parser.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return parser.NopLogger{}
}

// Convert is a convenience function that converts a Swagger 2.0 specification
// file with default settings. It's equivalent to creating a Converter with
// New() and calling Convert().
//
// Example:
//
//	result, err := converter.Convert("swagger.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.HasWarnings() {
//	    // Review lossy conversions
//	}
func Convert(specPath string) (*ConversionResult, error) {
	return New().Convert(specPath)
}

// Convert converts a Swagger 2.0 specification file to OpenAPI 3.0
func (c *Converter) Convert(specPath string) (*ConversionResult, error) {
	p := parser.New()
	p.Logger = c.Logger

	parseResult, err := p.Parse(specPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse specification: %w", err)
	}
	return c.ConvertParsed(*parseResult)
}

// ConvertParsed converts an already-parsed Swagger 2.0 specification to
// OpenAPI 3.0
func (c *Converter) ConvertParsed(parseResult parser.ParseResult) (*ConversionResult, error) {
	if parseResult.Document == nil {
		return nil, fmt.Errorf("parse result carries no document")
	}

	result := &ConversionResult{
		SourcePath:    parseResult.SourcePath,
		SourceVersion: parseResult.Version,
		SourceFormat:  parseResult.SourceFormat,
		SourceSize:    parseResult.SourceSize,
		TargetVersion: openapi.Version,
		Issues:        make([]ConversionIssue, 0),
	}

	result.Document = c.convertDocument(parseResult.Document, result)

	c.updateCounts(result)
	result.Success = result.CriticalCount == 0

	c.log().Debug("converted document",
		"source", result.SourcePath,
		"issues", len(result.Issues),
		"warnings", result.WarningCount)

	// In strict mode, fail on any issues
	if c.StrictMode && (result.CriticalCount > 0 || result.WarningCount > 0) {
		return result, fmt.Errorf("conversion failed in strict mode: %d critical issue(s), %d warning(s)",
			result.CriticalCount, result.WarningCount)
	}

	// Filter info messages if not included
	if !c.IncludeInfo {
		filtered := make([]ConversionIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// updateCounts updates the issue counts in the result
func (c *Converter) updateCounts(result *ConversionResult) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.CriticalCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityCritical:
			result.CriticalCount++
		}
	}
}

// addIssue is a helper to add a conversion issue to the result
func (c *Converter) addIssue(result *ConversionResult, path, message string, sev Severity) {
	result.Issues = append(result.Issues, ConversionIssue{
		Path:     path,
		Message:  message,
		Severity: sev,
	})
}

// addIssueWithContext is a helper to add a warning issue with context
func (c *Converter) addIssueWithContext(result *ConversionResult, path, message, context string) {
	result.Issues = append(result.Issues, ConversionIssue{
		Path:     path,
		Message:  message,
		Severity: SeverityWarning,
		Context:  context,
	})
}
