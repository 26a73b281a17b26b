package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"

	"github.com/swagtools/swagconvert/converter"
	"github.com/swagtools/swagconvert/internal/fileutil"
	"github.com/swagtools/swagconvert/openapi"
)

type convertInput struct {
	Spec    specInput `json:"spec"                jsonschema:"The Swagger 2.0 document to convert"`
	Strict  bool      `json:"strict,omitempty"    jsonschema:"Fail the conversion when it produces warnings"`
	NoInfo  bool      `json:"no_info,omitempty"   jsonschema:"Suppress informational issues from the result"`
	Format  string    `json:"format,omitempty"    jsonschema:"Output format for the converted document: json (default) or yaml"`
	Output  string    `json:"output,omitempty"    jsonschema:"File path to write the converted document. If omitted the document is returned inline."`
}

type convertIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

type convertOutput struct {
	SourceVersion string         `json:"source_version"`
	TargetVersion string         `json:"target_version"`
	Success       bool           `json:"success"`
	IssueCount    int            `json:"issue_count"`
	Issues        []convertIssue `json:"issues,omitempty"`
	WrittenTo     string         `json:"written_to,omitempty"`
	Document      string         `json:"document,omitempty"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if input.Format != "" && input.Format != "json" && input.Format != "yaml" {
		return errResult(fmt.Errorf("invalid format %q: must be json or yaml", input.Format)), convertOutput{}, nil
	}

	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	c := converter.New()
	c.StrictMode = input.Strict || cfg.ConvertStrict
	c.IncludeInfo = !(input.NoInfo || cfg.ConvertNoInfo)

	result, err := c.ConvertParsed(*parseResult)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		SourceVersion: result.SourceVersion,
		TargetVersion: result.TargetVersion,
		Success:       result.Success,
		IssueCount:    len(result.Issues),
	}

	if len(result.Issues) > 0 {
		output.Issues = make([]convertIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			output.Issues = append(output.Issues, convertIssue{
				Severity: issue.Severity.String(),
				Path:     issue.Path,
				Message:  issue.Message,
			})
		}
	}

	data, err := marshalDocument(result.Document, input.Format)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	if input.Output != "" {
		if err := os.WriteFile(input.Output, data, fileutil.OwnerReadWrite); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(data)
	}

	return nil, output, nil
}

// marshalDocument serializes the converted document. YAML output routes
// through the JSON encoding so extension merging and $ref folding behave
// identically in both formats.
func marshalDocument(doc *openapi.Document, format string) ([]byte, error) {
	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	if format != "yaml" {
		return jsonData, nil
	}
	var tree map[string]any
	if err := yaml.Unmarshal(jsonData, &tree); err != nil {
		return nil, fmt.Errorf("reshaping document for YAML output: %w", err)
	}
	return yaml.Marshal(tree)
}
