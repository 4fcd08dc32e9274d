package mcpserver

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/apidrift/apidrift"
	"github.com/apidrift/apidrift/differ"
	"github.com/apidrift/apidrift/parser"
)

// specInput represents the two ways an API description can be provided to
// the compare tool. Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an API description file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline API description content (JSON or YAML)"`
}

// resolve returns the spec content. File inputs are size-capped by
// APIDRIFT_MAX_SPEC_SIZE to keep a misdirected path from flooding the
// session.
func (in specInput) resolve() (string, error) {
	switch {
	case in.File != "" && in.Content != "":
		return "", fmt.Errorf("provide either file or content, not both")
	case in.File != "":
		info, err := os.Stat(in.File)
		if err != nil {
			return "", fmt.Errorf("reading spec: %w", err)
		}
		if info.Size() > cfg.MaxSpecSize {
			return "", fmt.Errorf("spec file is %d bytes, exceeding the %d byte limit", info.Size(), cfg.MaxSpecSize)
		}
		data, err := os.ReadFile(in.File)
		if err != nil {
			return "", fmt.Errorf("reading spec: %w", err)
		}
		return string(data), nil
	case in.Content != "":
		return in.Content, nil
	default:
		return "", fmt.Errorf("provide one of file or content")
	}
}

type compareInput struct {
	Old          specInput `json:"old"                     jsonschema:"The old/original API description"`
	New          specInput `json:"new"                     jsonschema:"The new API description to compare against the old"`
	OldFormat    string    `json:"old_format,omitempty"    jsonschema:"Source format of the old document: json, yaml, or auto (default auto)"`
	NewFormat    string    `json:"new_format,omitempty"    jsonschema:"Source format of the new document: json, yaml, or auto (default auto)"`
	BreakingOnly bool      `json:"breaking_only,omitempty" jsonschema:"Only include breaking changes"`
}

type compareChange struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Path     string `json:"path"`
	Method   string `json:"method,omitempty"`
	Field    string `json:"field,omitempty"`
	Message  string `json:"message"`
}

type compareOutput struct {
	OldVersion         string          `json:"old_version,omitempty"`
	NewVersion         string          `json:"new_version,omitempty"`
	Summary            differ.Summary  `json:"summary"`
	TotalChanges       int             `json:"total_changes"`
	Changes            []compareChange `json:"changes,omitempty"`
	HasBreakingChanges bool            `json:"has_breaking_changes"`
	SummaryText        string          `json:"summary_text"`
}

func handleCompare(_ context.Context, _ *mcp.CallToolRequest, input compareInput) (*mcp.CallToolResult, compareOutput, error) {
	oldContent, err := input.Old.resolve()
	if err != nil {
		return errResult(err), compareOutput{}, nil
	}
	newContent, err := input.New.resolve()
	if err != nil {
		return errResult(err), compareOutput{}, nil
	}

	result, err := apidrift.Compare(oldContent, newContent,
		apidrift.WithOldFormat(parser.SourceFormat(input.OldFormat)),
		apidrift.WithNewFormat(parser.SourceFormat(input.NewFormat)),
	)
	if err != nil {
		return errResult(err), compareOutput{}, nil
	}

	breakingOnly := input.BreakingOnly || cfg.BreakingOnly

	output := compareOutput{
		OldVersion:         result.OldVersion,
		NewVersion:         result.NewVersion,
		Summary:            result.Summary,
		HasBreakingChanges: result.HasBreakingChanges,
		Changes:            makeSlice[compareChange](len(result.Changes)),
	}

	for _, c := range result.Changes {
		if breakingOnly && c.Type != differ.SeverityBreaking {
			continue
		}
		output.Changes = append(output.Changes, compareChange{
			Type:     c.Type.String(),
			Category: string(c.Category),
			Path:     c.Path,
			Method:   c.Method,
			Field:    c.Field,
			Message:  c.Message,
		})
	}

	output.TotalChanges = len(output.Changes)
	output.SummaryText = buildCompareSummary(result.Summary)

	return nil, output, nil
}

func buildCompareSummary(s differ.Summary) string {
	if s.Total() == 0 {
		return "No drift detected."
	}

	text := formatCount(s.Total(), "change") + " found"
	if s.Breaking > 0 {
		return "Breaking changes detected. " + text + " (" + formatCount(s.Breaking, "breaking change") + ")."
	}
	return text + "."
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
