package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/apidrift/apidrift"
	"github.com/apidrift/apidrift/differ"
	"github.com/apidrift/apidrift/internal/cliutil"
	"github.com/apidrift/apidrift/parser"
)

// ErrBreakingChanges signals that the comparison found breaking changes.
// The main dispatcher maps it to exit status 1 without printing an error.
var ErrBreakingChanges = errors.New("breaking changes detected")

// DiffFlags contains flags for the diff command
type DiffFlags struct {
	OldFormat    string
	NewFormat    string
	Format       string
	BreakingOnly bool
}

// SetupDiffFlags creates and configures a FlagSet for the diff command.
// Returns the FlagSet and a DiffFlags struct with bound flag variables.
func SetupDiffFlags() (*flag.FlagSet, *DiffFlags) {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	flags := &DiffFlags{}

	fs.StringVar(&flags.OldFormat, "old-format", "auto", "source format of the old spec: json, yaml, or auto")
	fs.StringVar(&flags.NewFormat, "new-format", "auto", "source format of the new spec: json, yaml, or auto")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.BreakingOnly, "breaking-only", false, "only report breaking changes")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: apidrift diff [flags] <old> <new>\n\n")
		cliutil.Writef(fs.Output(), "Compare two API description files and classify every difference as\n")
		cliutil.Writef(fs.Output(), "breaking, potentially breaking, or non-breaking.\n\n")
		cliutil.Writef(fs.Output(), "Both OpenAPI 3.x and Swagger 2.0 documents are accepted, in JSON or\n")
		cliutil.Writef(fs.Output(), "YAML. Pass '-' as one of the paths to read that spec from stdin.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nOutput Formats:\n")
		cliutil.Writef(fs.Output(), "  text (default)  Human-readable report grouped by severity\n")
		cliutil.Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		cliutil.Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  apidrift diff api-v1.yaml api-v2.yaml\n")
		cliutil.Writef(fs.Output(), "  apidrift diff --format json api-v1.json api-v2.json | jq '.has_breaking_changes'\n")
		cliutil.Writef(fs.Output(), "  apidrift diff --breaking-only old.yaml new.yaml\n")
		cliutil.Writef(fs.Output(), "  cat new.yaml | apidrift diff old.yaml -\n")
		cliutil.Writef(fs.Output(), "\nExit Status:\n")
		cliutil.Writef(fs.Output(), "  0    No breaking changes found\n")
		cliutil.Writef(fs.Output(), "  1    Breaking changes found, or the comparison failed\n")
	}

	return fs, flags
}

// validateSpecFormat checks a spec input format flag value.
func validateSpecFormat(name, value string) error {
	switch parser.SourceFormat(value) {
	case parser.SourceFormatJSON, parser.SourceFormatYAML, parser.SourceFormatAuto:
		return nil
	}
	return fmt.Errorf("invalid %s '%s'. Valid formats: json, yaml, auto", name, value)
}

// HandleDiff executes the diff command
func HandleDiff(args []string) error {
	fs, flags := SetupDiffFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("diff command requires exactly two file paths")
	}

	oldPath := fs.Arg(0)
	newPath := fs.Arg(1)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if err := validateSpecFormat("old-format", flags.OldFormat); err != nil {
		return err
	}
	if err := validateSpecFormat("new-format", flags.NewFormat); err != nil {
		return err
	}
	if oldPath == StdinFilePath && newPath == StdinFilePath {
		return fmt.Errorf("only one spec can be read from stdin")
	}

	oldContent, err := ReadSpecFile(oldPath)
	if err != nil {
		return err
	}
	newContent, err := ReadSpecFile(newPath)
	if err != nil {
		return err
	}

	result, err := apidrift.Compare(oldContent, newContent,
		apidrift.WithOldFormat(parser.SourceFormat(flags.OldFormat)),
		apidrift.WithNewFormat(parser.SourceFormat(flags.NewFormat)),
	)
	if err != nil {
		return fmt.Errorf("comparing specifications: %w", err)
	}

	if flags.BreakingOnly {
		filtered := make([]differ.Change, 0, len(result.Changes))
		for _, change := range result.Changes {
			if change.Type == differ.SeverityBreaking {
				filtered = append(filtered, change)
			}
		}
		result.Changes = filtered
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(result, flags.Format); err != nil {
			return err
		}
		if result.HasBreakingChanges {
			return ErrBreakingChanges
		}
		return nil
	}

	renderTextReport(os.Stdout, oldPath, newPath, result)
	if result.HasBreakingChanges {
		return ErrBreakingChanges
	}
	return nil
}

// severityHeading renders a severity as a report heading, e.g.
// "Potentially Breaking".
func severityHeading(sev differ.Severity) string {
	heading := strings.ReplaceAll(sev.String(), "_", " ")
	return cases.Title(language.English).String(heading)
}

func renderTextReport(w io.Writer, oldPath, newPath string, result *differ.DiffResult) {
	cliutil.Writef(w, "API Contract Diff\n")
	cliutil.Writef(w, "=================\n\n")
	cliutil.Writef(w, "apidrift version: %s\n", apidrift.Version())
	cliutil.Writef(w, "Old: %s (%s %s)\n", FormatSpecPath(oldPath), result.OldDialect, result.OldVersion)
	cliutil.Writef(w, "New: %s (%s %s)\n\n", FormatSpecPath(newPath), result.NewDialect, result.NewVersion)

	if len(result.Changes) == 0 {
		cliutil.Writef(w, "✓ No drift detected\n")
		return
	}

	// Group changes by severity, most severe first.
	severities := []differ.Severity{
		differ.SeverityBreaking,
		differ.SeverityPotentiallyBreaking,
		differ.SeverityNonBreaking,
	}
	for _, sev := range severities {
		var group []differ.Change
		for _, change := range result.Changes {
			if change.Type == sev {
				group = append(group, change)
			}
		}
		if len(group) == 0 {
			continue
		}

		cliutil.Writef(w, "%s Changes (%d):\n", severityHeading(sev), len(group))
		for _, change := range group {
			cliutil.Writef(w, "  %s\n", change.String())
		}
		cliutil.Writef(w, "\n")
	}

	cliutil.Writef(w, "Summary:\n")
	cliutil.Writef(w, "  Total changes: %d\n", len(result.Changes))
	if result.HasBreakingChanges {
		cliutil.Writef(w, "  ⚠️  Breaking: %d\n", result.Summary.Breaking)
	} else {
		cliutil.Writef(w, "  ✓ Breaking: 0\n")
	}
	cliutil.Writef(w, "  Potentially breaking: %d\n", result.Summary.PotentiallyBreaking)
	cliutil.Writef(w, "  Non-breaking: %d\n", result.Summary.NonBreaking)
}
