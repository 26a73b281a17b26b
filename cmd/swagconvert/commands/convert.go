package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/swagtools/swagconvert"
	"github.com/swagtools/swagconvert/converter"
	"github.com/swagtools/swagconvert/internal/cliutil"
	"github.com/swagtools/swagconvert/parser"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Output     string
	Format     string
	Strict     bool
	NoWarnings bool
	Quiet      bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Output, "o", DefaultOutputPath, "output file path, or '-' for stdout")
	fs.StringVar(&flags.Output, "out", DefaultOutputPath, "output file path, or '-' for stdout")
	fs.StringVar(&flags.Format, "f", "", "output format: json or yaml (default: inferred from output path, then source format)")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: inferred from output path, then source format)")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any conversion issues (even warnings)")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress info messages")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: swagconvert convert [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Convert a Swagger 2.0 specification to OpenAPI 3.0.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  swagconvert convert swagger.yaml -o openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  swagconvert convert swagger.json\n")
		cliutil.Writef(fs.Output(), "  swagconvert convert --strict swagger.yaml\n")
		cliutil.Writef(fs.Output(), "  cat swagger.yaml | swagconvert convert -q -o - - > openapi.yaml\n")
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  - Use '-' as the file path to read from stdin\n")
		cliutil.Writef(fs.Output(), "  - Use '-o -' to write the document to stdout\n")
		cliutil.Writef(fs.Output(), "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - An existing output file is never overwritten\n")
		cliutil.Writef(fs.Output(), "  - Warnings indicate lossy conversions or best-effort transformations\n")
		cliutil.Writef(fs.Output(), "  - Info messages provide context about conversion choices\n")
		cliutil.Writef(fs.Output(), "  - Always validate converted documents before deployment\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Conversion successful\n")
		cliutil.Writef(fs.Output(), "  1    Conversion failed or issues found in --strict mode\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	// Create converter with options
	c := converter.New()
	c.StrictMode = flags.Strict
	c.IncludeInfo = !flags.NoWarnings

	// Convert the file or stdin with timing
	startTime := time.Now()
	var result *converter.ConversionResult
	var err error

	if specPath == StdinFilePath {
		p := parser.New()
		parseResult, err := p.ParseReader(os.Stdin)
		if err != nil {
			return fmt.Errorf("parsing stdin: %w", err)
		}
		result, err = c.ConvertParsed(*parseResult)
		if err != nil {
			return fmt.Errorf("converting from stdin: %w", err)
		}
	} else {
		result, err = c.Convert(specPath)
		if err != nil {
			return fmt.Errorf("converting file: %w", err)
		}
	}
	totalTime := time.Since(startTime)

	// Print results (to stderr so the document can go to stdout)
	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "Swagger to OpenAPI Converter\n")
		cliutil.Writef(os.Stderr, "============================\n\n")
		cliutil.Writef(os.Stderr, "swagconvert version: %s\n", swagconvert.Version())
		cliutil.Writef(os.Stderr, "Specification: %s\n", FormatSpecPath(specPath))
		cliutil.Writef(os.Stderr, "Source Size: %s\n", parser.FormatBytes(result.SourceSize))
		cliutil.Writef(os.Stderr, "Source Version: %s\n", result.SourceVersion)
		cliutil.Writef(os.Stderr, "Target Version: %s\n", result.TargetVersion)
		cliutil.Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

		if len(result.Issues) > 0 {
			cliutil.Writef(os.Stderr, "Conversion Issues (%d):\n", len(result.Issues))
			for _, issue := range result.Issues {
				cliutil.Writef(os.Stderr, "  %s\n", issue.String())
			}
			cliutil.Writef(os.Stderr, "\n")
		}

		if result.Success {
			cliutil.Writef(os.Stderr, "✓ Conversion successful")
			if result.InfoCount > 0 || result.WarningCount > 0 {
				cliutil.Writef(os.Stderr, " (%d info, %d warnings)", result.InfoCount, result.WarningCount)
			}
			cliutil.Writef(os.Stderr, "\n")
		} else {
			cliutil.Writef(os.Stderr, "✗ Conversion completed with %d critical issue(s)", result.CriticalCount)
			if result.WarningCount > 0 {
				cliutil.Writef(os.Stderr, ", %d warning(s)", result.WarningCount)
			}
			cliutil.Writef(os.Stderr, "\n")
		}
	}

	// Write output
	format := ResolveOutputFormat(flags.Format, flags.Output, result.SourceFormat)
	data, err := MarshalDocument(result.Document, format)
	if err != nil {
		return fmt.Errorf("marshaling converted document: %w", err)
	}

	if flags.Output == StdinFilePath {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing converted document to stdout: %w", err)
		}
	} else {
		cleaned := filepath.Clean(flags.Output)
		if err := ValidateOutputPath(cleaned, specPath); err != nil {
			return err
		}
		if err := RejectSymlinkOutput(cleaned); err != nil {
			return err
		}
		if err := WriteOutputFile(cleaned, data); err != nil {
			return err
		}
		if !flags.Quiet {
			cliutil.Writef(os.Stderr, "\nOutput written to: %s\n", cleaned)
		}
	}

	// Exit with error if conversion failed
	if !result.Success {
		os.Exit(1)
	}

	return nil
}
