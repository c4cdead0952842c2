package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/animtools/animcanon/internal/anim"
	"github.com/animtools/animcanon/internal/canon"
	"github.com/animtools/animcanon/internal/document"
)

// OptimizeOptions holds flags for the optimize command.
type OptimizeOptions struct {
	*RootOptions
	Output string // output file path
	Tokens canon.TokenGenerator
}

// NewOptimizeCommand creates the optimize command.
func NewOptimizeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OptimizeOptions{RootOptions: rootOpts, Tokens: canon.UUIDv7Tokens{}}

	cmd := &cobra.Command{
		Use:   "optimize <document>",
		Short: "Canonicalize an animation document",
		Long: `Canonicalize every timeline of an animation document.

Redundant keyframes are elided, structurally identical timelines are
deduplicated under shared canonical ids, and degenerate retraced path
geometries are repaired. The rewritten document and a run report are
emitted.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")

	return cmd
}

func runOptimize(opts *OptimizeOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	doc, errs := loadDocument(formatter, path)
	if errs != nil {
		return errs
	}

	formatter.VerboseLog("Loaded %q: %d timeline(s)", doc.Name, len(doc.Timelines))

	out, err := document.CanonicalizeDocument(doc, opts.Tokens)
	if err != nil {
		var ie *anim.InvariantError
		if errors.As(err, &ie) {
			// A fatal animation invariant was violated; the document
			// cannot be canonicalized at all.
			_ = formatter.Error(string(ie.Code), ie.Message, ie.Detail)
			return WrapExitError(ExitCommandError, "canonicalization aborted", err)
		}
		_ = formatter.Error(document.ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "canonicalization failed", err)
	}

	if opts.Output != "" {
		if err := writeDocumentFile(&out.Document, opts.Output); err != nil {
			_ = formatter.Error(document.ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err), nil)
			return WrapExitError(ExitCommandError, "write failed", err)
		}
	}

	return outputOptimizeSuccess(formatter, out, opts.Output)
}

func outputOptimizeSuccess(formatter *OutputFormatter, out *document.Output, outputFile string) error {
	if formatter.Format == "json" {
		return formatter.Success(out)
	}

	r := out.Report
	fmt.Fprintf(formatter.Writer, "✓ Canonicalized %d timeline(s): %d → %d keyframe(s)\n",
		r.Timelines, r.KeyframesBefore, r.KeyframesAfter)
	if r.SharedTimelines > 0 {
		fmt.Fprintf(formatter.Writer, "  %d timeline(s) share a canonical handle\n", r.SharedTimelines)
	}
	if r.ReconciledPaths > 0 {
		fmt.Fprintf(formatter.Writer, "  %d path timeline(s) repaired\n", r.ReconciledPaths)
	}
	fmt.Fprintf(formatter.Writer, "  run token %s\n", out.RunToken)
	if outputFile != "" {
		fmt.Fprintf(formatter.Writer, "Wrote canonicalized document to %s\n", outputFile)
	}
	return nil
}

// newFormatter builds the per-command output formatter. Verbose logs go
// to stderr to avoid corrupting JSON output.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// loadDocument loads and validates a document, emitting errors through
// the formatter. Load errors (missing file, parse failure) are command
// errors; validation errors are document failures.
func loadDocument(formatter *OutputFormatter, path string) (*document.Document, error) {
	doc, errs := document.Load(path, document.LoadModeCollectAll)
	if len(errs) == 0 {
		return doc, nil
	}

	var loadErr *document.LoadError
	if errors.As(errs[0], &loadErr) {
		_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
		return nil, WrapExitError(ExitCommandError, loadErr.Message, loadErr)
	}

	return nil, outputValidationErrors(formatter, errs)
}

// writeDocumentFile writes a document as indented JSON.
func writeDocumentFile(doc *document.Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
