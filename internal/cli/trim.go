package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/animtools/animcanon/internal/document"
)

// TrimOptions holds flags for the trim command.
type TrimOptions struct {
	*RootOptions
	Start  float64
	End    float64
	Output string // output file path
}

// NewTrimCommand creates the trim command.
func NewTrimCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TrimOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trim <document>",
		Short: "Trim timelines to a frame window",
		Long: `Drop keyframes outside a [start, end) frame window.

Each timeline keeps at most one keyframe before the window to anchor
its starting value, every keyframe inside the window, and the first
keyframe at or past the end.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrim(opts, args[0], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.Start, "start", 0, "window start frame (inclusive)")
	cmd.Flags().Float64Var(&opts.End, "end", 0, "window end frame (exclusive)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func runTrim(opts *TrimOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.End < opts.Start {
		message := fmt.Sprintf("invalid window: end %v before start %v", opts.End, opts.Start)
		_ = formatter.Error(document.ErrCodeGeneric, message, nil)
		return NewExitError(ExitCommandError, message)
	}

	doc, errs := loadDocument(formatter, path)
	if errs != nil {
		return errs
	}

	before := countKeyframes(doc)
	trimmed := document.TrimDocument(doc, opts.Start, opts.End)
	after := countKeyframes(trimmed)

	formatter.VerboseLog("Window [%v, %v): %d → %d keyframe(s)", opts.Start, opts.End, before, after)

	if opts.Output != "" {
		if err := writeDocumentFile(trimmed, opts.Output); err != nil {
			_ = formatter.Error(document.ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err), nil)
			return WrapExitError(ExitCommandError, "write failed", err)
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(trimmed)
	}

	fmt.Fprintf(formatter.Writer, "✓ Trimmed %d timeline(s) to [%v, %v): %d → %d keyframe(s)\n",
		len(trimmed.Timelines), opts.Start, opts.End, before, after)
	if opts.Output != "" {
		fmt.Fprintf(formatter.Writer, "Wrote trimmed document to %s\n", opts.Output)
	}
	return nil
}

func countKeyframes(doc *document.Document) int {
	total := 0
	for i := range doc.Timelines {
		total += len(doc.Timelines[i].Keyframes)
	}
	return total
}
