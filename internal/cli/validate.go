package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/animtools/animcanon/internal/document"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool                       `json:"valid"`
	Errors []document.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <document>",
		Short: "Validate an animation document without canonicalizing",
		Long: `Validate an animation document against the schema.

Checks value types, keyframe ordering, easing definitions, and geometry
shape without rewriting anything. Faster than optimize for authoring
feedback.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	doc, errs := document.Load(path, document.LoadModeCollectAll)
	if len(errs) > 0 {
		var loadErr *document.LoadError
		if errors.As(errs[0], &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
			return WrapExitError(ExitCommandError, loadErr.Message, loadErr)
		}
		return outputValidationErrors(formatter, errs)
	}

	formatter.VerboseLog("Loaded %q: %d timeline(s)", doc.Name, len(doc.Timelines))
	return outputValidateSuccess(formatter, doc)
}

func outputValidateSuccess(formatter *OutputFormatter, doc *document.Document) error {
	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true})
	}
	fmt.Fprintf(formatter.Writer, "✓ %s is valid (%d timeline(s))\n", doc.Name, len(doc.Timelines))
	return nil
}

// outputValidationErrors reports schema validation errors and maps them
// to a document-failure exit.
func outputValidationErrors(formatter *OutputFormatter, errs []error) error {
	verrs := make([]document.ValidationError, 0, len(errs))
	for _, err := range errs {
		var ve document.ValidationError
		if errors.As(err, &ve) {
			verrs = append(verrs, ve)
		} else {
			verrs = append(verrs, document.ValidationError{
				Field:   "document",
				Message: err.Error(),
				Code:    document.ErrCodeGeneric,
			})
		}
	}

	if formatter.Format == "json" {
		if err := formatter.Success(ValidationResult{Valid: false, Errors: verrs}); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(verrs)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, ve := range verrs {
		fmt.Fprintf(formatter.Writer, "  [%s] %s: %s\n", ve.Code, ve.Field, ve.Message)
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(verrs)))
}
