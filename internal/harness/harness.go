package harness

import (
	"fmt"

	"github.com/animtools/animcanon/internal/canon"
	"github.com/animtools/animcanon/internal/document"
)

// Run executes a scenario and returns the canonicalization output.
//
// Execution flow:
//  1. Validate the scenario document
//  2. Trim timelines to the window, when one is set
//  3. Canonicalize with the scenario's fixed run token
func Run(scenario *Scenario) (*document.Output, error) {
	doc := &scenario.Document

	if verrs := document.Validate(doc); len(verrs) > 0 {
		return nil, fmt.Errorf("scenario %s: invalid document: %w", scenario.Name, verrs[0])
	}

	if scenario.Window != nil {
		doc = document.TrimDocument(doc, scenario.Window.Start, scenario.Window.End)
	}

	token := scenario.RunToken
	if token == "" {
		token = DefaultRunToken
	}
	out, err := document.CanonicalizeDocument(doc, canon.NewFixedTokens(token))
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	return out, nil
}
