package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/animtools/animcanon/internal/document"
)

// Scenario defines a conformance test scenario: one animation document
// run through the canonicalizer, optionally trimmed to a window first.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Document is the inline animation document to canonicalize.
	Document document.Document `yaml:"document"`

	// Window optionally trims every timeline before canonicalization.
	Window *Window `yaml:"window,omitempty"`

	// RunToken is an optional fixed run token for deterministic output.
	// If empty, defaults to "test-run-default" for golden file
	// comparison.
	RunToken string `yaml:"run_token,omitempty"`
}

// Window is a [Start, End) frame range.
type Window struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// DefaultRunToken is used when a scenario does not pin its own token.
const DefaultRunToken = "test-run-default"

// LoadScenario reads and parses a scenario YAML file.
// Unknown fields are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}

	if scenario.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	if scenario.Window != nil && scenario.Window.End < scenario.Window.Start {
		return nil, fmt.Errorf("scenario %s: window end %v before start %v",
			path, scenario.Window.End, scenario.Window.Start)
	}
	if scenario.RunToken == "" {
		scenario.RunToken = DefaultRunToken
	}
	return &scenario, nil
}
