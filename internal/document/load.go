package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// LoadMode controls how errors are handled during document loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// Load error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E002" // Path not found or unreadable
	ErrCodeUnsupported = "E003" // Unsupported file extension
	ErrCodeParse       = "E004" // JSON/YAML parse failure
	ErrCodeWriteFailed = "E005" // File write error
)

// LoadError represents an error that occurred during document loading.
type LoadError struct {
	Code    string
	Message string
	Path    string
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Load reads, parses, and validates an animation document. The format
// is chosen by extension: .json decodes as strict JSON, .yaml/.yml as
// strict YAML. Unknown fields are rejected in both formats.
//
// If mode is LoadModeFailFast, returns on the first error. If mode is
// LoadModeCollectAll, parse success is followed by full validation and
// every validation error is returned.
func Load(path string, mode LoadMode) (*Document, []error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Path: path, Message: fmt.Sprintf("reading document: %v", err)}}
	}

	var doc Document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, []error{&LoadError{Code: ErrCodeParse, Path: path, Message: fmt.Sprintf("parsing JSON: %v", err)}}
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, []error{&LoadError{Code: ErrCodeParse, Path: path, Message: fmt.Sprintf("parsing YAML: %v", err)}}
		}
	default:
		return nil, []error{&LoadError{Code: ErrCodeUnsupported, Path: path, Message: fmt.Sprintf("unsupported document extension %q (want .json, .yaml, or .yml)", ext)}}
	}

	normalizeDocument(&doc)

	verrs := Validate(&doc)
	if len(verrs) == 0 {
		return &doc, nil
	}
	if mode == LoadModeFailFast {
		return &doc, []error{verrs[0]}
	}
	errs := make([]error, 0, len(verrs))
	for _, ve := range verrs {
		errs = append(errs, ve)
	}
	return &doc, errs
}

// normalizeDocument applies NFC normalization to all user-provided
// identifier strings. Parsing is the trust boundary: everything past
// it sees normalized text only.
func normalizeDocument(doc *Document) {
	doc.Name = norm.NFC.String(doc.Name)
	for i := range doc.Timelines {
		tl := &doc.Timelines[i]
		tl.Target = norm.NFC.String(tl.Target)
		tl.Property = norm.NFC.String(tl.Property)
	}
}
