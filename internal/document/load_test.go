package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalJSON = `{
  "schema_version": "1",
  "name": "pulse",
  "timelines": [
    {
      "target": "shape1",
      "property": "opacity",
      "value_type": "scalar",
      "initial": {"scalar": 0},
      "keyframes": [
        {"frame": 0, "value": {"scalar": 0}},
        {"frame": 10, "value": {"scalar": 1}}
      ]
    }
  ]
}`

const minimalYAML = `schema_version: "1"
name: pulse
timelines:
  - target: shape1
    property: opacity
    value_type: scalar
    initial:
      scalar: 0
    keyframes:
      - frame: 0
        value:
          scalar: 0
      - frame: 10
        value:
          scalar: 1
`

func TestLoad_JSON(t *testing.T) {
	path := writeDoc(t, "doc.json", minimalJSON)

	doc, errs := Load(path, LoadModeCollectAll)
	require.Empty(t, errs)
	require.NotNil(t, doc)
	assert.Equal(t, "pulse", doc.Name)
	require.Len(t, doc.Timelines, 1)
	assert.Equal(t, "opacity", doc.Timelines[0].Property)
	require.Len(t, doc.Timelines[0].Keyframes, 2)
	require.NotNil(t, doc.Timelines[0].Keyframes[1].Value.Scalar)
	assert.Equal(t, 1.0, *doc.Timelines[0].Keyframes[1].Value.Scalar)
}

func TestLoad_YAML(t *testing.T) {
	path := writeDoc(t, "doc.yaml", minimalYAML)

	doc, errs := Load(path, LoadModeCollectAll)
	require.Empty(t, errs)
	require.NotNil(t, doc)
	assert.Equal(t, "pulse", doc.Name)
	require.Len(t, doc.Timelines, 1)
	assert.Equal(t, ValueScalar, doc.Timelines[0].ValueType)
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "json",
			file:    "doc.json",
			content: `{"schema_version": "1", "name": "x", "timelines": [], "bogus": true}`,
		},
		{
			name: "yaml",
			file: "doc.yaml",
			content: `schema_version: "1"
name: x
timelines: []
bogus: true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDoc(t, tt.file, tt.content)
			_, errs := Load(path, LoadModeFailFast)
			require.Len(t, errs, 1)
			var le *LoadError
			require.ErrorAs(t, errs[0], &le)
			assert.Equal(t, ErrCodeParse, le.Code)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, errs := Load(filepath.Join(t.TempDir(), "nope.json"), LoadModeFailFast)
	require.Len(t, errs, 1)
	var le *LoadError
	require.ErrorAs(t, errs[0], &le)
	assert.Equal(t, ErrCodeNotFound, le.Code)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeDoc(t, "doc.toml", "name = 'x'")
	_, errs := Load(path, LoadModeFailFast)
	require.Len(t, errs, 1)
	var le *LoadError
	require.ErrorAs(t, errs[0], &le)
	assert.Equal(t, ErrCodeUnsupported, le.Code)
}

func TestLoad_NormalizesIdentifiers(t *testing.T) {
	// "Café" with a combining acute accent; NFC folds it to the
	// precomposed form.
	content := `{
  "schema_version": "1",
  "name": "Café",
  "timelines": [
    {
      "target": "Café",
      "property": "opacity",
      "value_type": "scalar",
      "initial": {"scalar": 0},
      "keyframes": [{"frame": 0, "value": {"scalar": 0}}]
    }
  ]
}`
	path := writeDoc(t, "doc.json", content)

	doc, errs := Load(path, LoadModeCollectAll)
	require.Empty(t, errs)
	assert.Equal(t, "Café", doc.Name)
	assert.Equal(t, "Café", doc.Timelines[0].Target)
}

func TestLoad_CollectAllGathersValidationErrors(t *testing.T) {
	content := `{
  "schema_version": "9",
  "name": "broken",
  "timelines": [
    {
      "target": "",
      "property": "opacity",
      "value_type": "wobble",
      "initial": {},
      "keyframes": []
    }
  ]
}`
	path := writeDoc(t, "doc.json", content)

	_, errs := Load(path, LoadModeCollectAll)
	require.GreaterOrEqual(t, len(errs), 3)

	codes := make([]string, 0, len(errs))
	for _, err := range errs {
		var ve ValidationError
		require.ErrorAs(t, err, &ve)
		codes = append(codes, ve.Code)
	}
	assert.Contains(t, codes, ErrSchemaVersion)
	assert.Contains(t, codes, ErrTimelineIdent)
	assert.Contains(t, codes, ErrValueType)
}

func TestLoad_FailFastReturnsOneError(t *testing.T) {
	content := `{
  "schema_version": "9",
  "name": "broken",
  "timelines": [
    {
      "target": "",
      "property": "",
      "value_type": "wobble",
      "initial": {},
      "keyframes": []
    }
  ]
}`
	path := writeDoc(t, "doc.json", content)

	_, errs := Load(path, LoadModeFailFast)
	require.Len(t, errs, 1)
}
