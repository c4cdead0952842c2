package document

// Version constants for document schema and tool.
const (
	// SchemaVersion is the animation document schema version.
	SchemaVersion = "1"

	// ToolVersion is the animcanon tool version.
	ToolVersion = "0.1.0"
)
