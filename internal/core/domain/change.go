package domain

// ChangeType represents the kind of document change seen while watching.
type ChangeType int

const (
	// ChangeCreated indicates the file appeared.
	ChangeCreated ChangeType = iota

	// ChangeUpdated indicates the file content changed.
	ChangeUpdated

	// ChangeDeleted indicates the file was removed.
	ChangeDeleted
)

// String returns a human-readable name for the change type.
func (t ChangeType) String() string {
	switch t {
	case ChangeCreated:
		return "created"
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Change is a single watch event for a document path.
type Change struct {
	// Type says what happened to the file.
	Type ChangeType

	// Path is the affected file.
	Path string
}
