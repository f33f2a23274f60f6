package driven

// ConfigStore persists grepl's settings under dotted keys such as
// output.colour. Typed getters absorb the loose typing of the storage
// layer; a missing or mistyped key simply yields the zero value.
type ConfigStore interface {
	// Get retrieves a setting and reports whether the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string setting, or "" when the key is
	// absent or holds another type.
	GetString(key string) string

	// GetInt retrieves an integer setting, or 0 when the key is
	// absent or holds another type.
	GetInt(key string) int

	// GetBool retrieves a boolean setting, or false when the key is
	// absent or holds another type.
	GetBool(key string) bool

	// Set stores a setting. Implementations persist immediately.
	Set(key string, value any) error

	// Save persists the current settings to storage.
	Save() error

	// Load reads settings from storage, replacing unsaved state.
	Load() error

	// Path returns the backing file path, for display.
	Path() string
}
