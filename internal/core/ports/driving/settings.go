package driving

import "github.com/custodia-labs/grepl/internal/core/domain"

// SettingsService manages persisted application settings.
type SettingsService interface {
	// Settings retrieves the current settings, falling back to defaults
	// for any key that is not persisted.
	Settings() (domain.Settings, error)

	// Get retrieves the current value for a single key, rendered as the
	// string the user would type. Unknown keys fail with
	// domain.ErrUnknownSetting.
	Get(key string) (string, error)

	// Set validates and persists a value for a key. Unknown keys fail
	// with domain.ErrUnknownSetting; values that do not parse for the
	// key's kind fail with domain.ErrInvalidSettingValue.
	Set(key, value string) error

	// List returns every setting descriptor together with its current
	// value, in display order.
	List() ([]domain.SettingValue, error)
}
