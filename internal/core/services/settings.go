package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/custodia-labs/grepl/internal/core/domain"
	"github.com/custodia-labs/grepl/internal/core/ports/driven"
	"github.com/custodia-labs/grepl/internal/core/ports/driving"
)

var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService reads and writes the persisted defaults, validating
// values against their descriptors on the way in.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService wraps the given store.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Settings retrieves the current settings, falling back to defaults for
// any key that is not persisted or does not parse.
func (s *SettingsService) Settings() (domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := domain.Settings{
		IgnoreCase:    s.getBool(domain.SettingIgnoreCase, defaults.IgnoreCase),
		Colour:        s.getColour(defaults.Colour),
		LineNumbers:   s.getBool(domain.SettingLineNumbers, defaults.LineNumbers),
		WatchDebounce: s.getDebounce(defaults.WatchDebounce),
	}

	return settings, nil
}

// Get retrieves the current value for a single key, rendered as the
// string the user would type.
func (s *SettingsService) Get(key string) (string, error) {
	desc, ok := descriptorFor(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}

	if _, exists := s.configStore.Get(key); !exists {
		return desc.Default, nil
	}

	switch desc.Kind {
	case domain.SettingBool:
		return strconv.FormatBool(s.configStore.GetBool(key)), nil
	case domain.SettingInt:
		return strconv.Itoa(s.configStore.GetInt(key)), nil
	default:
		return s.configStore.GetString(key), nil
	}
}

// Set validates and persists a value for a key.
func (s *SettingsService) Set(key, value string) error {
	desc, ok := descriptorFor(key)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}

	parsed, err := parseSettingValue(desc, value)
	if err != nil {
		return err
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// List returns every setting with its current value, in display order.
func (s *SettingsService) List() ([]domain.SettingValue, error) {
	descs := domain.SettingDescriptors()
	values := make([]domain.SettingValue, 0, len(descs))

	for _, desc := range descs {
		value, err := s.Get(desc.Key)
		if err != nil {
			return nil, err
		}
		values = append(values, domain.SettingValue{Descriptor: desc, Value: value})
	}

	return values, nil
}

// descriptorFor looks up the descriptor for a key.
func descriptorFor(key string) (domain.SettingDescriptor, bool) {
	for _, desc := range domain.SettingDescriptors() {
		if desc.Key == key {
			return desc, true
		}
	}
	return domain.SettingDescriptor{}, false
}

// parseSettingValue coerces a user-typed value to the key's storage type.
func parseSettingValue(desc domain.SettingDescriptor, value string) (any, error) {
	switch desc.Kind {
	case domain.SettingBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s wants true or false, got %q",
				domain.ErrInvalidSettingValue, desc.Key, value)
		}
		return b, nil

	case domain.SettingInt:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %s wants a non-negative integer, got %q",
				domain.ErrInvalidSettingValue, desc.Key, value)
		}
		// TOML integers round-trip as int64
		return int64(n), nil

	case domain.SettingEnum:
		for _, allowed := range desc.Values {
			if value == allowed {
				return value, nil
			}
		}
		return nil, fmt.Errorf("%w: %s wants one of %v, got %q",
			domain.ErrInvalidSettingValue, desc.Key, desc.Values, value)

	default:
		return value, nil
	}
}

// getBool reads a boolean key with a default when unset.
func (s *SettingsService) getBool(key string, fallback bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetBool(key)
}

// getColour reads the colour mode, falling back when unset or invalid.
func (s *SettingsService) getColour(fallback domain.ColourMode) domain.ColourMode {
	raw := s.configStore.GetString(domain.SettingColour)
	if raw == "" {
		return fallback
	}

	mode := domain.ColourMode(raw)
	if !mode.IsValid() {
		return fallback
	}
	return mode
}

// getDebounce reads the watch debounce, falling back when unset or zero.
func (s *SettingsService) getDebounce(fallback time.Duration) time.Duration {
	ms := s.configStore.GetInt(domain.SettingWatchDebounce)
	if ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
