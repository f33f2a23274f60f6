package domain

import "time"

const unknownDescription = "Unknown"

// ColourMode controls when matched fragments are coloured in text output.
type ColourMode string

// Available colour modes.
const (
	// ColourAuto enables colour only when stdout is a terminal.
	ColourAuto ColourMode = "auto"

	// ColourAlways enables colour unconditionally.
	ColourAlways ColourMode = "always"

	// ColourNever disables colour.
	ColourNever ColourMode = "never"
)

// IsValid returns true if the colour mode is recognised.
func (m ColourMode) IsValid() bool {
	switch m {
	case ColourAuto, ColourAlways, ColourNever:
		return true
	default:
		return false
	}
}

// String returns the mode as it appears in flags and config files.
func (m ColourMode) String() string {
	return string(m)
}

// Description explains the mode for settings listings.
func (m ColourMode) Description() string {
	switch m {
	case ColourAuto:
		return "Auto (colour when stdout is a terminal)"
	case ColourAlways:
		return "Always"
	case ColourNever:
		return "Never"
	default:
		return unknownDescription
	}
}

// Settings holds the persisted defaults applied to every invocation.
// Flags and the environment override them per run.
type Settings struct {
	// IgnoreCase is the default for case-insensitive matching.
	IgnoreCase bool

	// Colour controls match highlighting in text output.
	Colour ColourMode

	// LineNumbers prefixes matches with their line numbers.
	LineNumbers bool

	// WatchDebounce is the minimum interval between watch-mode re-runs.
	WatchDebounce time.Duration
}

// DefaultSettings returns the settings used when nothing is persisted.
func DefaultSettings() Settings {
	return Settings{
		IgnoreCase:    false,
		Colour:        ColourAuto,
		LineNumbers:   false,
		WatchDebounce: 500 * time.Millisecond,
	}
}

// SettingKind is the value type a setting accepts.
type SettingKind string

// Available setting kinds.
const (
	// SettingBool accepts true/false values.
	SettingBool SettingKind = "bool"

	// SettingInt accepts non-negative integer values.
	SettingInt SettingKind = "int"

	// SettingEnum accepts one of a fixed set of strings.
	SettingEnum SettingKind = "enum"
)

// Persisted setting keys, dot-notation as stored in the config file.
const (
	// SettingIgnoreCase is the default-ignore-case key.
	SettingIgnoreCase = "search.ignore_case"

	// SettingColour is the colour mode key.
	SettingColour = "output.colour"

	// SettingLineNumbers is the line numbers key.
	SettingLineNumbers = "output.line_numbers"

	// SettingWatchDebounce is the watch debounce key, in milliseconds.
	SettingWatchDebounce = "watch.debounce_ms"
)

// SettingDescriptor describes one configurable key.
type SettingDescriptor struct {
	// Key is the dot-notation config key.
	Key string

	// Kind is the accepted value type.
	Kind SettingKind

	// Default is the value used when the key is not persisted.
	Default string

	// Description explains the setting to the user.
	Description string

	// Values enumerates the accepted values for enum settings.
	Values []string
}

// SettingValue pairs a descriptor with its current value, rendered as
// the string the user would type.
type SettingValue struct {
	// Descriptor describes the key.
	Descriptor SettingDescriptor

	// Value is the current value.
	Value string
}

// SettingDescriptors lists every configurable key in display order.
func SettingDescriptors() []SettingDescriptor {
	return []SettingDescriptor{
		{
			Key:         SettingIgnoreCase,
			Kind:        SettingBool,
			Default:     "false",
			Description: "Match case-insensitively by default",
		},
		{
			Key:         SettingColour,
			Kind:        SettingEnum,
			Default:     ColourAuto.String(),
			Description: "When to colour matched fragments",
			Values: []string{
				ColourAuto.String(),
				ColourAlways.String(),
				ColourNever.String(),
			},
		},
		{
			Key:         SettingLineNumbers,
			Kind:        SettingBool,
			Default:     "false",
			Description: "Print line numbers by default",
		},
		{
			Key:         SettingWatchDebounce,
			Kind:        SettingInt,
			Default:     "500",
			Description: "Minimum milliseconds between watch re-runs",
		},
	}
}
