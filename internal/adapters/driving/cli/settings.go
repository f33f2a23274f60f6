package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persisted defaults",
	Long: `View and change the defaults stored in ~/.grepl/config.toml.

Settings supply the defaults for every run; flags and the
GREPL_IGNORE_CASE environment variable override them per invocation.`,
	RunE: runSettingsList,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings with their current values",
	RunE:  runSettingsList,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the current value of one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Validate and persist a new value for a setting.

Examples:
  grepl settings set search.ignore_case true
  grepl settings set output.colour never
  grepl settings set watch.debounce_ms 250`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsList(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	values, err := settingsService.List()
	if err != nil {
		return fmt.Errorf("failed to list settings: %w", err)
	}

	cmd.Println("Settings")
	cmd.Println("========")
	cmd.Println()
	for _, value := range values {
		cmd.Printf("  %-20s %-8s %s\n",
			value.Descriptor.Key, value.Value, value.Descriptor.Description)
	}

	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	value, err := settingsService.Get(args[0])
	if err != nil {
		return fmt.Errorf("failed to get setting: %w", err)
	}

	cmd.Println(value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s to %s\n", key, value)
	return nil
}
