package cli

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("grepl version %s\n", version)
		if revision := vcsRevision(); revision != "" {
			cmd.Printf("  commit: %s\n", revision)
		}
	},
}

// vcsRevision reports the short VCS hash stamped into the binary, if any.
func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key != "vcs.revision" {
			continue
		}
		if len(setting.Value) > 12 {
			return setting.Value[:12]
		}
		return setting.Value
	}
	return ""
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
