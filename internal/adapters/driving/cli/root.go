package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/grepl/internal/adapters/driven/config/file"
	"github.com/custodia-labs/grepl/internal/adapters/driven/source/filesystem"
	"github.com/custodia-labs/grepl/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/grepl/internal/core/domain"
	"github.com/custodia-labs/grepl/internal/core/ports/driven"
	"github.com/custodia-labs/grepl/internal/core/ports/driving"
	"github.com/custodia-labs/grepl/internal/core/services"
	"github.com/custodia-labs/grepl/internal/logger"
)

// version is the binary version reported by the version command.
// Overridden at startup via SetVersion.
var version = "dev"

// Services used by the commands. Populated by SetServices, or with the
// default wiring on Execute.
var (
	searchService   driving.SearchService
	settingsService driving.SettingsService
	documentSource  driven.DocumentSource
	documentStore   driven.DocumentStore
)

// Services bundles the dependencies the CLI commands run against.
type Services struct {
	Search   driving.SearchService
	Settings driving.SettingsService
	Source   driven.DocumentSource
	Docs     driven.DocumentStore
}

// SetServices replaces the command dependencies. Tests use this to
// inject fakes.
func SetServices(s Services) {
	searchService = s.Search
	settingsService = s.Settings
	documentSource = s.Source
	documentStore = s.Docs
}

// SetVersion records the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "grepl [flags] <query> <path>",
	Short: "Print the lines of a file that match a query",
	Long: `grepl searches a text file and prints every line that contains the
query string. Matching is case sensitive unless -i, the
GREPL_IGNORE_CASE environment variable or the search.ignore_case
setting says otherwise.

Examples:
  # Lines containing "nobody"
  grepl nobody poem.txt

  # Case insensitive, with line numbers
  grepl -i -n rust poem.txt

  # Re-run the search whenever the file changes
  grepl --watch error service.log`,
	Args:         validateSearchArgs,
	RunE:         runSearch,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(rootVerbose)
	},
}

var rootVerbose bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootVerbose, "verbose", false, "enable diagnostic logging on stderr")
	rootCmd.SetErrPrefix("grepl:")
}

// validateSearchArgs reports which positional argument is missing, so
// a forgotten query and a forgotten path read differently.
func validateSearchArgs(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return domain.ErrMissingQuery
	case 1:
		return domain.ErrMissingPath
	case 2:
		return nil
	default:
		return fmt.Errorf("accepts 2 args, received %d", len(args))
	}
}

// Execute wires the default services and runs the root command.
func Execute(ctx context.Context) error {
	if err := initDefaultServices(); err != nil {
		// Cobra only prints errors raised while running a command, so
		// wiring failures are reported here.
		rootCmd.PrintErrln("grepl:", err)
		return err
	}
	return rootCmd.ExecuteContext(ctx)
}

// initDefaultServices builds the production wiring for any service not
// already injected: TOML settings under ~/.grepl, documents read from
// the local filesystem and cached in memory.
func initDefaultServices() error {
	if searchService != nil && settingsService != nil &&
		documentSource != nil && documentStore != nil {
		return nil
	}

	if settingsService == nil {
		configStore, err := file.NewConfigStore("")
		if err != nil {
			return fmt.Errorf("open config store: %w", err)
		}
		settingsService = services.NewSettingsService(configStore)
	}

	settings, err := settingsService.Settings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if documentSource == nil {
		documentSource = filesystem.NewSource(settings.WatchDebounce)
	}
	if documentStore == nil {
		documentStore = memory.NewDocumentStore()
	}
	if searchService == nil {
		searchService = services.NewSearchService(documentSource, documentStore)
	}

	return nil
}
