package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/grepl/internal/adapters/driven/output"
	"github.com/custodia-labs/grepl/internal/core/domain"
	"github.com/custodia-labs/grepl/internal/core/ports/driven"
	"github.com/custodia-labs/grepl/internal/logger"
)

// ignoreCaseEnv toggles case insensitive matching when set. Values
// ParseBool understands are honoured; any other non-empty value counts
// as enabled, so GREPL_IGNORE_CASE=1 and GREPL_IGNORE_CASE=yes both
// work.
const ignoreCaseEnv = "GREPL_IGNORE_CASE"

var (
	searchIgnoreCase  bool
	searchRegex       bool
	searchLineNumbers bool
	searchCount       bool
	searchMaxCount    int
	searchJSON        bool
	searchColour      string
	searchWatch       bool
)

func init() {
	rootCmd.Flags().BoolVarP(&searchIgnoreCase, "ignore-case", "i", false, "match without regard to case")
	rootCmd.Flags().BoolVar(&searchRegex, "regex", false, "treat the query as a regular expression")
	rootCmd.Flags().BoolVarP(&searchLineNumbers, "line-number", "n", false, "prefix each match with its line number")
	rootCmd.Flags().BoolVarP(&searchCount, "count", "c", false, "print only the number of matching lines")
	rootCmd.Flags().IntVarP(&searchMaxCount, "max-count", "m", 0, "stop after this many matches (0 = unlimited)")
	rootCmd.Flags().BoolVar(&searchJSON, "json", false, "print the result as JSON")
	rootCmd.Flags().StringVar(&searchColour, "colour", "", "highlight matches: auto, always or never")
	rootCmd.Flags().BoolVar(&searchWatch, "watch", false, "re-run the search when the file changes")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}
	if searchJSON && searchWatch {
		return errors.New("--json cannot be combined with --watch")
	}

	settings := currentSettings()

	colour, err := resolveColourMode(cmd, settings)
	if err != nil {
		return err
	}

	req := domain.SearchRequest{
		Query: args[0],
		Path:  args[1],
		Options: domain.SearchOptions{
			IgnoreCase: resolveIgnoreCase(cmd, settings),
			Regex:      searchRegex,
			MaxCount:   searchMaxCount,
		},
	}

	writer := buildWriter(cmd, settings, colour)

	if searchWatch {
		return runWatchedSearch(cmd, req, writer)
	}

	set, err := searchService.Search(cmd.Context(), req)
	if err != nil {
		return err
	}
	return writer.Write(set)
}

// resolveIgnoreCase applies the precedence order: the -i flag when
// given, then GREPL_IGNORE_CASE, then the persisted setting.
func resolveIgnoreCase(cmd *cobra.Command, settings domain.Settings) bool {
	if cmd.Flags().Changed("ignore-case") {
		return searchIgnoreCase
	}
	if enabled, ok := ignoreCaseFromEnv(); ok {
		return enabled
	}
	return settings.IgnoreCase
}

// ignoreCaseFromEnv reads the environment toggle. The second return
// reports whether the variable was set to a non-empty value.
func ignoreCaseFromEnv() (bool, bool) {
	raw, ok := os.LookupEnv(ignoreCaseEnv)
	if !ok || raw == "" {
		return false, false
	}
	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return true, true
	}
	return enabled, true
}

// resolveColourMode applies the --colour flag over the persisted
// setting, rejecting values the writer does not understand.
func resolveColourMode(cmd *cobra.Command, settings domain.Settings) (domain.ColourMode, error) {
	if !cmd.Flags().Changed("colour") {
		return settings.Colour, nil
	}
	mode := domain.ColourMode(searchColour)
	if !mode.IsValid() {
		return "", fmt.Errorf("%w: --colour wants auto, always or never, got %q",
			domain.ErrInvalidSettingValue, searchColour)
	}
	return mode, nil
}

// colourEnabled decides whether highlighted output should be written,
// probing the output stream for a terminal in auto mode.
func colourEnabled(cmd *cobra.Command, mode domain.ColourMode) bool {
	switch mode {
	case domain.ColourAlways:
		return true
	case domain.ColourNever:
		return false
	default:
		f, ok := cmd.OutOrStdout().(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

func buildWriter(cmd *cobra.Command, settings domain.Settings, colour domain.ColourMode) driven.ResultWriter {
	if searchJSON {
		return output.NewJSONWriter(cmd.OutOrStdout())
	}

	lineNumbers := searchLineNumbers
	if !cmd.Flags().Changed("line-number") {
		lineNumbers = settings.LineNumbers
	}

	return output.NewTextWriter(cmd.OutOrStdout(), output.TextOptions{
		LineNumbers: lineNumbers,
		CountOnly:   searchCount,
		Colour:      colourEnabled(cmd, colour),
	})
}

// currentSettings loads the persisted settings, falling back to the
// defaults when no settings service is wired or loading fails.
func currentSettings() domain.Settings {
	if settingsService == nil {
		return domain.DefaultSettings()
	}
	settings, err := settingsService.Settings()
	if err != nil {
		logger.Warn("Failed to load settings: %v", err)
		return domain.DefaultSettings()
	}
	return settings
}

// runWatchedSearch prints the current matches, then re-runs the search
// whenever the file changes until the context is cancelled.
func runWatchedSearch(cmd *cobra.Command, req domain.SearchRequest, writer driven.ResultWriter) error {
	if documentSource == nil {
		return errors.New("document source not configured")
	}

	ctx := cmd.Context()

	set, err := searchService.Search(ctx, req)
	if err != nil {
		return err
	}
	if err := writer.Write(set); err != nil {
		return err
	}

	changes, errs, err := documentSource.Watch(ctx, req.Path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", req.Path, err)
	}

	logger.Info("Watching %s, press Ctrl+C to stop", req.Path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			if change.Type == domain.ChangeDeleted {
				logger.Warn("%s was removed, waiting for it to come back", req.Path)
				continue
			}
			if err := rerunSearch(ctx, req, writer); err != nil {
				return err
			}
		case watchErr, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn("Watch error: %v", watchErr)
		}
	}
}

// rerunSearch performs one watch-triggered search. A failed search is
// logged and swallowed, since the file may be mid-save or briefly
// absent; a failed write is returned, since nothing further can be
// printed once stdout is gone.
func rerunSearch(ctx context.Context, req domain.SearchRequest, writer driven.ResultWriter) error {
	set, err := searchService.Search(ctx, req)
	if err != nil {
		logger.Warn("Search failed: %v", err)
		return nil
	}
	return writer.Write(set)
}
