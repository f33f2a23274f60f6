package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/grepl/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui <path>",
	Short: "Search a file interactively",
	Long: `Launch the interactive terminal user interface for grepl.

Type a query and the matching lines of the file update with every
keystroke.

Controls:
  Up/Down  - Navigate matches (also Ctrl+P/Ctrl+N)
  Ctrl+T   - Toggle case sensitivity
  Esc      - Clear the query
  Ctrl+C   - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Recover so a panic inside bubbletea leaves a stack trace rather
	// than a corrupted terminal.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(searchService, settingsService, documentSource)

	app, err := tui.NewApp(ports, args[0])
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
