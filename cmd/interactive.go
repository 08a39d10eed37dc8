package cmd

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/helmcode/rawmat/pkg/tui"
)

var interactiveExportDir string

func NewInteractiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"ui"},
		Short:   "Open the interactive analysis form",
		Args:    cobra.NoArgs,
		RunE:    runInteractive,
	}

	cmd.Flags().StringVar(&interactiveExportDir, "export-dir", ".", "Directory for JSON and report exports")

	return cmd
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	// Log lines would corrupt the full screen UI.
	var logOut io.Writer = io.Discard
	if verbose {
		logOut = os.Stderr
	}
	rt, err := loadRuntime(runtimeOptions{logOut: logOut})
	if err != nil {
		return err
	}

	app := tui.NewApp(cmd.Context(), rt.analyzer, interactiveExportDir)
	_, err = tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
	return err
}
