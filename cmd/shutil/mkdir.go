package main

import (
	"github.com/spf13/cobra"
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <dir>...",
	Short: "Create directories (never recursively)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return app.Mkdir(args...)
	},
}

// Mkdir creates every directory in order, stopping at the first failure.
func (app *App) Mkdir(dirs ...string) error {
	for _, dir := range dirs {
		if err := app.shell.Mkdir(dir); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(mkdirCmd)
}
