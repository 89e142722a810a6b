package main

import (
	"github.com/spf13/cobra"
)

var rmdirCmd = &cobra.Command{
	Use:   "rmdir <dir>...",
	Short: "Remove empty directories",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return app.Rmdir(args...)
	},
}

// Rmdir removes every directory in order, stopping at the first failure.
func (app *App) Rmdir(dirs ...string) error {
	for _, dir := range dirs {
		if err := app.shell.Rmdir(dir); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(rmdirCmd)
}
