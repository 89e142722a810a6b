package main

import (
	"github.com/spf13/cobra"
)

var cdCmd = &cobra.Command{
	Use:   "cd <dir>",
	Short: "Validate a directory change and print the resulting directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return app.Cd(args[0])
	},
}

// Cd changes the working directory of the shell and prints it.
func (app *App) Cd(dir string) error {
	if err := app.shell.Cd(dir); err != nil {
		return err
	}

	return app.Pwd()
}

func init() {
	rootCmd.AddCommand(cdCmd)
}
