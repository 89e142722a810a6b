package main

import (
	"github.com/spf13/cobra"
)

var pwdCmd = &cobra.Command{
	Use:   "pwd",
	Short: "Print the working directory",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return app.Pwd()
	},
}

// Pwd prints the working directory of the shell.
func (app *App) Pwd() error {
	dir, err := app.shell.Cwd()
	if err != nil {
		return err
	}

	app.println(dir)

	return nil
}

func init() {
	rootCmd.AddCommand(pwdCmd)
}
