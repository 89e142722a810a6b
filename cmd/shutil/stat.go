package main

import (
	"github.com/spf13/cobra"
)

var statNoFollow bool

var statCmd = &cobra.Command{
	Use:   "stat <path>...",
	Short: "Print the metadata of paths",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return app.Stat(statNoFollow, args...)
	},
}

// Stat prints the metadata of every path, stopping at the first failure.
func (app *App) Stat(noFollow bool, paths ...string) error {
	for _, path := range paths {
		stat := app.shell.Stat
		if noFollow {
			stat = app.shell.Lstat
		}

		rec, err := stat(path)
		if err != nil {
			return err
		}

		app.println(app.uiHandler.RenderStat(rec))
	}

	return nil
}

func init() {
	statCmd.Flags().BoolVarP(&statNoFollow, "no-dereference", "L", false, "describe symlinks themselves instead of their targets")
	rootCmd.AddCommand(statCmd)
}
