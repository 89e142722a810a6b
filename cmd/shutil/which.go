package main

import (
	"github.com/spf13/cobra"
)

var whichBin bool

var whichCmd = &cobra.Command{
	Use:   "which <name>",
	Short: "Locate an executable in /usr/bin (and /bin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return app.Which(args[0], whichBin)
	},
}

// Which prints the full path of the executable name.
func (app *App) Which(name string, indexBin bool) error {
	path, err := app.shell.Which(name, indexBin)
	if err != nil {
		return err
	}

	app.println(path)

	return nil
}

func init() {
	whichCmd.Flags().BoolVarP(&whichBin, "bin", "b", false, "also search the secondary directory (/bin)")
	rootCmd.AddCommand(whichCmd)
}
