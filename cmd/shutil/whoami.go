package main

import (
	"context"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the identity of the current user",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		return app.Whoami(ctx)
	},
}

// Whoami prints the identity reported by the identity command.
func (app *App) Whoami(ctx context.Context) error {
	user, err := app.shell.Whoami(ctx)
	if err != nil {
		return err
	}

	app.println(user)

	return nil
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
