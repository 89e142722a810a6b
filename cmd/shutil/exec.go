package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
)

var execWait bool

var execCmd = &cobra.Command{
	Use:   "exec [--wait] <path> [args...]",
	Short: "Launch a program by its exact path",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		return app.Exec(ctx, execWait, args[0], args[1:]...)
	},
}

// Exec launches the program at path. Unless wait is set, it returns as soon
// as the program has started.
func (app *App) Exec(ctx context.Context, wait bool, path string, args ...string) error {
	proc, err := app.shell.Execute(path, args)
	if err != nil {
		return err
	}

	slog.Info("Launched program.",
		"path", path,
		"pid", proc.Pid(),
	)

	if !wait {
		return nil
	}

	return proc.Wait(ctx)
}

func init() {
	execCmd.Flags().BoolVarP(&execWait, "wait", "w", false, "wait for the program to exit and return its exit code")
	execCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(execCmd)
}
