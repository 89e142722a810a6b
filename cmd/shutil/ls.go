package main

import (
	"log/slog"

	"github.com/desertwitch/shutil/internal/ui"
	"github.com/spf13/cobra"
)

var lsShort bool

var lsCmd = &cobra.Command{
	Use:   "ls [dir]",
	Short: "List the entries of a directory in filesystem order",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		return app.Ls(dir, lsShort)
	},
}

// Ls prints the entries of dir. Entries vanishing while listing are printed
// as plain files.
func (app *App) Ls(dir string, short bool) error {
	paths, err := app.shell.Ls(dir)
	if err != nil {
		return err
	}

	entries := make([]ui.ListingEntry, 0, len(paths))
	for _, path := range paths {
		entry := ui.ListingEntry{Path: path, Kind: ui.KindFile}

		rec, err := app.shell.Lstat(path)
		switch {
		case err != nil:
			slog.Debug("Failed to stat listed entry",
				"path", path,
				"err", err,
			)
		case rec.IsSymlink:
			entry.Kind = ui.KindSymlink
		case rec.IsDir:
			entry.Kind = ui.KindDir
		}

		entries = append(entries, entry)
	}

	app.println(app.uiHandler.RenderListing(entries, short))

	return nil
}

func init() {
	lsCmd.Flags().BoolVarP(&lsShort, "short", "s", false, "print entry names instead of full paths")
	rootCmd.AddCommand(lsCmd)
}
