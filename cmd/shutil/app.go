package main

import (
	"fmt"
	"io"
	"os"

	"github.com/desertwitch/shutil"
	"github.com/desertwitch/shutil/internal/configuration"
	"github.com/desertwitch/shutil/internal/ui"
	"github.com/mattn/go-isatty"
)

// App is the principal structure holding the command-line application.
type App struct {
	shell     *shutil.Shell
	uiHandler *ui.Handler
	out       io.Writer
}

// NewApp returns a pointer to a new [App] writing its output to out.
func NewApp(cfg *configuration.Config, out io.Writer, opts ...shutil.Option) (*App, error) {
	shellOpts := []shutil.Option{
		shutil.WithSearchDirs(cfg.SearchDir, cfg.SearchDirBin),
		shutil.WithDirMode(cfg.DirMode),
	}
	if len(cfg.IdentityCommand) > 0 {
		shellOpts = append(shellOpts, shutil.WithIdentityCommand(cfg.IdentityCommand...))
	}
	shellOpts = append(shellOpts, opts...)

	shell, err := shutil.New(shellOpts...)
	if err != nil {
		return nil, fmt.Errorf("(app) failed to establish shell: %w", err)
	}

	return &App{
		shell:     shell,
		uiHandler: ui.NewHandler(out, isTerminal(out)),
		out:       out,
	}, nil
}

func (app *App) println(s string) {
	if s == "" {
		return
	}
	fmt.Fprintln(app.out, s)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
