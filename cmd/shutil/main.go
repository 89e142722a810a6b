// Command shutil exposes the shell utility emulations of the shutil library
// on the command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/desertwitch/shutil/internal/configuration"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "/etc/shutil.env"

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	rootConfigFile string
	rootLogLevel   string
	rootLogFile    string
	rootDir        string

	logLevel   = new(slog.LevelVar)
	logManager = NewSlogManager()
	logCloser  io.Closer

	app *App
)

var rootCmd = &cobra.Command{
	Use:           "shutil",
	Short:         "Typed emulations of common shell utilities",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if rootLogFile != "" {
			handler, closer, err := newFileHandler(rootLogFile, logLevel)
			if err != nil {
				return err
			}
			logManager.AddHandler("file", handler)
			logCloser = closer
		}

		app, err = NewApp(cfg, os.Stdout)
		if err != nil {
			return err
		}

		if rootDir != "" {
			if err := app.shell.Cd(rootDir); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigFile, "config", "", "read configuration from this dotenv file (default "+defaultConfigFile+" if present)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&rootLogFile, "log-file", "", "additionally write JSON logs to this file")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "C", "", "run as if started in this directory")
}

func setupLogging() {
	logManager.AddHandler("terminal", newTerminalHandler(os.Stderr, logLevel))
	slog.SetDefault(slog.New(logManager))
}

// loadConfig reads the configuration file and environment, the log level
// flag taking precedence over both.
func loadConfig(cmd *cobra.Command) (*configuration.Config, error) {
	handler := configuration.NewHandler(&configuration.GodotenvProvider{})

	var files []string
	switch {
	case cmd.Flags().Changed("config"):
		files = append(files, rootConfigFile)
	default:
		if _, err := os.Stat(defaultConfigFile); err == nil {
			files = append(files, defaultConfigFile)
		}
	}

	cfg, err := handler.Load(files...)
	if err != nil {
		return nil, err
	}
	logLevel.Set(cfg.LogLevel)

	if cmd.Flags().Changed("log-level") {
		if err := logLevel.UnmarshalText([]byte(rootLogLevel)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", rootLogLevel, err)
		}
	}

	slog.Debug("Loaded configuration",
		"files", files,
		"searchDir", cfg.SearchDir,
		"searchDirBin", cfg.SearchDirBin,
		"identityCommand", cfg.IdentityCommand,
		"dirMode", fmt.Sprintf("%#o", cfg.DirMode),
	)

	return cfg, nil
}

// signalContext returns a context that is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// exitCodeOf returns the exit code a failure should end the command with.
func exitCodeOf(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}

	return 1
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	setupLogging()

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed.",
			"err", err,
		)
		ExitCode = exitCodeOf(err)
	}

	if logCloser != nil {
		_ = logCloser.Close()
	}
}
