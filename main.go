package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

// main - is the entry point of the application. It builds the command, loads the config and plays.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath     string
		difficulty     string
		logLevel       string
		computerStarts bool
	)

	cmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Play tic-tac-toe against the computer in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := initConfig(configPath)

			flags := cmd.Flags()
			if flags.Changed("difficulty") {
				conf.Difficulty = difficulty
			}
			if flags.Changed("log-level") {
				conf.LogLevel = logLevel
			}
			if flags.Changed("computer-starts") {
				conf.ComputerStarts = computerStarts
			}

			logger := initLogger(conf)

			if err := app.RunApp(logger, conf, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.yml (default: ./config.yml when present)")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "easy, medium or hard")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	cmd.Flags().BoolVar(&computerStarts, "computer-starts", false, "let the computer open the first round")

	return cmd
}

// initialize config. Without an explicit path ./config.yml is used when it exists, otherwise env only.
// A config that cannot be read panics, main recovers it.
func initConfig(path string) *config.Config {
	if path == "" {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		candidate := filepath.Join(baseDir, "config.yml")
		if _, err = os.Stat(candidate); err == nil {
			path = candidate
		}
	}

	return config.MustLoad(path)
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	// stdout belongs to the board
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
