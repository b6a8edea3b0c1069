// snake is a terminal Snake game with three modes, special food and
// persistent high scores.
//
// Usage:
//
//	snake                     - Start the menu (same as 'snake menu')
//	snake play <mode>         - Play classic, challenge or timed directly
//	snake modes               - List available modes
//	snake scores [mode]       - Show high scores
//	snake history             - Show match history
//	snake settings            - Show or change skin and sound
//	snake serve               - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>           - Set database path (default: ~/.snake/snake.db)
//	--config <path>       - Load game config from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination (default: ~/.snake/snake.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal game with three modes, special food with timed
effects, obstacles and persistent high scores.

Available commands:
  menu      - Interactive menu (default)
  play      - Play a specific mode directly
  modes     - Show all modes
  scores    - View high scores
  history   - View or clear match history
  settings  - Show or change skin and sound
  serve     - Start SSH server for remote play

Examples:
  snake
  snake play classic
  snake play timed --difficulty hard
  snake scores challenge
  snake serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/snake.db", "Path to settings and scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.snake/snake.log", "Path to log file")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(serveCmd)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// newLogger builds the program logger. The terminal belongs to the game, so
// logs go to --log-file. The returned closer releases the file.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	path, err := expandHome(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, f, nil
}

// loadConfig loads the game config and applies the difficulty preset.
// --difficulty overrides the preset named in the config file.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset := cfg.Difficulty.Preset
	if flagDifficulty != "" {
		preset, err = config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
	}
	config.ApplySnakePreset(&cfg, preset)
	return cfg, nil
}

// openStore opens the database, logging through logger.
func openStore(logger *log.Logger, cfg config.SnakeConfig) (*storage.Store, error) {
	return storage.Open(flagDBPath,
		storage.WithLogger(logger),
		storage.WithHistoryLimit(cfg.History.Limit),
	)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// checkMode validates a mode argument.
func checkMode(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown mode %q (run 'snake modes' to see available modes)", id)
	}
	return nil
}

// openCLIStore opens the database for the non-interactive commands, which
// cannot run without it. closeAll releases the store and the log file.
func openCLIStore() (store *storage.Store, closeAll func(), err error) {
	logger, closer, err := newLogger()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := loadConfig()
	if err != nil {
		closer.Close()
		return nil, nil, err
	}

	store, err = openStore(logger, cfg)
	if err != nil {
		closer.Close()
		return nil, nil, fmt.Errorf("error opening database: %w", err)
	}

	return store, func() {
		store.Close()
		closer.Close()
	}, nil
}
