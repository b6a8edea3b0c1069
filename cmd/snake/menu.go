package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with the main menu",
	Long: `Start the game in interactive menu mode.

Pick a mode, change settings or browse the match history.
After a match, B or Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  snake menu
  snake menu --difficulty easy
  snake menu --db ./snake.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Continue without storage - the game still works
	store, err := openStore(logger, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("could not open database", "path", flagDBPath, "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("menu started", "difficulty", cfg.Difficulty.Preset, "level", cfg.Difficulty.Level)

	env := tui.Env{Store: store, Logger: logger, Config: cfg}
	if err := tui.RunApp(env, runtimeConfig()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
