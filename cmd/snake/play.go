package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode directly",
	Long: `Start playing the specified mode without the menu.

Modes:
  classic    - Speeds up as you eat
  challenge  - More obstacles that keep coming, faster speed-up
  timed      - Score as much as you can in 60 seconds

Controls:
  Arrows/WASD  - Steer
  Space        - Pause
  R            - Restart (after game over)
  B/Esc        - Leave (when paused or over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start, level 1
  normal - Default speed, level 2
  hard   - Faster start, level 3
  fixed  - No speed-up while eating

Examples:
  snake play classic
  snake play challenge --difficulty hard
  snake play timed --seed 42
  snake play classic --config ./my-snake.yaml`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeModes,
	RunE:              runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	modeID := args[0]
	if err := checkMode(modeID); err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(modeID, cfg)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	// Continue without storage - the game still works
	settings := storage.DefaultSettings()
	store, err := openStore(logger, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("could not open database", "path", flagDBPath, "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
		if loaded, loadErr := store.LoadSettings(); loadErr == nil {
			settings = loaded
		} else {
			logger.Error("could not load settings", "err", loadErr)
		}
	}

	logger.Info("play started", "mode", modeID, "difficulty", cfg.Difficulty.Preset)

	env := tui.Env{Store: store, Logger: logger, Config: cfg}
	if err := tui.Run(game, env, settings, runtimeConfig()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// completeModes offers mode ids for shell completion.
func completeModes(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return registry.IDs(), cobra.ShellCompDirectiveNoFileComp
}
