package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagSkin  string
	flagSound bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change skin and sound",
	Long: `Without flags, print the saved settings. With flags, change them.

Skins: default, rainbow, metal, pixel

Examples:
  snake settings
  snake settings --skin rainbow
  snake settings --sound=false`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&flagSkin, "skin", "", "Snake skin")
	settingsCmd.Flags().BoolVar(&flagSound, "sound", true, "Enable sound effects")
}

func runSettings(cmd *cobra.Command, _ []string) error {
	store, closeAll, err := openCLIStore()
	if err != nil {
		return err
	}
	defer closeAll()

	settings, err := store.LoadSettings()
	if err != nil {
		return fmt.Errorf("error loading settings: %w", err)
	}

	changed := false
	if cmd.Flags().Changed("skin") {
		skin, err := snake.ParseSkin(flagSkin)
		if err != nil {
			return err
		}
		settings.Skin = string(skin)
		changed = true
	}
	if cmd.Flags().Changed("sound") {
		settings.SoundEnabled = flagSound
		changed = true
	}

	if changed {
		if err := store.SaveSettings(settings); err != nil {
			return fmt.Errorf("error saving settings: %w", err)
		}
	}

	sound := "off"
	if settings.SoundEnabled {
		sound = "on"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Skin:  %s\n", settings.Skin)
	fmt.Fprintf(out, "Sound: %s\n", sound)
	return nil
}
