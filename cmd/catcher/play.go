package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/catcher/internal/config"
	"github.com/vovakirdan/catcher/internal/core"
	"github.com/vovakirdan/catcher/internal/games/catcher"
	"github.com/vovakirdan/catcher/internal/platform/tui"
	"github.com/vovakirdan/catcher/internal/platform/window"
	"github.com/vovakirdan/catcher/internal/registry"
	"github.com/vovakirdan/catcher/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
	flagWindow     bool
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Left/Right, A/D  - Move
  Space/Enter      - Start (rush) / restart after game over
  R                - Restart after game over
  P/Esc            - Pause
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - One extra life, slower items
  normal - Config as written
  hard   - One life fewer, faster items
  fixed  - No speed-up or spawn ramp as the score grows

Examples:
  catcher play catcher
  catcher play catcher_rush --difficulty easy
  catcher play catcher --config ./my-catcher.yaml --watch
  catcher play catcher_rush --window`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'catcher list' to see variants)", gameID)
	}
	tuning, err := applyGameFlags(gameID)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	store, err := storage.Open()
	if err != nil {
		log.Warn("could not open scoreboard", "err", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()

	if flagWindow {
		wg, ok := game.(window.Game)
		if !ok {
			return fmt.Errorf("variant %q cannot run in a window", gameID)
		}
		return window.Run(wg, store, cfg, int(tuning.World.Width), int(tuning.World.Height))
	}

	var watcher *config.Watcher
	if flagWatch {
		watcher, err = watchConfig(gameID)
		if err != nil {
			return err
		}
		if watcher != nil {
			defer watcher.Close()
		}
	}

	if err := tui.Run(game, store, watcher, cfg); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// applyGameFlags validates --config and --difficulty, hands them to the
// game package and returns the tuning the game will start with. A broken
// config is a startup error, not a silent fallback.
func applyGameFlags(gameID string) (config.CatcherConfig, error) {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return config.CatcherConfig{}, err
	}
	catcher.SetConfigPath(flagConfig)
	catcher.SetDifficultyPreset(flagDifficulty)

	v := catcher.Simple
	if gameID == catcher.Rush.ID {
		v = catcher.Rush
	}
	return catcher.LoadConfig(v)
}

// watchConfig watches the file the variant loads. Nothing is watched when
// only the embedded default applies.
func watchConfig(gameID string) (*config.Watcher, error) {
	path := config.ResolvePath(gameID, flagConfig)
	if path == "" {
		log.Info("no config file to watch, using embedded defaults", "game", gameID)
		return nil, nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	log.Debug("watching config", "path", path)
	return w, nil
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
