// blockdude is a tile platformer: walk, jump and shoot your way past the
// patrolling enemies, then leave the screen to the right.
//
// Usage:
//
//	blockdude                    - Play the built-in map
//	blockdude --level arena.tmx  - Play a Tiled map (bundled name or path)
//	blockdude simulate           - Run the simulation headless from an input script
//
// Global flags:
//
//	--config <path>     - Settings file (default search: ~/.blockdude, ./configs, built-in)
//	--level <name>      - Level to load instead of the configured one
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/automoto/blockdude/assets"
	"github.com/automoto/blockdude/config"
	"github.com/automoto/blockdude/levels"
	"github.com/automoto/blockdude/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLevel    string
	flagLogLevel string
	flagDebug    bool
)

type Game struct {
	scene scenes.Scene
}

func NewGame(level *levels.Level) *Game {
	return &Game{scene: scenes.NewPlatformerScene(level)}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockdude",
	Short: "Blockdude - a small tile platformer",
	Long: `Walk, jump and shoot through a block level. Touching an enemy or
falling off the map sends you back to the start and brings every enemy back.
Clear all enemies and leave the screen to the right to win.

Controls:
  Left/Right, A/D   - Walk
  Up, W             - Jump
  Down, S           - Shoot
  F3                - Toggle collision overlay
  Esc               - Quit`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level name or .tmx path (empty = built-in map)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw collision outlines")

	rootCmd.AddCommand(simulateCmd)
}

// setup loads the settings, applies them and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	settings.Apply()

	levelName := settings.LogLevel
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	lvl, err := log.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("log level %q: %w", levelName, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockdude",
		Level:           lvl,
	})
	log.SetDefault(logger)

	if flagLevel == "" {
		flagLevel = settings.Level
	}
	return nil
}

func loadLevel() (*levels.Level, error) {
	level, err := assets.LoadLevel(flagLevel, config.Physics.TileSize)
	if err != nil {
		return nil, err
	}
	log.Info("level loaded", "name", level.Name, "size", fmt.Sprintf("%dx%d", level.Columns(), level.Rows()), "enemies", len(level.Enemies))
	return level, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagDebug {
		config.Debug.DrawColliders = true
	}

	level, err := loadLevel()
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("Blockdude")
	ebiten.SetWindowSize(int(float64(config.C.Width)*config.C.Scale), int(float64(config.C.Height)*config.C.Scale))
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(level)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
