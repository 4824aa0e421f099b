// rubberball is a rubber band ball puzzle game.
//
// Usage:
//
//	rubberball               - Play from the first level
//	rubberball check         - Validate every level and report problems
//
// Global flags:
//
//	--config <path>  - YAML tuning override file
//	--debug          - Debug logging and overlay
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/rubberball/assets"
	"github.com/automoto/rubberball/config"
	"github.com/automoto/rubberball/fonts"
	"github.com/automoto/rubberball/scenes"
	"github.com/automoto/rubberball/shared/leveldata"
	"github.com/automoto/rubberball/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDebug  bool
	flagLevels string

	// Play flags
	flagLevel  int
	flagWidth  int
	flagHeight int
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
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
	Use:   "rubberball",
	Short: "Pull the band, launch the ball, land it in the goal",
	Long: `rubberball is a physics puzzle: drag the ball back against its rubber
band and release to launch it. Come to rest in a safe area to take the
next shot from there; land in the finish area to complete the level.

Controls:
  left mouse   place the ball, then pull and release to shoot
  wheel        zoom, middle click or 0 resets
  shift        free look while the ball flies
  R / N        restart / skip level
  F1           debug overlay`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML tuning override file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and overlay")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory with level TMX files (default: embedded levels)")

	rootCmd.Flags().IntVar(&flagLevel, "level", -1, "Level index to start at (default: from config)")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width (default: from config)")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height (default: from config)")

	rootCmd.AddCommand(checkCmd)
}

// setup applies the config file and flags and installs the loggers.
func setup(cmd *cobra.Command, args []string) error {
	if flagConfig != "" {
		if err := config.LoadFile(flagConfig); err != nil {
			return err
		}
	}
	if flagDebug {
		config.Debug.Enabled = true
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rubberball",
	})
	if config.Debug.Enabled {
		logger.SetLevel(log.DebugLevel)
	}
	leveldata.SetLogger(logger.WithPrefix("level"))
	systems.SetLogger(logger.WithPrefix("game"))
	return nil
}

// levelFS returns the file system and directory holding the level files.
func levelFS() (fs.FS, string) {
	if flagLevels != "" {
		return os.DirFS(flagLevels), "."
	}
	return assets.FS(), config.Level.Dir
}

func newCache() (fs.FS, *leveldata.Cache) {
	fsys, dir := levelFS()
	config.Level.Dir = dir
	return fsys, leveldata.NewCache(leveldata.DirLoader(fsys, dir, config.Level.Pattern, config.Level.Options()))
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagWidth > 0 {
		config.C.Width = flagWidth
	}
	if flagHeight > 0 {
		config.C.Height = flagHeight
	}
	start := config.Level.First
	if flagLevel >= 0 {
		start = flagLevel
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	fsys, cache := newCache()
	// Fail before opening a window when the first level is broken.
	if _, err := cache.Get(start); err != nil {
		return fmt.Errorf("start level %d: %w", start, err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("rubberball")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	return ebiten.RunGame(&Game{scene: scenes.NewWorldScene(fsys, cache, start)})
}
