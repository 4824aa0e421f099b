package config

import (
	"image/color"

	"github.com/automoto/rubberball/camera"
	"github.com/automoto/rubberball/physics"
	"github.com/automoto/rubberball/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// LevelConfig describes where levels live and how their TMX files are laid out
type LevelConfig struct {
	Dir             string `yaml:"dir"`
	Pattern         string `yaml:"pattern"` // fmt pattern taking the level index
	First           int    `yaml:"first"`
	AreasGroup      string `yaml:"areas_group"`
	CollisionsGroup string `yaml:"collisions_group"`
	MetaLayer       string `yaml:"meta_layer"`
	CollisionKey    string `yaml:"collision_key"`
	BackgroundLayer string `yaml:"background_layer"`
	ForegroundLayer string `yaml:"foreground_layer"`
}

// Options returns the registry options for these layer and group names.
func (l LevelConfig) Options() leveldata.Options {
	return leveldata.Options{
		AreasGroup:      l.AreasGroup,
		CollisionsGroup: l.CollisionsGroup,
		MetaLayer:       l.MetaLayer,
		CollisionKey:    l.CollisionKey,
		BackgroundLayer: l.BackgroundLayer,
		ForegroundLayer: l.ForegroundLayer,
	}
}

// LaunchConfig contains rubber band tuning
type LaunchConfig struct {
	MaxPull        float64 `yaml:"max_pull"`    // longest band stretch in world px
	ForceScale     float64 `yaml:"force_scale"` // impulse per px of stretch
	GrabRadius     float64 `yaml:"grab_radius"` // how far from the ball centre a press still grabs it
	SnapBackMillis float32 `yaml:"snap_back_ms"`
}

// LevelCompleteConfig contains level complete overlay configuration
type LevelCompleteConfig struct {
	OverlayColor color.RGBA `yaml:"-"`
	TitleColor   color.RGBA `yaml:"-"`
	TextColor    color.RGBA `yaml:"-"`
	HintColor    color.RGBA `yaml:"-"`
	TitleY       float64    `yaml:"title_y"`
	MessageY     float64    `yaml:"message_y"`
	HintY        float64    `yaml:"hint_y"`
	Title        string     `yaml:"title"`
	Message      string     `yaml:"message"` // fmt pattern taking the level index and shot count
	Hint         string     `yaml:"hint"`
	HoldTicks    int        `yaml:"hold_ticks"` // ticks the overlay shows before the next level loads
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled bool `yaml:"enabled"` // draw sensor objects and the HUD
}

// Global configuration instances
var C *Config
var Camera camera.Config
var Level LevelConfig
var Launch LaunchConfig
var Physics physics.Config
var Debug DebugConfig
var LevelComplete LevelCompleteConfig

// Default is the only render layer.
const Default ecs.LayerID = 0

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Camera = camera.DefaultConfig()

	opts := leveldata.DefaultOptions()
	Level = LevelConfig{
		Dir:             "levels",
		Pattern:         "level%d.tmx",
		First:           0,
		AreasGroup:      opts.AreasGroup,
		CollisionsGroup: opts.CollisionsGroup,
		MetaLayer:       opts.MetaLayer,
		CollisionKey:    opts.CollisionKey,
		BackgroundLayer: opts.BackgroundLayer,
		ForegroundLayer: opts.ForegroundLayer,
	}

	Launch = LaunchConfig{
		MaxPull:        120,
		ForceScale:     9,
		GrabRadius:     28,
		SnapBackMillis: 350,
	}

	Physics = physics.DefaultConfig()

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   LightGreen,
		TextColor:    White,
		HintColor:    Grey,
		TitleY:       200,
		MessageY:     260,
		HintY:        320,
		Title:        "Level Complete!",
		Message:      "Level %d cleared in %d shots",
		Hint:         "R to replay, N to skip ahead",
		HoldTicks:    120,
	}

	Debug = DebugConfig{
		Enabled: false,
	}
}
