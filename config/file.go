package config

import (
	"fmt"
	"os"

	"github.com/automoto/rubberball/camera"
	"github.com/automoto/rubberball/physics"
	"gopkg.in/yaml.v3"
)

// fileConfig is the layout of a tuning override file. Sections that are
// missing keep their defaults, as do missing keys inside a section.
type fileConfig struct {
	Window        Config              `yaml:"window"`
	Camera        camera.Config       `yaml:"camera"`
	Level         LevelConfig         `yaml:"level"`
	Launch        LaunchConfig        `yaml:"launch"`
	Physics       physics.Config      `yaml:"physics"`
	LevelComplete LevelCompleteConfig `yaml:"level_complete"`
	Debug         DebugConfig         `yaml:"debug"`
}

// LoadFile overlays the YAML document at path onto the current settings.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply overlays a YAML document onto the current settings. Nothing is
// changed when the document does not parse.
func Apply(data []byte) error {
	doc := fileConfig{
		Window:        *C,
		Camera:        Camera,
		Level:         Level,
		Launch:        Launch,
		Physics:       Physics,
		LevelComplete: LevelComplete,
		Debug:         Debug,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	*C = doc.Window
	Camera = doc.Camera
	Level = doc.Level
	Launch = doc.Launch
	Physics = doc.Physics
	LevelComplete = doc.LevelComplete
	Debug = doc.Debug
	return nil
}
