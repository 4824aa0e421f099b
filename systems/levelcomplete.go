package systems

import (
	"fmt"

	"github.com/automoto/rubberball/components"
	cfg "github.com/automoto/rubberball/config"
	"github.com/automoto/rubberball/fonts"
	"github.com/automoto/rubberball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawLevelComplete renders the level complete overlay while the ball rests
// in the finish area.
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	ballEntry, ok := tags.Ball.First(e.World)
	if !ok {
		return
	}
	ball := components.Ball.Get(ballEntry)
	if ball.State != cfg.Finished {
		return
	}
	level := GetLevel(e)
	if level == nil {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.LevelComplete.OverlayColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := cfg.LevelComplete.Title
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.LevelComplete.TitleY), cfg.LevelComplete.TitleColor)

	msgFont := fonts.Bold.Get()
	msg := fmt.Sprintf(cfg.LevelComplete.Message, level.Index, ball.Shots)
	text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), int(cfg.LevelComplete.MessageY), cfg.LevelComplete.TextColor)

	hintFont := fonts.Small.Get()
	hint := cfg.LevelComplete.Hint
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(cfg.LevelComplete.HintY), cfg.LevelComplete.HintColor)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}
