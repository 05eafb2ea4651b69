package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-asteroids/component"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255)
	RgbStatusBg   = tcell.NewRGBColor(65, 72, 104)
	RgbBorder     = tcell.NewRGBColor(60, 60, 80)

	RgbPlayer    = tcell.NewRGBColor(255, 165, 0)
	RgbThrust    = tcell.NewRGBColor(255, 80, 80)
	RgbBullet    = tcell.NewRGBColor(255, 255, 255)
	RgbUFO       = tcell.NewRGBColor(200, 80, 255)
	RgbUFOBullet = tcell.NewRGBColor(255, 120, 255)
	RgbAsteroid  = tcell.NewRGBColor(180, 180, 180)
	RgbExplosion = tcell.NewRGBColor(255, 200, 50)
	RgbGameOver  = tcell.NewRGBColor(255, 0, 0)
)

// powerUpColors follows the pickup palette, index by component.PowerUpColor
var powerUpColors = [component.ColorCount]tcell.Color{
	component.ColorDefault: tcell.NewRGBColor(200, 200, 200),
	component.ColorBlue:    tcell.NewRGBColor(100, 150, 255),
	component.ColorRed:     tcell.NewRGBColor(255, 80, 80),
	component.ColorYellow:  tcell.NewRGBColor(255, 255, 0),
	component.ColorGreen:   tcell.NewRGBColor(50, 255, 50),
}

// PowerUpColor returns the display color of a pickup tint
func PowerUpColor(c component.PowerUpColor) tcell.Color {
	if c >= component.ColorCount {
		return RgbBullet
	}
	return powerUpColors[c]
}

func fg(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground).Foreground(c)
}
