package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/engine"
)

// Glyph is one entity as drawn on the terminal
type Glyph struct {
	Rune     rune
	Style    tcell.Style
	Priority Priority
}

// Counter-clockwise from straight up, matching vmath.V2Forward
var headingRunes = [8]rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}

var asteroidRunes = [component.AsteroidSizeCount]rune{
	component.AsteroidBig:    '@',
	component.AsteroidMedium: 'O',
	component.AsteroidSmall:  'o',
}

// HeadingRune picks the arrow closest to a rotation angle in radians
func HeadingRune(angle float64) rune {
	const sector = math.Pi / 4
	i := int(math.Round(angle/sector)) % len(headingRunes)
	if i < 0 {
		i += len(headingRunes)
	}
	return headingRunes[i]
}

// GlyphFor classifies an entity by its kind components, false for entities with nothing to draw
func GlyphFor(w *engine.World, e core.Entity) (Glyph, bool) {
	c := &w.Components
	switch {
	case c.Player.Has(e):
		rot, _ := c.Rotation.Get(e)
		color := RgbPlayer
		if c.Thrust.Has(e) {
			color = RgbThrust
		}
		return Glyph{Rune: HeadingRune(rot.Angle), Style: fg(color).Bold(true), Priority: PriorityPlayer}, true

	case c.Bullet.Has(e):
		if pc, ok := c.Prefab.Get(e); ok && pc.Key.Class == core.PrefabUFOBullet {
			return Glyph{Rune: '*', Style: fg(RgbUFOBullet), Priority: PriorityBullet}, true
		}
		return Glyph{Rune: '·', Style: fg(RgbBullet), Priority: PriorityBullet}, true

	case c.UFO.Has(e):
		return Glyph{Rune: 'Ѫ', Style: fg(RgbUFO).Bold(true), Priority: PriorityUFO}, true

	case c.Asteroid.Has(e):
		a, _ := c.Asteroid.Get(e)
		r := '#'
		if a.Size < component.AsteroidSizeCount {
			r = asteroidRunes[a.Size]
		}
		return Glyph{Rune: r, Style: fg(RgbAsteroid), Priority: PriorityAsteroid}, true

	case c.PowerUp.Has(e):
		p, _ := c.PowerUp.Get(e)
		r := 'W'
		if p.Kind == component.PowerUpShield {
			r = 'S'
		}
		return Glyph{Rune: r, Style: fg(PowerUpColor(p.Color)).Reverse(true), Priority: PriorityPowerUp}, true

	case c.VFX.Has(e):
		return Glyph{Rune: '✶', Style: fg(RgbExplosion), Priority: PriorityVFX}, true

	case c.Attached.Has(e):
		// Shield and weapon visuals carry their tint in the prefab variant
		pc, ok := c.Prefab.Get(e)
		if !ok {
			return Glyph{}, false
		}
		color := PowerUpColor(component.PowerUpColor(pc.Key.Variant))
		switch pc.Key.Class {
		case core.PrefabShieldVisual:
			return Glyph{Rune: '◯', Style: fg(color), Priority: PriorityAttachment}, true
		case core.PrefabWeaponVisual:
			return Glyph{Rune: '+', Style: fg(color), Priority: PriorityAttachment}, true
		}
	}
	return Glyph{}, false
}
