// Package render plots the world onto a terminal screen as one glyph per entity
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// HUD is the status line content
type HUD struct {
	State string
	Level int
	Lives int
	Muted bool
	FPS   float64
	Hint  string
}

// Plotter maps play field coordinates onto screen cells, the last row holds the status line
type Plotter struct {
	screen tcell.Screen
	field  engine.PlayField

	cells []cell
}

type cell struct {
	glyph Glyph
	set   bool
}

// NewPlotter creates a plotter for the given screen and field
func NewPlotter(screen tcell.Screen, field engine.PlayField) *Plotter {
	return &Plotter{screen: screen, field: field}
}

// Cell converts a field position to a screen cell inside the play area
// Y grows upward in the field and downward on screen
func (p *Plotter) Cell(pos vmath.Vec2, cols, rows int) (x, y int, ok bool) {
	if cols <= 0 || rows <= 0 || !p.field.Contains(pos) {
		return 0, 0, false
	}
	fx := (pos.X - p.field.MinX) / p.field.Width()
	fy := (p.field.MaxY - pos.Y) / p.field.Height()
	x = min(int(math.Floor(fx*float64(cols))), cols-1)
	y = min(int(math.Floor(fy*float64(rows))), rows-1)
	return x, y, true
}

// Draw renders every visible entity and the status line, then shows the frame
func (p *Plotter) Draw(w *engine.World, hud HUD) {
	cols, rows := p.screen.Size()
	playRows := rows - 1
	p.screen.Fill(' ', fg(RgbBackground))
	if playRows <= 0 || cols <= 0 {
		p.screen.Show()
		return
	}

	if n := cols * playRows; cap(p.cells) < n {
		p.cells = make([]cell, n)
	} else {
		p.cells = p.cells[:n]
		clear(p.cells)
	}

	c := &w.Components
	for _, e := range w.Query().With(c.Position).Without(c.Destroyed).Execute() {
		g, ok := GlyphFor(w, e)
		if !ok {
			continue
		}
		pos, _ := c.Position.Get(e)
		x, y, ok := p.Cell(pos.Vec2, cols, playRows)
		if !ok {
			continue
		}
		slot := &p.cells[y*cols+x]
		if !slot.set || g.Priority >= slot.glyph.Priority {
			slot.glyph = g
			slot.set = true
		}
	}

	for i, s := range p.cells {
		if s.set {
			p.screen.SetContent(i%cols, i/cols, s.glyph.Rune, nil, s.glyph.Style)
		}
	}
	p.drawStatus(hud, cols, rows-1)
	p.screen.Show()
}

func (p *Plotter) drawStatus(hud HUD, cols, row int) {
	style := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusBar)
	if hud.State == "game_over" {
		style = style.Foreground(RgbGameOver).Bold(true)
	}
	line := fmt.Sprintf(" %s  level %d  ships %d  %4.0f fps", hud.State, hud.Level, hud.Lives, hud.FPS)
	if hud.Muted {
		line += "  muted"
	}
	if hud.Hint != "" {
		line += "  " + hud.Hint
	}

	x := 0
	for _, r := range line {
		if x >= cols {
			break
		}
		p.screen.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		p.screen.SetContent(x, row, ' ', nil, style)
	}
}
