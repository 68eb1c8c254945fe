package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridvale/internal/unit"
	"github.com/samdwyer/gridvale/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderExplore draws the map, the party marker, and a status line.
// Opened chests render as plain floor so the player can see what's spent.
func (r *Renderer) RenderExplore(m *world.Map, partyX, partyY int, opened map[string]bool, message string) {
	r.screen.Clear()

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.GetTile(x, y)
			ch := tile.Rune()
			if tile == world.TileChest {
				if c, ok := m.ChestAt(x, y); ok && opened[c.ID] {
					ch = world.TileFloor.Rune()
				}
			}
			r.screen.SetContent(x, y, ch, r.tileStyle(tile))
		}
	}

	partyStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.screen.SetContent(partyX, partyY, '@', partyStyle)

	r.RenderMessage(message, m.Height+1)
	r.screen.Show()
}

// RenderBattle draws both rosters with vitals and the last action message.
func (r *Renderer) RenderBattle(heroes, enemies []*unit.Unit, active *unit.Unit, message string) {
	r.screen.Clear()

	r.drawText(0, 0, "-- Battle --", tcell.StyleDefault.Bold(true))

	row := 2
	for _, h := range heroes {
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		if h.Unconscious() {
			style = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		}
		marker := "  "
		if active != nil && h.ID == active.ID {
			marker = "> "
		}
		r.drawText(0, row, marker+r.vitalsLine(h), style)
		row++
	}

	row++
	for _, e := range enemies {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		if e.Unconscious() {
			style = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		}
		r.drawText(0, row, "  "+r.vitalsLine(e), style)
		row++
	}

	r.RenderMessage(message, row+2)
	r.screen.Show()
}

func (r *Renderer) vitalsLine(u *unit.Unit) string {
	line := fmt.Sprintf("%-10s HP %3d/%3d", u.Name, u.HP(), u.MaxHP)
	if u.MaxResource > 0 {
		line += fmt.Sprintf("  %s %2d/%2d", u.Resource, u.CurrentResource(), u.MaxResource)
	}
	for _, e := range u.StatusEffects() {
		line += " [" + string(e.Type) + "]"
	}
	return line
}

func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileChest:
		return tcell.StyleDefault.Foreground(tcell.ColorGoldenrod)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.drawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
