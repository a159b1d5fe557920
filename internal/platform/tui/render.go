package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/elequad/internal/core"
	"github.com/vovakirdan/elequad/internal/level"
	"github.com/vovakirdan/elequad/internal/party"
	"github.com/vovakirdan/elequad/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// tileCell returns the display rune and color for one tile.
func tileCell(t level.Tile, doorOpen bool) (rune, core.Color) {
	switch t {
	case level.TileEmpty:
		return ' ', core.ColorDefault
	case level.TileWall:
		return '█', core.ColorGray
	case level.TilePoison:
		return '░', core.ColorMagenta
	case level.TileDarkHole:
		return '▒', core.ColorGray
	case level.TileWater:
		return '~', core.ColorBlue
	case level.TileEmberPool:
		return '~', core.ColorRed
	case level.TileSpringPool:
		return '~', core.ColorBrightBlue
	case level.TileMudPool:
		return '~', core.ColorGreen
	case level.TileMistPool:
		return '~', core.ColorCyan
	case level.TilePlate:
		return '‗', core.ColorYellow
	case level.TileDoor:
		if doorOpen {
			return '·', core.ColorYellow
		}
		return '╬', core.ColorYellow
	case level.TileBarrier:
		return '▓', core.ColorOrange
	case level.TileEarthPlat:
		return '=', core.ColorGreen
	default:
		if owner := level.GateOwner(t); owner != 0 {
			return rune(t), party.ColorOf(owner)
		}
		return rune(t), core.ColorDefault
	}
}

// DrawSession renders the whole play screen: the tile grid centered in
// the buffer, latched plate markers, the four actors and the HUD.
func DrawSession(s *core.Screen, g *sim.Sim, elapsed time.Duration) {
	s.Clear()

	l := g.Level
	offX := (s.Width() - l.W) / 2
	offY := (s.Height() - 2 - l.H) / 2
	if offX < 0 {
		offX = 0
	}
	if offY < 1 {
		offY = 1
	}

	for y := 0; y < l.H; y++ {
		for x := 0; x < l.W; x++ {
			r, c := tileCell(l.At(x, y), l.DoorOpen)
			s.SetColored(offX+x, offY+y, r, c)
		}
	}

	// Latched plates render solid so progress stays visible after the
	// actor walks off.
	for _, p := range g.Plates.Records() {
		if p.Pressed {
			s.SetColored(offX+p.At.X, offY+p.At.Y, '▀', core.ColorBrightYellow)
		}
	}

	for _, a := range g.Actors {
		tx := level.WorldToTile(a.Pos.X)
		ty := level.WorldToTile(a.Pos.Y)
		glyph := party.Glyph(a.ID)
		if a.Dashing {
			glyph = '»'
			if a.Vel.X < 0 {
				glyph = '«'
			}
		}
		s.SetColored(offX+tx, offY+ty, glyph, party.ColorOf(a.ID))
	}

	drawHUD(s, g, elapsed)
}

// drawHUD draws the status line on top and the control hints below.
func drawHUD(s *core.Screen, g *sim.Sim, elapsed time.Duration) {
	mins := int(elapsed.Minutes())
	secs := int(elapsed.Seconds()) % 60
	status := fmt.Sprintf("%s   deaths %d   %02d:%02d", g.Level.Name, g.Deaths, mins, secs)
	s.DrawTextColored(2, 0, status, core.ColorBrightWhite)

	switch {
	case g.Won():
		s.DrawTextCentered(s.Height()/2, "╡ LEVEL COMPLETE ╞")
	case g.Paused():
		s.DrawTextCentered(s.Height()/2, "╡ PAUSED ╞")
	}

	help := "p pause   r reset   esc menu   q quit"
	s.DrawTextColored(2, s.Height()-1, help, core.ColorGray)
}
