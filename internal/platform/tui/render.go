package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bulletstorm/internal/core"
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
	core.ColorGold:          lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
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

// Glyphs used when painting world shapes onto cells.
const (
	glyphFill  = '█'
	glyphSmall = '•'
	glyphRing  = 'o'
)

// ScreenRenderer paints world-pixel shapes onto a cell screen, scaling the
// world to whatever size the terminal currently has.
type ScreenRenderer struct {
	screen *core.Screen
	worldW float64
	worldH float64
}

// NewScreenRenderer creates a renderer for a world of worldW x worldH pixels.
func NewScreenRenderer(screen *core.Screen, worldW, worldH int) *ScreenRenderer {
	return &ScreenRenderer{
		screen: screen,
		worldW: float64(worldW),
		worldH: float64(worldH),
	}
}

var _ core.Renderer = (*ScreenRenderer)(nil)

func (r *ScreenRenderer) scale() (sx, sy float64) {
	return float64(r.screen.Width()) / r.worldW, float64(r.screen.Height()) / r.worldH
}

// cell maps a world point to the cell containing it.
func (r *ScreenRenderer) cell(x, y float64) (int, int) {
	sx, sy := r.scale()
	return int(math.Floor(x * sx)), int(math.Floor(y * sy))
}

// FillRect covers every cell the rectangle touches. Shapes smaller than a
// cell still occupy one.
func (r *ScreenRenderer) FillRect(rect core.Rect, c core.Color) {
	sx, sy := r.scale()
	x0 := int(math.Floor(rect.X * sx))
	y0 := int(math.Floor(rect.Y * sy))
	x1 := max(int(math.Ceil(rect.Right()*sx)), x0+1)
	y1 := max(int(math.Ceil(rect.Bottom()*sy)), y0+1)

	glyph := glyphFill
	if x1-x0 == 1 && y1-y0 == 1 {
		glyph = glyphSmall
	}
	r.screen.FillCells(x0, y0, x1, y1, glyph, c)
}

// StrokeCircle plots the outline cell by cell. Width is ignored; a cell is
// already wider than any stroke.
func (r *ScreenRenderer) StrokeCircle(center core.Vec2, radius, _ float64, c core.Color) {
	sx, sy := r.scale()
	steps := max(int(2*math.Pi*radius*math.Max(sx, sy))*2, 8)
	for i := range steps {
		p := center.Add(core.FromAngle(2*math.Pi*float64(i)/float64(steps), radius))
		x, y := int(math.Floor(p.X*sx)), int(math.Floor(p.Y*sy))
		if r.screen.Get(x, y) == glyphFill {
			continue
		}
		r.screen.SetCell(x, y, glyphRing, c)
	}
}

// Text writes s starting at the cell holding (x, y).
func (r *ScreenRenderer) Text(x, y float64, s string, c core.Color) {
	cx, cy := r.cell(x, y)
	if over := cx + len([]rune(s)) - r.screen.Width(); over > 0 {
		cx = max(cx-over, 0)
	}
	r.screen.DrawText(cx, cy, s, c)
}
