package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/bulletstorm/internal/core"
)

// hudFontSize matches the 36px system font the HUD was laid out for.
const hudFontSize = 28

var background = color.RGBA{0, 0, 0, 255}

// palette maps core colors to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {255, 255, 255, 255},
	core.ColorRed:           {255, 0, 0, 255},
	core.ColorGreen:         {0, 255, 0, 255},
	core.ColorYellow:        {255, 255, 0, 255},
	core.ColorBlue:          {0, 0, 255, 255},
	core.ColorMagenta:       {255, 0, 255, 255},
	core.ColorCyan:          {0, 255, 255, 255},
	core.ColorWhite:         {255, 255, 255, 255},
	core.ColorBrightRed:     {255, 85, 85, 255},
	core.ColorBrightGreen:   {85, 255, 85, 255},
	core.ColorBrightYellow:  {255, 255, 85, 255},
	core.ColorBrightBlue:    {0, 191, 255, 255},
	core.ColorBrightMagenta: {255, 85, 255, 255},
	core.ColorBrightCyan:    {85, 255, 255, 255},
	core.ColorBrightWhite:   {255, 255, 255, 255},
	core.ColorOrange:        {255, 165, 0, 255},
	core.ColorGray:          {128, 128, 128, 255},
	core.ColorGold:          {255, 215, 0, 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// Renderer paints world shapes onto an Ebitengine image. World pixels map
// one to one onto the logical screen.
type Renderer struct {
	dst  *ebiten.Image
	face *text.GoTextFace
}

var _ core.Renderer = (*Renderer)(nil)

// NewRenderer loads the HUD font.
func NewRenderer() (*Renderer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}
	return &Renderer{
		face: &text.GoTextFace{Source: source, Size: hudFontSize},
	}, nil
}

// Target sets the image drawn onto for the current frame.
func (r *Renderer) Target(dst *ebiten.Image) {
	r.dst = dst
}

// FillRect paints a solid rectangle.
func (r *Renderer) FillRect(rect core.Rect, c core.Color) {
	vector.DrawFilledRect(r.dst, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), rgba(c), false)
}

// StrokeCircle outlines a circle.
func (r *Renderer) StrokeCircle(center core.Vec2, radius, width float64, c core.Color) {
	vector.StrokeCircle(r.dst, float32(center.X), float32(center.Y), float32(radius), float32(width), rgba(c), true)
}

// Text draws s with its top-left corner at (x, y).
func (r *Renderer) Text(x, y float64, s string, c core.Color) {
	r.text(x, y, s, rgba(c), 1)
}

func (r *Renderer) text(x, y float64, s string, clr color.Color, alpha float32) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(r.dst, s, r.face, op)
}

// banner draws s centered on the screen at the given opacity.
func (r *Renderer) banner(s string, alpha float32) {
	w, h := text.Measure(s, r.face, r.face.Size)
	bounds := r.dst.Bounds()
	x := (float64(bounds.Dx()) - w) / 2
	y := (float64(bounds.Dy()) - h) / 3
	r.text(x, y, s, rgba(core.ColorHUD), alpha)
}
