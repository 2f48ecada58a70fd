package core

// Renderer is the drawing surface the game paints each frame onto.
// Coordinates are world pixels; implementations scale as needed.
type Renderer interface {
	// FillRect paints a solid rectangle.
	FillRect(r Rect, c Color)
	// StrokeCircle outlines a circle of the given radius and line width.
	StrokeCircle(center Vec2, radius, width float64, c Color)
	// Text draws s with its top-left corner at (x, y).
	Text(x, y float64, s string, c Color)
}
