package entity

// Vec2 is a 2D position, size or velocity in screen units.
type Vec2 struct {
	X, Y float32
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Scale returns v * f.
func (v Vec2) Scale(f float32) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Color is an RGBA color with components in [0,1].
type Color struct {
	R, G, B, A float32
}

// RGB creates an opaque color.
func RGB(r, g, b float32) Color {
	return Color{r, g, b, 1}
}
