package model

// Point units: 1 pt = 1/72 inch.
const (
	a4Width  = 595.28
	a4Height = 841.89
	cm       = 28.35
)

// PageGeometry describes the fixed geometry every page of a document shares:
// outer dimensions, margins, the reserved navigation footer, and font sizes.
// All values are in points.
type PageGeometry struct {
	Width  float64
	Height float64
	Margin float64

	// NavHeight is the height of the navigation footer region reserved at
	// the bottom of every card page. It is reserved even before navigation
	// targets are known so that layout stays stable across the
	// layout-then-resolve passes.
	NavHeight float64

	TitleFontSize float64
	BodyFontSize  float64
	CodeFontSize  float64
	NavFontSize   float64
}

// A4Geometry returns the default page geometry: A4 portrait with 2 cm
// margins and a 1.5 cm navigation footer.
func A4Geometry() PageGeometry {
	return PageGeometry{
		Width:         a4Width,
		Height:        a4Height,
		Margin:        2 * cm,
		NavHeight:     1.5 * cm,
		TitleFontSize: 18,
		BodyFontSize:  11,
		CodeFontSize:  9,
		NavFontSize:   10,
	}
}

// ContentWidth returns the usable width between the left and right margins.
func (g PageGeometry) ContentWidth() float64 {
	return g.Width - 2*g.Margin
}

// ContentHeight returns the usable height between the top and bottom margins.
func (g PageGeometry) ContentHeight() float64 {
	return g.Height - 2*g.Margin
}

// BodyLimit returns the lowest Y coordinate (measured from the top of the
// page) that card content may occupy before running into the reserved
// navigation region.
func (g PageGeometry) BodyLimit() float64 {
	return g.Height - g.Margin - g.NavHeight
}

// Valid reports whether the geometry describes a usable page: positive
// dimensions and enough room between margins and the navigation reserve to
// place at least one line of content.
func (g PageGeometry) Valid() bool {
	return g.Width > 0 && g.Height > 0 &&
		g.ContentWidth() > 0 &&
		g.ContentHeight()-g.NavHeight > g.TitleFontSize
}

// BBox is an axis-aligned rectangle. Unlike PDF user space, Y grows
// downward from the top of the page, matching the order blocks are laid out
// and drawn.
type BBox struct {
	X      float64 // left edge
	Y      float64 // top edge
	Width  float64
	Height float64
}

// Right returns the right edge X coordinate.
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the bottom edge Y coordinate.
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// IsValid reports whether the box has positive dimensions.
func (b BBox) IsValid() bool {
	return b.Width > 0 && b.Height > 0
}
