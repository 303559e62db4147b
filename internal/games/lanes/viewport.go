package lanes

import (
	"math"

	"github.com/vovakirdan/lanefall/internal/core"
)

// Viewport maps the centered simulation field onto a block of terminal cells.
// The axes scale independently so the field always fills the area.
type Viewport struct {
	Field core.Bounds
	Area  core.Rect

	sx, sy float64 // Cells per field unit
}

// NewViewport creates a viewport drawing field into area.
func NewViewport(field core.Bounds, area core.Rect) Viewport {
	v := Viewport{Field: field, Area: area}
	if field.Width() > 0 {
		v.sx = float64(area.W) / field.Width()
	}
	if field.Height() > 0 {
		v.sy = float64(area.H) / field.Height()
	}
	return v
}

// ToCell returns the cell containing field point p. Points outside the field
// map to cells outside the area.
func (v Viewport) ToCell(p core.Vector2) (int, int) {
	x := v.Area.X + int(math.Floor((p.X-v.Field.Left)*v.sx))
	y := v.Area.Y + int(math.Floor((p.Y-v.Field.Top)*v.sy))
	return x, y
}

// ToField returns the field point at the center of cell (x, y).
func (v Viewport) ToField(x, y int) core.Vector2 {
	if v.sx == 0 || v.sy == 0 {
		return core.V2(0, 0)
	}
	return core.V2(
		v.Field.Left+(float64(x-v.Area.X)+0.5)/v.sx,
		v.Field.Top+(float64(y-v.Area.Y)+0.5)/v.sy,
	)
}

// CellRect returns the cells covered by a field rectangle, at least one cell
// in each direction.
func (v Viewport) CellRect(origin, size core.Vector2) core.Rect {
	x0, y0 := v.ToCell(origin)
	x1 := v.Area.X + int(math.Ceil((origin.X+size.X-v.Field.Left)*v.sx))
	y1 := v.Area.Y + int(math.Ceil((origin.Y+size.Y-v.Field.Top)*v.sy))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}
