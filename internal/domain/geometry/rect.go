package geometry

// Rect is an axis-aligned rectangle described by its four edges.
// The zero value is the empty rectangle at the origin.
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// NewRect creates a rectangle from its four edges.
func NewRect(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Valid reports whether the edges are well-formed (left <= right,
// top <= bottom). Callers validate inputs at the API boundary;
// the resolvers assume well-formed rectangles.
func (r Rect) Valid() bool {
	return r.Left <= r.Right && r.Top <= r.Bottom
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	return other.Left >= r.Left && other.Top >= r.Top &&
		other.Right <= r.Right && other.Bottom <= r.Bottom
}

// Intersect returns the overlap of two rectangles. Disjoint inputs
// produce the zero rectangle, never inverted edges.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		Left:   max(r.Left, other.Left),
		Top:    max(r.Top, other.Top),
		Right:  min(r.Right, other.Right),
		Bottom: min(r.Bottom, other.Bottom),
	}
	if out.Left >= out.Right || out.Top >= out.Bottom {
		return Rect{}
	}
	return out
}

// ClampTo confines r to the containing rectangle. The rectangle is
// first shifted so a size that already fits is preserved, then any
// remaining overflow is clipped edge by edge. Clamping an already
// contained rectangle is a no-op.
func (r Rect) ClampTo(container Rect) Rect {
	if r.Right > container.Right {
		r = r.Offset(container.Right-r.Right, 0)
	}
	if r.Left < container.Left {
		r = r.Offset(container.Left-r.Left, 0)
	}
	if r.Bottom > container.Bottom {
		r = r.Offset(0, container.Bottom-r.Bottom)
	}
	if r.Top < container.Top {
		r = r.Offset(0, container.Top-r.Top)
	}
	if r.Right > container.Right {
		r.Right = container.Right
	}
	if r.Bottom > container.Bottom {
		r.Bottom = container.Bottom
	}
	return r
}

// Insets are per-edge magnitudes, always >= 0.
type Insets struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// IsZero reports whether all four edges are zero.
func (i Insets) IsZero() bool {
	return i == Insets{}
}

// InsetsOutside returns how far r extends beyond ref on each edge.
// Edges of r that stay inside ref contribute zero.
func (r Rect) InsetsOutside(ref Rect) Insets {
	return Insets{
		Left:   max(0, ref.Left-r.Left),
		Top:    max(0, ref.Top-r.Top),
		Right:  max(0, r.Right-ref.Right),
		Bottom: max(0, r.Bottom-ref.Bottom),
	}
}
