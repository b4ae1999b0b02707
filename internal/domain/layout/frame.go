package layout

import "github.com/slateos/slate/backend/internal/domain/geometry"

// ResolveFrame computes a window's final rectangle for one layout pass,
// along with its insets and retained frames against the content,
// visible, and stable references.
//
// The containing frame is the parent frame unless the window belongs to
// a non-fullscreen container, in which case the container's bounds
// confine it regardless of the parent. A nil container behaves like a
// fullscreen one.
func ResolveFrame(attrs WindowAttributes, measured MeasuredSize, refs ReferenceFrames, container *ContainerBounds) FrameResult {
	containing := refs.Parent
	if container != nil && !container.Fullscreen {
		containing = container.Bounds
	}

	w, h := resolveSize(attrs, measured, containing)

	var frame geometry.Rect
	frame.Left, frame.Right = placeAxis(attrs.HAnchor, containing.Left, containing.Right, attrs.X, w)
	frame.Top, frame.Bottom = placeAxis(attrs.VAnchor, containing.Top, containing.Bottom, attrs.Y, h)
	frame = frame.ClampTo(containing)

	content, visible, stable := refs.Content, refs.Visible, refs.Stable
	if container != nil && !container.TempInsetBounds.IsEmpty() {
		// Insets are computed as if the window were laid out in the
		// temporary bounds, while placement keeps the container bounds.
		content = container.TempInsetBounds
		visible = container.TempInsetBounds
		stable = container.TempInsetBounds
	}

	return FrameResult{
		Frame:           frame,
		ContainingFrame: containing,
		ContentInsets:   frame.InsetsOutside(content),
		VisibleInsets:   frame.InsetsOutside(visible),
		StableInsets:    frame.InsetsOutside(stable),
		ContentFrame:    content.Intersect(frame),
		VisibleFrame:    visible.Intersect(frame),
		StableFrame:     stable.Intersect(frame),
	}
}

// resolveSize picks the layout-governing size. Scaled-surface mode uses
// the declared attribute size (the measured size then drives surface
// scaling downstream); otherwise the measured size wins and declared
// sizes other than MatchContainer are ignored, degrading to zero.
func resolveSize(attrs WindowAttributes, measured MeasuredSize, containing geometry.Rect) (w, h int) {
	if attrs.Scaled {
		w = attrs.Width
		if w == MatchContainer {
			w = containing.Width()
		}
		h = attrs.Height
		if h == MatchContainer {
			h = containing.Height()
		}
	} else {
		w = measured.Width
		if w <= 0 {
			w = 0
			if attrs.Width == MatchContainer {
				w = containing.Width()
			}
		}
		h = measured.Height
		if h <= 0 {
			h = 0
			if attrs.Height == MatchContainer {
				h = containing.Height()
			}
		}
	}
	return max(w, 0), max(h, 0)
}

// placeAxis positions one axis against the containing frame. Offsets
// always displace the window inward, away from the anchored edge.
func placeAxis(anchor Anchor, start, end, offset, size int) (lo, hi int) {
	switch anchor {
	case AnchorFill:
		return start, end
	case AnchorEnd:
		hi = end - offset
		return hi - size, hi
	default:
		lo = start + offset
		return lo, lo + size
	}
}
