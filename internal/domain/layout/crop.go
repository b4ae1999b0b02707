package layout

import "github.com/slateos/slate/backend/internal/domain/geometry"

// ResolveCrop computes the rectangle a window's rendered surface is
// clipped to before compositing, in the window's own coordinate space.
//
// Cropping is suppressed, yielding the full display-sized rectangle,
// when there is no decor reference, when the window composites above
// the system decor layer, or while a resize transition keeps the
// surface at full display size.
func ResolveCrop(frame, decor, display geometry.Rect, windowLayer, systemDecorLayer int, transitionResizing bool) CropResult {
	if decor.IsEmpty() || windowLayer > systemDecorLayer || transitionResizing {
		return CropResult{Crop: geometry.NewRect(0, 0, display.Width(), display.Height())}
	}
	clipped := decor.Intersect(frame)
	if clipped.IsEmpty() {
		return CropResult{}
	}
	return CropResult{Crop: clipped.Offset(-frame.Left, -frame.Top)}
}
