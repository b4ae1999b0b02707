package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slateos/slate/backend/internal/domain/geometry"
)

func uniformRefs(r geometry.Rect) ReferenceFrames {
	return ReferenceFrames{
		Parent:   r,
		Display:  r,
		Overscan: r,
		Content:  r,
		Visible:  r,
		Decor:    r,
		Stable:   r,
	}
}

func fillAttrs() WindowAttributes {
	return WindowAttributes{
		Width:   MatchContainer,
		Height:  MatchContainer,
		HAnchor: AnchorStart,
		VAnchor: AnchorStart,
	}
}

func TestFullscreenInsets(t *testing.T) {
	pf := geometry.NewRect(0, 0, 1000, 1000)
	refs := uniformRefs(pf)
	refs.Content = geometry.NewRect(0, 50, 1000, 900)
	refs.Visible = geometry.NewRect(0, 70, 1000, 970)
	refs.Stable = geometry.NewRect(20, 0, 910, 1000)

	res := ResolveFrame(fillAttrs(), MeasuredSize{}, refs, nil)

	// The frame extends past each reference; insets are the per-edge
	// difference and the references are retained shrunk to the frame.
	assert.Equal(t, pf, res.Frame)
	assert.Equal(t, geometry.Insets{Top: 50, Bottom: 100}, res.ContentInsets)
	assert.Equal(t, geometry.Insets{Top: 70, Bottom: 30}, res.VisibleInsets)
	assert.Equal(t, geometry.Insets{Left: 20, Right: 90}, res.StableInsets)
	assert.Equal(t, refs.Content, res.ContentFrame)
	assert.Equal(t, refs.Visible, res.VisibleFrame)
	assert.Equal(t, refs.Stable, res.StableFrame)

	// A window that stays inside every reference produces no insets and
	// the retained frames collapse to the window frame.
	attrs := WindowAttributes{HAnchor: AnchorStart, VAnchor: AnchorStart, X: 100, Y: 100}
	res = ResolveFrame(attrs, MeasuredSize{Width: 100, Height: 100}, refs, nil)
	assert.Equal(t, geometry.NewRect(100, 100, 200, 200), res.Frame)
	assert.True(t, res.ContentInsets.IsZero())
	assert.True(t, res.VisibleInsets.IsZero())
	assert.True(t, res.StableInsets.IsZero())
	assert.Equal(t, res.Frame, res.ContentFrame)
	assert.Equal(t, res.Frame, res.VisibleFrame)
	assert.Equal(t, res.Frame, res.StableFrame)
}

func TestSizeResolution(t *testing.T) {
	pf := geometry.NewRect(0, 0, 1000, 1000)
	refs := uniformRefs(pf)

	// MatchContainer fills the containing frame.
	res := ResolveFrame(fillAttrs(), MeasuredSize{}, refs, nil)
	assert.Equal(t, pf, res.Frame)

	// An explicit declared size without a measured size yields nothing:
	// outside scaled-surface mode the declared size is not a size source.
	attrs := WindowAttributes{Width: 300, Height: 300, HAnchor: AnchorStart, VAnchor: AnchorStart}
	res = ResolveFrame(attrs, MeasuredSize{}, refs, nil)
	assert.True(t, res.Frame.IsEmpty())

	// The measured size is the normal source.
	res = ResolveFrame(attrs, MeasuredSize{Width: 300, Height: 300}, refs, nil)
	assert.Equal(t, geometry.NewRect(0, 0, 300, 300), res.Frame)

	// In scaled-surface mode the declared size takes over.
	attrs = WindowAttributes{Width: 100, Height: 100, HAnchor: AnchorStart, VAnchor: AnchorStart, Scaled: true}
	res = ResolveFrame(attrs, MeasuredSize{}, refs, nil)
	assert.Equal(t, geometry.NewRect(0, 0, 100, 100), res.Frame)

	// Sizes too large are clipped to the containing frame.
	attrs = WindowAttributes{HAnchor: AnchorStart, VAnchor: AnchorStart}
	res = ResolveFrame(attrs, MeasuredSize{Width: 1200, Height: 1200}, refs, nil)
	assert.Equal(t, pf, res.Frame)

	// Before clipping, frames are shifted back inside.
	attrs.X, attrs.Y = 300, 300
	res = ResolveFrame(attrs, MeasuredSize{Width: 1000, Height: 1000}, refs, nil)
	assert.Equal(t, pf, res.Frame)
}

func TestAnchorPlacement(t *testing.T) {
	pf := geometry.NewRect(0, 0, 1000, 1000)
	refs := uniformRefs(pf)
	measured := MeasuredSize{Width: 300, Height: 300}

	attrs := WindowAttributes{HAnchor: AnchorEnd, VAnchor: AnchorStart}
	res := ResolveFrame(attrs, measured, refs, nil)
	assert.Equal(t, geometry.NewRect(700, 0, 1000, 300), res.Frame)

	attrs.VAnchor = AnchorEnd
	res = ResolveFrame(attrs, measured, refs, nil)
	assert.Equal(t, geometry.NewRect(700, 700, 1000, 1000), res.Frame)

	// Offsets are interpreted opposite to the anchor direction,
	// pulling the window inward from the anchored edge.
	attrs.X, attrs.Y = 100, 100
	res = ResolveFrame(attrs, measured, refs, nil)
	assert.Equal(t, geometry.NewRect(600, 600, 900, 900), res.Frame)

	// Fill ignores size and offset on its axis.
	attrs = WindowAttributes{HAnchor: AnchorFill, VAnchor: AnchorStart, X: 100}
	res = ResolveFrame(attrs, measured, refs, nil)
	assert.Equal(t, geometry.NewRect(0, 0, 1000, 300), res.Frame)
}

func TestNonFullscreenContainer(t *testing.T) {
	pf := geometry.NewRect(0, 0, 1000, 1000)
	refs := uniformRefs(pf)
	container := &ContainerBounds{Bounds: geometry.NewRect(300, 300, 700, 700)}

	// The container bounds replace the parent frame for placement.
	res := ResolveFrame(fillAttrs(), MeasuredSize{}, refs, container)
	assert.Equal(t, container.Bounds, res.Frame)
	assert.Equal(t, container.Bounds, res.ContainingFrame)
	assert.True(t, res.ContentInsets.IsZero())
	assert.Equal(t, container.Bounds, res.ContentFrame)

	// Insets are still produced against the reference rectangles.
	cf := geometry.NewRect(0, 0, 500, 500)
	refs.Content, refs.Visible, refs.Stable = cf, cf, cf
	res = ResolveFrame(fillAttrs(), MeasuredSize{}, refs, container)
	assert.Equal(t, container.Bounds, res.Frame)
	assert.Equal(t, geometry.Insets{Right: 200, Bottom: 200}, res.ContentInsets)
	assert.Equal(t, geometry.NewRect(300, 300, 500, 500), res.ContentFrame)

	// A fullscreen container does not constrain layout.
	container.Fullscreen = true
	res = ResolveFrame(fillAttrs(), MeasuredSize{}, refs, container)
	assert.Equal(t, pf, res.Frame)
}

func TestTempInsetBounds(t *testing.T) {
	pf := geometry.NewRect(0, 0, 1000, 1000)
	refs := uniformRefs(pf)
	cf := geometry.NewRect(0, 0, 500, 500)
	refs.Content, refs.Visible, refs.Stable = cf, cf, cf

	container := &ContainerBounds{
		Bounds:          geometry.NewRect(300, 300, 700, 700),
		TempInsetBounds: geometry.NewRect(200, 200, 600, 600),
	}

	// Insets are computed as if the window were laid out in the temp
	// bounds, but placement still follows the container bounds.
	res := ResolveFrame(fillAttrs(), MeasuredSize{}, refs, container)
	assert.Equal(t, geometry.NewRect(300, 300, 700, 700), res.Frame)
	assert.Equal(t, geometry.Insets{Right: 100, Bottom: 100}, res.ContentInsets)
	assert.Equal(t, geometry.NewRect(300, 300, 600, 600), res.ContentFrame)
	assert.Equal(t, res.ContentInsets, res.VisibleInsets)
	assert.Equal(t, res.ContentInsets, res.StableInsets)
}

func TestRetainedFrameIsIntersection(t *testing.T) {
	pf := geometry.NewRect(0, 0, 1000, 1000)
	refs := uniformRefs(pf)
	refs.Content = geometry.NewRect(-200, 100, 800, 1200)
	refs.Visible = geometry.NewRect(400, 400, 600, 600)
	refs.Stable = geometry.NewRect(2000, 2000, 3000, 3000)

	res := ResolveFrame(fillAttrs(), MeasuredSize{}, refs, nil)
	assert.Equal(t, refs.Content.Intersect(res.Frame), res.ContentFrame)
	assert.Equal(t, refs.Visible.Intersect(res.Frame), res.VisibleFrame)
	assert.Equal(t, refs.Stable.Intersect(res.Frame), res.StableFrame)
	assert.True(t, res.StableFrame.IsEmpty())
}

func TestDegenerateInputs(t *testing.T) {
	// Zero-size parent: everything collapses without failing.
	refs := uniformRefs(geometry.Rect{})
	res := ResolveFrame(fillAttrs(), MeasuredSize{}, refs, nil)
	assert.True(t, res.Frame.IsEmpty())
	assert.True(t, res.Frame.Valid())

	// Negative declared size in scaled mode degrades to empty.
	attrs := WindowAttributes{Width: -5, Height: -5, HAnchor: AnchorStart, VAnchor: AnchorStart, Scaled: true}
	res = ResolveFrame(attrs, MeasuredSize{}, uniformRefs(geometry.NewRect(0, 0, 100, 100)), nil)
	assert.True(t, res.Frame.IsEmpty())
	assert.True(t, res.Frame.Valid())
}
