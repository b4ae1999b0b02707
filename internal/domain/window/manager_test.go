package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slateos/slate/backend/internal/domain/geometry"
	"github.com/slateos/slate/backend/internal/domain/layout"
)

func TestAttach(t *testing.T) {
	m := NewManager()

	attrs := layout.WindowAttributes{Width: layout.MatchContainer, Height: layout.MatchContainer}
	win := m.Attach("terminal", attrs, layout.MeasuredSize{}, 1, nil)

	require.NotEmpty(t, win.ID)
	assert.Equal(t, "terminal", win.Title)

	got, ok := m.Get(win.ID)
	require.True(t, ok)
	assert.Same(t, win, got)

	// Untitled windows get a default.
	win = m.Attach("", attrs, layout.MeasuredSize{}, 1, nil)
	assert.Equal(t, "Untitled Window", win.Title)
}

func TestApplyResultsDiffing(t *testing.T) {
	m := NewManager()
	win := m.Attach("editor", layout.WindowAttributes{}, layout.MeasuredSize{}, 1, nil)

	_, _, ok := win.Results()
	assert.False(t, ok, "no results before the first pass")

	frame := layout.FrameResult{Frame: geometry.NewRect(0, 0, 100, 100)}
	crop := layout.CropResult{Crop: geometry.NewRect(0, 0, 100, 100)}

	assert.True(t, win.ApplyResults(frame, crop), "first pass always reports a change")
	assert.False(t, win.ApplyResults(frame, crop), "identical frame is not a change")

	frame.Frame = geometry.NewRect(10, 10, 110, 110)
	assert.True(t, win.ApplyResults(frame, crop))

	got, _, ok := win.Results()
	require.True(t, ok)
	assert.Equal(t, frame.Frame, got.Frame)
}

func TestConfigureAndDetach(t *testing.T) {
	m := NewManager()
	win := m.Attach("panel", layout.WindowAttributes{}, layout.MeasuredSize{}, 1, nil)

	assert.True(t, m.SetMeasured(win.ID, layout.MeasuredSize{Width: 300, Height: 300}))
	assert.True(t, m.SetLayer(win.ID, 42))
	assert.True(t, m.SetTransitionResizing(win.ID, true))

	got, _ := m.Get(win.ID)
	assert.Equal(t, 300, got.Measured.Width)
	assert.Equal(t, 42, got.Layer)
	assert.True(t, got.TransitionResizing)

	assert.True(t, m.Detach(win.ID))
	assert.False(t, m.Detach(win.ID))
	_, ok := m.Get(win.ID)
	assert.False(t, ok)

	assert.False(t, m.Configure("missing", layout.WindowAttributes{}))
}

func TestStats(t *testing.T) {
	m := NewManager()
	m.Attach("a", layout.WindowAttributes{Scaled: true}, layout.MeasuredSize{}, 1, nil)
	m.Attach("b", layout.WindowAttributes{}, layout.MeasuredSize{}, 1, &layout.ContainerBounds{
		Bounds: geometry.NewRect(0, 0, 100, 100),
	})
	m.Attach("c", layout.WindowAttributes{}, layout.MeasuredSize{}, 1, &layout.ContainerBounds{
		Fullscreen: true,
	})

	stats := m.Stats()
	assert.Equal(t, 3, stats.TotalWindows)
	assert.Equal(t, 1, stats.ScaledWindows)
	assert.Equal(t, 1, stats.Contained)
}
