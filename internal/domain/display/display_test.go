package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slateos/slate/backend/internal/domain/geometry"
	"github.com/slateos/slate/backend/internal/domain/layout"
	"github.com/slateos/slate/backend/internal/domain/window"
)

func fillWindow(t *testing.T, windows *window.Manager) *window.Window {
	t.Helper()
	attrs := layout.WindowAttributes{
		Width:   layout.MatchContainer,
		Height:  layout.MatchContainer,
		HAnchor: layout.AnchorFill,
		VAnchor: layout.AnchorFill,
	}
	return windows.Attach("w", attrs, layout.MeasuredSize{}, 1, nil)
}

func TestAddValidation(t *testing.T) {
	m := NewManager(window.NewManager())

	_, err := m.Add("bad", geometry.Rect{}, geometry.Rect{}, 0)
	assert.Error(t, err)

	_, err = m.Add("inverted", geometry.NewRect(100, 0, 0, 100), geometry.Rect{}, 0)
	assert.Error(t, err)

	d, err := m.Add("main", geometry.NewRect(0, 0, 1000, 1000), geometry.Rect{}, 10000)
	require.NoError(t, err)
	assert.Equal(t, d.Bounds, d.Overscan, "empty overscan defaults to bounds")
	assert.Contains(t, d.ID, "disp_")
}

func TestRunPass(t *testing.T) {
	windows := window.NewManager()
	m := NewManager(windows)

	d, err := m.Add("main", geometry.NewRect(0, 0, 1000, 1000), geometry.Rect{}, 10000)
	require.NoError(t, err)

	win := fillWindow(t, windows)
	require.NoError(t, m.AttachWindow(d.ID, win.ID))

	policy := PolicyFrames{
		Content: geometry.NewRect(0, 50, 1000, 900),
		Visible: geometry.NewRect(0, 50, 1000, 900),
		Decor:   geometry.NewRect(0, 50, 1000, 900),
		Stable:  geometry.NewRect(0, 50, 1000, 900),
	}

	result, err := m.RunPass(d.ID, policy)
	require.NoError(t, err)
	require.Len(t, result.Updates, 1)

	update := result.Updates[0]
	assert.Equal(t, geometry.NewRect(0, 0, 1000, 1000), update.Frame.Frame)
	assert.Equal(t, geometry.Insets{Top: 50, Bottom: 100}, update.Frame.ContentInsets)
	assert.True(t, update.FrameChanged, "first pass reports a change")
	assert.Contains(t, result.PassID, "pass_")

	// The window renders below system decor, so the decor frame crops
	// its surface in local coordinates.
	assert.Equal(t, geometry.NewRect(0, 50, 1000, 900), update.Crop.Crop)

	// A second pass with identical inputs reports no frame change.
	result, err = m.RunPass(d.ID, policy)
	require.NoError(t, err)
	assert.False(t, result.Updates[0].FrameChanged)
	assert.Zero(t, result.NumChanged)

	// Windows above the decor layer escape cropping.
	windows.SetLayer(win.ID, 10001)
	result, err = m.RunPass(d.ID, policy)
	require.NoError(t, err)
	assert.Equal(t, geometry.NewRect(0, 0, 1000, 1000), result.Updates[0].Crop.Crop)
}

func TestRunPassValidation(t *testing.T) {
	windows := window.NewManager()
	m := NewManager(windows)
	d, err := m.Add("main", geometry.NewRect(0, 0, 1000, 1000), geometry.Rect{}, 10000)
	require.NoError(t, err)

	_, err = m.RunPass("missing", PolicyFrames{})
	assert.Error(t, err)

	// Inverted rectangles are caller bugs, rejected at the boundary.
	_, err = m.RunPass(d.ID, PolicyFrames{Content: geometry.NewRect(500, 0, 100, 100)})
	assert.Error(t, err)

	// Empty rectangles are legitimate degenerate geometry.
	result, err := m.RunPass(d.ID, PolicyFrames{})
	require.NoError(t, err)
	assert.Empty(t, result.Updates)
}

func TestDetachedWindowPruned(t *testing.T) {
	windows := window.NewManager()
	m := NewManager(windows)
	d, err := m.Add("main", geometry.NewRect(0, 0, 1000, 1000), geometry.Rect{}, 10000)
	require.NoError(t, err)

	win := fillWindow(t, windows)
	require.NoError(t, m.AttachWindow(d.ID, win.ID))
	windows.Detach(win.ID)

	result, err := m.RunPass(d.ID, PolicyFrames{})
	require.NoError(t, err)
	assert.Empty(t, result.Updates)
	assert.Empty(t, d.Windows())
}

type recordingMetrics struct {
	passes  int
	changes int
}

func (r *recordingMetrics) RecordLayoutPass(string, time.Duration, int) { r.passes++ }
func (r *recordingMetrics) RecordFrameChanges(count int)                { r.changes += count }

type recordingNotifier struct {
	results []*PassResult
}

func (r *recordingNotifier) NotifyPass(result *PassResult) { r.results = append(r.results, result) }

func TestMetricsAndNotifier(t *testing.T) {
	windows := window.NewManager()
	metrics := &recordingMetrics{}
	notifier := &recordingNotifier{}
	m := NewManager(windows).WithMetrics(metrics).WithNotifier(notifier)

	d, err := m.Add("main", geometry.NewRect(0, 0, 1000, 1000), geometry.Rect{}, 10000)
	require.NoError(t, err)
	win := fillWindow(t, windows)
	require.NoError(t, m.AttachWindow(d.ID, win.ID))

	_, err = m.RunPass(d.ID, PolicyFrames{})
	require.NoError(t, err)

	assert.Equal(t, 1, metrics.passes)
	assert.Equal(t, 1, metrics.changes)
	require.Len(t, notifier.results, 1)
	assert.Equal(t, d.ID, notifier.results[0].DisplayID)
}

func TestAttachWindowErrors(t *testing.T) {
	windows := window.NewManager()
	m := NewManager(windows)
	d, err := m.Add("main", geometry.NewRect(0, 0, 1000, 1000), geometry.Rect{}, 10000)
	require.NoError(t, err)
	win := fillWindow(t, windows)

	assert.Error(t, m.AttachWindow("missing", win.ID))
	assert.Error(t, m.AttachWindow(d.ID, "missing"))
	require.NoError(t, m.AttachWindow(d.ID, win.ID))
	assert.Error(t, m.AttachWindow(d.ID, win.ID), "double attach rejected")

	require.NoError(t, m.DetachWindow(d.ID, win.ID))
	assert.Error(t, m.DetachWindow(d.ID, win.ID))
}

// Exercises concurrent reconfiguration against running passes; fails
// under the race detector if a pass reads window fields outside the
// window lock.
func TestRunPassConcurrentReconfigure(t *testing.T) {
	windows := window.NewManager()
	m := NewManager(windows)

	d, err := m.Add("main", geometry.NewRect(0, 0, 1000, 1000), geometry.Rect{}, 10000)
	require.NoError(t, err)
	win := fillWindow(t, windows)
	require.NoError(t, m.AttachWindow(d.ID, win.ID))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			windows.Configure(win.ID, layout.WindowAttributes{
				Width:   100 + i,
				Height:  100 + i,
				HAnchor: layout.AnchorStart,
				VAnchor: layout.AnchorStart,
				Scaled:  true,
			})
			windows.SetMeasured(win.ID, layout.MeasuredSize{Width: 100 + i, Height: 100 + i})
			windows.SetLayer(win.ID, i)
			windows.SetTransitionResizing(win.ID, i%2 == 0)
			windows.SetContainer(win.ID, &layout.ContainerBounds{
				Bounds: geometry.NewRect(0, 0, 500+i, 500+i),
			})
		}
	}()

	for i := 0; i < 200; i++ {
		_, err := m.RunPass(d.ID, PolicyFrames{})
		require.NoError(t, err)
	}
	<-done

	// The final pass sees the last configuration whole.
	result, err := m.RunPass(d.ID, PolicyFrames{})
	require.NoError(t, err)
	require.Len(t, result.Updates, 1)
	frame := result.Updates[0].Frame.Frame
	assert.Equal(t, 299, frame.Width())
	assert.Equal(t, 299, frame.Height())
}
