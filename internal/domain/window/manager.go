package window

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/slateos/slate/backend/internal/domain/layout"
)

// Metrics interface for dependency injection
type Metrics interface {
	RecordWindowAttached()
	RecordWindowDetached()
}

// Window represents one attached window and its layout state
type Window struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`

	Attrs     layout.WindowAttributes `json:"attrs"`
	Measured  layout.MeasuredSize     `json:"measured"`
	Layer     int                     `json:"layer"`
	Container *layout.ContainerBounds `json:"container,omitempty"`

	// TransitionResizing suppresses surface cropping while an
	// interactive resize keeps the surface at display size.
	TransitionResizing bool `json:"transition_resizing"`

	mu       sync.RWMutex
	frame    layout.FrameResult
	crop     layout.CropResult
	hasFrame bool
}

// ApplyResults stores the outcome of a layout pass, overwriting the
// previous pass's results. Reports whether the final frame moved.
func (w *Window) ApplyResults(frame layout.FrameResult, crop layout.CropResult) (changed bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	changed = !w.hasFrame || w.frame.Frame != frame.Frame
	w.frame = frame
	w.crop = crop
	w.hasFrame = true
	return changed
}

// Results returns the last layout pass outcome. The boolean is false
// until the window has been through a pass.
func (w *Window) Results() (layout.FrameResult, layout.CropResult, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.frame, w.crop, w.hasFrame
}

// LayoutInputs is the consistent snapshot a layout pass resolves
// from, so a pass never observes a half-applied reconfigure.
type LayoutInputs struct {
	Attrs              layout.WindowAttributes
	Measured           layout.MeasuredSize
	Layer              int
	Container          *layout.ContainerBounds
	TransitionResizing bool
}

// LayoutInputs returns the window's current layout inputs under the
// read lock.
func (w *Window) LayoutInputs() LayoutInputs {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return LayoutInputs{
		Attrs:              w.Attrs,
		Measured:           w.Measured,
		Layer:              w.Layer,
		Container:          w.Container,
		TransitionResizing: w.TransitionResizing,
	}
}

// Manager is the central window registry
type Manager struct {
	windows sync.Map
	metrics Metrics
}

// NewManager creates a new window manager
func NewManager() *Manager {
	return &Manager{}
}

// WithMetrics attaches a metrics recorder
func (m *Manager) WithMetrics(metrics Metrics) *Manager {
	m.metrics = metrics
	return m
}

// Attach registers a new window
func (m *Manager) Attach(title string, attrs layout.WindowAttributes, measured layout.MeasuredSize, layer int, container *layout.ContainerBounds) *Window {
	if title == "" {
		title = "Untitled Window"
	}

	win := &Window{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: time.Now(),
		Attrs:     attrs,
		Measured:  measured,
		Layer:     layer,
		Container: container,
	}

	m.windows.Store(win.ID, win)
	if m.metrics != nil {
		m.metrics.RecordWindowAttached()
	}
	return win
}

// Get retrieves a window by ID
func (m *Manager) Get(id string) (*Window, bool) {
	val, ok := m.windows.Load(id)
	if !ok {
		return nil, false
	}
	return val.(*Window), true
}

// List returns all attached windows
func (m *Manager) List() []*Window {
	var windows []*Window
	m.windows.Range(func(_, value interface{}) bool {
		windows = append(windows, value.(*Window))
		return true
	})
	return windows
}

// Configure replaces a window's declared attributes
func (m *Manager) Configure(id string, attrs layout.WindowAttributes) bool {
	win, ok := m.Get(id)
	if !ok {
		return false
	}
	win.mu.Lock()
	win.Attrs = attrs
	win.mu.Unlock()
	return true
}

// SetMeasured records the size chosen by a measurement pass
func (m *Manager) SetMeasured(id string, measured layout.MeasuredSize) bool {
	win, ok := m.Get(id)
	if !ok {
		return false
	}
	win.mu.Lock()
	win.Measured = measured
	win.mu.Unlock()
	return true
}

// SetLayer moves a window to a new compositing layer
func (m *Manager) SetLayer(id string, layer int) bool {
	win, ok := m.Get(id)
	if !ok {
		return false
	}
	win.mu.Lock()
	win.Layer = layer
	win.mu.Unlock()
	return true
}

// SetContainer changes a window's owning container bounds
func (m *Manager) SetContainer(id string, container *layout.ContainerBounds) bool {
	win, ok := m.Get(id)
	if !ok {
		return false
	}
	win.mu.Lock()
	win.Container = container
	win.mu.Unlock()
	return true
}

// SetTransitionResizing toggles the resize-transition crop suppression
func (m *Manager) SetTransitionResizing(id string, resizing bool) bool {
	win, ok := m.Get(id)
	if !ok {
		return false
	}
	win.mu.Lock()
	win.TransitionResizing = resizing
	win.mu.Unlock()
	return true
}

// Detach removes a window
func (m *Manager) Detach(id string) bool {
	if _, ok := m.windows.Load(id); !ok {
		return false
	}
	m.windows.Delete(id)
	if m.metrics != nil {
		m.metrics.RecordWindowDetached()
	}
	return true
}

// Stats contains window manager statistics
type Stats struct {
	TotalWindows  int `json:"total_windows"`
	ScaledWindows int `json:"scaled_windows"`
	Contained     int `json:"contained"`
}

// Stats returns aggregate counts
func (m *Manager) Stats() Stats {
	var stats Stats
	m.windows.Range(func(_, value interface{}) bool {
		in := value.(*Window).LayoutInputs()
		stats.TotalWindows++
		if in.Attrs.Scaled {
			stats.ScaledWindows++
		}
		if in.Container != nil && !in.Container.Fullscreen {
			stats.Contained++
		}
		return true
	})
	return stats
}
