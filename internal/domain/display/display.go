package display

import (
	"fmt"
	"sync"
	"time"

	"github.com/slateos/slate/backend/internal/domain/geometry"
	"github.com/slateos/slate/backend/internal/domain/layout"
	"github.com/slateos/slate/backend/internal/domain/window"
	"github.com/slateos/slate/backend/internal/shared/id"
)

// Metrics interface for dependency injection
type Metrics interface {
	RecordLayoutPass(displayID string, duration time.Duration, windows int)
	RecordFrameChanges(count int)
}

// Notifier receives pass results for streaming to clients
type Notifier interface {
	NotifyPass(result *PassResult)
}

// Display represents one logical display
type Display struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Bounds           geometry.Rect `json:"bounds"`
	Overscan         geometry.Rect `json:"overscan"`
	SystemDecorLayer int           `json:"system_decor_layer"`

	mu    sync.Mutex // serializes layout passes
	order []string   // window IDs in layout order
}

// Windows returns the window IDs in layout order
func (d *Display) Windows() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// PolicyFrames are the reference rectangles upstream layout policy
// supplies for one pass. An empty Parent falls back to the display
// bounds.
type PolicyFrames struct {
	Parent  geometry.Rect `json:"parent"`
	Content geometry.Rect `json:"content"`
	Visible geometry.Rect `json:"visible"`
	Decor   geometry.Rect `json:"decor"`
	Stable  geometry.Rect `json:"stable"`
}

// Validate rejects inverted rectangles. Empty rectangles are normal
// degenerate geometry and pass; inverted edges are a caller bug.
func (p PolicyFrames) Validate() error {
	for name, r := range map[string]geometry.Rect{
		"parent":  p.Parent,
		"content": p.Content,
		"visible": p.Visible,
		"decor":   p.Decor,
		"stable":  p.Stable,
	} {
		if !r.Valid() {
			return fmt.Errorf("malformed %s frame: %+v", name, r)
		}
	}
	return nil
}

// WindowUpdate is one window's outcome within a pass
type WindowUpdate struct {
	WindowID     string             `json:"window_id"`
	Title        string             `json:"title"`
	Frame        layout.FrameResult `json:"frame"`
	Crop         layout.CropResult  `json:"crop"`
	FrameChanged bool               `json:"frame_changed"`
}

// PassResult is the outcome of one layout pass
type PassResult struct {
	PassID     string         `json:"pass_id"`
	DisplayID  string         `json:"display_id"`
	StartedAt  time.Time      `json:"started_at"`
	Duration   time.Duration  `json:"duration"`
	Updates    []WindowUpdate `json:"updates"`
	NumChanged int            `json:"num_changed"`
}

// Manager is the display registry and layout pass runner
type Manager struct {
	displays sync.Map
	windows  *window.Manager
	metrics  Metrics
	notifier Notifier
}

// NewManager creates a display manager over a window registry
func NewManager(windows *window.Manager) *Manager {
	return &Manager{windows: windows}
}

// WithMetrics attaches a metrics recorder
func (m *Manager) WithMetrics(metrics Metrics) *Manager {
	m.metrics = metrics
	return m
}

// WithNotifier attaches a pass result notifier
func (m *Manager) WithNotifier(notifier Notifier) *Manager {
	m.notifier = notifier
	return m
}

// Add registers a new display. An empty overscan defaults to the
// display bounds.
func (m *Manager) Add(name string, bounds, overscan geometry.Rect, systemDecorLayer int) (*Display, error) {
	if !bounds.Valid() || bounds.IsEmpty() {
		return nil, fmt.Errorf("invalid display bounds: %+v", bounds)
	}
	if !overscan.Valid() {
		return nil, fmt.Errorf("invalid overscan bounds: %+v", overscan)
	}
	if overscan.IsEmpty() {
		overscan = bounds
	}

	d := &Display{
		ID:               id.NewDisplayID().String(),
		Name:             name,
		Bounds:           bounds,
		Overscan:         overscan,
		SystemDecorLayer: systemDecorLayer,
	}
	m.displays.Store(d.ID, d)
	return d, nil
}

// Get retrieves a display by ID
func (m *Manager) Get(displayID string) (*Display, bool) {
	val, ok := m.displays.Load(displayID)
	if !ok {
		return nil, false
	}
	return val.(*Display), true
}

// List returns all displays
func (m *Manager) List() []*Display {
	var displays []*Display
	m.displays.Range(func(_, value interface{}) bool {
		displays = append(displays, value.(*Display))
		return true
	})
	return displays
}

// Remove deletes a display. Its windows stay attached to the window
// registry and can be moved to another display.
func (m *Manager) Remove(displayID string) bool {
	if _, ok := m.displays.Load(displayID); !ok {
		return false
	}
	m.displays.Delete(displayID)
	return true
}

// AttachWindow adds a window to a display's layout order
func (m *Manager) AttachWindow(displayID, windowID string) error {
	d, ok := m.Get(displayID)
	if !ok {
		return fmt.Errorf("display not found: %s", displayID)
	}
	if _, ok := m.windows.Get(windowID); !ok {
		return fmt.Errorf("window not found: %s", windowID)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, existing := range d.order {
		if existing == windowID {
			return fmt.Errorf("window already attached: %s", windowID)
		}
	}
	d.order = append(d.order, windowID)
	return nil
}

// DetachWindow removes a window from a display's layout order
func (m *Manager) DetachWindow(displayID, windowID string) error {
	d, ok := m.Get(displayID)
	if !ok {
		return fmt.Errorf("display not found: %s", displayID)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for i, existing := range d.order {
		if existing == windowID {
			d.order = append(d.order[:i], d.order[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("window not attached: %s", windowID)
}

// RunPass resolves frames and crops for every window on the display,
// in layout order, against the supplied policy frames. Passes for the
// same display never overlap.
func (m *Manager) RunPass(displayID string, policy PolicyFrames) (*PassResult, error) {
	d, ok := m.Get(displayID)
	if !ok {
		return nil, fmt.Errorf("display not found: %s", displayID)
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	parent := policy.Parent
	if parent.IsEmpty() {
		parent = d.Bounds
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	start := time.Now()
	result := &PassResult{
		PassID:    id.NewPassID().String(),
		DisplayID: d.ID,
		StartedAt: start,
	}

	live := d.order[:0]
	for _, windowID := range d.order {
		win, ok := m.windows.Get(windowID)
		if !ok {
			// Detached since the last pass; drop from the order.
			continue
		}
		live = append(live, windowID)

		refs := layout.ReferenceFrames{
			Parent:   parent,
			Display:  d.Bounds,
			Overscan: d.Overscan,
			Content:  policy.Content,
			Visible:  policy.Visible,
			Decor:    policy.Decor,
			Stable:   policy.Stable,
		}

		in := win.LayoutInputs()
		frame := layout.ResolveFrame(in.Attrs, in.Measured, refs, in.Container)
		crop := layout.ResolveCrop(frame.Frame, policy.Decor, d.Bounds, in.Layer, d.SystemDecorLayer, in.TransitionResizing)
		changed := win.ApplyResults(frame, crop)

		result.Updates = append(result.Updates, WindowUpdate{
			WindowID:     win.ID,
			Title:        win.Title,
			Frame:        frame,
			Crop:         crop,
			FrameChanged: changed,
		})
		if changed {
			result.NumChanged++
		}
	}

	d.order = live
	result.Duration = time.Since(start)

	if m.metrics != nil {
		m.metrics.RecordLayoutPass(d.ID, result.Duration, len(result.Updates))
		m.metrics.RecordFrameChanges(result.NumChanged)
	}
	if m.notifier != nil {
		m.notifier.NotifyPass(result)
	}
	return result, nil
}
