// Package window provides window bookkeeping for the compositor.
//
// Each window owns its declared layout attributes, the size chosen by
// the last measurement pass, its compositing layer, and the results of
// the last layout pass. Results are overwritten every pass; the
// previous pass's frame stays readable until then so callers can diff.
//
// Key Components:
//   - Manager: central window registry
//   - Window: per-window state and last computed frame/crop
//
// Example Usage:
//
//	manager := window.NewManager()
//	win := manager.Attach("terminal", attrs, layout.MeasuredSize{}, 1, nil)
//	manager.SetMeasured(win.ID, layout.MeasuredSize{Width: 800, Height: 600})
package window
