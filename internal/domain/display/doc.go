// Package display orchestrates layout passes per logical display.
//
// A display owns its bounds, overscan region, system decor layer, and
// the ordered set of windows laid out on it. Layout passes are
// serialized per display: later windows in a pass may depend on
// earlier outputs, so a single mutex orders them. The reference
// rectangles for a pass (content, visible, decor, stable) come from
// the caller each time; deciding them is upstream layout policy, not
// this package's concern.
//
// Key Components:
//   - Manager: display registry and pass runner
//   - Display: per-display state
//   - Profile: named display presets loaded from YAML
//
// Example Usage:
//
//	displays := display.NewManager(windows)
//	d, _ := displays.Add("main", geometry.NewRect(0, 0, 1920, 1080), geometry.Rect{}, 10000)
//	displays.AttachWindow(d.ID, win.ID)
//	result, err := displays.RunPass(d.ID, policy)
package display
