package layout

import "github.com/slateos/slate/backend/internal/domain/geometry"

// MatchContainer is the sentinel width/height meaning "fill the
// containing frame" rather than an explicit pixel size.
const MatchContainer = -1

// Anchor selects which edge of the containing frame a window is
// aligned against on one axis.
type Anchor string

const (
	// AnchorStart aligns to the left or top edge.
	AnchorStart Anchor = "start"
	// AnchorEnd aligns to the right or bottom edge.
	AnchorEnd Anchor = "end"
	// AnchorFill stretches across the full axis, ignoring size and offset.
	AnchorFill Anchor = "fill"
)

// WindowAttributes are a window's declared layout parameters.
type WindowAttributes struct {
	// Width and Height are the declared sizes. They govern layout only
	// in scaled-surface mode; otherwise MatchContainer is the only
	// value that matters and explicit sizes are ignored.
	Width  int `json:"width"`
	Height int `json:"height"`

	// HAnchor and VAnchor pick the anchored edge per axis.
	HAnchor Anchor `json:"h_anchor"`
	VAnchor Anchor `json:"v_anchor"`

	// X and Y displace the window inward from the anchored edge.
	X int `json:"x"`
	Y int `json:"y"`

	// Scaled selects scaled-surface mode: the declared size drives
	// layout and the measured size is left for surface scaling.
	Scaled bool `json:"scaled"`
}

// MeasuredSize is the size chosen by a prior measurement pass. It is
// the primary size source unless scaled-surface mode is active.
type MeasuredSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ContainerBounds describe the window's owning container. A fullscreen
// container does not constrain layout; a non-fullscreen one replaces
// the parent frame as the containing frame.
type ContainerBounds struct {
	Bounds     geometry.Rect `json:"bounds"`
	Fullscreen bool          `json:"fullscreen"`

	// TempInsetBounds, when non-empty, replaces all three reference
	// rectangles for inset and retained-frame computation. Placement
	// still follows Bounds.
	TempInsetBounds geometry.Rect `json:"temp_inset_bounds"`
}

// ReferenceFrames are the nested reference rectangles supplied by
// upstream layout policy for one pass.
type ReferenceFrames struct {
	Parent   geometry.Rect `json:"parent"`
	Display  geometry.Rect `json:"display"`
	Overscan geometry.Rect `json:"overscan"`
	Content  geometry.Rect `json:"content"`
	Visible  geometry.Rect `json:"visible"`
	Decor    geometry.Rect `json:"decor"`
	Stable   geometry.Rect `json:"stable"`
}

// FrameResult is the output of one frame resolution, overwritten on
// every layout pass.
type FrameResult struct {
	// Frame is the window's final on-screen rectangle.
	Frame geometry.Rect `json:"frame"`

	// ContainingFrame is the rectangle the window was laid out within.
	ContainingFrame geometry.Rect `json:"containing_frame"`

	// Per-edge overhang past each reference rectangle.
	ContentInsets geometry.Insets `json:"content_insets"`
	VisibleInsets geometry.Insets `json:"visible_insets"`
	StableInsets  geometry.Insets `json:"stable_insets"`

	// Each reference rectangle retained within the final frame.
	ContentFrame geometry.Rect `json:"content_frame"`
	VisibleFrame geometry.Rect `json:"visible_frame"`
	StableFrame  geometry.Rect `json:"stable_frame"`
}

// CropResult is the surface crop for one pass, in window-local
// coordinates.
type CropResult struct {
	Crop geometry.Rect `json:"crop"`
}
