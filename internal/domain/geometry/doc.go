// Package geometry provides the integer rectangle math shared by the
// compositor's layout and cropping code.
//
// Rectangles are edge-based (left, top, right, bottom) rather than
// origin+size, matching the frame arithmetic in the layout resolvers:
// intersection, containment clamping, and per-edge inset differences
// all fall out of simple edge comparisons.
//
// Key Components:
//   - Rect: immutable edge-based rectangle value
//   - Insets: per-edge non-negative magnitudes
//   - Intersect / ClampTo / InsetsOutside: the three operations the
//     frame and crop resolvers are built on
//
// All operations degrade to empty rectangles rather than producing
// inverted edges; a Rect returned from this package never has
// Left > Right or Top > Bottom.
package geometry
