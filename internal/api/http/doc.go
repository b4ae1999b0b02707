// Package http provides the REST endpoints of the compositor backend:
// window attach/configure/detach, display management, layout pass
// execution, frame read-back, and service tool execution.
//
// Rectangle well-formedness is validated here, at the boundary.
// Inverted rectangles are rejected with 400 as caller bugs; empty
// rectangles pass through as legitimate degenerate geometry.
package http
