// Package layout implements the compositor's window-frame resolution.
//
// Two pure resolvers run in sequence once per layout pass:
//   - ResolveFrame: computes a window's final on-screen rectangle from
//     its declared attributes, measured size, and the reference
//     rectangles handed down by upstream layout policy, along with the
//     per-edge insets and retained frames against the content, visible,
//     and stable references.
//   - ResolveCrop: computes the surface crop rectangle, in window-local
//     coordinates, from the resolved frame, the decor reference, and
//     the compositing layer order.
//
// Both are stateless functions over their inputs. Degenerate geometry
// (zero-size containers, empty references, negative offsets) produces
// well-defined, possibly empty rectangles; nothing here returns an
// error. Callers own the results and overwrite them each pass.
//
// Example Usage:
//
//	result := layout.ResolveFrame(attrs, measured, refs, container)
//	crop := layout.ResolveCrop(result.Frame, refs.Decor, refs.Display, layer, decorLayer, false)
package layout
