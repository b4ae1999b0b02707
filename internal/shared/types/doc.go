// Package types provides shared data structures for the compositor backend.
//
// This package defines the contracts used across backend components,
// ensuring consistent data structures between the service layer, the
// HTTP/WebSocket APIs, and service providers.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Context: Execution context for operations
//   - Result: Standard operation result
//   - WSMessage: WebSocket communication envelope
//
// Example Usage:
//
//	def := types.Service{
//	    ID:       "compositor",
//	    Name:     "Compositor Service",
//	    Category: types.CategoryCompositor,
//	}
package types
