// Package main is the entry point for the compositor backend server.
//
// This application hosts the window layout engine behind a REST and
// WebSocket API, resolving window frames, insets, and policy crops for
// every display it manages.
//
// The server provides:
//   - REST API for window and display management
//   - Layout passes that resolve frames and crops per display
//   - WebSocket streaming of pass results
//   - Service provider registry
//   - Rate limiting and Prometheus metrics
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	./server -port 8000 -profiles config/displays.yaml
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
