// Package monitoring provides Prometheus metrics for the compositor backend.
//
// Collected metrics cover HTTP traffic, window lifecycle, layout passes
// (count, duration, windows per pass, frame changes), and WebSocket
// connections. Each Metrics value owns its own registry so tests can
// create collectors freely.
//
// Example Usage:
//
//	metrics := monitoring.NewMetrics()
//	router.Use(monitoring.Middleware(metrics))
//	router.GET("/metrics", gin.WrapH(metrics.Handler()))
package monitoring
