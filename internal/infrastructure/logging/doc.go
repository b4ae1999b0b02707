// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: colored console output for human readability
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("layout pass complete",
//	    zap.String("display", displayID),
//	    zap.Int("windows", n),
//	)
package logging
