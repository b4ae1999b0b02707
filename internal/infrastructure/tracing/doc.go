// Package tracing provides lightweight request tracing for the
// compositor backend. Spans are correlated through X-Trace-ID /
// X-Span-ID headers and logged through zap; there is no external
// trace collector.
package tracing
