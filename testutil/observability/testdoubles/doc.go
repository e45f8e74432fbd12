// Package testdoubles provides test doubles (spies) for observability interfaces.
//
// This package contains spy implementations for the observability interfaces
// used by the circulation store and the handler wrappers:
//   - MetricsCollectorSpy: captures metrics recording calls for verification
//   - TracingCollectorSpy: captures distributed tracing spans
//   - ContextualLoggerSpy: captures structured logging with context
//
// These test doubles enable testing of observability instrumentation without
// requiring actual telemetry backends.
package testdoubles
