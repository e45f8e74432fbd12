// Package observable provides generic observability decorators for command and
// query handlers. The wrappers add metrics, tracing and logging around any core
// handler without the feature slices duplicating instrumentation code.
package observable
