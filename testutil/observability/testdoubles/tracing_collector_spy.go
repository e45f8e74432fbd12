package testdoubles

import (
	"context"
	"sync"

	"github.com/bookhive/circulation-go/circulationstore"
)

// TracingCollectorSpy is a TracingCollector implementation that captures span
// lifecycles for verification.
type TracingCollectorSpy struct {
	mu            sync.Mutex
	startedSpans  []SpySpanRecord
	finishedSpans []SpySpanRecord
}

// SpySpanRecord represents a recorded span start or finish.
type SpySpanRecord struct {
	Name   string
	Status string
	Attrs  map[string]string
}

// SpySpanContext is the SpanContext handed out by the spy.
type SpySpanContext struct {
	name   string
	status string
	attrs  map[string]string
	mu     sync.Mutex
}

// SetStatus implements the SpanContext interface.
func (s *SpySpanContext) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = status
}

// AddAttribute implements the SpanContext interface.
func (s *SpySpanContext) AddAttribute(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attrs[key] = value
}

// NewTracingCollectorSpy creates a new TracingCollectorSpy instance.
func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

// StartSpan implements the TracingCollector interface.
func (s *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, circulationstore.SpanContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	spanAttrs := make(map[string]string, len(attrs))
	for key, value := range attrs {
		spanAttrs[key] = value
	}

	s.startedSpans = append(s.startedSpans, SpySpanRecord{Name: name, Attrs: spanAttrs})

	return ctx, &SpySpanContext{name: name, attrs: spanAttrs}
}

// FinishSpan implements the TracingCollector interface.
func (s *TracingCollectorSpy) FinishSpan(spanCtx circulationstore.SpanContext, status string, attrs map[string]string) {
	spySpan, ok := spanCtx.(*SpySpanContext)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	finishedAttrs := make(map[string]string, len(spySpan.attrs)+len(attrs))
	for key, value := range spySpan.attrs {
		finishedAttrs[key] = value
	}
	for key, value := range attrs {
		finishedAttrs[key] = value
	}

	s.finishedSpans = append(s.finishedSpans, SpySpanRecord{Name: spySpan.name, Status: status, Attrs: finishedAttrs})
}

// StartedSpanCount reports how many spans were started.
func (s *TracingCollectorSpy) StartedSpanCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.startedSpans)
}

// HasFinishedSpan reports whether a span with the given name was finished with the given status.
func (s *TracingCollectorSpy) HasFinishedSpan(name string, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, span := range s.finishedSpans {
		if span.Name == name && span.Status == status {
			return true
		}
	}

	return false
}

// Reset clears all recorded spans.
func (s *TracingCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.startedSpans = nil
	s.finishedSpans = nil
}

var _ circulationstore.TracingCollector = (*TracingCollectorSpy)(nil)
