package observable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookhive/circulation-go/lending/shared/shell"
	"github.com/bookhive/circulation-go/lending/shared/shell/observable"
	"github.com/bookhive/circulation-go/testutil/observability/testdoubles"
)

type mockQuery struct{}

func (q mockQuery) QueryType() string {
	return "TestQuery"
}

type mockQueryHandler struct {
	result string
	err    error
}

func (h *mockQueryHandler) Handle(_ context.Context, _ mockQuery) (string, error) {
	return h.result, h.err
}

func Test_QueryWrapper_Handle_RecordsSuccessInstrumentation(t *testing.T) {
	// arrange
	handler := &mockQueryHandler{result: "projected state"}
	metricsCollector := testdoubles.NewMetricsCollectorSpy()
	tracingCollector := testdoubles.NewTracingCollectorSpy()
	contextualLogger := testdoubles.NewContextualLoggerSpy()

	wrapper, err := observable.NewQueryWrapper[mockQuery, string](
		handler,
		observable.WithQueryMetrics[mockQuery, string](metricsCollector),
		observable.WithQueryTracing[mockQuery, string](tracingCollector),
		observable.WithQueryContextualLogging[mockQuery, string](contextualLogger),
	)
	assert.NoError(t, err, "Should create wrapper")

	// act
	result, err := wrapper.Handle(context.Background(), mockQuery{})

	// assert
	assert.NoError(t, err, "Should handle query successfully")
	assert.Equal(t, "projected state", result, "Should return the handler result unchanged")

	assert.True(t, metricsCollector.HasCounterRecord(shell.QueryHandlerCallsMetric, map[string]string{
		shell.LogAttrQueryType: "TestQuery",
		shell.LogAttrStatus:    shell.StatusSuccess,
	}), "Should record the success call metric")
	assert.True(t, tracingCollector.HasFinishedSpan(shell.SpanNameQueryHandle, shell.StatusSuccess),
		"Should finish the span with success status")
	assert.True(t, contextualLogger.HasInfoLog(shell.LogMsgQueryCompleted), "Should log query completion")
}

func Test_QueryWrapper_Handle_RecordsError(t *testing.T) {
	// arrange
	queryErr := errors.New("projection failed")
	handler := &mockQueryHandler{err: queryErr}
	metricsCollector := testdoubles.NewMetricsCollectorSpy()
	contextualLogger := testdoubles.NewContextualLoggerSpy()

	wrapper, err := observable.NewQueryWrapper[mockQuery, string](
		handler,
		observable.WithQueryMetrics[mockQuery, string](metricsCollector),
		observable.WithQueryContextualLogging[mockQuery, string](contextualLogger),
	)
	assert.NoError(t, err, "Should create wrapper")

	// act
	_, err = wrapper.Handle(context.Background(), mockQuery{})

	// assert
	assert.ErrorIs(t, err, queryErr, "The handler error should surface")

	assert.True(t, metricsCollector.HasCounterRecord(shell.QueryHandlerCallsMetric, map[string]string{
		shell.LogAttrQueryType: "TestQuery",
		shell.LogAttrStatus:    shell.StatusError,
	}), "Should record the error call metric")
	assert.True(t, contextualLogger.HasErrorLog(shell.LogMsgQueryFailed), "Should log the failure")
}
