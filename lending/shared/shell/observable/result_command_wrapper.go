package observable

import (
	"context"
	"time"

	"github.com/bookhive/circulation-go/lending/shared/shell"
)

// ResultCommandWrapper instruments command handlers that return a state
// snapshot in addition to the handler result. It shares the recording logic
// with CommandWrapper through an embedded instance; only the Handle signature
// differs.
type ResultCommandWrapper[C shell.Command, R any] struct {
	coreHandler shell.CoreCommandHandlerWithResult[C, R]
	inner       *CommandWrapper[C]
}

// NewResultCommandWrapper creates a new observable wrapper around a core command
// handler with a result snapshot.
func NewResultCommandWrapper[C shell.Command, R any](
	coreHandler shell.CoreCommandHandlerWithResult[C, R],
	opts ...CommandOption[C],
) (*ResultCommandWrapper[C, R], error) {
	var zeroCommand C

	inner := &CommandWrapper[C]{
		commandType: zeroCommand.CommandType(),
	}

	for _, opt := range opts {
		if err := opt(inner); err != nil {
			return nil, err
		}
	}

	return &ResultCommandWrapper[C, R]{
		coreHandler: coreHandler,
		inner:       inner,
	}, nil
}

// Handle executes the command with full observability and passes the snapshot through.
func (w *ResultCommandWrapper[C, R]) Handle(ctx context.Context, command C) (R, shell.HandlerResult, error) {
	commandStart := time.Now()
	ctx, span := shell.StartCommandSpan(ctx, w.inner.tracingCollector, w.inner.commandType)
	shell.LogCommandStart(ctx, w.inner.logger, w.inner.contextualLogger, w.inner.commandType)

	snapshot, result, err := w.coreHandler.Handle(ctx, command)

	w.inner.recordRetryMetrics(ctx, result)

	if err != nil {
		w.inner.recordCommandError(ctx, err, time.Since(commandStart), span)
		return snapshot, result, err
	}

	if result.Idempotent {
		w.inner.recordCommandSuccess(ctx, shell.StatusIdempotent, time.Since(commandStart), span)
	} else {
		w.inner.recordCommandSuccess(ctx, shell.StatusSuccess, time.Since(commandStart), span)
	}

	return snapshot, result, nil
}
