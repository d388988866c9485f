// Package lifecycle is the single entry point for container lifecycle
// operations. It turns untyped form fields into commands, runs the matching
// handler and reports the outcome as a Result; errors never escape it.
package lifecycle

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// Request carries an operation selector and its raw form fields.
type Request struct {
	Operation string
	Fields    map[string]string
}

// Result reports the outcome of one Execute call.
type Result struct {
	Success bool
	Error   string
	Kind    errs.Kind
}

// MetricsRecorder observes executed operations.
type MetricsRecorder interface {
	Observe(ctx context.Context, operation string, outcome string, duration time.Duration)
}

// Handlers bundles the command handlers the engine dispatches to.
type Handlers struct {
	Receive  commands.ReceiveContainerCommandHandler
	Inspect  commands.InspectContainerCommandHandler
	Putaway  commands.PutawayContainerCommandHandler
	Pick     commands.PickContainerCommandHandler
	Assemble commands.AssembleProductCommandHandler
	Return   commands.ReturnContainerCommandHandler
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The engine adds its own component attribute.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetricsRecorder sets the metrics sink.
func WithMetricsRecorder(metrics MetricsRecorder) Option {
	return func(e *Engine) {
		if metrics != nil {
			e.metrics = metrics
		}
	}
}

// Engine executes lifecycle operations.
type Engine struct {
	handlers Handlers
	logger   *slog.Logger
	metrics  MetricsRecorder
}

func NewEngine(handlers Handlers, opts ...Option) *Engine {
	e := &Engine{
		handlers: handlers,
		logger:   slog.New(slog.DiscardHandler),
		metrics:  noopMetrics{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "lifecycle")
	return e
}

// Execute runs one operation as a single business transaction.
//
// Example:
//
//	res := engine.Execute(ctx, lifecycle.Request{
//	    Operation: "receive",
//	    Fields: map[string]string{
//	        lifecycle.FieldContainerCode: "C-1001",
//	        lifecycle.FieldSKU:           "SKU-9",
//	        lifecycle.FieldQuantity:      "10",
//	    },
//	})
//	if !res.Success {
//	    log.Printf("%s: %s", res.Kind, res.Error)
//	}
func (e *Engine) Execute(ctx context.Context, req Request) Result {
	started := time.Now()

	op, err := ParseOperation(req.Operation)
	if err == nil {
		err = e.dispatch(ctx, op, fields(req.Fields))
	}

	label := string(op)
	if label == "" {
		label = "unknown"
	}

	kind := errs.KindOf(err)
	outcome := "success"
	if err != nil {
		outcome = kind.String()
	}
	e.metrics.Observe(ctx, label, outcome, time.Since(started))

	if err == nil {
		e.logger.InfoContext(ctx, "operation applied", "operation", label)
		return Result{Success: true, Kind: errs.KindNone}
	}

	level := slog.LevelWarn
	if kind == errs.KindBackend || kind == errs.KindPartialApplication {
		level = slog.LevelError
	}
	e.logger.Log(ctx, level, "operation rejected",
		"operation", label,
		"kind", kind.String(),
		"error", err,
	)

	return Result{Success: false, Error: err.Error(), Kind: kind}
}

func (e *Engine) dispatch(ctx context.Context, op Operation, f fields) error {
	switch op {
	case OperationReceive:
		qty, qtyErr := kernel.ParseQuantity(FieldQuantity, f.get(FieldQuantity))
		cmd, err := commands.NewReceiveContainerCommand(f.get(FieldContainerCode), f.get(FieldSKU), qty)
		if err = errors.Join(err, qtyErr); err != nil {
			return err
		}
		return e.handlers.Receive.Handle(ctx, cmd)

	case OperationInspect:
		cmd, err := commands.NewInspectContainerCommand(f.get(FieldContainerCode), f.get(FieldDecision))
		if err != nil {
			return err
		}
		return e.handlers.Inspect.Handle(ctx, cmd)

	case OperationPutaway:
		cmd, err := commands.NewPutawayContainerCommand(f.get(FieldContainerCode), f.get(FieldLocationCode))
		if err != nil {
			return err
		}
		return e.handlers.Putaway.Handle(ctx, cmd)

	case OperationPick:
		cmd, err := commands.NewPickContainerCommand(f.get(FieldContainerCode))
		if err != nil {
			return err
		}
		return e.handlers.Pick.Handle(ctx, cmd)

	case OperationAssemble:
		qty, qtyErr := kernel.ParseQuantity(FieldProductQty, f.get(FieldProductQty))
		cmd, err := commands.NewAssembleProductCommand(
			f.get(FieldMaterialContainer),
			f.get(FieldProductContainer),
			f.get(FieldProductSKU),
			qty,
		)
		if err = errors.Join(err, qtyErr); err != nil {
			return err
		}
		return e.handlers.Assemble.Handle(ctx, cmd)

	case OperationReturn:
		cmd, err := commands.NewReturnContainerCommand(f.get(FieldContainerCode))
		if err != nil {
			return err
		}
		return e.handlers.Return.Handle(ctx, cmd)

	default:
		return errs.NewValueIsInvalidError("operation")
	}
}

type fields map[string]string

func (f fields) get(name string) string {
	return f[name]
}

type noopMetrics struct{}

func (noopMetrics) Observe(context.Context, string, string, time.Duration) {}
