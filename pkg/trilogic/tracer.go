package trilogic

import "log/slog"

// Tracer observes propagation and branch events during a solve. It is an
// optional diagnostic stream: implementations carry no semantic weight and
// must not affect the returned results. A Tracer used with SolveParallel
// must be safe for concurrent use.
type Tracer interface {
	// Progress is called when a constraint derives at least one value.
	Progress(c Constraint)
	// Conflict is called when a constraint detects a violation.
	Conflict(c Constraint)
	// Prune is called when an inconsistent candidate is discarded.
	Prune()
	// Guess is called when the search branches on an Unknown slot.
	Guess(index int)
	// Accept is called when a fully determined candidate is recorded.
	Accept(s *Solution)
}

// NopTracer discards all events. It is the default.
type NopTracer struct{}

func (NopTracer) Progress(Constraint) {}
func (NopTracer) Conflict(Constraint) {}
func (NopTracer) Prune()              {}
func (NopTracer) Guess(int)           {}
func (NopTracer) Accept(*Solution)    {}

// SlogTracer emits every search event to a structured logger. slog loggers
// are safe for concurrent use, so a SlogTracer works with SolveParallel.
type SlogTracer struct {
	Logger *slog.Logger
}

// NewSlogTracer creates a tracer backed by logger, or by slog.Default()
// when logger is nil.
func NewSlogTracer(logger *slog.Logger) SlogTracer {
	if logger == nil {
		logger = slog.Default()
	}
	return SlogTracer{Logger: logger}
}

func (t SlogTracer) Progress(c Constraint) {
	t.Logger.Debug("progress", "constraint", c.Name())
}

func (t SlogTracer) Conflict(c Constraint) {
	t.Logger.Debug("conflict", "constraint", c.Name())
}

func (t SlogTracer) Prune() {
	t.Logger.Debug("pruning candidate")
}

func (t SlogTracer) Guess(index int) {
	t.Logger.Debug("guessing", "index", index)
}

func (t SlogTracer) Accept(s *Solution) {
	t.Logger.Info("solution", "table", s.String())
}
