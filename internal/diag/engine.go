package diag

import (
	"fmt"
	"iter"

	"m2l/internal/arena"
	"m2l/internal/source"
)

// InitialEngineCapacity is the number of diagnostics a fresh Engine has room for.
const InitialEngineCapacity = 16

// Engine collects the diagnostics of one compilation unit in emission order.
// Nothing is ever deduplicated, sorted or dropped.
type Engine struct {
	items *arena.List[Diagnostic]
}

// NewEngine allocates an empty engine.
func NewEngine() (*Engine, error) {
	items, err := arena.New[Diagnostic](InitialEngineCapacity)
	if err != nil {
		return nil, fmt.Errorf("diagnostic engine: %w", err)
	}
	return &Engine{items: items}, nil
}

// IsValid reports whether the engine can be used.
func (e *Engine) IsValid() bool {
	return e != nil && e.items.IsValid()
}

// Push appends d.
func (e *Engine) Push(d Diagnostic) arena.Result {
	if e == nil {
		return arena.ResultNullPointer
	}
	return e.items.Push(d)
}

// Report builds and appends a diagnostic in one call.
func (e *Engine) Report(issue Issue, span source.Span, reportMsg, help string) arena.Result {
	return e.Push(New(issue, help, At(span, reportMsg)))
}

// Len returns the number of diagnostics.
func (e *Engine) Len() int {
	if e == nil {
		return 0
	}
	return e.items.Len()
}

// At returns the i-th diagnostic.
func (e *Engine) At(i int) (Diagnostic, bool) {
	if e == nil {
		return Diagnostic{}, false
	}
	return e.items.Get(i)
}

// All iterates in emission order.
func (e *Engine) All() iter.Seq2[int, Diagnostic] {
	if e == nil {
		return func(func(int, Diagnostic) bool) {}
	}
	return e.items.All()
}

// Count returns how many diagnostics have the given level.
func (e *Engine) Count(level Level) int {
	n := 0
	for _, d := range e.All() {
		if d.Level == level {
			n++
		}
	}
	return n
}

// HasErrors reports whether any error-level diagnostic was recorded.
func (e *Engine) HasErrors() bool {
	for _, d := range e.All() {
		if d.Level == LevelError {
			return true
		}
	}
	return false
}

// Destroy releases the storage.
func (e *Engine) Destroy() arena.Result {
	if e == nil {
		return arena.ResultNullPointer
	}
	return e.items.Destroy()
}
