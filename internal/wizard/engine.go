// Package wizard sequences linear multi-step flows. The engine holds no
// current-step state of its own: the active step key lives in the navigation
// layer (a query parameter), which keeps every step bookmarkable and a reload
// free of hidden state.
package wizard

// Step describes one entry of a wizard's fixed step sequence.
type Step struct {
	Key          string
	Label        string
	DisplayOrder int
}

// Engine maps raw step keys onto a fixed ordered step list and a progress
// table. Progress is a per-step lookup, not index/total: steps may carry
// non-uniform weights (the last editing step can report 90% to reserve the
// final stretch for a closing step).
type Engine struct {
	steps    []Step
	progress map[string]int
}

// New creates an engine over an ordered step list. progress may be nil.
func New(steps []Step, progress map[string]int) *Engine {
	return &Engine{steps: steps, progress: progress}
}

// Steps returns the fixed step sequence.
func (e *Engine) Steps() []Step {
	return e.steps
}

// Current resolves a raw step key to a step. Unknown or empty keys fall open
// to the first step, never to an error state.
func (e *Engine) Current(rawKey string) Step {
	if i := e.Index(rawKey); i >= 0 {
		return e.steps[i]
	}
	return e.steps[0]
}

// Next returns the step after key, saturating at the last step.
func (e *Engine) Next(key string) Step {
	i := e.Index(key)
	if i < 0 {
		return e.steps[0]
	}
	if i+1 < len(e.steps) {
		return e.steps[i+1]
	}
	return e.steps[i]
}

// Back returns the step before key, saturating at the first step.
func (e *Engine) Back(key string) Step {
	i := e.Index(key)
	if i <= 0 {
		return e.steps[0]
	}
	return e.steps[i-1]
}

// Index returns the position of key in the sequence, -1 when unknown.
func (e *Engine) Index(key string) int {
	for i, s := range e.steps {
		if s.Key == key {
			return i
		}
	}
	return -1
}

// Progress returns the progress percentage for key, 0 when the table has no
// entry.
func (e *Engine) Progress(key string) int {
	return e.progress[key]
}

// IsPast reports whether candidate sits before current in the sequence,
// which steppers use to style completed steps.
func (e *Engine) IsPast(candidate, current string) bool {
	ci := e.Index(candidate)
	cu := e.Index(current)
	return ci >= 0 && cu >= 0 && ci < cu
}
