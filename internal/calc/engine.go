package calc

import "github.com/ytget/pocket-calc/internal/model"

// Engine owns the calculator state and applies keypad input to it.
// It is not safe for concurrent use; the UI calls it from its event loop.
type Engine struct {
	state    State
	onUpdate func(display string) // callback for UI updates
}

var _ Calculator = (*Engine)(nil)

// NewEngine creates an engine in the initial state
func NewEngine() *Engine {
	return &Engine{state: NewState()}
}

// SetUpdateCallback sets the function called with the display after every recognized input
func (e *Engine) SetUpdateCallback(callback func(display string)) {
	e.onUpdate = callback
}

// HandleInput classifies a keypad label and applies it.
// It returns false when the label is not a keypad label; the state is unchanged then.
func (e *Engine) HandleInput(label string) bool {
	return e.Apply(model.ParseInput(label))
}

// Apply applies an already classified input
func (e *Engine) Apply(in model.Input) bool {
	if in.Kind == model.InputUnknown {
		return false
	}

	e.state = Update(e.state, in)
	if e.onUpdate != nil {
		e.onUpdate(e.state.Display)
	}
	return true
}

// Display returns the current display text
func (e *Engine) Display() string {
	return e.state.Display
}

// State returns a copy of the current state
func (e *Engine) State() State {
	return e.state
}
