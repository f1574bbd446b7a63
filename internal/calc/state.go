package calc

import (
	"strings"

	"github.com/ytget/pocket-calc/internal/model"
)

// ErrorDisplay is shown instead of a result when a division by zero is attempted
const ErrorDisplay = "Error"

// InitialDisplay is the display value of a fresh calculator
const InitialDisplay = "0"

// State holds everything the calculator remembers between key presses.
// HasFirstOperand and Operator are independent of AwaitingSecondOperand; the
// latter only decides whether the next digit replaces the display.
type State struct {
	Display               string
	FirstOperand          float64
	HasFirstOperand       bool
	Operator              model.Operator
	AwaitingSecondOperand bool
}

// NewState returns the initial calculator state
func NewState() State {
	return State{Display: InitialDisplay}
}

// IsError returns true while the display shows the division error
func (s State) IsError() bool {
	return s.Display == ErrorDisplay
}

// Update returns the state that results from applying in to s.
// Unknown inputs leave the state unchanged.
func Update(s State, in model.Input) State {
	switch in.Kind {
	case model.InputDigit:
		return s.inputDigit(in.Digit)
	case model.InputDecimal:
		return s.inputDecimal()
	case model.InputOperator:
		return s.inputOperator(in.Operator)
	case model.InputEquals:
		return s.equals()
	case model.InputClear:
		return NewState()
	case model.InputPercent:
		return s.transform(func(v float64) float64 { return v / 100 })
	case model.InputToggleSign:
		return s.transform(func(v float64) float64 { return v * -1 })
	default:
		return s
	}
}

func (s State) inputDigit(d byte) State {
	if s.IsError() {
		s = NewState()
	}

	digit := string(d)
	if s.AwaitingSecondOperand {
		s.Display = digit
		s.AwaitingSecondOperand = false
		return s
	}

	if s.Display == InitialDisplay {
		s.Display = digit
	} else {
		s.Display += digit
	}
	return s
}

func (s State) inputDecimal() State {
	if s.IsError() {
		s = NewState()
	}

	switch {
	case s.AwaitingSecondOperand:
		s.Display = "0."
		s.AwaitingSecondOperand = false
	case !strings.Contains(s.Display, "."):
		s.Display += "."
	}
	return s
}

func (s State) inputOperator(next model.Operator) State {
	if s.IsError() {
		return s
	}

	// Operator pressed again before a digit: the last one wins
	if s.Operator.IsValid() && s.AwaitingSecondOperand {
		s.Operator = next
		return s
	}

	if !s.HasFirstOperand {
		s.FirstOperand = ParseDisplay(s.Display)
		s.HasFirstOperand = true
	} else if s.Operator.IsValid() {
		result, err := s.calculate()
		if err != nil {
			return errorState()
		}
		s.Display = result
		s.FirstOperand = ParseDisplay(result)
	}

	s.AwaitingSecondOperand = true
	s.Operator = next
	return s
}

func (s State) equals() State {
	if s.IsError() || !s.Operator.IsValid() || !s.HasFirstOperand {
		return s
	}

	result, err := s.calculate()
	if err != nil {
		return errorState()
	}

	next := NewState()
	next.Display = result
	return next
}

// transform replaces the display with f applied to its value, leaving the
// pending operation untouched
func (s State) transform(f func(float64) float64) State {
	if s.IsError() {
		return s
	}
	s.Display = FormatNumber(f(ParseDisplay(s.Display)))
	return s
}

// calculate applies the pending operator to the first operand and the
// displayed value. Without a pending operation the display is returned as is.
func (s State) calculate() (string, error) {
	if !s.Operator.IsValid() || !s.HasFirstOperand {
		return s.Display, nil
	}

	result, err := s.Operator.Apply(s.FirstOperand, ParseDisplay(s.Display))
	if err != nil {
		return ErrorDisplay, err
	}
	return FormatNumber(result), nil
}

// errorState shows the division error and discards the pending chain, so no
// NaN operand is carried into later calculations.
func errorState() State {
	s := NewState()
	s.Display = ErrorDisplay
	return s
}
