package model

import "errors"

// ErrDivisionByZero is returned by Operator.Apply for a zero divisor
var ErrDivisionByZero = errors.New("division by zero")

// Operator represents a binary arithmetic operator selected on the keypad
type Operator int

const (
	// OperatorNone means no operation is pending
	OperatorNone Operator = iota
	OperatorAdd
	OperatorSubtract
	OperatorMultiply
	OperatorDivide
)

// Keypad labels for operators
const (
	SymbolAdd      = "+"
	SymbolSubtract = "-"
	SymbolMultiply = "×"
	SymbolDivide   = "÷"
)

// Symbol returns the keypad label of the operator, or "" for OperatorNone
func (op Operator) Symbol() string {
	switch op {
	case OperatorAdd:
		return SymbolAdd
	case OperatorSubtract:
		return SymbolSubtract
	case OperatorMultiply:
		return SymbolMultiply
	case OperatorDivide:
		return SymbolDivide
	default:
		return ""
	}
}

// String returns a readable name for logs
func (op Operator) String() string {
	switch op {
	case OperatorNone:
		return "none"
	case OperatorAdd:
		return "add"
	case OperatorSubtract:
		return "subtract"
	case OperatorMultiply:
		return "multiply"
	case OperatorDivide:
		return "divide"
	default:
		return "unknown"
	}
}

// IsValid returns true for the four arithmetic operators
func (op Operator) IsValid() bool {
	return op >= OperatorAdd && op <= OperatorDivide
}

// ParseOperator maps a keypad label to its operator
func ParseOperator(label string) (Operator, bool) {
	switch label {
	case SymbolAdd:
		return OperatorAdd, true
	case SymbolSubtract:
		return OperatorSubtract, true
	case SymbolMultiply:
		return OperatorMultiply, true
	case SymbolDivide:
		return OperatorDivide, true
	default:
		return OperatorNone, false
	}
}

// Apply computes a op b. Only an exact zero divisor is an error; any other
// float64 result (including infinities from overflow) is returned as is.
func (op Operator) Apply(a, b float64) (float64, error) {
	switch op {
	case OperatorAdd:
		return a + b, nil
	case OperatorSubtract:
		return a - b, nil
	case OperatorMultiply:
		return a * b, nil
	case OperatorDivide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, errors.New("no operator selected")
	}
}
