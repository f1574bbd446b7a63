package model

// InputKind classifies a keypad label
type InputKind int

const (
	InputUnknown InputKind = iota
	InputDigit
	InputDecimal
	InputOperator
	InputEquals
	InputClear
	InputPercent
	InputToggleSign
)

// Non-operator keypad labels
const (
	LabelDecimal    = "."
	LabelEquals     = "="
	LabelClear      = "AC"
	LabelPercent    = "%"
	LabelToggleSign = "+/-"
)

// String returns the string representation of InputKind
func (k InputKind) String() string {
	switch k {
	case InputDigit:
		return "digit"
	case InputDecimal:
		return "decimal"
	case InputOperator:
		return "operator"
	case InputEquals:
		return "equals"
	case InputClear:
		return "clear"
	case InputPercent:
		return "percent"
	case InputToggleSign:
		return "toggle-sign"
	default:
		return "unknown"
	}
}

// Input is a classified keypad action.
// Digit is set only for InputDigit, Operator only for InputOperator.
type Input struct {
	Kind     InputKind
	Digit    byte
	Operator Operator
}

// ParseInput classifies a raw keypad label. Labels outside the keypad set
// produce an Input of kind InputUnknown.
func ParseInput(label string) Input {
	if len(label) == 1 && label[0] >= '0' && label[0] <= '9' {
		return Input{Kind: InputDigit, Digit: label[0]}
	}
	if op, ok := ParseOperator(label); ok {
		return Input{Kind: InputOperator, Operator: op}
	}

	switch label {
	case LabelDecimal:
		return Input{Kind: InputDecimal}
	case LabelEquals:
		return Input{Kind: InputEquals}
	case LabelClear:
		return Input{Kind: InputClear}
	case LabelPercent:
		return Input{Kind: InputPercent}
	case LabelToggleSign:
		return Input{Kind: InputToggleSign}
	default:
		return Input{Kind: InputUnknown}
	}
}

// Label returns the keypad label that produces this input, or "" for unknown input
func (in Input) Label() string {
	switch in.Kind {
	case InputDigit:
		return string(in.Digit)
	case InputDecimal:
		return LabelDecimal
	case InputOperator:
		return in.Operator.Symbol()
	case InputEquals:
		return LabelEquals
	case InputClear:
		return LabelClear
	case InputPercent:
		return LabelPercent
	case InputToggleSign:
		return LabelToggleSign
	default:
		return ""
	}
}

// Keypad returns every keypad input in keypad order, row by row
func Keypad() []Input {
	digit := func(d byte) Input { return Input{Kind: InputDigit, Digit: d} }
	operator := func(op Operator) Input { return Input{Kind: InputOperator, Operator: op} }

	return []Input{
		{Kind: InputClear}, {Kind: InputToggleSign}, {Kind: InputPercent}, operator(OperatorDivide),
		digit('7'), digit('8'), digit('9'), operator(OperatorMultiply),
		digit('4'), digit('5'), digit('6'), operator(OperatorSubtract),
		digit('1'), digit('2'), digit('3'), operator(OperatorAdd),
		digit('0'), {Kind: InputDecimal}, {Kind: InputEquals},
	}
}

// Labels returns the labels of the keypad inputs in keypad order
func Labels() []string {
	keypad := Keypad()
	labels := make([]string, 0, len(keypad))
	for _, in := range keypad {
		labels = append(labels, in.Label())
	}
	return labels
}
