package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pocket-calc/internal/model"
)

// KeyRole groups keys that share a look on the keypad
type KeyRole int

const (
	KeyRoleNumber KeyRole = iota
	KeyRoleOperator
	KeyRoleFunction
)

// String returns the role name
func (r KeyRole) String() string {
	switch r {
	case KeyRoleNumber:
		return "number"
	case KeyRoleOperator:
		return "operator"
	case KeyRoleFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Importance maps the role to a button importance; the theme colors them
func (r KeyRole) Importance() widget.Importance {
	switch r {
	case KeyRoleOperator:
		return widget.HighImportance
	case KeyRoleFunction:
		return widget.WarningImportance
	default:
		return widget.MediumImportance
	}
}

// roleForLabel returns the visual role of a keypad label
func roleForLabel(label string) KeyRole {
	switch model.ParseInput(label).Kind {
	case model.InputOperator, model.InputEquals:
		return KeyRoleOperator
	case model.InputClear, model.InputPercent, model.InputToggleSign:
		return KeyRoleFunction
	default:
		return KeyRoleNumber
	}
}

// keypadRows splits the keypad labels into rows of KeypadColumns. The last row
// holds the remainder; its first key ("0") is stretched over the free columns.
func keypadRows() [][]string {
	labels := model.Labels()

	var rows [][]string
	for len(labels) > KeypadColumns {
		rows = append(rows, labels[:KeypadColumns])
		labels = labels[KeypadColumns:]
	}
	return append(rows, labels)
}

// keyMinHeight returns the minimum key height for the current device
func keyMinHeight() float32 {
	if fyne.CurrentDevice().IsMobile() {
		return MobileKeyMinHeight
	}
	return KeyMinHeight
}

// newKeypad builds the key grid. Every key forwards its own label to onKey.
func newKeypad(onKey func(label string)) (*fyne.Container, map[string]*widget.Button) {
	keys := make(map[string]*widget.Button)
	newKey := func(label string) fyne.CanvasObject {
		btn := widget.NewButton(label, func() { onKey(label) })
		btn.Importance = roleForLabel(label).Importance()
		keys[label] = btn

		// Invisible strut keeps keys tall enough to hit
		strut := canvas.NewRectangle(color.Transparent)
		strut.SetMinSize(fyne.NewSize(MinTouchTargetSize, keyMinHeight()))
		return container.NewStack(strut, btn)
	}

	rows := keypadRows()
	rowObjects := make([]fyne.CanvasObject, 0, len(rows))
	for _, row := range rows[:len(rows)-1] {
		cells := make([]fyne.CanvasObject, 0, len(row))
		for _, label := range row {
			cells = append(cells, newKey(label))
		}
		rowObjects = append(rowObjects, container.NewGridWithColumns(KeypadColumns, cells...))
	}

	last := rows[len(rows)-1]
	rest := make([]fyne.CanvasObject, 0, len(last)-1)
	for _, label := range last[1:] {
		rest = append(rest, newKey(label))
	}
	rowObjects = append(rowObjects, container.NewGridWithColumns(2,
		newKey(last[0]),
		container.NewGridWithColumns(len(rest), rest...),
	))

	return container.NewGridWithRows(len(rowObjects), rowObjects...), keys
}
