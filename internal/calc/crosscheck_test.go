package calc

import (
	"fmt"
	"testing"

	"github.com/Knetic/govaluate"
)

// TestEngine_MatchesExpressionEvaluator checks single binary operations typed
// on the keypad against the same expression evaluated by govaluate.
func TestEngine_MatchesExpressionEvaluator(t *testing.T) {
	operands := []string{"0", "3", "7", "12.5", "0.1", "1000000", "0.07"}
	operators := []struct {
		key  string
		expr string
	}{
		{"+", "+"},
		{"-", "-"},
		{"×", "*"},
		{"÷", "/"},
	}

	for _, a := range operands {
		for _, b := range operands {
			for _, op := range operators {
				if op.key == "÷" && ParseDisplay(b) == 0 {
					continue
				}

				expression := fmt.Sprintf("%s %s %s", a, op.expr, b)
				t.Run(expression, func(t *testing.T) {
					expr, err := govaluate.NewEvaluableExpression(expression)
					if err != nil {
						t.Fatalf("failed to parse %q: %v", expression, err)
					}
					result, err := expr.Evaluate(nil)
					if err != nil {
						t.Fatalf("failed to evaluate %q: %v", expression, err)
					}
					value, ok := result.(float64)
					if !ok {
						t.Fatalf("unexpected result type %T", result)
					}

					labels := append(keys(a), op.key)
					labels = append(labels, keys(b)...)
					labels = append(labels, "=")

					e := press(t, labels...)
					if got, expected := e.Display(), FormatNumber(value); got != expected {
						t.Errorf("%s: display = %q, expected %q", expression, got, expected)
					}
				})
			}
		}
	}
}

// keys splits a number into the keypad labels that type it
func keys(number string) []string {
	labels := make([]string, 0, len(number))
	for _, r := range number {
		labels = append(labels, string(r))
	}
	return labels
}
