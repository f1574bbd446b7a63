package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/theme"

	"github.com/ytget/pocket-calc/internal/config"
)

func TestCalculatorTheme_ForcedVariant(t *testing.T) {
	light := NewCalculatorTheme(config.ThemeLight)
	dark := NewCalculatorTheme(config.ThemeDark)

	if got := light.Color(theme.ColorNameBackground, theme.VariantDark); got != (color.RGBA{R: 250, G: 250, B: 250, A: 255}) {
		t.Errorf("Light theme should ignore system dark variant, got %v", got)
	}
	if got := dark.Color(theme.ColorNameBackground, theme.VariantLight); got != color.Black {
		t.Errorf("Dark theme should ignore system light variant, got %v", got)
	}
}

func TestCalculatorTheme_SystemVariant(t *testing.T) {
	th := NewCalculatorTheme(config.ThemeSystem)

	if got := th.Color(theme.ColorNameBackground, theme.VariantDark); got != color.Black {
		t.Errorf("System theme should follow dark variant, got %v", got)
	}
	if got := th.Color(theme.ColorNamePrimary, theme.VariantLight); got != (color.RGBA{R: 249, G: 115, B: 22, A: 255}) {
		t.Errorf("Expected orange primary, got %v", got)
	}
	if got := th.Size(theme.SizeNameText); got != KeyTextSize {
		t.Errorf("Expected key text size %v, got %v", KeyTextSize, got)
	}
}
