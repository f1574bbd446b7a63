package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/pocket-calc/internal/config"
)

// CalculatorTheme defines the black, slate and orange calculator palette.
// A dark or light variant from settings overrides the system variant.
type CalculatorTheme struct {
	variant config.ThemeVariant
}

// NewCalculatorTheme creates a theme for the configured variant
func NewCalculatorTheme(variant config.ThemeVariant) fyne.Theme {
	return &CalculatorTheme{variant: variant}
}

// effectiveVariant resolves the variant the colors are picked for
func (t *CalculatorTheme) effectiveVariant(variant fyne.ThemeVariant) fyne.ThemeVariant {
	switch t.variant {
	case config.ThemeDark:
		return theme.VariantDark
	case config.ThemeLight:
		return theme.VariantLight
	default:
		return variant
	}
}

// Color returns theme colors
func (t *CalculatorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	variant = t.effectiveVariant(variant)
	dark := variant == theme.VariantDark

	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 249, G: 115, B: 22, A: 255} // Orange for operator keys
	case theme.ColorNameForegroundOnPrimary:
		return color.White
	case theme.ColorNameWarning:
		// Function keys (AC, +/-, %) use warning importance
		if dark {
			return color.RGBA{R: 100, G: 116, B: 139, A: 255} // Slate 500
		}
		return color.RGBA{R: 148, G: 163, B: 184, A: 255} // Slate 400
	case theme.ColorNameForegroundOnWarning:
		return color.Black
	case theme.ColorNameButton:
		if dark {
			return color.RGBA{R: 51, G: 65, B: 85, A: 255} // Slate 700
		}
		return color.RGBA{R: 226, G: 232, B: 240, A: 255} // Slate 200
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for errors
	case theme.ColorNameBackground:
		if dark {
			return color.Black
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	case theme.ColorNameForeground:
		if dark {
			return color.White
		}
		return color.RGBA{R: 15, G: 23, B: 42, A: 255} // Slate 900
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CalculatorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CalculatorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; key labels are enlarged
func (t *CalculatorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return KeyTextSize
	case theme.SizeNameInputRadius:
		return 12
	case theme.SizeNamePadding:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}
