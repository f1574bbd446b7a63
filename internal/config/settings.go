package config

import (
	"fyne.io/fyne/v2"
)

// ThemeVariant selects the calculator color scheme
type ThemeVariant string

const (
	ThemeSystem ThemeVariant = "system"
	ThemeDark   ThemeVariant = "dark"
	ThemeLight  ThemeVariant = "light"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage     = "app_language"
	KeyThemeVariant = "theme_variant"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultThemeVariant = ThemeDark
)

// Settings manages application configuration. Only interface preferences are
// stored; calculator state is never persisted.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetThemeVariant returns the configured theme variant, falling back to the
// default for empty or unknown values
func (s *Settings) GetThemeVariant() ThemeVariant {
	variant := ThemeVariant(s.app.Preferences().String(KeyThemeVariant))
	if !variant.IsValid() {
		s.SetThemeVariant(DefaultThemeVariant)
		return DefaultThemeVariant
	}
	return variant
}

// SetThemeVariant sets the theme variant; unknown values store the default
func (s *Settings) SetThemeVariant(variant ThemeVariant) {
	if !variant.IsValid() {
		variant = DefaultThemeVariant
	}
	s.app.Preferences().SetString(KeyThemeVariant, string(variant))
}

// IsValid reports whether v is one of the known theme variants
func (v ThemeVariant) IsValid() bool {
	switch v {
	case ThemeSystem, ThemeDark, ThemeLight:
		return true
	default:
		return false
	}
}

// GetThemeOptions returns available theme variants
func (s *Settings) GetThemeOptions() []ThemeVariant {
	return []ThemeVariant{ThemeSystem, ThemeDark, ThemeLight}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
