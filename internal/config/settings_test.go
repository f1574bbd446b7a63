package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}
}

func TestThemeVariant(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	variant := settings.GetThemeVariant()
	if variant != DefaultThemeVariant {
		t.Errorf("Expected default theme %s, got %s", DefaultThemeVariant, variant)
	}

	// Test setting custom value
	settings.SetThemeVariant(ThemeLight)
	if got := settings.GetThemeVariant(); got != ThemeLight {
		t.Errorf("Expected theme %s, got %s", ThemeLight, got)
	}

	// Unknown value falls back to default
	settings.SetThemeVariant(ThemeVariant("neon"))
	if got := settings.GetThemeVariant(); got != DefaultThemeVariant {
		t.Errorf("Unknown theme should default to %s, got %s", DefaultThemeVariant, got)
	}

	// Corrupted preference falls back to default
	app.Preferences().SetString(KeyThemeVariant, "sepia")
	if got := settings.GetThemeVariant(); got != DefaultThemeVariant {
		t.Errorf("Corrupted theme should default to %s, got %s", DefaultThemeVariant, got)
	}
}

func TestGetThemeOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetThemeOptions()
	expectedOptions := []ThemeVariant{ThemeSystem, ThemeDark, ThemeLight}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d theme options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Theme option %d: expected %s, got %s", i, expected, options[i])
		}
		if !options[i].IsValid() {
			t.Errorf("Theme option %s should be valid", options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
