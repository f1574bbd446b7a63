package ui

import "testing"

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyErrorDisplay); got != "Error" {
		t.Errorf("Expected English error text, got %q", got)
	}

	l.SetLanguage("ru")
	if got := l.GetText(KeyErrorDisplay); got != "Ошибка" {
		t.Errorf("Expected Russian error text, got %q", got)
	}

	// Missing Portuguese title falls back to English
	l.SetLanguage("pt")
	if got := l.GetText(KeyAppTitle); got != "Pocket Calc" {
		t.Errorf("Expected English fallback title, got %q", got)
	}

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key itself for unknown key, got %q", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language should keep current, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should resolve to en, got %s", l.GetCurrentLanguage())
	}
}
