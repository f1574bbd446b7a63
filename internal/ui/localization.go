package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyInterfaceSettings = "interface_settings"
	KeyLanguage          = "language"
	KeySelectLanguage    = "select_language"
	KeyTheme             = "theme"
	KeySelectTheme       = "select_theme"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyErrorDisplay      = "error_display"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Pocket Calc",
		KeySettings:          "Settings",
		KeyInterfaceSettings: "Interface Settings",
		KeyLanguage:          "Language",
		KeySelectLanguage:    "Select language",
		KeyTheme:             "Theme",
		KeySelectTheme:       "Select theme",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyErrorDisplay:      "Error",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Калькулятор",
		KeySettings:          "Настройки",
		KeyInterfaceSettings: "Настройки интерфейса",
		KeyLanguage:          "Язык",
		KeySelectLanguage:    "Выберите язык",
		KeyTheme:             "Тема",
		KeySelectTheme:       "Выберите тему",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyErrorDisplay:      "Ошибка",
	}

	// Portuguese has no translation for the app title; English is used
	l.texts["pt"] = map[string]string{
		KeySettings:          "Configurações",
		KeyInterfaceSettings: "Configurações de Interface",
		KeyLanguage:          "Idioma",
		KeySelectLanguage:    "Selecione o idioma",
		KeyTheme:             "Tema",
		KeySelectTheme:       "Selecione o tema",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyErrorDisplay:      "Erro",
	}
}
