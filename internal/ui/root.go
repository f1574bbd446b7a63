package ui

import (
	"image/color"
	"log"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pocket-calc/internal/calc"
	"github.com/ytget/pocket-calc/internal/config"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	calculator   calc.Calculator
	settings     *config.Settings
	localization *Localization

	// display holds the engine's display value; displayText renders it
	display     binding.String
	displayText *canvas.Text

	keys map[string]*widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, calculator calc.Calculator) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		calculator:   calculator,
		settings:     settings,
		localization: localization,
		display:      binding.NewString(),
	}

	log.Printf("RootUI initialized with calculator: %v", ui.calculator != nil)

	// Set up callback for display updates
	ui.calculator.SetUpdateCallback(ui.onDisplayUpdate)

	ui.setupUI()
	ui.applySettings()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	topBar := container.NewHBox(layout.NewSpacer(), settingsBtn)

	ui.displayText = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	ui.displayText.Alignment = fyne.TextAlignTrailing

	displayArea := canvas.NewRectangle(color.Transparent)
	displayArea.SetMinSize(fyne.NewSize(0, DisplayMinHeight))
	displayBox := container.NewStack(
		displayArea,
		container.NewBorder(nil, ui.displayText, nil, nil, layout.NewSpacer()),
	)

	keypad, keys := newKeypad(ui.onKey)
	ui.keys = keys

	ui.display.AddListener(binding.NewDataListener(ui.refreshDisplay))
	ui.display.Set(ui.calculator.Display())

	ui.window.SetContent(container.NewPadded(
		container.NewBorder(container.NewVBox(topBar, displayBox), nil, nil, nil, keypad),
	))
}

// applySettings applies theme and language from settings
func (ui *RootUI) applySettings() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.app.Settings().SetTheme(NewCalculatorTheme(ui.settings.GetThemeVariant()))
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.refreshDisplay()
}

// onKey forwards a keypad label to the calculator
func (ui *RootUI) onKey(label string) {
	if !ui.calculator.HandleInput(label) {
		log.Printf("ignored keypad label %q", label)
	}
}

// onDisplayUpdate receives the display after each calculator action
func (ui *RootUI) onDisplayUpdate(display string) {
	if err := ui.display.Set(display); err != nil {
		log.Printf("failed to update display: %v", err)
	}
}

// refreshDisplay renders the bound display value
func (ui *RootUI) refreshDisplay() {
	if ui.displayText == nil {
		return
	}

	value, err := ui.display.Get()
	if err != nil {
		log.Printf("failed to read display: %v", err)
		return
	}

	text := ui.displayLabel(value)
	ui.displayText.Text = text
	ui.displayText.TextSize = displayTextSize(text)
	ui.displayText.Color = ui.app.Settings().Theme().Color(theme.ColorNameForeground, ui.app.Settings().ThemeVariant())
	ui.displayText.Refresh()
}

// displayLabel returns the text shown for a display value
func (ui *RootUI) displayLabel(value string) string {
	if value == calc.ErrorDisplay {
		return ui.localization.GetText(KeyErrorDisplay)
	}
	return value
}

// onShowSettings opens the settings dialog. It is rebuilt each time so its
// texts follow the current language.
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings).Show()
}

// displayTextSize picks the display font size for the text length
func displayTextSize(text string) float32 {
	n := utf8.RuneCountInString(text)
	switch {
	case n > DisplayMediumMaxLen:
		return DisplayTextSmall
	case n > DisplayLargeMaxLen:
		return DisplayTextMedium
	case n > DisplayHugeMaxLen:
		return DisplayTextLarge
	default:
		return DisplayTextHuge
	}
}
