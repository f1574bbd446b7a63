package ui

// Package ui contains the Fyne-based desktop user interface for the calculator.
// It renders the display and keypad, forwards every key label to the engine,
// and applies the theme and language chosen in the settings dialog.
