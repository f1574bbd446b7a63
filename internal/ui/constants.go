package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Window sizing
const (
	WindowWidth  float32 = 360
	WindowHeight float32 = 600
)

// Display font sizes, stepped down as the display grows longer
const (
	DisplayTextHuge   float32 = 60
	DisplayTextLarge  float32 = 36
	DisplayTextMedium float32 = 30
	DisplayTextSmall  float32 = 24

	DisplayHugeMaxLen   = 8
	DisplayLargeMaxLen  = 12
	DisplayMediumMaxLen = 18

	DisplayMinHeight float32 = 112
)

// Keypad sizing
const (
	KeypadColumns = 4
	KeypadRows    = 5

	KeyMinHeight float32 = 64

	// Touch target minimum size (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileKeyMinHeight float32 = 72

	KeyTextSize float32 = 24
)
