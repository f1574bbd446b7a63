package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/pocket-calc/internal/calc"
	"github.com/ytget/pocket-calc/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.pocket-calc"
	AppName = "Pocket Calc"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Calculator state lives only as long as the window
	engine := calc.NewEngine()

	// Create and setup UI; it applies the saved theme and language
	ui.NewRootUI(myWindow, myApp, engine)

	// Show and run
	myWindow.ShowAndRun()
}
