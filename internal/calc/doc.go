package calc

// Package calc implements the calculator engine: a small state record that is
// advanced by a pure Update function for every classified keypad input, plus
// the display formatting rules. Engine wraps the state for the UI and notifies
// a callback after each recognized action.
