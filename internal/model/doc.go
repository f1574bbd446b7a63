package model

// Package model defines the calculator's domain vocabulary: keypad inputs
// classified into explicit kinds and the binary operators they select. Labels
// are parsed once at the boundary so the engine never branches on raw strings.
