package calc

// Calculator defines the interface the presentation layer drives.
type Calculator interface {
	SetUpdateCallback(func(display string))
	HandleInput(label string) bool
	Display() string
}
