package terminal

// ResizeEvent represents a terminal resize
type ResizeEvent struct {
	Width  int
	Height int
}
