package main

var redraw = true

// SetRedraw asks for the screen to be drawn again on the next frame.
func SetRedraw() {
	redraw = true
}

func ShouldRedraw() bool {
	return redraw || AlwaysDraw
}

func ClearRedraw() {
	redraw = false
}
