package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"

	"jigsaw/puzzle"
)

var TheInputManager struct {
	// below fields are updated by TheInputManager
	// only public for convinience
	// don't write in to it

	TouchingMap     map[eb.TouchID]bool
	JustTouchedMap  map[eb.TouchID]bool
	JustReleasedMap map[eb.TouchID]bool

	TouchingBuf     []eb.TouchID
	JustTouchedBuf  []eb.TouchID
	JustReleasedBuf []eb.TouchID
}

func UpdateInput() {
	im := &TheInputManager

	// =============================
	// update touch buffers
	// =============================
	im.TouchingBuf = eb.AppendTouchIDs(im.TouchingBuf[:0])
	im.JustTouchedBuf = ebi.AppendJustPressedTouchIDs(im.JustTouchedBuf[:0])
	im.JustReleasedBuf = ebi.AppendJustReleasedTouchIDs(im.JustReleasedBuf[:0])

	// =============================
	// update touch maps
	// =============================
	im.TouchingMap = nil
	im.JustTouchedMap = nil
	im.JustReleasedMap = nil

	if len(im.TouchingBuf) > 0 {
		im.TouchingMap = make(map[eb.TouchID]bool)
		for _, id := range im.TouchingBuf {
			im.TouchingMap[id] = true
		}
	}
	if len(im.JustTouchedBuf) > 0 {
		im.JustTouchedMap = make(map[eb.TouchID]bool)
		for _, id := range im.JustTouchedBuf {
			im.JustTouchedMap[id] = true
		}
	}
	if len(im.JustReleasedBuf) > 0 {
		im.JustReleasedMap = make(map[eb.TouchID]bool)
		for _, id := range im.JustReleasedBuf {
			im.JustReleasedMap[id] = true
		}
	}
}

func IsMouseButtonPressed(button eb.MouseButton) bool {
	return eb.IsMouseButtonPressed(button)
}

func IsMouseButtonJustPressed(button eb.MouseButton) bool {
	return ebi.IsMouseButtonJustPressed(button)
}

func IsMouseButtonJustReleased(button eb.MouseButton) bool {
	return ebi.IsMouseButtonJustReleased(button)
}

func IsKeyPressed(key eb.Key) bool {
	return eb.IsKeyPressed(key)
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}

func IsTouchJustPressed(rect FRectangle, touchIdIn *eb.TouchID) bool {
	im := &TheInputManager

	for _, touchId := range im.JustTouchedBuf {
		if TouchFPt(touchId).In(rect) {
			if touchIdIn != nil {
				*touchIdIn = touchId
			}
			return true
		}
	}

	return false
}

func IsTouchJustReleased(rect FRectangle, touchIdIn *eb.TouchID) bool {
	im := &TheInputManager

	for _, touchId := range im.JustReleasedBuf {
		pos := PrevTouchFPt(touchId)

		if pos.In(rect) {
			if touchIdIn != nil {
				*touchIdIn = touchId
			}
			return true
		}
	}

	return false
}

func IsTouchIdTouching(touchId eb.TouchID) bool {
	im := &TheInputManager
	return im.TouchingMap[touchId]
}

func IsTouchIdJustReleased(touchId eb.TouchID) bool {
	im := &TheInputManager
	return im.JustReleasedMap[touchId]
}

// PointerTracker turns mouse and touch input into pointer events
// in canvas coordinates.
//
// Only the first touch is followed. Other fingers are ignored until it lifts.
type PointerTracker struct {
	touching bool
	touchId  eb.TouchID
	touchPos FPoint

	mousePos   FPoint
	mouseValid bool
}

// Update reports this tick's pointer events to emit, in order.
// canvasOnScreen is where a canvasSize canvas is shown.
func (pt *PointerTracker) Update(
	canvasOnScreen FRectangle,
	canvasSize FPoint,
	emit func(ev puzzle.PointerEvent),
) {
	toCanvas := func(p FPoint) FPoint {
		return puzzle.ToCanvas(p, canvasOnScreen, canvasSize)
	}

	// =============================
	// touch
	// =============================
	if pt.touching {
		if IsTouchIdJustReleased(pt.touchId) {
			pt.touching = false
			emit(puzzle.PointerEvent{
				Kind: puzzle.PointerUp, Pos: toCanvas(PrevTouchFPt(pt.touchId)), ByTouch: true,
			})
		} else if IsTouchIdTouching(pt.touchId) {
			if pos := TouchFPt(pt.touchId); !pos.Eq(pt.touchPos) {
				pt.touchPos = pos
				emit(puzzle.PointerEvent{
					Kind: puzzle.PointerMove, Pos: toCanvas(pos), ByTouch: true,
				})
			}
		} else {
			// lost the touch without seeing it lift
			pt.touching = false
			emit(puzzle.PointerEvent{Kind: puzzle.PointerUp, ByTouch: true})
		}
	}

	if !pt.touching {
		im := &TheInputManager
		if len(im.JustTouchedBuf) > 0 {
			pt.touching = true
			pt.touchId = im.JustTouchedBuf[0]
			pt.touchPos = TouchFPt(pt.touchId)
			emit(puzzle.PointerEvent{
				Kind: puzzle.PointerDown, Pos: toCanvas(pt.touchPos), ByTouch: true,
			})
		}
	}

	if pt.touching {
		return
	}

	// =============================
	// mouse
	// =============================
	cursor := CursorFPt()
	moved := !pt.mouseValid || !cursor.Eq(pt.mousePos)
	pt.mousePos = cursor
	pt.mouseValid = true

	if IsMouseButtonJustPressed(eb.MouseButtonLeft) {
		emit(puzzle.PointerEvent{Kind: puzzle.PointerDown, Pos: toCanvas(cursor)})
	} else if moved {
		emit(puzzle.PointerEvent{Kind: puzzle.PointerMove, Pos: toCanvas(cursor)})
	}

	if IsMouseButtonJustReleased(eb.MouseButtonLeft) {
		emit(puzzle.PointerEvent{Kind: puzzle.PointerUp, Pos: toCanvas(cursor)})
	}
}
