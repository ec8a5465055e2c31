package puzzle

type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	}
	return "unknown"
}

// PointerEvent is a mouse or touch event in canvas coordinates.
//
// Only one pointer is tracked. For touch input that is the first touch
// that went down; any other finger is ignored until it lifts.
type PointerEvent struct {
	Kind    PointerKind
	Pos     FPoint
	ByTouch bool
}

// ToCanvas converts a device position to canvas coordinates.
//
// canvasOnScreen is where the canvas is shown on the device and
// canvasSize is its logical size. When both have the same size this is a
// plain translation.
func ToCanvas(devicePos FPoint, canvasOnScreen FRectangle, canvasSize FPoint) FPoint {
	local := devicePos.Sub(canvasOnScreen.Min)

	if canvasOnScreen.Empty() {
		return local
	}

	scale := canvasSize.Div(canvasOnScreen.Size())
	return local.Mul(scale)
}

//==============================================
// event queue
//==============================================

// Queue is a FIFO used to hand input events to the session in arrival order.
type Queue[T any] struct {
	Data []T
}

func (q *Queue[T]) Length() int {
	return len(q.Data)
}

func (q *Queue[T]) IsEmpty() bool {
	return len(q.Data) <= 0
}

func (q *Queue[T]) Enqueue(item T) {
	q.Data = append(q.Data, item)
}

func (q *Queue[T]) Dequeue() T {
	toReturn := q.Data[0]

	for i := 0; i+1 < len(q.Data); i++ {
		q.Data[i] = q.Data[i+1]
	}

	q.Data = q.Data[:len(q.Data)-1]

	return toReturn
}

func (q *Queue[T]) PeekFirst() T {
	return q.Data[0]
}

func (q *Queue[T]) Clear() {
	q.Data = q.Data[:0]
}
