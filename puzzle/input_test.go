package puzzle

import (
	"testing"
)

func TestToCanvas(t *testing.T) {
	tests := []struct {
		name     string
		device   FPoint
		onScreen FRectangle
		size     FPoint
		want     FPoint
	}{
		{"same size", FPt(150, 90), FRect(50, 40, 350, 340), FPt(300, 300), FPt(100, 50)},
		{"shown at half size", FPt(100, 90), FRect(50, 40, 200, 190), FPt(300, 300), FPt(100, 100)},
		{"outside the canvas", FPt(10, 10), FRect(50, 40, 350, 340), FPt(300, 300), FPt(-40, -30)},
		{"empty screen rect", FPt(10, 10), FRect(5, 5, 5, 5), FPt(300, 300), FPt(5, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToCanvas(tc.device, tc.onScreen, tc.size); !got.Eq(tc.want) {
				t.Fatalf("ToCanvas = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestQueueFIFO(t *testing.T) {
	var q Queue[PointerEvent]

	q.Enqueue(PointerEvent{Kind: PointerDown})
	q.Enqueue(PointerEvent{Kind: PointerMove})
	q.Enqueue(PointerEvent{Kind: PointerUp})

	for _, want := range []PointerKind{PointerDown, PointerMove, PointerUp} {
		if got := q.Dequeue().Kind; got != want {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if !q.IsEmpty() {
		t.Fatalf("expected an empty queue")
	}
}
