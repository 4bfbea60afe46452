package layout

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func phoneBounds() Bounds { return NewBounds(844, PhoneMetrics) }

func TestNewBounds_Phone(t *testing.T) {
	b := phoneBounds()
	if b.TopMin != 116 || b.Total != 797 || b.Gaps != 68 || b.MaxSection != 649 || b.BottomMin != 80 {
		t.Fatalf("unexpected bounds: %+v", b)
	}
}

func TestBounds_BottomForEndpointsAndClamp(t *testing.T) {
	b := phoneBounds()
	if got := b.BottomFor(b.TopMin); !near(got, 797-116-68) {
		t.Fatalf("bottom at TopMin = %v", got)
	}
	if got := b.BottomFor(b.MaxSection); !near(got, 80) {
		t.Fatalf("bottom at MaxSection = %v", got)
	}
	if got := b.BottomFor(0); !near(got, b.BottomFor(b.TopMin)) {
		t.Fatalf("below range should clamp, got %v", got)
	}
	if got := b.BottomFor(5000); !near(got, 80) {
		t.Fatalf("above range should clamp, got %v", got)
	}
}

func TestSplit_DefaultIsSixtyForty(t *testing.T) {
	s := NewSplit(phoneBounds())
	avail := 797.0 - 68
	if !near(s.Top(), avail*0.6) {
		t.Fatalf("default top = %v", s.Top())
	}
	if !near(s.Bottom(), avail*0.4) {
		t.Fatalf("default bottom = %v", s.Bottom())
	}
}

func TestSplit_MoveClampsAgainstDragStart(t *testing.T) {
	s := NewSplit(phoneBounds())
	start := s.Top()

	s.Start()
	if got := s.Move(50); !near(got, start+50) {
		t.Fatalf("move +50 = %v", got)
	}
	// dy is measured from the gesture start, not from the previous move.
	if got := s.Move(20); !near(got, start+20) {
		t.Fatalf("move +20 = %v", got)
	}
	if got := s.Move(-10000); got != 116 {
		t.Fatalf("drag past top should clamp to TopMin, got %v", got)
	}
	if got := s.Move(10000); got != 649 {
		t.Fatalf("drag past bottom should clamp to MaxSection, got %v", got)
	}
	s.End()

	if s.Top() != 649 || s.Dragging() {
		t.Fatalf("release should keep last height without snapping: top=%v dragging=%v", s.Top(), s.Dragging())
	}

	// Next gesture starts from where the last one ended.
	s.Start()
	if got := s.Move(-49); got != 600 {
		t.Fatalf("second gesture move = %v", got)
	}
	s.End()
}

func TestSplit_TapDoesNotChangeHeight(t *testing.T) {
	s := NewSplit(phoneBounds())
	before := s.Top()
	s.Start()
	s.Move(0)
	s.End()
	if s.Top() != before {
		t.Fatalf("tap changed height: %v -> %v", before, s.Top())
	}
}

func TestSplit_MoveOutsideGestureIgnored(t *testing.T) {
	s := NewSplit(phoneBounds())
	before := s.Top()
	if got := s.Move(100); got != before {
		t.Fatalf("move without start changed height to %v", got)
	}
	s.Start()
	s.Move(30)
	s.End()
	after := s.Top()
	if got := s.Move(100); got != after {
		t.Fatalf("move after end changed height to %v", got)
	}
}

func TestSplit_ResizeReclampsWithoutReset(t *testing.T) {
	s := NewSplit(NewBounds(40, TerminalMetrics))
	s.Nudge(100)
	if s.Top() != 34 {
		t.Fatalf("expected MaxSection 34, got %v", s.Top())
	}
	s.Resize(NewBounds(20, TerminalMetrics))
	if s.Top() != 14 {
		t.Fatalf("expected re-clamp to 14, got %v", s.Top())
	}
	s.Resize(NewBounds(40, TerminalMetrics))
	if s.Top() != 14 {
		t.Fatalf("growing the screen should not move the split, got %v", s.Top())
	}
}

func TestSplit_TerminalRowsFillPanelSpace(t *testing.T) {
	s := NewSplit(NewBounds(30, TerminalMetrics))
	top, bottom := s.Rows()
	if top != 17 || bottom != 11 {
		t.Fatalf("rows = %d/%d", top, bottom)
	}
	for dy := -20; dy <= 20; dy++ {
		s.Start()
		s.Move(float64(dy))
		s.End()
		top, bottom = s.Rows()
		if top+bottom != 28 {
			t.Fatalf("dy=%d: rows %d+%d do not fill 28", dy, top, bottom)
		}
		if top < 2 || bottom < 4 {
			t.Fatalf("dy=%d: minimums violated: %d/%d", dy, top, bottom)
		}
	}
}

func TestNewBounds_TinyScreenPinsSplit(t *testing.T) {
	b := NewBounds(5, TerminalMetrics)
	if b.MaxSection != b.TopMin {
		t.Fatalf("expected pinned bounds, got %+v", b)
	}
	s := NewSplit(b)
	s.Nudge(3)
	if s.Top() != b.TopMin {
		t.Fatalf("pinned split moved to %v", s.Top())
	}
	if got := b.BottomFor(2); got != 1 {
		t.Fatalf("degenerate bottom = %v", got)
	}
}
