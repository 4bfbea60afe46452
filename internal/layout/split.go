// Package layout computes the two-panel home screen geometry: a "Todos" panel on
// top, a grip row, and a "Lists" panel below, with the boundary moved by
// dragging the grip.
package layout

import "math"

// Metrics are the fixed layout constants the bounds are derived from.
type Metrics struct {
	TopHeaderMargin float64
	HeaderHeight    float64
	BottomMin       float64
	ControlPanel    float64
	Spacing         float64
	// Inset is space outside both panels: the status bar on a phone, the
	// footer line in a terminal.
	Inset float64
}

// PhoneMetrics are the original point values.
var PhoneMetrics = Metrics{
	TopHeaderMargin: 60,
	HeaderHeight:    56,
	BottomMin:       80,
	ControlPanel:    48,
	Spacing:         10,
	Inset:           47,
}

// TerminalMetrics are measured in rows.
var TerminalMetrics = Metrics{
	TopHeaderMargin: 0,
	HeaderHeight:    2,
	BottomMin:       4,
	ControlPanel:    1,
	Spacing:         0,
	Inset:           1,
}

// DefaultTopRatio is the share of the panel space the top panel gets before any drag.
const DefaultTopRatio = 0.6

// Bounds are the clamping limits for one screen height.
type Bounds struct {
	TopMin     float64
	MaxSection float64
	BottomMin  float64
	Total      float64
	// Gaps is the fixed space between the panels (grip row plus spacing).
	Gaps float64
}

func NewBounds(screenHeight float64, m Metrics) Bounds {
	b := Bounds{
		TopMin:    m.TopHeaderMargin + m.HeaderHeight,
		BottomMin: m.BottomMin,
		Total:     screenHeight - m.Inset,
		Gaps:      m.ControlPanel + 2*m.Spacing,
	}
	b.MaxSection = b.Total - b.BottomMin - b.Gaps
	// Screen too short for both minimums: pin the split at TopMin.
	if b.MaxSection < b.TopMin {
		b.MaxSection = b.TopMin
	}
	return b
}

// Clamp limits a top-panel height to [TopMin, MaxSection].
func (b Bounds) Clamp(top float64) float64 {
	return math.Max(b.TopMin, math.Min(b.MaxSection, top))
}

// DefaultTop is the resting top height: 60% of the space left after the gaps.
func (b Bounds) DefaultTop() float64 {
	return b.Clamp((b.Total - b.Gaps) * DefaultTopRatio)
}

// BottomFor maps a top height linearly from [TopMin, MaxSection] onto
// [Total-TopMin-Gaps, BottomMin]. Inputs outside the range clamp to the
// nearest endpoint.
func (b Bounds) BottomFor(top float64) float64 {
	outMin := b.Total - b.TopMin - b.Gaps
	outMax := b.BottomMin
	span := b.MaxSection - b.TopMin
	if span <= 0 {
		return math.Max(outMin, 0)
	}
	t := (b.Clamp(top) - b.TopMin) / span
	return outMin + t*(outMax-outMin)
}

// Split tracks the top-panel height across drag gestures.
//
// The host calls Start when a gesture begins, Move with the vertical
// displacement since the start for every motion event, and End on release.
// There is no snapping: the height stays where the last Move left it.
type Split struct {
	bounds    Bounds
	top       float64
	dragStart float64
	dragging  bool
}

func NewSplit(b Bounds) Split {
	return Split{bounds: b, top: b.DefaultTop()}
}

func (s *Split) Start() {
	s.dragStart = s.top
	s.dragging = true
}

// Move sets the top height to dragStart+dy clamped, and returns it. A Move
// outside a gesture is ignored.
func (s *Split) Move(dy float64) float64 {
	if !s.dragging {
		return s.top
	}
	s.top = s.bounds.Clamp(s.dragStart + dy)
	return s.top
}

func (s *Split) End() {
	s.dragging = false
}

// Nudge runs a whole gesture of displacement dy, for keyboard resizing.
func (s *Split) Nudge(dy float64) float64 {
	s.Start()
	top := s.Move(dy)
	s.End()
	return top
}

// Resize swaps in new bounds (the screen changed) and re-clamps the current
// height instead of resetting it.
func (s *Split) Resize(b Bounds) {
	s.bounds = b
	s.top = b.Clamp(s.top)
}

func (s Split) Dragging() bool { return s.dragging }
func (s Split) Bounds() Bounds { return s.bounds }
func (s Split) Top() float64   { return s.top }
func (s Split) Bottom() float64 {
	return s.bounds.BottomFor(s.top)
}

// Rows returns the top and bottom heights as whole rows. The bottom is derived
// from the rounded top so the two panels and the gaps always fill Total.
func (s Split) Rows() (top, bottom int) {
	top = Round(s.top)
	avail := Round(s.bounds.Total - s.bounds.Gaps)
	bottom = avail - top
	if bottom < 0 {
		bottom = 0
	}
	return top, bottom
}

func Round(v float64) int {
	return int(math.Round(v))
}
