package board

const (
	// Pointer distance from either horizontal edge that triggers scrolling.
	DefaultEdgeThreshold = 100
	// Pixels scrolled per tick while the pointer stays in the edge zone.
	DefaultScrollSpeed = 15
)

// AutoScroller nudges the board's horizontal scroll while a drag hovers near
// an edge, so off-screen columns become reachable drop targets. It is polled
// once per pointer event during a drag and has no state beyond the offset.
type AutoScroller struct {
	ViewportWidth float64
	ContentWidth  float64
	Threshold     float64
	Speed         float64

	scrollLeft float64
}

func NewAutoScroller(viewportWidth, contentWidth float64) *AutoScroller {
	return &AutoScroller{
		ViewportWidth: viewportWidth,
		ContentWidth:  contentWidth,
		Threshold:     DefaultEdgeThreshold,
		Speed:         DefaultScrollSpeed,
	}
}

// Tick advances the scroll offset for a pointer at x, measured from the
// viewport's left edge. Outside the edge zones it does nothing.
func (a *AutoScroller) Tick(pointerX float64) {
	switch {
	case pointerX < a.Threshold:
		a.scrollLeft -= a.Speed
	case pointerX > a.ViewportWidth-a.Threshold:
		a.scrollLeft += a.Speed
	}

	max := a.ContentWidth - a.ViewportWidth
	if max < 0 {
		max = 0
	}
	if a.scrollLeft < 0 {
		a.scrollLeft = 0
	}
	if a.scrollLeft > max {
		a.scrollLeft = max
	}
}

func (a *AutoScroller) ScrollLeft() float64 {
	return a.scrollLeft
}
