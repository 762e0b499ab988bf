package feed

// Drag accumulates one touch gesture. A zero start or end position means
// the gesture never completed and produces no swipe.
type Drag struct {
	startY float64
	endY   float64
}

func (d *Drag) Start(y float64) { d.startY = y }

func (d *Drag) Move(y float64) { d.endY = y }

// End returns the swipe distance (start minus end) and resets the drag.
func (d *Drag) End() (float64, bool) {
	start, end := d.startY, d.endY
	d.startY, d.endY = 0, 0
	if start == 0 || end == 0 {
		return 0, false
	}
	return start - end, true
}
