package overlay

// Gesture is an active drag. Motion is routed to the panel only while a
// gesture is held; End releases it.
type Gesture struct {
	offset Point
	ended  bool
}

func (g *Gesture) End() {
	g.ended = true
}

func (g *Gesture) Active() bool {
	return g != nil && !g.ended
}

// Dragger is the Idle/Dragging state machine for the panel's drag handle.
type Dragger struct {
	gesture *Gesture
}

func (d *Dragger) Dragging() bool {
	return d.gesture.Active()
}

// Press starts a drag when p is on handle. The offset between the pointer
// and the panel origin is kept for the whole gesture.
func (d *Dragger) Press(p Point, panel Point, handle Rect) bool {
	if d.Dragging() || !handle.Contains(p) {
		return false
	}
	d.gesture = &Gesture{offset: Point{X: p.X - panel.X, Y: p.Y - panel.Y}}
	return true
}

// Move returns the clamped panel origin for pointer p. It reports false when
// no drag is in progress.
func (d *Dragger) Move(p Point, panel, viewport Size) (Point, bool) {
	if !d.Dragging() {
		return Point{}, false
	}
	target := Point{X: p.X - d.gesture.offset.X, Y: p.Y - d.gesture.offset.Y}
	return Clamp(target, panel, viewport), true
}

// Release ends the current drag. Calling it while idle is a no-op.
func (d *Dragger) Release() bool {
	if !d.Dragging() {
		d.gesture = nil
		return false
	}
	d.gesture.End()
	d.gesture = nil
	return true
}
