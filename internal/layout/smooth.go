package layout

import "github.com/atomicstack/sectionlist/internal/logging/events"

// SmoothScroller moves the content toward a target position in steps. Sticky
// headers stay suppressed until the scroller stops.
type SmoothScroller struct {
	engine  *Engine
	target  int
	stopped bool
}

// SmoothScrollToPosition starts a smooth scroll to position. It returns nil
// when position is outside the data set. A running scroller is stopped
// first.
func (e *Engine) SmoothScrollToPosition(position int) *SmoothScroller {
	if !e.validTarget("smooth scroll", position) {
		return nil
	}
	if e.smooth != nil {
		e.smooth.Stop()
	}
	e.stickyDisabled = true
	e.host.RequestLayout()
	e.smooth = &SmoothScroller{engine: e, target: position}
	events.Scroll.SmoothStart(position)
	return e.smooth
}

// Target returns the position being scrolled to.
func (s *SmoothScroller) Target() int { return s.target }

// Stopped reports whether the scroller has finished or been cancelled.
func (s *SmoothScroller) Stopped() bool { return s.stopped }

// Step scrolls at most maxStep pixels toward the target; a non-positive
// maxStep means one viewport. done is set once the target reaches the
// leading edge or the content cannot move further, and the scroller stops
// itself.
func (s *SmoothScroller) Step(maxStep int) (applied int, done bool, err error) {
	if s.stopped {
		return 0, true, nil
	}
	e := s.engine
	if maxStep <= 0 {
		maxStep = max(e.host.Viewport().Height, 1)
	}
	dy := e.distanceTo(s.target, maxStep)
	if dy == 0 {
		s.Stop()
		return 0, true, nil
	}
	dy = max(min(dy, maxStep), -maxStep)
	applied, err = e.ScrollBy(dy)
	if err != nil || applied == 0 {
		s.Stop()
		return applied, true, err
	}
	return applied, false, nil
}

// Stop ends the scroll and brings sticky headers back. Stopping twice is a
// no-op.
func (s *SmoothScroller) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	e := s.engine
	if e.smooth == s {
		e.smooth = nil
	}
	e.stickyDisabled = false
	e.host.RequestLayout()
	events.Scroll.SmoothStop(s.target)
}

// distanceTo returns the scroll needed to bring position to the top
// padding, where ScrollToPosition puts it too. Unattached targets get far in
// their direction.
func (e *Engine) distanceTo(position, far int) int {
	if el := e.childForPosition(position); el != nil {
		return el.rect.Top - e.viewport.PaddingTop
	}
	first := e.anchorAtStartPosition()
	if first == NoPosition || position < first {
		return -far
	}
	return far
}

func (e *Engine) anchorAtStartPosition() int {
	if len(e.children) == 0 {
		return NoPosition
	}
	return e.anchorAtStart().Position
}
