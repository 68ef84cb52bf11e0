package layout

import (
	"math/rand"
	"testing"
)

func TestScrollRoundTrip(t *testing.T) {
	e, host := newTestEngine(threeSections(), Viewport{Width: 40, Height: 100})
	mustRelayout(t, e)
	expectPositions(t, e, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	before := rectsByPosition(e)

	if got := mustScroll(t, e, 1000); got != 80 {
		t.Fatalf("expected scroll clamped to 80, got %d", got)
	}
	expectPositions(t, e, 6, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17)
	expectRect(t, e, 6, 0, 10)
	expectRect(t, e, 12, 40, 50)
	expectRect(t, e, 17, 90, 100)
	checkCache(t, e, host)

	if got := mustScroll(t, e, 1000); got != 0 {
		t.Fatalf("expected no scroll at the end, got %d", got)
	}

	if got := mustScroll(t, e, -1000); got != -80 {
		t.Fatalf("expected scroll back by 80, got %d", got)
	}
	expectPositions(t, e, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	after := rectsByPosition(e)
	for pos, r := range before {
		if after[pos] != r {
			t.Fatalf("position %d: expected %+v after round trip, got %+v", pos, r, after[pos])
		}
	}
	checkCache(t, e, host)

	if got := mustScroll(t, e, -10); got != 0 {
		t.Fatalf("expected no scroll at the top, got %d", got)
	}
}

func TestScrollStopsAtContentEnd(t *testing.T) {
	items := sections(stickyInline, 10, repeat(29, 10))
	e, host := newTestEngine(items, Viewport{Width: 40, Height: 100})
	mustRelayout(t, e)
	if got := mustScroll(t, e, 1000); got != 200 {
		t.Fatalf("expected 200, got %d", got)
	}
	expectRect(t, e, 29, 90, 100)
	expectRect(t, e, 0, 0, 10)
	checkCache(t, e, host)
}

func TestScrollHonoursPadding(t *testing.T) {
	items := sections(stickyInline, 10, repeat(9, 10))
	e, _ := newTestEngine(items, Viewport{Width: 40, Height: 50, PaddingTop: 5, PaddingBottom: 5})
	mustRelayout(t, e)
	expectRect(t, e, 0, 5, 15)
	if got := mustScroll(t, e, 1000); got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
	expectRect(t, e, 9, 35, 45)
	if got := mustScroll(t, e, -1000); got != -60 {
		t.Fatalf("expected -60, got %d", got)
	}
	expectRect(t, e, 1, 15, 25)
}

func TestScrollTrimsToCache(t *testing.T) {
	e, host := newTestEngine(threeSections(), Viewport{Width: 40, Height: 100})
	mustRelayout(t, e)
	mustScroll(t, e, 25)
	expectPositions(t, e, 0, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	expectRect(t, e, 0, 0, 10)
	expectRect(t, e, 2, -5, 5)
	expectRect(t, e, 12, 95, 105)
	if host.recycled != 1 {
		t.Fatalf("expected one element released, got %d", host.recycled)
	}
	checkCache(t, e, host)
}

func TestStickyHeaderPushedBySectionEnd(t *testing.T) {
	e, _ := newTestEngine(threeSections(), Viewport{Width: 40, Height: 100})
	mustRelayout(t, e)
	mustScroll(t, e, 55)
	// section 0 ends at row 5, so its header sits directly above that
	expectRect(t, e, 0, -5, 5)
	expectRect(t, e, 6, 5, 15)
}

func TestNonStickyHeaderScrollsAway(t *testing.T) {
	items := sections(HeaderInline, 10, repeat(5, 10), repeat(5, 10))
	e, host := newTestEngine(items, Viewport{Width: 40, Height: 50})
	mustRelayout(t, e)
	mustScroll(t, e, 15)
	if positions(e)[0] {
		t.Fatalf("expected header trimmed:\n%s", describe(e))
	}
	expectRect(t, e, 1, -5, 5)
	mustScroll(t, e, -15)
	expectRect(t, e, 0, 0, 10)
	checkCache(t, e, host)
}

func TestScrollBackLeavesHiddenHeaderDetached(t *testing.T) {
	items := sections(HeaderInline, 10, repeat(10, 10))
	e, host := newTestEngine(items, Viewport{Width: 40, Height: 50})
	mustRelayout(t, e)
	mustScroll(t, e, 30)
	if got := mustScroll(t, e, -15); got != -15 {
		t.Fatalf("expected -15, got %d", got)
	}
	// the header lands at -15..-5, above the viewport
	if positions(e)[0] {
		t.Fatalf("expected header left detached:\n%s", describe(e))
	}
	expectRect(t, e, 1, -5, 5)
	checkWindow(t, e)
	checkCache(t, e, host)
	expectStableRelayout(t, e)
}

func TestHeaderOnlyOverlaySectionTakesItsRows(t *testing.T) {
	items := addSection(nil, HeaderInline, 10, 0, repeat(5, 10))
	items = addSection(items, HeaderInline|HeaderOverlay, 10, 0, nil)
	items = addSection(items, HeaderInline, 4, 0, repeat(2, 14))
	e, host := newTestEngine(items, Viewport{Width: 40, Height: 60})
	mustRelayout(t, e)
	expectPositions(t, e, 0, 1, 2, 3, 4, 5)

	if got := mustScroll(t, e, 5); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	expectPositions(t, e, 0, 1, 2, 3, 4, 5, 6)
	expectRect(t, e, 6, 55, 65)
	expectStableRelayout(t, e)

	if got := mustScroll(t, e, 10); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	expectRect(t, e, 6, 45, 55)
	expectRect(t, e, 7, 55, 59)
	expectRect(t, e, 8, 59, 73)
	checkCache(t, e, host)
	expectStableRelayout(t, e)
	expectRect(t, e, 6, 45, 55)
	expectRect(t, e, 8, 59, 73)

	if got := mustScroll(t, e, -10); got != -10 {
		t.Fatalf("expected -10, got %d", got)
	}
	expectRect(t, e, 6, 55, 65)
	checkCache(t, e, host)
	expectStableRelayout(t, e)
}

func TestStickyDisabledHeadersScrollWithContent(t *testing.T) {
	e, _ := newTestEngine(threeSections(), Viewport{Width: 40, Height: 100})
	e.stickyDisabled = true
	mustRelayout(t, e)
	mustScroll(t, e, 15)
	if positions(e)[0] {
		t.Fatalf("expected header trimmed:\n%s", describe(e))
	}
	expectRect(t, e, 1, -5, 5)
}

// TestScrollKeepsWindowBounded walks a mixed data set with random steps and
// checks the attached window after every pass.
func TestScrollKeepsWindowBounded(t *testing.T) {
	items := sections(stickyInline, 12, repeat(7, 9), repeat(3, 14), repeat(11, 6), repeat(4, 21), repeat(9, 8))
	e, host := newTestEngine(items, Viewport{Width: 40, Height: 60})
	mustRelayout(t, e)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		dy := rng.Intn(71) - 35
		got := mustScroll(t, e, dy)
		if (dy > 0 && (got < 0 || got > dy)) || (dy < 0 && (got > 0 || got < dy)) {
			t.Fatalf("step %d: scroll %d applied %d", i, dy, got)
		}
		if i%17 == 0 {
			mustRelayout(t, e)
		}
		checkWindow(t, e)
		checkCache(t, e, host)
	}
}

// TestMixedDisplayWalk scrolls through overlay, non-sticky, grid, aligned
// and header-only sections, relaying out every few steps to confirm the
// scrolled window matches a fresh layout.
func TestMixedDisplayWalk(t *testing.T) {
	items := addSection(nil, stickyInline, 6, 0, repeat(5, 8))
	items = addSection(items, HeaderInline|HeaderOverlay, 5, 0, repeat(4, 10))
	items = addSection(items, HeaderInline, 7, 0, nil)
	items = addSection(items, stickyInline, 6, 1, repeat(7, 9))
	items = addSection(items, HeaderInline|HeaderOverlay, 5, 0, nil)
	items = addSection(items, HeaderInline|HeaderOverlay|HeaderSticky, 6, 0, repeat(6, 7))
	items = addSection(items, HeaderInline, 8, 0, repeat(5, 12))
	items = addSection(items, HeaderAlignStart|HeaderSticky, 5, 0, repeat(4, 9))
	items[len(items)-5].width = 8
	e, host := newTestEngine(items, Viewport{Width: 40, Height: 60})
	mustRelayout(t, e)

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 400; i++ {
		dy := rng.Intn(71) - 35
		got := mustScroll(t, e, dy)
		if (dy > 0 && (got < 0 || got > dy)) || (dy < 0 && (got > 0 || got < dy)) {
			t.Fatalf("step %d: scroll %d applied %d", i, dy, got)
		}
		checkWindow(t, e)
		checkCache(t, e, host)
		if i%3 == 0 {
			expectStableRelayout(t, e)
			checkCache(t, e, host)
		}
	}
}

func checkWindow(t *testing.T, e *Engine) {
	t.Helper()
	height := e.Height()
	seen := make(map[int]bool)
	low, high := -1, -1
	for _, child := range e.Children() {
		r := child.Rect()
		if seen[child.Position] {
			t.Fatalf("position %d attached twice:\n%s", child.Position, describe(e))
		}
		seen[child.Position] = true
		if r.Bottom <= 0 || r.Top >= height {
			t.Fatalf("position %d outside the viewport:\n%s", child.Position, describe(e))
		}
		if child.Params.IsHeader {
			continue
		}
		if low == -1 || child.Position < low {
			low = child.Position
		}
		high = max(high, child.Position)
	}
	for pos := low; pos <= high && low >= 0; pos++ {
		if !seen[pos] && !e.host.(*fakeHost).items[pos].header {
			t.Fatalf("item %d missing inside the window:\n%s", pos, describe(e))
		}
	}
	for _, header := range e.Children() {
		if !header.Params.IsHeader || !header.Params.IsHeaderSticky() {
			continue
		}
		sfp := header.Params.FirstPosition()
		lowest := 0
		for _, child := range e.Children() {
			if !child.Params.IsHeader && child.Params.FirstPosition() == sfp {
				lowest = max(lowest, child.Rect().Bottom)
			}
		}
		if lowest > 0 && header.Rect().Bottom > lowest {
			t.Fatalf("sticky header %d extends past its section:\n%s", sfp, describe(e))
		}
		if header.Rect().Top < 0 && header.Rect().Bottom < lowest {
			t.Fatalf("sticky header %d not pinned:\n%s", sfp, describe(e))
		}
	}
}

func TestGridSectionScroll(t *testing.T) {
	items := sections(stickyInline, 10, repeat(5, 10))
	for i := range items {
		items[i].strategy = 1
	}
	e, host := newTestEngine(items, Viewport{Width: 40, Height: 20})
	mustRelayout(t, e)
	expectPositions(t, e, 0, 1, 2)
	if r := e.ChildAt(1).Rect(); r.Left != 0 || r.Right != 20 {
		t.Fatalf("expected first cell in the left column, got %+v", r)
	}
	if r := e.ChildAt(2).Rect(); r.Left != 20 || r.Right != 40 || r.Top != 10 {
		t.Fatalf("expected second cell beside the first, got %+v", r)
	}

	if got := mustScroll(t, e, 100); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
	expectPositions(t, e, 0, 3, 4, 5)
	expectRect(t, e, 5, 10, 20)
	if got := mustScroll(t, e, -100); got != -20 {
		t.Fatalf("expected -20, got %d", got)
	}
	expectRect(t, e, 1, 10, 20)
	expectRect(t, e, 2, 10, 20)
	checkCache(t, e, host)
}

func TestGridAnchorSnapsToRow(t *testing.T) {
	items := sections(stickyInline, 10, repeat(7, 10))
	for i := range items {
		items[i].strategy = 1
	}
	e, _ := newTestEngine(items, Viewport{Width: 40, Height: 100})
	e.ScrollToPosition(4)
	mustRelayout(t, e)
	expectRect(t, e, 3, 0, 10)
	expectRect(t, e, 4, 0, 10)
}

func TestVisibleItemQueries(t *testing.T) {
	e, _ := newTestEngine(threeSections(), Viewport{Width: 40, Height: 100})
	if got := e.FirstVisibleItemPosition(); got != NoPosition {
		t.Fatalf("expected no position before layout, got %d", got)
	}
	mustRelayout(t, e)
	mustScroll(t, e, 25)

	cases := []struct {
		name string
		got  int
		want int
	}{
		{"first", e.FirstVisibleItemPosition(), 2},
		{"first completely", e.FirstCompletelyVisibleItemPosition(), 3},
		{"last", e.LastVisibleItemPosition(), 11},
		{"last completely", e.LastCompletelyVisibleItemPosition(), 11},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, tc.got)
		}
	}
}

func TestSmoothScrollToPosition(t *testing.T) {
	e, host := newTestEngine(threeSections(), Viewport{Width: 40, Height: 100})
	mustRelayout(t, e)
	if e.SmoothScrollToPosition(18) != nil {
		t.Fatalf("expected out of range target rejected")
	}

	requests := host.requests
	s := e.SmoothScrollToPosition(6)
	if s == nil || !e.StickyDisabled() || host.requests != requests+1 {
		t.Fatalf("expected sticky headers suspended and a layout requested")
	}
	mustRelayout(t, e)

	steps := 0
	for {
		applied, done, err := s.Step(15)
		if err != nil {
			t.Fatalf("step failed: %v", err)
		}
		if done {
			break
		}
		if applied != 15 {
			t.Fatalf("expected 15 per step, got %d", applied)
		}
		steps++
		if steps > 10 {
			t.Fatalf("smooth scroll did not finish")
		}
	}
	if steps != 4 {
		t.Fatalf("expected 4 steps, got %d", steps)
	}
	expectRect(t, e, 6, 0, 10)
	if e.StickyDisabled() || !s.Stopped() {
		t.Fatalf("expected sticky headers restored once done")
	}
	s.Stop()
	if e.StickyDisabled() {
		t.Fatalf("expected repeated stop to be harmless")
	}
}

func TestSmoothScrollHonoursTopPadding(t *testing.T) {
	e, _ := newTestEngine(threeSections(), Viewport{Width: 40, Height: 100, PaddingTop: 5})
	mustRelayout(t, e)
	s := e.SmoothScrollToPosition(6)
	mustRelayout(t, e)
	for i := 0; i < 10; i++ {
		if _, done, err := s.Step(15); err != nil {
			t.Fatalf("step failed: %v", err)
		} else if done {
			break
		}
	}
	if !s.Stopped() {
		t.Fatalf("smooth scroll did not finish")
	}
	expectRect(t, e, 6, 5, 15)

	snapped, _ := newTestEngine(threeSections(), Viewport{Width: 40, Height: 100, PaddingTop: 5})
	mustRelayout(t, snapped)
	snapped.ScrollToPosition(6)
	mustRelayout(t, snapped)
	expectRect(t, snapped, 6, 5, 15)
}

func TestSmoothScrollCancel(t *testing.T) {
	e, _ := newTestEngine(threeSections(), Viewport{Width: 40, Height: 100})
	mustRelayout(t, e)
	first := e.SmoothScrollToPosition(12)
	second := e.SmoothScrollToPosition(3)
	if !first.Stopped() || second.Stopped() || !e.StickyDisabled() {
		t.Fatalf("expected a new smooth scroll to replace the running one")
	}
	second.Stop()
	if e.StickyDisabled() {
		t.Fatalf("expected cancel to restore sticky headers")
	}
}

func TestScrollMetrics(t *testing.T) {
	items := sections(stickyInline, 20, repeat(5, 50))
	e, _ := newTestEngine(items, Viewport{Width: 40, Height: 800})
	if e.ScrollExtent() != 0 || e.ScrollOffset() != 0 {
		t.Fatalf("expected zero metrics without children")
	}
	mustRelayout(t, e)
	if got := e.ScrollExtent(); got != 800 {
		t.Fatalf("expected extent 800, got %d", got)
	}
	if got := e.ScrollOffset(); got != 0 {
		t.Fatalf("expected offset 0, got %d", got)
	}
	if got := e.ScrollRange(); got != 800 {
		t.Fatalf("expected range 800, got %d", got)
	}

	e.SetSmoothScrollEnabled(false)
	if e.ScrollExtent() != 6 || e.ScrollOffset() != 0 || e.ScrollRange() != 6 {
		t.Fatalf("expected child based metrics, got %d/%d/%d", e.ScrollExtent(), e.ScrollOffset(), e.ScrollRange())
	}
}

func TestScrollOffsetGrows(t *testing.T) {
	e, _ := newTestEngine(threeSections(), Viewport{Width: 40, Height: 100})
	mustRelayout(t, e)
	before := e.ScrollOffset()
	mustScroll(t, e, 80)
	if after := e.ScrollOffset(); after <= before {
		t.Fatalf("expected offset to grow, got %d then %d", before, after)
	}
}

func TestHowManyMissing(t *testing.T) {
	var q sectionQueries
	if got := q.HowManyMissingAbove(4, map[int]bool{4: true, 6: true, 9: true}); got != 3 {
		t.Fatalf("expected 3 missing above, got %d", got)
	}
	if got := q.HowManyMissingBelow(9, map[int]bool{9: true, 7: true}); got != 1 {
		t.Fatalf("expected 1 missing below, got %d", got)
	}
	if got := q.HowManyMissingAbove(NoPosition, map[int]bool{}); got != 0 {
		t.Fatalf("expected nothing missing, got %d", got)
	}
}
