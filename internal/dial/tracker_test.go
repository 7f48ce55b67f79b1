package dial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingHaptics struct{ pulses int }

func (h *countingHaptics) Pulse() { h.pulses++ }

type trackerFixture struct {
	tracker  *Tracker
	haptics  *countingHaptics
	bedtimes []ClockTime
	wakes    []ClockTime
}

func newFixture(bedtime, wake ClockTime) *trackerFixture {
	f := &trackerFixture{haptics: &countingHaptics{}}
	f.tracker = NewTracker(TrackerConfig{
		Geometry:         testGeometry,
		Haptics:          f.haptics,
		OnBedtimeChange:  func(t ClockTime) { f.bedtimes = append(f.bedtimes, t) },
		OnWakeTimeChange: func(t ClockTime) { f.wakes = append(f.wakes, t) },
	}, bedtime, wake)
	return f
}

func TestTouchStartPicksNearerHandle(t *testing.T) {
	f := newFixture(ClockTime{Hour: 23}, ClockTime{Hour: 7})

	x, y := testGeometry.Point(ClockTime{Hour: 23})
	f.tracker.TouchStart(x, y)
	assert.Equal(t, HandleBedtime, f.tracker.Active())
	// Touch landed on the handle's current position, so no change is emitted.
	assert.Empty(t, f.bedtimes)
	assert.Empty(t, f.wakes)
	assert.Zero(t, f.haptics.pulses)
}

func TestTouchStartOutsideHitRadiusIgnored(t *testing.T) {
	f := newFixture(ClockTime{Hour: 23}, ClockTime{Hour: 7})

	// Dial center is radius (125px) away from both handles, beyond the 80px box.
	f.tracker.TouchStart(150, 150)
	assert.Equal(t, HandleNone, f.tracker.Active())
	assert.Empty(t, f.bedtimes)
	assert.Empty(t, f.wakes)

	f.tracker.TouchMove(150, 20)
	assert.Empty(t, f.bedtimes)
	assert.Empty(t, f.wakes)
}

func TestTouchStartMovesHandleImmediately(t *testing.T) {
	f := newFixture(ClockTime{Hour: 23}, ClockTime{Hour: 7})

	// Inside the bedtime handle's hit box but a bucket over.
	x, y := testGeometry.Point(ClockTime{Hour: 22, Minute: 30})
	f.tracker.TouchStart(x, y)
	assert.Equal(t, HandleBedtime, f.tracker.Active())
	assert.Equal(t, []ClockTime{{Hour: 22, Minute: 30}}, f.bedtimes)
	assert.Equal(t, 1, f.haptics.pulses)
}

func TestDragDoesNotJumpToOtherHandle(t *testing.T) {
	f := newFixture(ClockTime{Hour: 23}, ClockTime{Hour: 7})

	x, y := testGeometry.Point(ClockTime{Hour: 23})
	f.tracker.TouchStart(x, y)

	// Drag the bedtime handle right through the wake handle's position.
	x, y = testGeometry.Point(ClockTime{Hour: 7})
	f.tracker.TouchMove(x, y)

	assert.Equal(t, HandleBedtime, f.tracker.Active())
	assert.Equal(t, []ClockTime{{Hour: 7}}, f.bedtimes)
	assert.Empty(t, f.wakes)
}

func TestMoveDedupesIdenticalSnappedValues(t *testing.T) {
	f := newFixture(ClockTime{Hour: 23}, ClockTime{Hour: 7})

	x, y := testGeometry.Point(ClockTime{Hour: 7})
	f.tracker.TouchStart(x, y)
	assert.Equal(t, HandleWake, f.tracker.Active())

	x, y = testGeometry.Point(ClockTime{Hour: 7, Minute: 30})
	f.tracker.TouchMove(x, y)
	f.tracker.TouchMove(x, y)
	f.tracker.TouchMove(x+0.4, y-0.2) // same 5-minute bucket

	assert.Equal(t, []ClockTime{{Hour: 7, Minute: 30}}, f.wakes)
	assert.Equal(t, 1, f.haptics.pulses)
}

func TestTouchEndReleases(t *testing.T) {
	f := newFixture(ClockTime{Hour: 23}, ClockTime{Hour: 7})

	x, y := testGeometry.Point(ClockTime{Hour: 23})
	f.tracker.TouchStart(x, y)
	f.tracker.TouchEnd()
	assert.Equal(t, HandleNone, f.tracker.Active())

	x, y = testGeometry.Point(ClockTime{Hour: 1})
	f.tracker.TouchMove(x, y)
	assert.Empty(t, f.bedtimes)
}

func TestSetTimesRefreshesOwnerState(t *testing.T) {
	f := newFixture(ClockTime{Hour: 23}, ClockTime{Hour: 7})
	f.tracker.SetTimes(ClockTime{Hour: 22}, ClockTime{Hour: 6})
	assert.Equal(t, ClockTime{Hour: 22}, f.tracker.Bedtime())
	assert.Equal(t, ClockTime{Hour: 6}, f.tracker.Wake())
}
