package dial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testGeometry = Geometry{Size: 300, StrokeWidth: 40, Margin: 10}

func TestAngleConvention(t *testing.T) {
	assert.Equal(t, 0.0, Angle(ClockTime{Hour: 0}))
	assert.Equal(t, 90.0, Angle(ClockTime{Hour: 6}))
	assert.Equal(t, 180.0, Angle(ClockTime{Hour: 12}))
	assert.Equal(t, 330.0, Angle(ClockTime{Hour: 22}))
}

func TestPointMidnightAtTop(t *testing.T) {
	x, y := testGeometry.Point(ClockTime{Hour: 0})
	assert.InDelta(t, 150.0, x, 1e-9)
	assert.InDelta(t, 150.0-testGeometry.Radius(), y, 1e-9)
}

func TestTimeAtPointRoundTrip(t *testing.T) {
	for hour := 0; hour <= 23; hour++ {
		for minute := 0; minute < 60; minute += 5 {
			tm := ClockTime{Hour: hour, Minute: minute}
			x, y := testGeometry.Point(tm)
			assert.Equal(t, tm, testGeometry.TimeAt(x, y), "round-trip of %s", tm)
		}
	}
}

func TestTimeAtAlwaysSnapped(t *testing.T) {
	// Sample off-grid touch positions all around the track.
	for deg := 0.0; deg < 360; deg += 1.7 {
		x, y := testGeometry.Point(FromMinutes(int(deg / 360 * minutesPerDay)))
		got := testGeometry.TimeAt(x+0.3, y-0.7)
		assert.True(t, got.Valid(), "TimeAt produced %s", got)
		assert.True(t, got.Snapped(), "TimeAt produced unsnapped %s", got)
	}
}

func TestSweep(t *testing.T) {
	// 22:00 -> 330deg, 06:00 -> 90deg.
	assert.InDelta(t, 120.0, Sweep(ClockTime{Hour: 22}, ClockTime{Hour: 6}), 1e-9)
	assert.False(t, LargeArc(ClockTime{Hour: 22}, ClockTime{Hour: 6}))

	assert.InDelta(t, 240.0, Sweep(ClockTime{Hour: 6}, ClockTime{Hour: 22}), 1e-9)
	assert.True(t, LargeArc(ClockTime{Hour: 6}, ClockTime{Hour: 22}))

	assert.InDelta(t, 0.0, Sweep(ClockTime{Hour: 9}, ClockTime{Hour: 9}), 1e-9)
	assert.False(t, LargeArc(ClockTime{Hour: 9}, ClockTime{Hour: 9}))
}

func TestRadius(t *testing.T) {
	assert.Equal(t, 125.0, testGeometry.Radius())
}
