package dial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapBuckets(t *testing.T) {
	for hour := 0; hour <= 23; hour++ {
		for minute := 0; minute <= 59; minute++ {
			snapped := ClockTime{Hour: hour, Minute: minute}.Snap()
			assert.True(t, snapped.Valid(), "snap(%02d:%02d) out of range: %s", hour, minute, snapped)
			assert.Zero(t, snapped.Minute%5, "snap(%02d:%02d) not on a 5-minute mark: %s", hour, minute, snapped)
		}
	}
}

func TestSnapIdempotent(t *testing.T) {
	for hour := 0; hour <= 23; hour++ {
		for minute := 0; minute < 60; minute += 5 {
			tm := ClockTime{Hour: hour, Minute: minute}
			assert.Equal(t, tm, tm.Snap())
		}
	}
}

func TestSnapMinuteRollover(t *testing.T) {
	assert.Equal(t, ClockTime{Hour: 11, Minute: 0}, ClockTime{Hour: 10, Minute: 58}.Snap())
	assert.Equal(t, ClockTime{Hour: 0, Minute: 0}, ClockTime{Hour: 23, Minute: 59}.Snap())
	assert.Equal(t, ClockTime{Hour: 10, Minute: 55}, ClockTime{Hour: 10, Minute: 57}.Snap())
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 8*time.Hour, Duration(ClockTime{Hour: 23}, ClockTime{Hour: 7}))
	assert.Equal(t, 16*time.Hour, Duration(ClockTime{Hour: 7}, ClockTime{Hour: 23}))
	assert.Equal(t, time.Duration(0), Duration(ClockTime{Hour: 3, Minute: 15}, ClockTime{Hour: 3, Minute: 15}))
	assert.Equal(t, 7*time.Hour+45*time.Minute, Duration(ClockTime{Hour: 22, Minute: 30}, ClockTime{Hour: 6, Minute: 15}))
}

func TestDurationNeverNegative(t *testing.T) {
	for bed := 0; bed < minutesPerDay; bed += 95 {
		for wake := 0; wake < minutesPerDay; wake += 95 {
			d := Duration(FromMinutes(bed), FromMinutes(wake))
			assert.GreaterOrEqual(t, d, time.Duration(0))
			assert.Less(t, d, 24*time.Hour)
		}
	}
}

func TestFromMinutesNormalizes(t *testing.T) {
	assert.Equal(t, ClockTime{Hour: 23, Minute: 55}, FromMinutes(-5))
	assert.Equal(t, ClockTime{Hour: 0, Minute: 10}, FromMinutes(minutesPerDay+10))
	assert.Equal(t, ClockTime{Hour: 0, Minute: 0}, FromMinutes(0))
}

func TestSplitDuration(t *testing.T) {
	h, m := SplitDuration(8*time.Hour + 25*time.Minute)
	assert.Equal(t, 8, h)
	assert.Equal(t, 25, m)
}

func TestString(t *testing.T) {
	assert.Equal(t, "07:05", ClockTime{Hour: 7, Minute: 5}.String())
	assert.Equal(t, "00:00", ClockTime{}.String())
}
