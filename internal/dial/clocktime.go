package dial

import (
	"fmt"
	"time"
)

const (
	minutesPerDay  = 24 * 60
	snapIncrement  = 5
	degreesPerDay  = 360.0
	minutesPerHour = 60
)

// ClockTime is a point on a 24-hour dial.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func (t ClockTime) TotalMinutes() int {
	return t.Hour*minutesPerHour + t.Minute
}

// FromMinutes builds a ClockTime from total minutes since midnight,
// normalizing into [0, 1440) so negative and oversized inputs wrap.
func FromMinutes(total int) ClockTime {
	total = ((total % minutesPerDay) + minutesPerDay) % minutesPerDay
	return ClockTime{Hour: total / minutesPerHour, Minute: total % minutesPerHour}
}

// Valid reports whether hour and minute are inside their dial ranges.
func (t ClockTime) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// Snapped reports whether the minute already sits on a 5-minute mark.
func (t ClockTime) Snapped() bool {
	return t.Minute%snapIncrement == 0
}

// Snap rounds the minute to the nearest 5-minute increment. A minute that
// rounds to 60 rolls the hour over, wrapping 23 back to 0. Snapping an
// already-snapped time is a no-op.
func (t ClockTime) Snap() ClockTime {
	snapped := ((t.Minute + snapIncrement/2) / snapIncrement) * snapIncrement
	hour := t.Hour
	if snapped >= minutesPerHour {
		snapped = 0
		hour = (hour + 1) % 24
	}
	return ClockTime{Hour: hour, Minute: snapped}
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Duration is the forward (clockwise) travel from bedtime to wake time,
// always in [0, 24h). Wraparound across midnight is handled by the modulo;
// bed == wake yields zero.
func Duration(bedtime, wake ClockTime) time.Duration {
	m := ((wake.TotalMinutes() - bedtime.TotalMinutes()) % minutesPerDay + minutesPerDay) % minutesPerDay
	return time.Duration(m) * time.Minute
}

// SplitDuration breaks a duration into whole hours plus leftover minutes,
// the form the review screens display.
func SplitDuration(d time.Duration) (hours, minutes int) {
	total := int(d.Minutes())
	return total / minutesPerHour, total % minutesPerHour
}
