package dial

import "math"

// Geometry maps ClockTime values onto an annular track of a fixed pixel
// size. Angle 0 sits at the 12 o'clock position (midnight) and angles grow
// clockwise; the extra -90 degree rotation happens only when converting to
// Cartesian coordinates, so that 0 renders at the top instead of at the
// mathematical 3 o'clock zero.
type Geometry struct {
	Size        float64
	StrokeWidth float64
	Margin      float64
}

func (g Geometry) Radius() float64 {
	return (g.Size - g.StrokeWidth - g.Margin) / 2
}

func (g Geometry) center() (float64, float64) {
	return g.Size / 2, g.Size / 2
}

// Angle returns the dial angle in degrees for a time, in [0, 360).
func Angle(t ClockTime) float64 {
	return float64(t.TotalMinutes()) / minutesPerDay * degreesPerDay
}

// Point returns the pixel position of a time on the track.
func (g Geometry) Point(t ClockTime) (x, y float64) {
	rad := (Angle(t) - 90) * math.Pi / 180
	cx, cy := g.center()
	r := g.Radius()
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}

// TimeAt converts a touch position into the nearest snapped ClockTime.
// The inverse of Point for every snapped time.
func (g Geometry) TimeAt(x, y float64) ClockTime {
	cx, cy := g.center()
	deg := math.Atan2(y-cy, x-cx) * 180 / math.Pi
	deg = math.Mod(deg+90, degreesPerDay)
	if deg < 0 {
		deg += degreesPerDay
	}
	total := deg / degreesPerDay * minutesPerDay
	hour := int(total/minutesPerHour) % 24
	raw := int(math.Round(math.Mod(total, minutesPerHour)))
	if raw >= minutesPerHour {
		raw = 0
		hour = (hour + 1) % 24
	}
	return ClockTime{Hour: hour, Minute: raw}.Snap()
}

// Sweep is the clockwise angular distance in degrees from the bedtime
// handle to the wake handle, always non-negative.
func Sweep(bedtime, wake ClockTime) float64 {
	s := math.Mod(Angle(wake)-Angle(bedtime), degreesPerDay)
	if s < 0 {
		s += degreesPerDay
	}
	return s
}

// LargeArc reports whether the rendered arc spans more than half the dial.
func LargeArc(bedtime, wake ClockTime) bool {
	return Sweep(bedtime, wake) > 180
}
