package dial

import "math"

// Handle identifies one of the two draggable markers on the dial.
type Handle int

const (
	HandleNone Handle = iota
	HandleBedtime
	HandleWake
)

func (h Handle) String() string {
	switch h {
	case HandleBedtime:
		return "bedtime"
	case HandleWake:
		return "wake"
	default:
		return "none"
	}
}

// Haptics receives one discrete pulse per accepted time change.
type Haptics interface {
	Pulse()
}

type noopHaptics struct{}

func (noopHaptics) Pulse() {}

// DefaultHitRadius is the distance in pixels within which a touch grabs a
// handle.
const DefaultHitRadius = 80.0

// TrackerConfig wires a Tracker to its owner. The owner keeps authority
// over both times: the tracker only proposes new values through the
// callbacks and mirrors whatever the owner feeds back via SetTimes.
type TrackerConfig struct {
	Geometry         Geometry
	HitRadius        float64 // 0 means DefaultHitRadius
	Haptics          Haptics // nil means no feedback
	OnBedtimeChange  func(ClockTime)
	OnWakeTimeChange func(ClockTime)
}

// Tracker is the gesture state machine for the circular selector. It has
// two states, idle and dragging a single active handle; TouchStart picks
// the handle (or stays idle), TouchMove only ever moves the active one,
// and TouchEnd returns to idle. The active handle is written by TouchStart
// and cleared by TouchEnd only.
type Tracker struct {
	cfg     TrackerConfig
	bedtime ClockTime
	wake    ClockTime
	active  Handle
}

func NewTracker(cfg TrackerConfig, bedtime, wake ClockTime) *Tracker {
	if cfg.HitRadius == 0 {
		cfg.HitRadius = DefaultHitRadius
	}
	if cfg.Haptics == nil {
		cfg.Haptics = noopHaptics{}
	}
	return &Tracker{cfg: cfg, bedtime: bedtime.Snap(), wake: wake.Snap()}
}

// SetTimes refreshes the tracker's view of the owner-held values.
func (tr *Tracker) SetTimes(bedtime, wake ClockTime) {
	tr.bedtime = bedtime.Snap()
	tr.wake = wake.Snap()
}

func (tr *Tracker) Bedtime() ClockTime { return tr.bedtime }
func (tr *Tracker) Wake() ClockTime    { return tr.wake }
func (tr *Tracker) Active() Handle     { return tr.active }

// TouchStart decides which handle the gesture grabs. A touch farther than
// the hit radius from both handles is ignored; otherwise the nearer handle
// becomes active for the rest of the gesture and is moved to the touch
// position immediately.
func (tr *Tracker) TouchStart(x, y float64) {
	bx, by := tr.cfg.Geometry.Point(tr.bedtime)
	wx, wy := tr.cfg.Geometry.Point(tr.wake)
	distBed := math.Hypot(x-bx, y-by)
	distWake := math.Hypot(x-wx, y-wy)

	if distBed > tr.cfg.HitRadius && distWake > tr.cfg.HitRadius {
		tr.active = HandleNone
		return
	}
	if distBed <= distWake {
		tr.active = HandleBedtime
	} else {
		tr.active = HandleWake
	}
	tr.apply(tr.cfg.Geometry.TimeAt(x, y))
}

// TouchMove updates the active handle from the current finger position.
// No re-disambiguation happens mid-drag, so the gesture cannot jump to the
// other handle even when the finger passes near it.
func (tr *Tracker) TouchMove(x, y float64) {
	if tr.active == HandleNone {
		return
	}
	tr.apply(tr.cfg.Geometry.TimeAt(x, y))
}

// TouchEnd releases the active handle. No inertia.
func (tr *Tracker) TouchEnd() {
	tr.active = HandleNone
}

// apply emits the proposed time for the active handle, suppressing
// repeats: a finger sitting inside the same 5-minute bucket produces one
// callback and one haptic pulse, not a flood.
func (tr *Tracker) apply(t ClockTime) {
	switch tr.active {
	case HandleBedtime:
		if t == tr.bedtime {
			return
		}
		tr.bedtime = t
		tr.cfg.Haptics.Pulse()
		if tr.cfg.OnBedtimeChange != nil {
			tr.cfg.OnBedtimeChange(t)
		}
	case HandleWake:
		if t == tr.wake {
			return
		}
		tr.wake = t
		tr.cfg.Haptics.Pulse()
		if tr.cfg.OnWakeTimeChange != nil {
			tr.cfg.OnWakeTimeChange(t)
		}
	}
}
