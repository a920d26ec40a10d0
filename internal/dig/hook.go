package dig

import (
	"math"

	"github.com/google/uuid"

	"github.com/vovakirdan/hook-digger/internal/core"
)

// Phase is the hook's motion state.
type Phase int

const (
	PhaseIdle       Phase = iota // Swinging, waiting for a trigger
	PhaseExtending               // Travelling outward along the current angle
	PhaseRetrieving              // Reeling back, possibly carrying an object
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseExtending:
		return "extending"
	case PhaseRetrieving:
		return "retrieving"
	default:
		return "unknown"
	}
}

// HookConfig holds the fixed geometry and speeds of the hook.
// Speeds are in field units (or radians) per nominal tick.
type HookConfig struct {
	Pivot         core.Vec
	FieldW        float64
	FieldH        float64
	MaxAngle      float64 // Swing bound either side of straight down, radians
	SwingSpeed    float64
	ExtendSpeed   float64
	RetrieveSpeed float64 // Base speed, divided by the carried weight
	MinLength     float64 // Fully retracted length
}

// DefaultHookConfig returns the classic 800x600 field tuning.
func DefaultHookConfig() HookConfig {
	return HookConfig{
		Pivot:         Pivot(800, 240, 25),
		FieldW:        800,
		FieldH:        600,
		MaxAngle:      1.22,
		SwingSpeed:    0.03,
		ExtendSpeed:   5,
		RetrieveSpeed: 8,
		MinLength:     30,
	}
}

// Pivot places the hook pivot centered horizontally, offset above the
// surface line.
func Pivot(fieldW, surfaceY, offset float64) core.Vec {
	return core.V(fieldW/2, surfaceY-offset)
}

// HookState is a snapshot of the arm. Carried is non-nil only while
// retrieving an object.
type HookState struct {
	Angle    float64
	SwingDir int
	Length   float64
	Phase    Phase
	Carried  *GameObject
}

// TickResult reports what happened during one Tick.
type TickResult struct {
	Phase      Phase     // Phase after the tick
	Removed    uuid.UUID // Object captured this tick, uuid.Nil if none
	Banked     bool      // A carried object reached the pivot this tick
	ScoreDelta int       // Value of the banked object
}

// HookSimulator advances the hook one tick at a time.
type HookSimulator struct {
	cfg   HookConfig
	state HookState
}

// NewHookSimulator creates a simulator in its reset state.
func NewHookSimulator(cfg HookConfig) *HookSimulator {
	h := &HookSimulator{cfg: cfg}
	h.Reset()
	return h
}

// Config returns the simulator's configuration.
func (h *HookSimulator) Config() HookConfig {
	return h.cfg
}

// Reset returns the hook to idle, fully retracted, pointing straight down.
// Anything being carried is dropped.
func (h *HookSimulator) Reset() {
	h.state = HookState{
		Angle:    0,
		SwingDir: 1,
		Length:   h.cfg.MinLength,
		Phase:    PhaseIdle,
	}
}

// Trigger starts an extension. It does nothing unless the hook is idle.
func (h *HookSimulator) Trigger() {
	if h.state.Phase == PhaseIdle {
		h.state.Phase = PhaseExtending
	}
}

// State returns a copy of the current hook state.
func (h *HookSimulator) State() HookState {
	s := h.state
	if s.Carried != nil {
		obj := *s.Carried
		s.Carried = &obj
	}
	return s
}

// Phase returns the current phase.
func (h *HookSimulator) Phase() Phase {
	return h.state.Phase
}

// Tip returns the current tip position.
func (h *HookSimulator) Tip() core.Vec {
	return tipOf(h.cfg, h.state)
}

// Tick advances the hook by dt nominal ticks. During extension it may remove
// one object from field.
func (h *HookSimulator) Tick(dt float64, field *Field) TickResult {
	next, res := advance(h.state, h.cfg, dt, field)
	h.state = next
	return res
}

// RetrieveSpeed returns the per-tick reel-in speed for a given carried
// weight: base / max(weight, 1), never below 1.
func RetrieveSpeed(base, weight float64) float64 {
	return math.Max(1, base/math.Max(weight, 1))
}

func tipOf(cfg HookConfig, s HookState) core.Vec {
	return cfg.Pivot.Polar(s.Angle, s.Length)
}

// advance is the pure transition function behind Tick.
func advance(s HookState, cfg HookConfig, dt float64, field *Field) (HookState, TickResult) {
	switch s.Phase {
	case PhaseIdle:
		s.Angle += cfg.SwingSpeed * float64(s.SwingDir) * dt
		if s.Angle > cfg.MaxAngle {
			s.Angle = cfg.MaxAngle
			s.SwingDir = -1
		} else if s.Angle < -cfg.MaxAngle {
			s.Angle = -cfg.MaxAngle
			s.SwingDir = 1
		}
		return s, TickResult{Phase: s.Phase}

	case PhaseExtending:
		s.Length += cfg.ExtendSpeed * dt
		tip := tipOf(cfg, s)
		res := TickResult{}

		if field != nil {
			if i := field.HitTest(tip); i >= 0 {
				obj := field.Remove(i)
				s.Carried = &obj
				s.Phase = PhaseRetrieving
				res.Removed = obj.ID
			}
		}
		if s.Phase == PhaseExtending && !core.InBounds(tip, cfg.FieldW, cfg.FieldH) {
			s.Phase = PhaseRetrieving
		}
		res.Phase = s.Phase
		return s, res

	case PhaseRetrieving:
		weight := 1.0
		if s.Carried != nil {
			weight = s.Carried.Weight
		}
		s.Length -= RetrieveSpeed(cfg.RetrieveSpeed, weight) * dt

		res := TickResult{}
		if s.Length <= cfg.MinLength {
			s.Length = cfg.MinLength
			s.Phase = PhaseIdle
			if s.Carried != nil {
				res.Banked = true
				res.ScoreDelta = s.Carried.Value
				s.Carried = nil
			}
		}
		res.Phase = s.Phase
		return s, res
	}

	return s, TickResult{Phase: s.Phase}
}
