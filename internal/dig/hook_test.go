package dig

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/hook-digger/internal/core"
)

func testHookConfig() HookConfig {
	cfg := DefaultHookConfig()
	cfg.Pivot = core.V(400, 100)
	return cfg
}

func testObject(x, y, w, h float64, value int, weight float64) GameObject {
	return GameObject{
		ID:     uuid.New(),
		Pos:    core.V(x, y),
		W:      w,
		H:      h,
		Kind:   KindCommon,
		Value:  value,
		Weight: weight,
	}
}

func TestHookResetState(t *testing.T) {
	h := NewHookSimulator(testHookConfig())
	s := h.State()

	if s.Phase != PhaseIdle || s.Angle != 0 || s.SwingDir != 1 || s.Length != 30 || s.Carried != nil {
		t.Fatalf("reset state = %+v", s)
	}
	if tip := h.Tip(); tip != core.V(400, 130) {
		t.Errorf("Tip() = %+v, expected (400, 130)", tip)
	}
}

func TestHookStraightDownCatch(t *testing.T) {
	h := NewHookSimulator(testHookConfig())
	obj := testObject(400, 500, 40, 40, 100, 2)
	field := NewField([]GameObject{obj})

	h.Trigger()

	extendTicks := 0
	var res TickResult
	for h.Phase() == PhaseExtending {
		res = h.Tick(1, field)
		extendTicks++
		if extendTicks > 1000 {
			t.Fatal("hook never left extending")
		}
	}

	if extendTicks != 70 {
		t.Errorf("extend ticks = %d, expected 70", extendTicks)
	}
	if res.Removed != obj.ID {
		t.Errorf("Removed = %v, expected %v", res.Removed, obj.ID)
	}
	if field.Len() != 0 {
		t.Errorf("field still holds %d objects after capture", field.Len())
	}
	s := h.State()
	if s.Length != 380 || s.Carried == nil || s.Carried.ID != obj.ID {
		t.Fatalf("state after capture = %+v", s)
	}

	retrieveTicks := 0
	banked := 0
	for h.Phase() == PhaseRetrieving {
		res = h.Tick(1, field)
		retrieveTicks++
		if res.Banked {
			banked += res.ScoreDelta
		}
		if retrieveTicks > 1000 {
			t.Fatal("hook never finished retrieving")
		}
	}

	if retrieveTicks != 88 {
		t.Errorf("retrieve ticks = %d, expected 88", retrieveTicks)
	}
	if banked != 100 {
		t.Errorf("banked = %d, expected 100", banked)
	}
	s = h.State()
	if s.Length != 30 || s.Carried != nil || s.Phase != PhaseIdle {
		t.Errorf("state after bank = %+v", s)
	}
}

func TestHookPhaseOrder(t *testing.T) {
	h := NewHookSimulator(testHookConfig())
	field := NewField([]GameObject{testObject(400, 300, 40, 40, 50, 1)})

	allowed := map[Phase]Phase{
		PhaseIdle:       PhaseExtending,
		PhaseExtending:  PhaseRetrieving,
		PhaseRetrieving: PhaseIdle,
	}

	prev := h.Phase()
	for i := 0; i < 2000; i++ {
		if i%7 == 0 {
			h.Trigger()
		}
		if p := h.Phase(); p != prev {
			if allowed[prev] != p {
				t.Fatalf("tick %d: illegal transition %v -> %v", i, prev, p)
			}
			prev = p
		}
		h.Tick(1, field)
		if p := h.Phase(); p != prev {
			if allowed[prev] != p {
				t.Fatalf("tick %d: illegal transition %v -> %v", i, prev, p)
			}
			prev = p
		}
	}
}

func TestHookTriggerIgnoredOutsideIdle(t *testing.T) {
	h := NewHookSimulator(testHookConfig())
	field := NewField(nil)

	h.Trigger()
	h.Tick(1, field)
	before := h.State()

	h.Trigger()
	if after := h.State(); after != before {
		t.Errorf("Trigger while extending changed state: %+v -> %+v", before, after)
	}

	for h.Phase() == PhaseExtending {
		h.Tick(1, field)
	}
	before = h.State()
	h.Trigger()
	if after := h.State(); after != before {
		t.Errorf("Trigger while retrieving changed state: %+v -> %+v", before, after)
	}
}

func TestRetrieveSpeed(t *testing.T) {
	tests := []struct {
		base, weight, want float64
	}{
		{8, 0.5, 8},
		{8, 1, 8},
		{8, 2, 4},
		{8, 4, 2},
		{8, 6, 8.0 / 6},
		{8, 8, 1},
		{8, 100, 1},
	}

	for _, tc := range tests {
		got := RetrieveSpeed(tc.base, tc.weight)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("RetrieveSpeed(%v, %v) = %v, expected %v", tc.base, tc.weight, got, tc.want)
		}
	}
}

func TestHookRetrieveSpeedPerTick(t *testing.T) {
	for _, weight := range []float64{0.5, 1, 3, 6, 20} {
		h := NewHookSimulator(testHookConfig())
		field := NewField([]GameObject{testObject(400, 500, 40, 40, 10, weight)})
		h.Trigger()
		for h.Phase() == PhaseExtending {
			h.Tick(1, field)
		}

		before := h.State().Length
		h.Tick(1, field)
		step := before - h.State().Length

		want := math.Max(1, 8/math.Max(weight, 1))
		if math.Abs(step-want) > 1e-9 {
			t.Errorf("weight %v: step = %v, expected %v", weight, step, want)
		}
		if step < 1 || step > 8 {
			t.Errorf("weight %v: step %v outside [1, 8]", weight, step)
		}
	}
}

func TestHookMissLeavesBounds(t *testing.T) {
	h := NewHookSimulator(testHookConfig())
	field := NewField(nil)

	h.Trigger()
	ticks := 0
	var res TickResult
	for h.Phase() == PhaseExtending {
		res = h.Tick(1, field)
		ticks++
	}

	// Tip y = 100 + L passes 600 once L exceeds 500.
	if ticks != 95 {
		t.Errorf("extend ticks = %d, expected 95", ticks)
	}
	if res.Removed != uuid.Nil || h.State().Carried != nil {
		t.Error("empty retrieve should carry nothing")
	}

	for h.Phase() == PhaseRetrieving {
		res = h.Tick(1, field)
		if res.Banked || res.ScoreDelta != 0 {
			t.Fatalf("empty retrieve banked %+v", res)
		}
	}
}

func TestHookNilField(t *testing.T) {
	h := NewHookSimulator(testHookConfig())
	h.Trigger()

	for i := 0; i < 500; i++ {
		h.Tick(1, nil)
	}
	if h.Phase() != PhaseIdle {
		t.Errorf("phase = %v after a full cycle with no field", h.Phase())
	}
}

func TestHookEmptyField(t *testing.T) {
	emptied := NewField([]GameObject{testObject(400, 500, 40, 40, 100, 2)})
	h := NewHookSimulator(testHookConfig())
	h.Trigger()
	for i := 0; h.Phase() != PhaseIdle; i++ {
		if i > 1000 {
			t.Fatal("capture cycle never returned to idle")
		}
		h.Tick(1, emptied)
	}
	if emptied.Len() != 0 {
		t.Fatalf("field holds %d objects after capture", emptied.Len())
	}

	tests := []struct {
		name  string
		field *Field
	}{
		{"built empty", NewField(nil)},
		{"emptied by capture", emptied},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHookSimulator(testHookConfig())
			h.Trigger()

			extend := 0
			for i := 0; h.Phase() != PhaseIdle; i++ {
				if i > 1000 {
					t.Fatal("hook never returned to idle")
				}
				if h.Phase() == PhaseExtending {
					extend++
				}
				res := h.Tick(1, tc.field)
				if res.Removed != uuid.Nil || res.Banked || res.ScoreDelta != 0 {
					t.Fatalf("tick %d on an empty field: %+v", i, res)
				}
			}
			if extend != 95 {
				t.Errorf("extend ticks = %d, expected 95", extend)
			}
			if tc.field.Len() != 0 || h.State().Carried != nil {
				t.Error("empty field cycle changed the field or carried an object")
			}
		})
	}
}

func TestHookSwingClamps(t *testing.T) {
	cfg := testHookConfig()
	h := NewHookSimulator(cfg)

	sawFlip := false
	for i := 0; i < 500; i++ {
		h.Tick(1, nil)
		s := h.State()
		if math.Abs(s.Angle) > cfg.MaxAngle {
			t.Fatalf("tick %d: angle %v exceeds bound %v", i, s.Angle, cfg.MaxAngle)
		}
		if s.SwingDir == -1 {
			sawFlip = true
		}
	}
	if !sawFlip {
		t.Error("swing direction never flipped")
	}
}

func TestHookDtScalesMotion(t *testing.T) {
	full := NewHookSimulator(testHookConfig())
	half := NewHookSimulator(testHookConfig())
	full.Trigger()
	half.Trigger()

	full.Tick(1, nil)
	half.Tick(0.5, nil)
	half.Tick(0.5, nil)

	if full.State().Length != half.State().Length {
		t.Errorf("length with dt=1 %v, with two dt=0.5 %v", full.State().Length, half.State().Length)
	}
}

func TestHookFirstObjectWins(t *testing.T) {
	first := testObject(400, 400, 60, 60, 1, 1)
	second := testObject(400, 400, 40, 40, 2, 1)

	for run := 0; run < 2; run++ {
		h := NewHookSimulator(testHookConfig())
		field := NewField([]GameObject{first, second})
		h.Trigger()

		var res TickResult
		for h.Phase() == PhaseExtending {
			res = h.Tick(1, field)
		}
		if res.Removed != first.ID {
			t.Fatalf("run %d: removed %v, expected first object %v", run, res.Removed, first.ID)
		}
		if field.Len() != 1 || field.At(0).ID != second.ID {
			t.Fatalf("run %d: remaining field = %+v", run, field.Objects())
		}
	}
}

func TestHookResetDropsCarried(t *testing.T) {
	h := NewHookSimulator(testHookConfig())
	field := NewField([]GameObject{testObject(400, 200, 40, 40, 100, 1)})
	h.Trigger()
	for h.Phase() == PhaseExtending {
		h.Tick(1, field)
	}
	if h.State().Carried == nil {
		t.Fatal("expected a carried object")
	}

	h.Reset()
	if s := h.State(); s.Carried != nil || s.Phase != PhaseIdle || s.Length != 30 {
		t.Errorf("state after Reset = %+v", s)
	}
}

func TestHookStateIsCopy(t *testing.T) {
	h := NewHookSimulator(testHookConfig())
	field := NewField([]GameObject{testObject(400, 200, 40, 40, 100, 1)})
	h.Trigger()
	for h.Phase() == PhaseExtending {
		h.Tick(1, field)
	}

	s := h.State()
	s.Carried.Value = 9999
	if h.State().Carried.Value != 100 {
		t.Error("mutating State().Carried leaked into the simulator")
	}
}
