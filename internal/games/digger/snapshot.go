package digger

import (
	"hash/fnv"
	"math"
)

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization; floats are stored as
// their IEEE-754 bits.
type Snapshot struct {
	Tick       uint64
	Mode       int // 0=Campaign, 1=Rush
	State      string
	Score      int
	Level      int
	RoundScore int
	TimeLeft   int
	Refills    int

	// Hook state
	HookPhase  int
	HookDir    int
	HookAngle  uint64
	HookLength uint64
	Carried    string // Object id, empty when nothing is carried

	// Objects in field order (each object is 6 uint64s: X, Y, W, H, Value, Weight)
	ObjectCount int
	ObjectIDs   []string
	ObjectData  []uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	hs := g.hook.State()

	snap := Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is never negative
		Mode:       int(g.mode),
		State:      g.state,
		Score:      g.score,
		Level:      g.levelNum,
		RoundScore: g.roundScore,
		TimeLeft:   g.timeLeft,
		Refills:    g.refills,
		HookPhase:  int(hs.Phase),
		HookDir:    hs.SwingDir,
		HookAngle:  math.Float64bits(hs.Angle),
		HookLength: math.Float64bits(hs.Length),
	}
	if hs.Carried != nil {
		snap.Carried = hs.Carried.ID.String()
	}

	objs := g.field.Objects()
	snap.ObjectCount = len(objs)
	snap.ObjectIDs = make([]string, len(objs))
	snap.ObjectData = make([]uint64, 0, len(objs)*6)
	for i, o := range objs {
		snap.ObjectIDs[i] = o.ID.String()
		snap.ObjectData = append(snap.ObjectData,
			math.Float64bits(o.Pos.X),
			math.Float64bits(o.Pos.Y),
			math.Float64bits(o.W),
			math.Float64bits(o.H),
			uint64(o.Value), //#nosec G115 -- hash input
			math.Float64bits(o.Weight),
		)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RoundScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TimeLeft)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Refills)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HookPhase)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HookDir)    //#nosec G115 -- hash computation
	h = h*31 + snap.HookAngle
	h = h*31 + snap.HookLength
	h = h*31 + uint64(snap.ObjectCount) //#nosec G115 -- hash computation
	h = h*31 + hashString(snap.State)
	h = h*31 + hashString(snap.Carried)

	for _, id := range snap.ObjectIDs {
		h = h*31 + hashString(id)
	}
	for _, v := range snap.ObjectData {
		h = h*31 + v
	}
	return h
}

func hashString(s string) uint64 {
	f := fnv.New64a()
	_, _ = f.Write([]byte(s))
	return f.Sum64()
}
