package dig

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/hook-digger/internal/core"
)

// bandEpsilon keeps the spawn band at least this tall when the depth factor
// pushes its top past the bottom.
const bandEpsilon = 1.0

// Layout is the field geometry the generator places objects in.
type Layout struct {
	Width    float64
	Height   float64
	SurfaceY float64 // Ground line; nothing spawns above it
	Margin   float64 // Kept clear along the left, right and bottom edges
}

// DefaultLayout returns the classic 800x600 field with the surface at 40%.
func DefaultLayout() Layout {
	return Layout{
		Width:    800,
		Height:   600,
		SurfaceY: 240,
		Margin:   50,
	}
}

// Band is the rectangle object centers are drawn from.
type Band struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Contains reports whether p lies inside the band, edges included.
func (b Band) Contains(p core.Vec) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// LevelGenerator produces object sets for levels.
type LevelGenerator struct {
	layout  Layout
	catalog Catalog
	rng     *rand.Rand
}

// NewLevelGenerator creates a generator drawing from rng. A nil catalog
// selects DefaultCatalog.
func NewLevelGenerator(layout Layout, catalog Catalog, rng *rand.Rand) *LevelGenerator {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &LevelGenerator{
		layout:  layout,
		catalog: catalog,
		rng:     rng,
	}
}

// Layout returns the generator's field geometry.
func (g *LevelGenerator) Layout() Layout {
	return g.layout
}

// SpawnBand computes the placement rectangle for a depth factor.
func (g *LevelGenerator) SpawnBand(depthFactor float64) (Band, error) {
	l := g.layout
	if math.IsNaN(depthFactor) || depthFactor < 0 {
		return Band{}, fmt.Errorf("%w: depth factor %v", ErrInvalidLayout, depthFactor)
	}

	b := Band{
		MinX: l.Margin,
		MaxX: l.Width - l.Margin,
		MinY: l.SurfaceY + depthFactor*(l.Height-l.SurfaceY),
		MaxY: l.Height - l.Margin,
	}
	if b.MaxX < b.MinX || b.MaxY-bandEpsilon < l.SurfaceY {
		return Band{}, fmt.Errorf("%w: layout %+v", ErrInvalidLayout, l)
	}
	if b.MinY > b.MaxY-bandEpsilon {
		b.MinY = b.MaxY - bandEpsilon
	}
	return b, nil
}

// Generate places exactly cfg.ObjectCount objects. Objects may overlap;
// placement does not look at earlier objects.
func (g *LevelGenerator) Generate(cfg LevelConfig) ([]GameObject, error) {
	if cfg.ObjectCount < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeObjectCount, cfg.ObjectCount)
	}
	weights, err := g.kindWeights(cfg.ItemDistribution)
	if err != nil {
		return nil, err
	}
	band, err := g.SpawnBand(cfg.MinSpawnDepthFactor)
	if err != nil {
		return nil, err
	}

	objects := make([]GameObject, 0, cfg.ObjectCount)
	for range cfg.ObjectCount {
		obj, err := g.roll(weights, band)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// kindWeights validates dist and returns per-kind weights in AllKinds order,
// or nil when the fallback mix should be used.
func (g *LevelGenerator) kindWeights(dist map[Kind]float64) ([]float64, error) {
	var weights []float64
	total := 0.0

	if dist != nil {
		for k, w := range dist {
			if _, ok := g.catalog[k]; !ok {
				return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidDistribution, k)
			}
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return nil, fmt.Errorf("%w: %s=%v", ErrInvalidDistribution, k, w)
			}
		}
		weights = make([]float64, len(AllKinds))
		peak := 0.0
		for i, k := range AllKinds {
			weights[i] = dist[k]
			peak = max(peak, weights[i])
		}
		// Scale to the largest weight so the sum stays finite.
		if peak > 0 {
			for i := range weights {
				weights[i] /= peak
				total += weights[i]
			}
		}
	}
	if total == 0 {
		weights = nil
	}

	for i, k := range AllKinds {
		if weights != nil && weights[i] == 0 {
			continue
		}
		if weights == nil && !containsKind(fallbackKinds, k) {
			continue
		}
		if !g.catalog[k].rollable() {
			return nil, fmt.Errorf("%w: no size tiers for kind %q", ErrInvalidDistribution, k)
		}
	}
	return weights, nil
}

func (g *LevelGenerator) roll(weights []float64, band Band) (GameObject, error) {
	kind := g.pickKind(weights)
	spec := g.catalog[kind]
	tier := spec.Tiers[pickIndex(g.rng, tierChances(spec.Tiers))]

	obj := GameObject{
		Kind:   kind,
		W:      tier.W,
		H:      tier.H,
		Value:  tier.Value,
		Weight: tier.Weight,
	}
	if spec.Randomized {
		obj.Value = spec.ValueMin + g.rng.Intn(spec.ValueMax-spec.ValueMin+1)
		obj.Weight = spec.WeightMin + g.rng.Float64()*(spec.WeightMax-spec.WeightMin)
	}

	obj.Pos = core.V(
		band.MinX+g.rng.Float64()*(band.MaxX-band.MinX),
		band.MinY+g.rng.Float64()*(band.MaxY-band.MinY),
	)

	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return GameObject{}, fmt.Errorf("dig: cannot draw object id: %w", err)
	}
	obj.ID = id
	return obj, nil
}

func (g *LevelGenerator) pickKind(weights []float64) Kind {
	if weights == nil {
		return fallbackKinds[g.rng.Intn(len(fallbackKinds))]
	}
	return AllKinds[pickIndex(g.rng, weights)]
}

// pickIndex draws index i with probability weights[i] / sum(weights).
// At least one weight must be positive.
func pickIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}

	r := rng.Float64() * total
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r < w {
			return i
		}
		r -= w
		last = i
	}
	// Float rounding can leave r just above the final bucket.
	return last
}

func tierChances(tiers []Tier) []float64 {
	chances := make([]float64, len(tiers))
	for i, t := range tiers {
		chances[i] = t.Chance
	}
	return chances
}

func (s KindSpec) rollable() bool {
	if len(s.Tiers) == 0 {
		return false
	}
	total := 0.0
	for _, t := range s.Tiers {
		total += t.Chance
	}
	if total <= 0 {
		return false
	}
	if s.Randomized {
		return s.ValueMax >= s.ValueMin && s.WeightMax >= s.WeightMin && s.WeightMin > 0
	}
	return true
}

func containsKind(kinds []Kind, k Kind) bool {
	for _, c := range kinds {
		if c == k {
			return true
		}
	}
	return false
}
