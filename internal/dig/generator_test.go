package dig

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func newTestGenerator(seed int64) *LevelGenerator {
	return NewLevelGenerator(DefaultLayout(), DefaultCatalog(), rand.New(rand.NewSource(seed)))
}

func defaultLevel(count int) LevelConfig {
	return LevelConfig{
		TargetScore:         650,
		TimeLimit:           60,
		ObjectCount:         count,
		ItemDistribution:    DefaultDistribution(),
		MinSpawnDepthFactor: 0.1,
	}
}

func TestGenerateCountAndBand(t *testing.T) {
	g := newTestGenerator(1)

	objs, err := g.Generate(defaultLevel(200))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(objs) != 200 {
		t.Fatalf("generated %d objects, expected 200", len(objs))
	}

	band, err := g.SpawnBand(0.1)
	if err != nil {
		t.Fatalf("SpawnBand: %v", err)
	}
	if band.MinY != 240+0.1*360 || band.MaxY != 550 || band.MinX != 50 || band.MaxX != 750 {
		t.Errorf("band = %+v", band)
	}

	seen := make(map[string]bool)
	for i, o := range objs {
		if !band.Contains(o.Pos) {
			t.Errorf("object %d at %+v outside band %+v", i, o.Pos, band)
		}
		if o.Pos.Y < 240 {
			t.Errorf("object %d above the surface", i)
		}
		if seen[o.ID.String()] {
			t.Errorf("duplicate id %v", o.ID)
		}
		seen[o.ID.String()] = true
	}
}

func TestGenerateMatchesCatalog(t *testing.T) {
	g := newTestGenerator(2)
	catalog := DefaultCatalog()

	objs, err := g.Generate(defaultLevel(500))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, o := range objs {
		spec, ok := catalog[o.Kind]
		if !ok {
			t.Fatalf("unknown kind %q", o.Kind)
		}
		if spec.Randomized {
			continue
		}
		found := false
		for _, tier := range spec.Tiers {
			if tier.W == o.W && tier.H == o.H && tier.Value == o.Value && tier.Weight == o.Weight {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s object %+v matches no tier", o.Kind, o)
		}
	}
}

func TestGenerateWildcardRanges(t *testing.T) {
	g := newTestGenerator(3)
	cfg := defaultLevel(1000)
	cfg.ItemDistribution = map[Kind]float64{KindWildcard: 1}

	objs, err := g.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	minV, maxV := math.MaxInt, math.MinInt
	for _, o := range objs {
		if o.Kind != KindWildcard {
			t.Fatalf("got kind %q with wildcard-only distribution", o.Kind)
		}
		if o.Value < 25 || o.Value > 800 {
			t.Errorf("wildcard value %d outside [25, 800]", o.Value)
		}
		if o.Weight < 0.5 || o.Weight >= 5 {
			t.Errorf("wildcard weight %v outside [0.5, 5)", o.Weight)
		}
		if o.W != 25 || o.H != 25 {
			t.Errorf("wildcard size %vx%v", o.W, o.H)
		}
		minV = min(minV, o.Value)
		maxV = max(maxV, o.Value)
	}
	if maxV-minV < 500 {
		t.Errorf("wildcard values poorly spread: [%d, %d]", minV, maxV)
	}
}

func TestGenerateZeroCount(t *testing.T) {
	g := newTestGenerator(4)

	objs, err := g.Generate(defaultLevel(0))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if objs == nil || len(objs) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", objs)
	}
}

func TestGenerateFallbackDistribution(t *testing.T) {
	tests := []struct {
		name string
		dist map[Kind]float64
	}{
		{"nil", nil},
		{"empty", map[Kind]float64{}},
		{"all zero", map[Kind]float64{KindCommon: 0, KindHeavy: 0, KindPrecious: 0, KindWildcard: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGenerator(5)
			cfg := defaultLevel(700)
			cfg.ItemDistribution = tc.dist

			objs, err := g.Generate(cfg)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			counts := make(map[Kind]int)
			for _, o := range objs {
				counts[o.Kind]++
			}
			for _, k := range AllKinds {
				if counts[k] == 0 {
					t.Errorf("fallback mix never produced %q", k)
				}
			}
			// Fallback weights common 3/7, precious 1/7.
			if counts[KindCommon] < counts[KindPrecious] {
				t.Errorf("common %d < precious %d", counts[KindCommon], counts[KindPrecious])
			}
		})
	}
}

func TestGenerateProportions(t *testing.T) {
	g := newTestGenerator(6)
	cfg := defaultLevel(10000)

	objs, err := g.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	counts := make(map[Kind]int)
	for _, o := range objs {
		counts[o.Kind]++
	}
	for k, want := range cfg.ItemDistribution {
		got := float64(counts[k]) / float64(len(objs))
		if math.Abs(got-want) > 0.03 {
			t.Errorf("kind %q share = %.3f, expected about %.2f", k, got, want)
		}
	}
}

func TestGenerateHugeWeightsKeepProportions(t *testing.T) {
	g := newTestGenerator(11)
	cfg := defaultLevel(2000)
	cfg.ItemDistribution = map[Kind]float64{
		KindCommon:   math.MaxFloat64,
		KindWildcard: math.MaxFloat64,
	}

	objs, err := g.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	counts := make(map[Kind]int)
	for _, o := range objs {
		counts[o.Kind]++
	}
	if len(counts) != 2 {
		t.Fatalf("kinds drawn = %v, expected common and wildcard", counts)
	}
	share := float64(counts[KindCommon]) / float64(len(objs))
	if math.Abs(share-0.5) > 0.05 {
		t.Errorf("common share = %.3f, expected about 0.5", share)
	}
}

func TestGenerateSkipsZeroWeightKinds(t *testing.T) {
	g := newTestGenerator(7)
	cfg := defaultLevel(300)
	cfg.ItemDistribution = map[Kind]float64{KindHeavy: 2, KindPrecious: 0}

	objs, err := g.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, o := range objs {
		if o.Kind != KindHeavy {
			t.Fatalf("got kind %q, expected only heavy", o.Kind)
		}
	}
}

func TestGeneratePreconditions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LevelConfig)
		want   error
	}{
		{"negative count", func(c *LevelConfig) { c.ObjectCount = -1 }, ErrNegativeObjectCount},
		{"negative weight", func(c *LevelConfig) { c.ItemDistribution[KindHeavy] = -0.5 }, ErrInvalidDistribution},
		{"NaN weight", func(c *LevelConfig) { c.ItemDistribution[KindCommon] = math.NaN() }, ErrInvalidDistribution},
		{"infinite weight", func(c *LevelConfig) { c.ItemDistribution[KindCommon] = math.Inf(1) }, ErrInvalidDistribution},
		{"unknown kind", func(c *LevelConfig) { c.ItemDistribution["lava"] = 1 }, ErrInvalidDistribution},
		{"negative depth", func(c *LevelConfig) { c.MinSpawnDepthFactor = -0.2 }, ErrInvalidLayout},
		{"NaN depth", func(c *LevelConfig) { c.MinSpawnDepthFactor = math.NaN() }, ErrInvalidLayout},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultLevel(5)
			tc.mutate(&cfg)

			objs, err := newTestGenerator(8).Generate(cfg)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, expected %v", err, tc.want)
			}
			if objs != nil {
				t.Errorf("expected no objects on error, got %d", len(objs))
			}
		})
	}
}

func TestGenerateInvertedLayout(t *testing.T) {
	layout := Layout{Width: 100, Height: 100, SurfaceY: 90, Margin: 20}
	g := NewLevelGenerator(layout, nil, rand.New(rand.NewSource(1)))

	if _, err := g.Generate(defaultLevel(3)); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("err = %v, expected ErrInvalidLayout", err)
	}
}

func TestSpawnBandDeepFactorClamps(t *testing.T) {
	g := newTestGenerator(9)

	for _, f := range []float64{1, 1.5, 10} {
		band, err := g.SpawnBand(f)
		if err != nil {
			t.Fatalf("SpawnBand(%v): %v", f, err)
		}
		if band.MaxY-band.MinY < 1 {
			t.Errorf("SpawnBand(%v) height %v < 1", f, band.MaxY-band.MinY)
		}
		if band.MinY > band.MaxY {
			t.Errorf("SpawnBand(%v) inverted: %+v", f, band)
		}
	}

	cfg := defaultLevel(50)
	cfg.MinSpawnDepthFactor = 5
	objs, err := g.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, o := range objs {
		if o.Pos.Y < 549 || o.Pos.Y > 550 {
			t.Errorf("deep object at y=%v, expected within [549, 550]", o.Pos.Y)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := newTestGenerator(42).Generate(defaultLevel(30))
	if err != nil {
		t.Fatal(err)
	}
	b, err := newTestGenerator(42).Generate(defaultLevel(30))
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("object %d differs between seeded runs: %+v vs %+v", i, a[i], b[i])
		}
	}

	c, err := newTestGenerator(43).Generate(defaultLevel(30))
	if err != nil {
		t.Fatal(err)
	}
	if c[0].ID == a[0].ID {
		t.Error("different seeds produced the same first id")
	}
}

func TestGenerateDoesNotMutateConfig(t *testing.T) {
	cfg := defaultLevel(10)
	before := DefaultDistribution()

	if _, err := newTestGenerator(10).Generate(cfg); err != nil {
		t.Fatal(err)
	}
	for k, v := range before {
		if cfg.ItemDistribution[k] != v {
			t.Errorf("distribution[%s] changed to %v", k, cfg.ItemDistribution[k])
		}
	}
}
