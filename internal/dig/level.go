package dig

// LevelConfig describes one level. It is read-only during generation.
type LevelConfig struct {
	TargetScore int
	TimeLimit   int // Seconds
	ObjectCount int

	// ItemDistribution holds relative kind weights. They need not sum to 1.
	// A nil map, or one whose weights are all zero, selects the fallback mix.
	ItemDistribution map[Kind]float64

	// MinSpawnDepthFactor pushes the top of the spawn band down from the
	// surface: 0 allows objects right under the surface, 1 or more keeps them
	// at the bottom edge.
	MinSpawnDepthFactor float64
}

// DefaultDistribution is the classic kind mix.
func DefaultDistribution() map[Kind]float64 {
	return map[Kind]float64{
		KindCommon:   0.5,
		KindHeavy:    0.2,
		KindPrecious: 0.2,
		KindWildcard: 0.1,
	}
}
