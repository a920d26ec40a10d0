package dig

// Tier is one size variant of a kind.
type Tier struct {
	Chance float64 // Relative probability within the kind
	W, H   float64
	Value  int
	Weight float64
}

// KindSpec describes how objects of one kind are rolled. Kinds with
// Randomized set ignore Tiers except for size and draw Value and Weight
// from the given ranges instead.
type KindSpec struct {
	Tiers      []Tier
	Randomized bool
	ValueMin   int // Inclusive
	ValueMax   int // Inclusive
	WeightMin  float64
	WeightMax  float64 // Exclusive
}

// Catalog maps every kind to its roll table.
type Catalog map[Kind]KindSpec

// DefaultCatalog returns the standard tables.
func DefaultCatalog() Catalog {
	return Catalog{
		KindCommon: {Tiers: []Tier{
			{Chance: 0.3, W: 20, H: 20, Value: 50, Weight: 1},
			{Chance: 0.5, W: 30, H: 30, Value: 100, Weight: 2},
			{Chance: 0.2, W: 50, H: 50, Value: 250, Weight: 4},
		}},
		KindHeavy: {Tiers: []Tier{
			{Chance: 0.6, W: 30, H: 25, Value: 11, Weight: 3},
			{Chance: 0.4, W: 45, H: 40, Value: 20, Weight: 6},
		}},
		KindPrecious: {Tiers: []Tier{
			{Chance: 1, W: 15, H: 15, Value: 500, Weight: 1},
		}},
		KindWildcard: {
			Tiers:      []Tier{{Chance: 1, W: 25, H: 25}},
			Randomized: true,
			ValueMin:   25,
			ValueMax:   800,
			WeightMin:  0.5,
			WeightMax:  5,
		},
	}
}

// fallbackKinds is drawn from uniformly when no usable distribution is given.
var fallbackKinds = []Kind{
	KindCommon, KindCommon, KindCommon,
	KindHeavy, KindHeavy,
	KindPrecious,
	KindWildcard,
}
