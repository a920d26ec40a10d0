package dig

import "errors"

// Precondition failures reported by LevelGenerator.Generate.
var (
	ErrNegativeObjectCount = errors.New("dig: object count must not be negative")
	ErrInvalidDistribution = errors.New("dig: item distribution weights must be finite and non-negative")
	ErrInvalidLayout       = errors.New("dig: spawn band is empty or inverted")
)
