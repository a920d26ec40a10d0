// Package dig implements the hook digger simulation core: the swinging hook
// state machine, the live object field it collides with, and the level
// generator that fills that field.
//
// Nothing in this package renders, logs, or keeps time. A driver owns the
// Field, calls Generate once per level and HookSimulator.Tick once per frame.
package dig

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vovakirdan/hook-digger/internal/core"
)

// Kind is the category of a collectible object.
type Kind string

const (
	KindCommon   Kind = "common"   // gold
	KindHeavy    Kind = "heavy"    // rock
	KindPrecious Kind = "precious" // diamond
	KindWildcard Kind = "wildcard" // mystery bag
)

// AllKinds lists every kind in the fixed order used for weighted draws.
var AllKinds = []Kind{KindCommon, KindHeavy, KindPrecious, KindWildcard}

// ParseKind accepts a kind name or its classic alias (gold, rock, diamond,
// mystery), case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "common", "gold":
		return KindCommon, nil
	case "heavy", "rock":
		return KindHeavy, nil
	case "precious", "diamond":
		return KindPrecious, nil
	case "wildcard", "mystery":
		return KindWildcard, nil
	}
	return "", fmt.Errorf("dig: unknown object kind %q", s)
}

// GameObject is a collectible placed in the dig field.
// Kind, Value and Weight are fixed at creation.
type GameObject struct {
	ID     uuid.UUID
	Pos    core.Vec // Center point
	W, H   float64
	Kind   Kind
	Value  int
	Weight float64 // > 0, lower means faster retrieval
}

// Bounds returns the object's bounding box.
func (o GameObject) Bounds() core.Box {
	return core.Box{Center: o.Pos, W: o.W, H: o.H}
}
