package core

import (
	"math"
	"testing"
)

func TestBoxContains(t *testing.T) {
	b := Box{Center: V(400, 500), W: 40, H: 40}

	tests := []struct {
		name     string
		p        Vec
		expected bool
	}{
		{"center", V(400, 500), true},
		{"top edge inclusive", V(400, 480), true},
		{"bottom-right corner inclusive", V(420, 520), true},
		{"just above", V(400, 479.9), false},
		{"just right", V(420.1, 500), false},
		{"left outside", V(379, 500), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestVecPolar(t *testing.T) {
	pivot := V(400, 100)

	// Angle zero points straight down
	tip := pivot.Polar(0, 50)
	if tip.X != 400 || tip.Y != 150 {
		t.Errorf("Polar(0, 50) = %v, expected (400, 150)", tip)
	}

	// Positive angle swings toward +X
	tip = pivot.Polar(math.Pi/2, 10)
	if math.Abs(tip.X-410) > 1e-9 || math.Abs(tip.Y-100) > 1e-9 {
		t.Errorf("Polar(pi/2, 10) = %v, expected (410, 100)", tip)
	}
}

func TestInBounds(t *testing.T) {
	if !InBounds(V(0, 0), 800, 600) || !InBounds(V(800, 600), 800, 600) {
		t.Error("edges should be in bounds")
	}
	if InBounds(V(-0.1, 10), 800, 600) || InBounds(V(10, 600.5), 800, 600) {
		t.Error("points past an edge should be out of bounds")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if ClampF(1.5, -1, 1) != 1 || ClampF(-1.5, -1, 1) != -1 {
		t.Error("ClampF should clamp to bounds")
	}
}

func TestTickScale(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TickScale() != 1 {
		t.Errorf("TickScale at 60fps = %f, expected 1", cfg.TickScale())
	}
	cfg.TickRate = 30
	if cfg.TickScale() != 2 {
		t.Errorf("TickScale at 30fps = %f, expected 2", cfg.TickScale())
	}
	cfg.TickRate = 0
	if cfg.TickScale() != 1 {
		t.Errorf("TickScale with no rate = %f, expected 1", cfg.TickScale())
	}
}
