package dig

import (
	"testing"

	"github.com/vovakirdan/hook-digger/internal/core"
)

func TestFieldRemoveKeepsOrder(t *testing.T) {
	a := testObject(100, 300, 20, 20, 1, 1)
	b := testObject(200, 300, 20, 20, 2, 1)
	c := testObject(300, 300, 20, 20, 3, 1)
	f := NewField([]GameObject{a, b, c})

	got := f.Remove(1)
	if got.ID != b.ID {
		t.Fatalf("Remove(1) = %v, expected %v", got.ID, b.ID)
	}
	if f.Len() != 2 || f.At(0).ID != a.ID || f.At(1).ID != c.ID {
		t.Errorf("remaining order wrong: %+v", f.Objects())
	}
	if f.TotalValue() != 4 {
		t.Errorf("TotalValue = %d, expected 4", f.TotalValue())
	}
}

func TestFieldHitTest(t *testing.T) {
	objs := []GameObject{
		testObject(100, 300, 20, 20, 1, 1),
		testObject(400, 500, 40, 40, 2, 1),
	}
	f := NewField(objs)

	tests := []struct {
		name string
		p    core.Vec
		want int
	}{
		{"center", core.V(100, 300), 0},
		{"top edge", core.V(400, 480), 1},
		{"corner", core.V(420, 520), 1},
		{"just outside", core.V(400, 479.9), -1},
		{"empty space", core.V(250, 250), -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.HitTest(tc.p); got != tc.want {
				t.Errorf("HitTest(%+v) = %d, expected %d", tc.p, got, tc.want)
			}
		})
	}
}

func TestFieldCopiesInput(t *testing.T) {
	objs := []GameObject{testObject(100, 300, 20, 20, 1, 1)}
	f := NewField(objs)
	objs[0].Value = 999

	if f.At(0).Value != 1 {
		t.Error("NewField should copy its input")
	}

	f.Replace(nil)
	if f.Len() != 0 || f.HitTest(core.V(100, 300)) != -1 {
		t.Error("Replace(nil) should empty the field")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"gold", KindCommon, false},
		{"Rock", KindHeavy, false},
		{" diamond ", KindPrecious, false},
		{"mystery", KindWildcard, false},
		{"wildcard", KindWildcard, false},
		{"lava", "", true},
	}
	for _, tc := range tests {
		got, err := ParseKind(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseKind(%q) = %q, %v", tc.in, got, err)
		}
	}
}
