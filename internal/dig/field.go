package dig

import "github.com/vovakirdan/hook-digger/internal/core"

// Field is the ordered set of objects still buried in a round.
// It is owned by the driver and lent to HookSimulator.Tick, which may remove
// at most one object per tick.
type Field struct {
	objects []GameObject
}

// NewField creates a field holding a copy of objs, in order.
func NewField(objs []GameObject) *Field {
	f := &Field{}
	f.Replace(objs)
	return f
}

// Replace discards the current contents and loads a copy of objs.
func (f *Field) Replace(objs []GameObject) {
	f.objects = append(f.objects[:0], objs...)
}

// Len returns the number of live objects.
func (f *Field) Len() int {
	return len(f.objects)
}

// Objects returns the live objects in field order. Callers must not modify
// the returned slice.
func (f *Field) Objects() []GameObject {
	return f.objects
}

// At returns the object at index i.
func (f *Field) At(i int) GameObject {
	return f.objects[i]
}

// HitTest returns the index of the first object whose bounding box contains
// p, or -1. When boxes overlap, the earliest object in field order wins.
func (f *Field) HitTest(p core.Vec) int {
	for i := range f.objects {
		if f.objects[i].Bounds().Contains(p) {
			return i
		}
	}
	return -1
}

// Remove deletes and returns the object at index i, keeping the order of the
// remaining objects.
func (f *Field) Remove(i int) GameObject {
	obj := f.objects[i]
	f.objects = append(f.objects[:i], f.objects[i+1:]...)
	return obj
}

// TotalValue sums the value of every live object.
func (f *Field) TotalValue() int {
	total := 0
	for _, o := range f.objects {
		total += o.Value
	}
	return total
}
