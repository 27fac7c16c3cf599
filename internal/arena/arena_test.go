package arena

import "testing"

type pair struct {
	key         int
	left, right Index
}

func TestArenaReservesNil(t *testing.T) {
	a := New[pair](4)
	if a.Len() != 0 {
		t.Fatalf("expected empty arena, have len=%d", a.Len())
	}
	i := a.Alloc(pair{key: 7})
	if i == Nil {
		t.Fatalf("Alloc must never return Nil")
	}
	if a.Get(Nil) != (pair{}) {
		t.Errorf("Nil slot must hold the zero value, is %+v", a.Get(Nil))
	}
	if a.At(i).key != 7 {
		t.Errorf("expected key 7, got %d", a.At(i).key)
	}
}

func TestArenaIndicesAreStable(t *testing.T) {
	a := New[pair](0)
	var ids []Index
	for k := 0; k < 100; k++ {
		ids = append(ids, a.Alloc(pair{key: k}))
	}
	for k, i := range ids {
		if a.Get(i).key != k {
			t.Fatalf("slot %d holds key %d, expected %d", i, a.Get(i).key, k)
		}
	}
	if a.Len() != 100 {
		t.Errorf("expected 100 nodes, have %d", a.Len())
	}
}

func TestArenaZeroValueUsable(t *testing.T) {
	var a Arena[pair]
	i := a.Alloc(pair{key: 1})
	if i != 1 {
		t.Errorf("first allocation in zero arena should be 1, is %d", i)
	}
}

func TestArenaReset(t *testing.T) {
	a := New[pair](2)
	a.Alloc(pair{key: 1})
	a.Alloc(pair{key: 2})
	a.Reset()
	if a.Len() != 0 {
		t.Fatalf("expected empty arena after reset, have %d", a.Len())
	}
	if i := a.Alloc(pair{key: 3}); i != 1 {
		t.Errorf("expected index 1 after reset, got %d", i)
	}
}

func TestArenaOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for out-of-range index")
		}
	}()
	a := New[pair](0)
	a.At(3)
}
