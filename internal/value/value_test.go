package value

import "testing"

func TestEqualScalar(t *testing.T) {
	a := FromScalarF64(1.5)
	b := FromScalarF64(1.5)
	c := FromScalarF64(2.0)
	if !Equal(a, b) {
		t.Error("equal scalars compared unequal")
	}
	if Equal(a, c) {
		t.Error("unequal scalars compared equal")
	}
}

func TestEqualVector(t *testing.T) {
	a := FromVectorF64([]float64{1, 2, 3})
	b := FromVectorF64([]float64{1, 2, 3})
	c := FromVectorF64([]float64{1, 2, 4})
	if !Equal(a, b) {
		t.Error("equal vectors compared unequal")
	}
	if Equal(a, c) {
		t.Error("unequal vectors compared equal")
	}
}

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{True, true},
		{False, false},
		{Nil, false},
		{FromScalarF64(0), false},
		{FromScalarF64(3), true},
	}
	for _, c := range cases {
		got, err := c.v.IsTruthy()
		if err != nil {
			t.Fatalf("IsTruthy() error: %v", err)
		}
		if got != c.want {
			t.Errorf("IsTruthy(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestIsTruthyRejectsNonBoolean(t *testing.T) {
	if _, err := String("x").IsTruthy(); err == nil {
		t.Error("expected error for non-boolean condition")
	}
}

func TestEnsureOwnedCopiesView(t *testing.T) {
	base := FromVector([]float64{1, 2, 3, 4, 5})
	view := base.View1(1, 3, 1)
	if view.Owned {
		t.Fatal("View1 should produce an unowned view")
	}
	owned := view.EnsureOwned()
	if !owned.Owned {
		t.Error("EnsureOwned did not mark result owned")
	}
	owned.Set1(0, 99)
	if view.At1(0) == 99 {
		t.Error("mutating owned copy mutated the original view's backing storage")
	}
}

func TestDictEqualOrderSensitive(t *testing.T) {
	a := Dict([]DictEntry{{String("k"), FromScalarF64(1)}})
	b := Dict([]DictEntry{{String("k"), FromScalarF64(1)}})
	if !Equal(a, b) {
		t.Error("equal dictionaries compared unequal")
	}
	c := Dict([]DictEntry{{String("k"), FromScalarF64(1)}, {String("j"), FromScalarF64(2)}})
	d := Dict([]DictEntry{{String("j"), FromScalarF64(2)}, {String("k"), FromScalarF64(1)}})
	if Equal(c, d) {
		t.Error("dictionaries with the same entries in a different order compared equal")
	}
}
