package params

import "testing"

func TestNext_TwoParams(t *testing.T) {
	v := NewView("1;2")
	var a, b int

	more := Next(v, &a)
	if !more || a != 1 {
		t.Fatalf("first Next: more=%v a=%d, want true,1", more, a)
	}
	more = Next(v, &b)
	if more || b != 2 {
		t.Fatalf("second Next: more=%v b=%d, want false,2", more, b)
	}
}

func TestNext_OmittedSlotsKeepDefault(t *testing.T) {
	v := NewView(";1;1234;;")
	vals := [5]int{-1, -1, -1, -1, -1}
	wantMore := []bool{true, true, true, true, false}

	for i := range vals {
		more := Next(v, &vals[i])
		if more != wantMore[i] {
			t.Errorf("slot %d: more=%v, want %v", i, more, wantMore[i])
		}
	}
	want := [5]int{-1, 1, 1234, -1, -1}
	if vals != want {
		t.Errorf("vals = %v, want %v", vals, want)
	}
}

func TestAtEnd(t *testing.T) {
	v := NewView("1;2")
	if v.AtEnd() {
		t.Fatal("AtEnd() true before consuming anything")
	}
	var a, b int
	Next(v, &a)
	Next(v, &b)
	if !v.AtEnd() {
		t.Fatal("AtEnd() false after consuming every parameter")
	}
}

func TestParse_FillsGivenSlotsInOrder(t *testing.T) {
	v := NewView("38;5;196")
	var mode, space, idx int
	Parse("sgr", v, &mode, &space, &idx)
	if mode != 38 || space != 5 || idx != 196 {
		t.Errorf("got (%d,%d,%d), want (38,5,196)", mode, space, idx)
	}
}

func TestParse_EmptyViewLeavesDefaults(t *testing.T) {
	v := NewView("")
	n := -1
	Parse("csi", v, &n)
	if n != -1 {
		t.Errorf("n = %d, want default -1 preserved", n)
	}
}
