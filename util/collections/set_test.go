package collections

import "testing"

func TestSet(t *testing.T) {
	set := make(Set[string])

	if set.Contains("a") {
		t.Error("empty set contains \"a\"")
	}

	set.Add("a")
	set.Add("b")
	set.Add("a")

	if !set.Contains("a") || !set.Contains("b") {
		t.Error("set is missing added elements")
	}
	if got, want := len(set), 2; got != want {
		t.Errorf("len(set) = %d, want %d", got, want)
	}

	set.Remove("a")
	if set.Contains("a") {
		t.Error("set contains \"a\" after Remove")
	}

	set.Remove("never added")
}

func TestSetOfStructs(t *testing.T) {
	type point struct{ x, y int }

	set := make(Set[point])
	set.Add(point{1, 2})

	if !set.Contains(point{1, 2}) {
		t.Error("set is missing an equal struct value")
	}
	if set.Contains(point{2, 1}) {
		t.Error("set contains a different struct value")
	}
}
