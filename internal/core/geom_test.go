package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestVec2Dist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected float64
	}{
		{"same point", V(3, 4), V(3, 4), 0},
		{"3-4-5 triangle", V(0, 0), V(3, 4), 5},
		{"negative coords", V(-1, -1), V(2, 3), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if d := tc.a.Dist(tc.b); math.Abs(d-tc.expected) > 1e-9 {
				t.Errorf("Dist() = %f, expected %f", d, tc.expected)
			}
			if d := tc.b.Dist(tc.a); math.Abs(d-tc.expected) > 1e-9 {
				t.Errorf("Dist() (reversed) = %f, expected %f", d, tc.expected)
			}
		})
	}
}


func TestVec2Add(t *testing.T) {
	got := V(400, 500).Add(V(15, 0))
	if got != V(415, 500) {
		t.Errorf("Add() = %v, expected (415, 500)", got)
	}
}
