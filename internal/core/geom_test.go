package core

import (
	"math"
	"testing"
)

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(V2(0, 0), V2(10, 10)),
			b:        NewBox(V2(5, 5), V2(10, 10)),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        NewBox(V2(0, 0), V2(10, 10)),
			b:        NewBox(V2(15, 0), V2(10, 10)),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewBox(V2(0, 0), V2(10, 10)),
			b:        NewBox(V2(0, -15), V2(10, 10)),
			expected: false,
		},
		{
			name:     "touching edges count",
			a:        NewBox(V2(0, 0), V2(10, 10)),
			b:        NewBox(V2(10, 0), V2(10, 10)),
			expected: true,
		},
		{
			name:     "touching corners count",
			a:        NewBox(V2(0, 0), V2(10, 10)),
			b:        NewBox(V2(10, 10), V2(10, 10)),
			expected: true,
		},
		{
			name:     "contained box",
			a:        NewBox(V2(0, 0), V2(20, 20)),
			b:        NewBox(V2(1, 1), V2(2, 2)),
			expected: true,
		},
		{
			name:     "zero size point on edge",
			a:        NewBox(V2(0, 0), V2(10, 10)),
			b:        NewBox(V2(5, 0), V2(0, 0)),
			expected: true,
		},
		{
			name:     "just apart",
			a:        NewBox(V2(0, 0), V2(10, 10)),
			b:        NewBox(V2(10.5, 0), V2(10, 10)),
			expected: false,
		},
		{
			name:     "gap wider than extents",
			a:        NewBox(V2(0, 0), V2(10, 10)),
			b:        NewBox(V2(20.5, 0), V2(10, 10)),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxCorners(t *testing.T) {
	b := NewBox(V2(10, -4), V2(6, 2))

	if got := b.Min(); got != V2(7, -5) {
		t.Errorf("Min() = %v, expected (7, -5)", got)
	}
	if got := b.Max(); got != V2(13, -3) {
		t.Errorf("Max() = %v, expected (13, -3)", got)
	}
	if got := b.Half(); got != V2(3, 1) {
		t.Errorf("Half() = %v, expected (3, 1)", got)
	}
}

func TestVec2(t *testing.T) {
	v := V2(3, 4)
	if v.Length() != 5 {
		t.Errorf("Length() = %f, expected 5", v.Length())
	}

	n := v.Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Normalize() length = %f, expected 1", n.Length())
	}

	if (Vec2{}).Normalize() != (Vec2{}) {
		t.Error("Normalize() of zero vector should stay zero")
	}

	if got := v.Add(V2(1, -1)).Scale(2); got != V2(8, 6) {
		t.Errorf("Add/Scale = %v, expected (8, 6)", got)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{-700, -370, 370, -370},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
