package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"overlapping", RectF{0, 0, 10, 10}, RectF{5, 5, 10, 10}, true},
		{"fractional overlap", RectF{0, 0, 1.5, 1.5}, RectF{1.4, 1.4, 1, 1}, true},
		{"touching edges", RectF{0, 0, 10, 10}, RectF{10, 0, 10, 10}, false},
		{"apart vertically", RectF{0, 0, 10, 10}, RectF{0, 10.5, 10, 10}, false},
		{"contained", RectF{0, 0, 20, 20}, RectF{5, 5, 2, 2}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := RectF{X: 2.5, Y: 1, W: 5, H: 3}
	if r.Right() != 7.5 || r.Bottom() != 4 {
		t.Errorf("edges = (%f, %f), expected (7.5, 4)", r.Right(), r.Bottom())
	}
}
