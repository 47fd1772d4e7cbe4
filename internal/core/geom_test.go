package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "entity inside player band",
			a:        RectFromBounds(10, 90, 15, 100),
			b:        RectFromBounds(12, 95, 13, 99),
			expected: true,
		},
		{
			name:     "disjoint on x",
			a:        RectFromBounds(10, 90, 15, 100),
			b:        RectFromBounds(20, 95, 24, 99),
			expected: false,
		},
		{
			name:     "disjoint on y",
			a:        RectFromBounds(10, 90, 15, 100),
			b:        RectFromBounds(11, 50, 14, 60),
			expected: false,
		},
		{
			name:     "touching edge horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching edge vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "sliver overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.999, 9.999, 10, 10),
			expected: true,
		},
		{
			name:     "negative coordinates",
			a:        NewRect(-10, -10, 4, 4),
			b:        NewRect(-8, -8, 4, 4),
			expected: true,
		},
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

func TestRectBounds(t *testing.T) {
	r := RectFromBounds(2.5, 90, 7.5, 100)

	if r.Left() != 2.5 || r.Right() != 7.5 {
		t.Errorf("horizontal bounds = [%v, %v], expected [2.5, 7.5]", r.Left(), r.Right())
	}
	if r.Top() != 90 || r.Bottom() != 100 {
		t.Errorf("vertical bounds = [%v, %v], expected [90, 100]", r.Top(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{50, 2.5, 97.5, 50},
		{1, 2.5, 97.5, 2.5},
		{99, 2.5, 97.5, 97.5},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
