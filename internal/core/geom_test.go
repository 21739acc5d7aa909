package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.5, 9.5, 10, 10),
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

func TestBoxCircleIntersects(t *testing.T) {
	b := NewBox(100, 0, 62, 200)

	tests := []struct {
		name     string
		center   Vec2
		radius   float64
		expected bool
	}{
		{"inside", Vec2{X: 120, Y: 100}, 5, true},
		{"touching left edge", Vec2{X: 90, Y: 100}, 10, true},
		{"left of box", Vec2{X: 80, Y: 100}, 10, false},
		{"near corner outside", Vec2{X: 92, Y: 208}, 10, false},
		{"near corner inside", Vec2{X: 95, Y: 205}, 10, true},
		{"above box", Vec2{X: 130, Y: 220}, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.CircleIntersects(tc.center, tc.radius); got != tc.expected {
				t.Errorf("CircleIntersects(%v, %v) = %v, expected %v", tc.center, tc.radius, got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 15)

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Top() != 25 {
		t.Errorf("Top() = %v, expected 25", b.Top())
	}
	if c := b.Center(); c.X != 15 || c.Y != 17.5 {
		t.Errorf("Center() = %v, expected (15, 17.5)", c)
	}
	moved := b.Translate(Vec2{X: -5, Y: 1})
	if moved.X != 0 || moved.Y != 11 {
		t.Errorf("Translate() = %v, expected origin (0, 11)", moved)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
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
		{-0.5, -1.0, 0.0, -0.5},
		{-1.5, -1.0, 0.0, -1.0},
		{0.28, -1.0, 0.0, 0.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestRandRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := RandRange(rng, 40, 360)
		if v < 40 || v >= 360 {
			t.Fatalf("RandRange(40, 360) = %f, out of range", v)
		}
	}
}

func TestQuantize(t *testing.T) {
	q := Quantize(123.4567, 64)
	if math.Mod(q*64, 1) != 0 {
		t.Errorf("Quantize() = %v, not on the 1/64 grid", q)
	}
	if q > 123.4567 || 123.4567-q >= 1.0/64 {
		t.Errorf("Quantize() = %v, expected the grid step just below the input", q)
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
