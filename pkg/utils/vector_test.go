package utils

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		dx, dy       float64
		wantX, wantY float64
		wantLength   float64
	}{
		{"水平向量", 3, 0, 1, 0, 3},
		{"3-4-5", 3, 4, 0.6, 0.8, 5},
		{"零向量", 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, l := Normalize(tt.dx, tt.dy)
			if math.IsNaN(x) || math.IsNaN(y) {
				t.Fatal("Normalize produced NaN")
			}
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 || math.Abs(l-tt.wantLength) > 1e-9 {
				t.Errorf("Normalize(%v, %v) = (%v, %v, %v), want (%v, %v, %v)",
					tt.dx, tt.dy, x, y, l, tt.wantX, tt.wantY, tt.wantLength)
			}
		})
	}
}

func TestCapSpeed(t *testing.T) {
	vx, vy := CapSpeed(30, 40, 10)
	if math.Abs(math.Hypot(vx, vy)-10) > 1e-9 {
		t.Errorf("Expected speed 10, got %v", math.Hypot(vx, vy))
	}

	vx, vy = CapSpeed(1, 1, 10)
	if vx != 1 || vy != 1 {
		t.Errorf("Slow vector should be unchanged, got (%v, %v)", vx, vy)
	}

	vx, vy = CapSpeed(0, 0, 10)
	if vx != 0 || vy != 0 {
		t.Errorf("Zero vector should stay zero, got (%v, %v)", vx, vy)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp returned unexpected values")
	}
}
