package utils

import (
	"math"
	"testing"
)

func TestVec2Ints(t *testing.T) {
	tests := []struct {
		name  string
		in    Vec2
		wantW int
		wantH int
	}{
		{"exact", Vec2{X: 1280, Y: 720}, 1280, 720},
		{"fraction rounds up", Vec2{X: 853.33, Y: 640.01}, 854, 641},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.in.Ints()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Ints() = (%d, %d), want (%d, %d)", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	got := Distance(Vec3{X: 0, Y: 0, Z: -10}, Vec3{X: 3, Y: 4, Z: -10})
	if math.Abs(got-5) > 1e-9 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(-1, 1, 0.5); got != 0 {
		t.Errorf("Lerp(-1, 1, 0.5) = %v, want 0", got)
	}
	if got := Lerp(2, 4, 0); got != 2 {
		t.Errorf("Lerp(2, 4, 0) = %v, want 2", got)
	}
	if got := Lerp(2, 4, 1); got != 4 {
		t.Errorf("Lerp(2, 4, 1) = %v, want 4", got)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.3, 0.3},
		{1, 1},
		{7, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.input); got != tt.expected {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
