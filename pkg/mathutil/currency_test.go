package mathutil

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"rounds up", 1.005, 1.0},
		{"rounds down", 1.004, 1.0},
		{"preserves cents", 1438.92, 1438.92},
		{"negative", -946.085, -946.08},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if !WithinTolerance(result, tt.expected, 0.001) {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Error("IsZero(0.005) = false, expected true")
	}
	if !IsZero(-0.005) {
		t.Error("IsZero(-0.005) = false, expected true")
	}
	if IsZero(0.02) {
		t.Error("IsZero(0.02) = true, expected false")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		min      float64
		max      float64
		expected float64
	}{
		{"below range", -5, 0, 100, 0},
		{"above range", 110, 0, 100, 100},
		{"inside range", 70, 0, 100, 70},
		{"at lower bound", 0, 0, 100, 0},
		{"at upper bound", 100, 0, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Clamp(tt.val, tt.min, tt.max); result != tt.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tt.val, tt.min, tt.max, result, tt.expected)
			}
		})
	}
}

func TestApplyPercentage(t *testing.T) {
	if result := ApplyPercentage(300000, 20); result != 60000 {
		t.Errorf("ApplyPercentage(300000, 20) = %v, expected 60000", result)
	}
	if result := ApplyPercentage(100000, 0); result != 0 {
		t.Errorf("ApplyPercentage(100000, 0) = %v, expected 0", result)
	}
}

func TestPercentageOf(t *testing.T) {
	if result := PercentageOf(60000, 300000); result != 20 {
		t.Errorf("PercentageOf(60000, 300000) = %v, expected 20", result)
	}
	if result := PercentageOf(50, 0); result != 0 {
		t.Errorf("PercentageOf(50, 0) = %v, expected 0", result)
	}
}
