package utils

import "testing"

func TestClampFloat64(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{"below min", 0.1, 0.5, 2.5, 0.5},
		{"above max", 9.0, 0.5, 2.5, 2.5},
		{"within range", 1.3, 0.5, 2.5, 1.3},
		{"at min", 0.5, 0.5, 2.5, 0.5},
		{"at max", 2.5, 0.5, 2.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampFloat64(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestFloorAtLeast(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		floor    int
		expected int
	}{
		{"truncates fraction", 4.9, 1, 4},
		{"below floor", 0.3, 1, 1},
		{"exact integer", 6.0, 1, 6},
		{"truncation lands on floor", 1.7, 1, 1},
		{"ram floor", 983.04, 1024, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FloorAtLeast(tt.value, tt.floor)
			if got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestRoundAtLeast(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		floor    int
		expected int
	}{
		{"rounds up", 10.8, 4, 11},
		{"rounds down", 14.4, 5, 14},
		{"below floor", 3.6, 4, 4},
		{"half rounds away from zero", 4.5, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundAtLeast(tt.value, tt.floor)
			if got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3}); got != 2 {
		t.Errorf("Expected mean 2, got %f", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Expected mean of empty slice to be 0, got %f", got)
	}
}

func TestSum(t *testing.T) {
	if got := Sum([]float64{0.5, 1.5, 2}); got != 4 {
		t.Errorf("Expected sum 4, got %f", got)
	}
}
