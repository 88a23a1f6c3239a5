package runner

import "testing"

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"single", []float64{50}, 50},
		{"odd count", []float64{30, 10, 20}, 20},
		{"even count interpolates", []float64{40, 10, 20, 30}, 25},
		{"outlier resistant", []float64{10, 11, 500}, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := median(tt.values); got != tt.want {
				t.Errorf("median(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	in := []float64{30, 10, 20}
	median(in)
	if in[0] != 30 || in[1] != 10 || in[2] != 20 {
		t.Errorf("input mutated: %v", in)
	}
}
