package analysis

import "testing"

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name       string
		deductions []int
		want       int
	}{
		{"no deductions", nil, 100},
		{"single", []int{10}, 90},
		{"sequence", []int{10, 20, 15}, 55},
		{"exactly zero", []int{50, 50}, 0},
		{"clamp below zero", []int{80, 50}, 0},
		{"all penalties stacked", []int{50, 80, 30, 10, 10, 15, 20}, 0},
		{"zero steps are no-ops", []int{0, 0, 30, 0}, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeScore(tt.deductions); got != tt.want {
				t.Errorf("ComputeScore(%v) = %d, want %d", tt.deductions, got, tt.want)
			}
		})
	}
}
