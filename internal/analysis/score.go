package analysis

// ComputeScore folds the ordered deductions over a full score of 100,
// clamping to [0, 100] after every step. No sequence of deductions can
// produce a value outside that range.
func ComputeScore(deductions []int) int {
	score := 100
	for _, d := range deductions {
		score -= d
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
	}
	return score
}
