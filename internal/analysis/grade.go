package analysis

// Grade is the four-level maintainability label derived from a score.
type Grade string

const (
	GradeExcellent Grade = "EXCELLENT"
	GradeGood      Grade = "GOOD"
	GradeFair      Grade = "FAIR"
	GradePoor      Grade = "POOR"
)

func (g Grade) Valid() bool {
	switch g {
	case GradeExcellent, GradeGood, GradeFair, GradePoor:
		return true
	}
	return false
}

// GradeFor maps a score to its grade using descending thresholds. Every
// score in [0, 100] maps to exactly one label; cutoffs are inclusive.
func GradeFor(score int, t GradeThresholds) Grade {
	switch {
	case score >= t.Excellent:
		return GradeExcellent
	case score >= t.Good:
		return GradeGood
	case score >= t.Fair:
		return GradeFair
	default:
		return GradePoor
	}
}
