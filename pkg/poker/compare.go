package poker

// Compare returns 1 if a is stronger than b, -1 if it is weaker and 0 for a draw.
// Category decides first; within a category the tie-break ranks are compared
// lexicographically, most significant rank first.
func Compare(a, b EvaluatedHand) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}

		return -1
	}

	return compareTiebreak(a.Tiebreak, b.Tiebreak)
}

func compareTiebreak(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] > b[i] {
			return 1
		}

		if a[i] < b[i] {
			return -1
		}
	}

	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	default:
		return 0
	}
}

// Beats returns true if this hand is strictly stronger than the other hand
func (h EvaluatedHand) Beats(other EvaluatedHand) bool {
	return Compare(h, other) > 0
}

// Ties returns true if both hands are equal in strength
func (h EvaluatedHand) Ties(other EvaluatedHand) bool {
	return Compare(h, other) == 0
}
