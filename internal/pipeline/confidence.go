package pipeline

// aggregateConfidence combines the top score with its margin over the
// runner-up: a dominant discipline yields high confidence, a flat score
// profile pulls it down. Called with the full ranked candidate profile, it is
// monotone non-decreasing when all scores inflate uniformly (the margin is
// unchanged, the top term grows) and bounded to [0, 1].
func aggregateConfidence(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}

	top := scores[0]
	second := 0.0
	if len(scores) > 1 {
		second = scores[1]
	}

	return clamp01(0.7*top + 0.3*(top-second))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
