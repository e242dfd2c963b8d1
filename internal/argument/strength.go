package argument

// Strength score bands. The raw score ranges 0-8.
const (
	strongAt   = 6
	moderateAt = 3
)

// scoreStrength rates the argument 0-8 and maps the score to a band:
// evidence presence and premise/support counts add points, and the
// presence of an acknowledged counterpoint (an opposes edge) adds one
// since addressing objections strengthens an argument.
func scoreStrength(s *Structure) Strength {
	score := 0

	premises := 0
	hasEvidence := false
	for i := range s.Components {
		switch s.Components[i].Type {
		case Premise:
			premises++
		case Evidence:
			hasEvidence = true
		}
	}
	if hasEvidence {
		score += 2
	}
	switch {
	case premises >= 3:
		score += 2
	case premises >= 2:
		score++
	}

	supports := 0
	opposes := 0
	for _, e := range s.LogicalFlow {
		switch e.Relationship {
		case Supports:
			supports++
		case Opposes:
			opposes++
		}
	}
	switch {
	case supports >= 3:
		score += 2
	case supports >= 2:
		score++
	}
	if opposes > 0 {
		score++
	}

	switch {
	case score >= strongAt:
		return Strong
	case score >= moderateAt:
		return Moderate
	default:
		return Weak
	}
}
