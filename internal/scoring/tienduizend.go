package scoring

// TargetScore is the fixed winning total of the Tienduizend variant.
const TargetScore = 10000

// TienduizendRules implements the Tienduizend variant: a dice race where
// the first player to reach the target total wins on the spot.
type TienduizendRules struct{}

// Spec returns metadata about the variant.
func (TienduizendRules) Spec() VariantSpec {
	return VariantSpec{
		ID:          "tienduizend",
		Name:        "Tienduizend",
		StorageKey:  "tienduizend",
		TargetScore: TargetScore,
		QuickScores: []int{50, 100, 150, 200, 250, 300, 350, 500, 1000},
	}
}

// Ranking orders standings with the highest total first.
func (TienduizendRules) Ranking() RankOrder {
	return HighestFirst
}

// Evaluate ends the game as soon as any total reaches the target. Ties
// are impossible in practice since the session latches the first winner,
// but roster order breaks them anyway.
func (TienduizendRules) Evaluate(s *Session) Outcome {
	for _, p := range s.Roster.Players() {
		if p.Total() >= TargetScore {
			return Outcome{Ended: true, Winner: p}
		}
	}
	return Outcome{}
}
