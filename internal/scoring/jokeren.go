package scoring

// JokerenRules implements the Amerikaans Jokeren variant: penalty points
// accumulate every round and the lowest total wins.
type JokerenRules struct{}

// Spec returns metadata about the variant.
func (JokerenRules) Spec() VariantSpec {
	return VariantSpec{
		ID:          "jokeren",
		Name:        "Amerikaans Jokeren",
		StorageKey:  "amerikaans-jokeren",
		QuickScores: []int{5, 10, 15, 20, 25, 30, 40, 50, 100},
	}
}

// Ranking orders standings with the lowest total first.
func (JokerenRules) Ranking() RankOrder {
	return LowestFirst
}

// Evaluate decides game end from the configured condition. The round
// counter has already been advanced when a round commits, so a fixed
// N-round game is over once the counter passes N. With no end condition
// the session only ends by an explicit new game.
func (r JokerenRules) Evaluate(s *Session) Outcome {
	if s.Roster.Len() == 0 {
		return Outcome{}
	}

	ended := false
	switch s.Settings.EndCondition {
	case EndRounds:
		ended = s.Round > s.Settings.MaxRounds
	case EndPoints:
		for _, p := range s.Roster.Players() {
			if p.Total() >= s.Settings.MaxPoints {
				ended = true
				break
			}
		}
	}
	if !ended {
		return Outcome{}
	}
	return Outcome{Ended: true, Winner: s.Roster.Sorted(r.Ranking())[0]}
}
