package scoring

import (
	"errors"
	"testing"
)

func newJokerenSession(t *testing.T, names ...string) (*Session, []*Player) {
	t.Helper()
	s := NewSession(JokerenRules{})
	players := make([]*Player, 0, len(names))
	for _, n := range names {
		players = append(players, s.AddPlayer(n))
	}
	return s, players
}

func TestCompleteRoundRejectsIncompleteSubmission(t *testing.T) {
	s, ps := newJokerenSession(t, "p1", "p2", "p3")

	err := s.CompleteRound(map[string]int{ps[0].ID: 10}, "")
	if !errors.Is(err, ErrIncompleteRound) {
		t.Fatalf("err = %v, want ErrIncompleteRound", err)
	}

	// Nothing committed.
	if s.Round != 1 {
		t.Errorf("round advanced to %d on failed submission", s.Round)
	}
	for _, p := range ps {
		if p.Ledger.Len() != 0 {
			t.Errorf("%s got entries on failed submission", p.Name)
		}
	}
}

func TestCompleteRoundWinnerExemptFromFill(t *testing.T) {
	s, ps := newJokerenSession(t, "p1", "p2")

	// The winner has no submitted value; that is fine.
	err := s.CompleteRound(map[string]int{ps[1].ID: 10}, ps[0].ID)
	if err != nil {
		t.Fatalf("CompleteRound: %v", err)
	}

	entries := ps[0].Ledger.Entries()
	if len(entries) != 1 || entries[0].Kind != KindRoundWinner || entries[0].Amount != 0 {
		t.Errorf("winner entry = %+v, want round-winner of 0", entries)
	}
	if ps[1].Total() != 10 {
		t.Errorf("p2 total = %d, want 10", ps[1].Total())
	}
	if s.Round != 2 {
		t.Errorf("round = %d, want 2", s.Round)
	}
}

func TestCompleteRoundOnEmptyRoster(t *testing.T) {
	s := NewSession(JokerenRules{})
	if err := s.CompleteRound(nil, ""); !errors.Is(err, ErrNoPlayers) {
		t.Errorf("err = %v, want ErrNoPlayers", err)
	}
}

func TestFixedRoundsScenario(t *testing.T) {
	// End to end: 3 players, two rounds, fixed-rounds limit 2.
	s, ps := newJokerenSession(t, "P1", "P2", "P3")
	if err := s.UpdateSettings(Settings{EndCondition: EndRounds, MaxRounds: 2, MaxPoints: 500}); err != nil {
		t.Fatal(err)
	}

	// Round 1: P1 wins, P2=10, P3=15.
	if err := s.CompleteRound(map[string]int{ps[1].ID: 10, ps[2].ID: 15}, ps[0].ID); err != nil {
		t.Fatal(err)
	}
	if s.Ended() {
		t.Fatal("ended after round 1 of 2")
	}

	// Round 2: P2 wins, P1=5, P3=20.
	if err := s.CompleteRound(map[string]int{ps[0].ID: 5, ps[2].ID: 20}, ps[1].ID); err != nil {
		t.Fatal(err)
	}

	wantTotals := []int{5, 10, 35}
	for i, p := range ps {
		if p.Total() != wantTotals[i] {
			t.Errorf("%s total = %d, want %d", p.Name, p.Total(), wantTotals[i])
		}
	}
	if !s.Ended() {
		t.Fatal("game not ended after final round")
	}
	if w := s.Winner(); w == nil || w.ID != ps[0].ID {
		t.Errorf("winner = %v, want P1 (lowest total)", w)
	}

	// A further round must be rejected.
	if err := s.CompleteRound(map[string]int{ps[0].ID: 1, ps[2].ID: 1}, ps[1].ID); !errors.Is(err, ErrGameOver) {
		t.Errorf("post-end round err = %v, want ErrGameOver", err)
	}
}

func TestPointsCeilingEndsGame(t *testing.T) {
	s, ps := newJokerenSession(t, "a", "b")
	if err := s.UpdateSettings(Settings{EndCondition: EndPoints, MaxRounds: 10, MaxPoints: 100}); err != nil {
		t.Fatal(err)
	}

	if err := s.CompleteRound(map[string]int{ps[0].ID: 40, ps[1].ID: 60}, ""); err != nil {
		t.Fatal(err)
	}
	if s.Ended() {
		t.Fatal("ended below the ceiling")
	}

	if err := s.CompleteRound(map[string]int{ps[0].ID: 10, ps[1].ID: 40}, ""); err != nil {
		t.Fatal(err)
	}
	if !s.Ended() {
		t.Fatal("not ended at the ceiling")
	}
	if w := s.Winner(); w == nil || w.ID != ps[0].ID {
		t.Error("winner should be the player with the lowest total")
	}
}

func TestNoEndConditionNeverAutoEnds(t *testing.T) {
	s, ps := newJokerenSession(t, "a", "b")

	for i := 0; i < 50; i++ {
		if err := s.CompleteRound(map[string]int{ps[0].ID: 100, ps[1].ID: 100}, ""); err != nil {
			t.Fatal(err)
		}
	}
	if s.Ended() {
		t.Error("session with endCondition none auto-ended")
	}
	if s.Round != 51 {
		t.Errorf("round = %d, want 51", s.Round)
	}
}

func TestEvaluateIsPureAndIdempotent(t *testing.T) {
	s, ps := newJokerenSession(t, "a", "b")
	s.Settings = Settings{EndCondition: EndPoints, MaxRounds: 10, MaxPoints: 100}
	ps[0].Ledger.Append(KindNormal, 120, 1)

	rules := JokerenRules{}
	first := rules.Evaluate(s)
	second := rules.Evaluate(s)
	if first.Ended != second.Ended || first.Winner != second.Winner {
		t.Errorf("evaluations differ: %+v vs %+v", first, second)
	}
	if !first.Ended || first.Winner == nil || first.Winner.ID != ps[1].ID {
		t.Errorf("outcome = %+v, want ended with winner b", first)
	}
}

func TestUpdateSettingsValidation(t *testing.T) {
	s, _ := newJokerenSession(t, "a")

	bad := []Settings{
		{EndCondition: "sudden-death", MaxRounds: 10, MaxPoints: 500},
		{EndCondition: EndRounds, MaxRounds: 0, MaxPoints: 500},
		{EndCondition: EndPoints, MaxRounds: 10, MaxPoints: 99},
	}
	for _, st := range bad {
		if err := s.UpdateSettings(st); !errors.Is(err, ErrBadSettings) {
			t.Errorf("UpdateSettings(%+v) = %v, want ErrBadSettings", st, err)
		}
	}
	if s.Settings != DefaultSettings() {
		t.Error("rejected settings mutated the session")
	}

	good := Settings{EndCondition: EndRounds, MaxRounds: 1, MaxPoints: 100}
	if err := s.UpdateSettings(good); err != nil {
		t.Fatal(err)
	}
	if s.Settings != good {
		t.Error("valid settings not applied")
	}
}

func TestJokerenNewGameKeepsRosterAndSettings(t *testing.T) {
	s, ps := newJokerenSession(t, "a", "b")
	settings := Settings{EndCondition: EndRounds, MaxRounds: 2, MaxPoints: 500}
	if err := s.UpdateSettings(settings); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := s.CompleteRound(map[string]int{ps[0].ID: 10, ps[1].ID: 20}, ""); err != nil {
			t.Fatal(err)
		}
	}
	if !s.Ended() {
		t.Fatal("setup: game should have ended")
	}

	s.NewGame()

	if s.Ended() || s.Round != 1 {
		t.Errorf("new game: ended=%v round=%d", s.Ended(), s.Round)
	}
	if s.Roster.Len() != 2 {
		t.Error("new game dropped players")
	}
	if s.Settings != settings {
		t.Error("new game reset settings")
	}
	for _, p := range ps {
		if p.Ledger.Len() != 0 {
			t.Errorf("%s ledger not cleared", p.Name)
		}
	}
}

func TestDeleteRoundScoreAdjustsTotal(t *testing.T) {
	s, ps := newJokerenSession(t, "a", "b")
	if err := s.CompleteRound(map[string]int{ps[0].ID: 10, ps[1].ID: 20}, ""); err != nil {
		t.Fatal(err)
	}

	entry := ps[1].Ledger.Entries()[0]
	s.DeleteEntry(ps[1].ID, entry.ID)
	if ps[1].Total() != 0 {
		t.Errorf("total after delete = %d, want 0", ps[1].Total())
	}

	s.DeleteEntry("missing", entry.ID) // no-op
	s.DeleteEntry(ps[1].ID, "missing") // no-op
}
