package scoring

import "errors"

// Operation-not-applicable conditions. These reject the input without
// mutating anything; the caller re-prompts.
var (
	ErrNoPlayers       = errors.New("scoring: no players in session")
	ErrUnknownPlayer   = errors.New("scoring: unknown player")
	ErrIncompleteRound = errors.New("scoring: round submission incomplete")
	ErrGameOver        = errors.New("scoring: game has ended")
	ErrNegativeAmount  = errors.New("scoring: amount must not be negative")
)

// EndCondition picks how a round-based session finishes.
type EndCondition string

const (
	EndNone   EndCondition = "none"   // manual stop only
	EndRounds EndCondition = "rounds" // fixed number of rounds
	EndPoints EndCondition = "points" // first total at or over the ceiling
)

// Settings configures the end condition of a round-based session.
// Exactly one condition is active at a time.
type Settings struct {
	EndCondition EndCondition
	MaxRounds    int
	MaxPoints    int
}

// DefaultSettings returns the out-of-the-box session settings.
func DefaultSettings() Settings {
	return Settings{EndCondition: EndNone, MaxRounds: 10, MaxPoints: 500}
}

// Valid reports whether the settings are acceptable as user input.
func (s Settings) Valid() bool {
	switch s.EndCondition {
	case EndNone, EndRounds, EndPoints:
	default:
		return false
	}
	return s.MaxRounds >= 1 && s.MaxPoints >= 100
}

// ErrBadSettings rejects settings that fail Valid.
var ErrBadSettings = errors.New("scoring: invalid settings")

// Session is the full mutable state of one game: the roster with its
// ledgers, the turn/round position, the end-condition settings and the
// rules strategy. Once a session has ended it stays ended until NewGame,
// no matter what happens to the ledgers in between.
type Session struct {
	rules Rules

	Roster   Roster
	Round    int // round-based variants: current round, 1-based
	Active   int // turn-based variants: roster index of the player on turn
	Settings Settings

	ended    bool
	winnerID string
}

// NewSession creates an empty session for the given rules.
func NewSession(rules Rules) *Session {
	return &Session{
		rules:    rules,
		Round:    1,
		Settings: DefaultSettings(),
	}
}

// Rules returns the session's variant strategy.
func (s *Session) Rules() Rules {
	return s.rules
}

// AddPlayer adds a player to the roster. An empty name picks the next
// default.
func (s *Session) AddPlayer(name string) *Player {
	return s.Roster.AddPlayer(name)
}

// RemovePlayer deletes a player permanently and re-clamps the active
// turn pointer if it fell out of range.
func (s *Session) RemovePlayer(id string) {
	s.Roster.RemovePlayer(id)
	if s.Active >= s.Roster.Len() {
		s.Active = 0
	}
}

// Rename changes a player's display name.
func (s *Session) Rename(id, name string) {
	s.Roster.Rename(id, name)
}

// UpdateSettings replaces the end-condition settings after validation.
func (s *Session) UpdateSettings(st Settings) error {
	if !st.Valid() {
		return ErrBadSettings
	}
	s.Settings = st
	return nil
}

// CompleteRound commits one round of a round-based game: every player
// receives exactly one score, the round-winner (optional) is forced to
// zero, the round counter advances and the end condition is evaluated.
// Every non-winner must have a submitted value; if any is missing,
// nothing is mutated.
func (s *Session) CompleteRound(scores map[string]int, winnerID string) error {
	if s.Roster.Len() == 0 {
		return ErrNoPlayers
	}
	if s.ended {
		return ErrGameOver
	}
	for _, p := range s.Roster.Players() {
		if p.ID == winnerID {
			continue
		}
		if _, ok := scores[p.ID]; !ok {
			return ErrIncompleteRound
		}
	}

	for _, p := range s.Roster.Players() {
		if p.ID == winnerID {
			p.Ledger.Append(KindRoundWinner, 0, s.Round)
			continue
		}
		p.Ledger.Append(KindNormal, scores[p.ID], s.Round)
	}
	s.Round++
	s.refreshOutcome()
	return nil
}

// RecordScore commits one turn of a turn-based game. A zero amount is a
// cancel: the ledger is untouched but the turn still passes. When the
// entry wins the game the turn pointer stays on the winner; any later
// scores keep the original outcome.
func (s *Session) RecordScore(playerID string, amount int) error {
	p, ok := s.Roster.Player(playerID)
	if !ok {
		return ErrUnknownPlayer
	}
	if amount < 0 {
		return ErrNegativeAmount
	}
	if amount == 0 {
		s.advanceTurn()
		return nil
	}

	endedBefore := s.ended
	p.Ledger.Append(KindNormal, amount, p.Ledger.Len()+1)
	s.refreshOutcome()
	if s.ended && !endedBefore {
		return nil
	}
	s.advanceTurn()
	return nil
}

// RecordBust records a turn that produced no score and always passes the
// turn, win state or not.
func (s *Session) RecordBust(playerID string) error {
	p, ok := s.Roster.Player(playerID)
	if !ok {
		return ErrUnknownPlayer
	}
	p.Ledger.Append(KindBust, 0, p.Ledger.Len()+1)
	s.advanceTurn()
	return nil
}

// DeleteEntry removes one ledger entry. Unknown players or entries are a
// no-op. The player's total follows automatically since it is derived.
// A finished game stays finished.
func (s *Session) DeleteEntry(playerID, entryID string) {
	p, ok := s.Roster.Player(playerID)
	if !ok {
		return
	}
	p.Ledger.Remove(entryID)
}

func (s *Session) advanceTurn() {
	if n := s.Roster.Len(); n > 0 {
		s.Active = (s.Active + 1) % n
	}
}

// refreshOutcome latches the win evaluation. Ending is monotonic within
// a session: once set, neither the flag nor the winner ever changes
// until NewGame.
func (s *Session) refreshOutcome() {
	if s.ended {
		return
	}
	out := s.rules.Evaluate(s)
	if out.Ended {
		s.ended = true
		if out.Winner != nil {
			s.winnerID = out.Winner.ID
		}
	}
}

// Ended reports whether the session has finished.
func (s *Session) Ended() bool {
	return s.ended
}

// Winner returns the winning player of a finished session, nil
// otherwise.
func (s *Session) Winner() *Player {
	if !s.ended {
		return nil
	}
	if s.winnerID != "" {
		if p, ok := s.Roster.Player(s.winnerID); ok {
			return p
		}
	}
	return s.rules.Evaluate(s).Winner
}

// Standings orders the players per the variant's ranking direction.
func (s *Session) Standings() []*Player {
	return s.Roster.Sorted(s.rules.Ranking())
}

// RankOf is the 1-based standing of a player, 0 for unknown ids.
func (s *Session) RankOf(id string) int {
	return s.Roster.RankOf(id, s.rules.Ranking())
}

// NewGame clears every ledger and resets the turn/round position while
// keeping the roster and the settings. This is the only way a finished
// session becomes playable again.
func (s *Session) NewGame() {
	s.Roster.ResetAllLedgers()
	s.Round = 1
	s.Active = 0
	s.ended = false
	s.winnerID = ""
}
