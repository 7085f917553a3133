package scoring

import (
	"encoding/json"
	"fmt"
)

// Wire layouts. Each variant persists one opaque JSON blob under its
// storage key; the shapes below are the compatibility contract with
// earlier releases, so field names stay as they are.

type jokerenScoreJSON struct {
	ID       string `json:"id"`
	Round    int    `json:"round"`
	Value    int    `json:"value"`
	IsWinner bool   `json:"isWinner"`
}

type jokerenPlayerJSON struct {
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Color  string             `json:"color"`
	Scores []jokerenScoreJSON `json:"scores"`
}

type jokerenSettingsJSON struct {
	EndCondition string `json:"endCondition"`
	MaxRounds    int    `json:"maxRounds"`
	MaxPoints    int    `json:"maxPoints"`
}

type jokerenStateJSON struct {
	Players      []jokerenPlayerJSON `json:"players"`
	CurrentRound int                 `json:"currentRound"`
	Settings     jokerenSettingsJSON `json:"settings"`
	GameEnded    bool                `json:"gameEnded"`
}

type tienHistoryJSON struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
	Type  string `json:"type"` // "add" | "farkle"
}

type tienPlayerJSON struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Color   string            `json:"color"`
	Score   int               `json:"score"`
	History []tienHistoryJSON `json:"history"`
}

type tienStateJSON struct {
	Players            []tienPlayerJSON `json:"players"`
	CurrentPlayerIndex int              `json:"currentPlayerIndex"`
}

// MarshalJokeren serializes a round-based session to its wire layout.
func MarshalJokeren(s *Session) ([]byte, error) {
	state := jokerenStateJSON{
		Players:      make([]jokerenPlayerJSON, 0, s.Roster.Len()),
		CurrentRound: s.Round,
		Settings: jokerenSettingsJSON{
			EndCondition: string(s.Settings.EndCondition),
			MaxRounds:    s.Settings.MaxRounds,
			MaxPoints:    s.Settings.MaxPoints,
		},
		GameEnded: s.Ended(),
	}
	for _, p := range s.Roster.Players() {
		pj := jokerenPlayerJSON{
			ID:     p.ID,
			Name:   p.Name,
			Color:  p.Color,
			Scores: make([]jokerenScoreJSON, 0, p.Ledger.Len()),
		}
		for _, e := range p.Ledger.Entries() {
			pj.Scores = append(pj.Scores, jokerenScoreJSON{
				ID:       e.ID,
				Round:    e.Sequence,
				Value:    e.Amount,
				IsWinner: e.Kind == KindRoundWinner,
			})
		}
		state.Players = append(state.Players, pj)
	}
	return json.Marshal(state)
}

// UnmarshalJokeren rebuilds a round-based session from persisted bytes.
// Any parse failure is returned to the caller, who substitutes a fresh
// session. Out-of-range values are clamped rather than rejected.
func UnmarshalJokeren(data []byte) (*Session, error) {
	var state jokerenStateJSON
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode jokeren session: %w", err)
	}

	s := NewSession(JokerenRules{})
	settings := Settings{
		EndCondition: EndCondition(state.Settings.EndCondition),
		MaxRounds:    state.Settings.MaxRounds,
		MaxPoints:    state.Settings.MaxPoints,
	}
	if settings.Valid() {
		s.Settings = settings
	}
	if state.CurrentRound >= 1 {
		s.Round = state.CurrentRound
	}

	for _, pj := range state.Players {
		p := restorePlayer(&s.Roster, pj.ID, pj.Name, pj.Color)
		for _, sc := range pj.Scores {
			kind := KindNormal
			if sc.IsWinner {
				kind = KindRoundWinner
			}
			p.Ledger.restore(Entry{ID: sc.ID, Sequence: sc.Round, Amount: sc.Value, Kind: kind})
		}
	}

	if state.GameEnded {
		s.ended = true
	} else {
		s.refreshOutcome()
	}
	return s, nil
}

// MarshalTienduizend serializes a turn-based session to its wire layout.
// The score field is the derived total; the history is authoritative.
func MarshalTienduizend(s *Session) ([]byte, error) {
	state := tienStateJSON{
		Players:            make([]tienPlayerJSON, 0, s.Roster.Len()),
		CurrentPlayerIndex: s.Active,
	}
	for _, p := range s.Roster.Players() {
		pj := tienPlayerJSON{
			ID:      p.ID,
			Name:    p.Name,
			Color:   p.Color,
			Score:   p.Total(),
			History: make([]tienHistoryJSON, 0, p.Ledger.Len()),
		}
		for _, e := range p.Ledger.Entries() {
			typ := "add"
			if e.Kind == KindBust {
				typ = "farkle"
			}
			pj.History = append(pj.History, tienHistoryJSON{ID: e.ID, Value: e.Amount, Type: typ})
		}
		state.Players = append(state.Players, pj)
	}
	return json.Marshal(state)
}

// UnmarshalTienduizend rebuilds a turn-based session from persisted
// bytes. Totals are re-derived from the history; the stored score field
// is ignored. An out-of-range turn pointer resets to 0.
func UnmarshalTienduizend(data []byte) (*Session, error) {
	var state tienStateJSON
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode tienduizend session: %w", err)
	}

	s := NewSession(TienduizendRules{})
	for _, pj := range state.Players {
		p := restorePlayer(&s.Roster, pj.ID, pj.Name, pj.Color)
		for i, h := range pj.History {
			kind := KindNormal
			if h.Type == "farkle" {
				kind = KindBust
			}
			p.Ledger.restore(Entry{ID: h.ID, Sequence: i + 1, Amount: h.Value, Kind: kind})
		}
	}

	if state.CurrentPlayerIndex >= 0 && state.CurrentPlayerIndex < s.Roster.Len() {
		s.Active = state.CurrentPlayerIndex
	}
	s.refreshOutcome()
	return s, nil
}

// restorePlayer re-adds a persisted player, preserving id and color but
// sanitizing the same way live input is.
func restorePlayer(r *Roster, id, name, color string) *Player {
	p := r.AddPlayer(name)
	if id != "" {
		p.ID = id
	}
	if color != "" {
		p.Color = color
	}
	return p
}
