package bindings

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/robinvb/scorebord/internal/scoring"
	"github.com/robinvb/scorebord/internal/store"
)

// TienduizendModule is the Wails-bound surface of the Tienduizend
// tracker.
type TienduizendModule struct {
	ctx     context.Context
	mu      sync.Mutex
	log     zerolog.Logger
	store   store.Store
	session *scoring.Session
	fx      celebrator
}

// NewTienduizendModule creates the module with an empty session.
func NewTienduizendModule(logger zerolog.Logger) *TienduizendModule {
	return &TienduizendModule{
		log:     logger.With().Str("module", "tienduizend").Logger(),
		session: scoring.NewSession(scoring.TienduizendRules{}),
		fx:      noopCelebrator{},
	}
}

func (m *TienduizendModule) startup(ctx context.Context, st store.Store) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctx = ctx
	m.store = st

	key := m.session.Rules().Spec().StorageKey
	payload, err := st.Load(ctx, key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return
	case err != nil:
		m.log.Warn().Err(err).Msg("loading session; starting fresh")
		return
	}

	s, err := scoring.UnmarshalTienduizend(payload)
	if err != nil {
		m.log.Warn().Err(err).Msg("corrupt session payload; starting fresh")
		return
	}
	m.session = s
}

// TienEntry is one turn in a player's history.
type TienEntry struct {
	ID    string `json:"id"`
	Turn  int    `json:"turn"`
	Value int    `json:"value"`
	Type  string `json:"type"` // "add" | "farkle"
}

// TienPlayer is the frontend-facing view of one player.
type TienPlayer struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Color   string      `json:"color"`
	Score   int         `json:"score"`
	Rank    int         `json:"rank"`
	History []TienEntry `json:"history"`
}

// TienState is the full snapshot the frontend renders.
type TienState struct {
	Players            []TienPlayer `json:"players"`
	CurrentPlayerIndex int          `json:"currentPlayerIndex"`
	TargetScore        int          `json:"targetScore"`
	GameEnded          bool         `json:"gameEnded"`
	WinnerID           string       `json:"winnerId,omitempty"`
}

func entryView(e scoring.Entry) TienEntry {
	typ := "add"
	if e.Kind == scoring.KindBust {
		typ = "farkle"
	}
	return TienEntry{ID: e.ID, Turn: e.Sequence, Value: e.Amount, Type: typ}
}

func (m *TienduizendModule) snapshot() TienState {
	s := m.session
	state := TienState{
		Players:            make([]TienPlayer, 0, s.Roster.Len()),
		CurrentPlayerIndex: s.Active,
		TargetScore:        scoring.TargetScore,
		GameEnded:          s.Ended(),
	}
	if w := s.Winner(); w != nil {
		state.WinnerID = w.ID
	}
	for _, p := range s.Roster.Players() {
		pj := TienPlayer{
			ID:      p.ID,
			Name:    p.Name,
			Color:   p.Color,
			Score:   p.Total(),
			Rank:    s.RankOf(p.ID),
			History: make([]TienEntry, 0, p.Ledger.Len()),
		}
		for _, e := range p.Ledger.Entries() {
			pj.History = append(pj.History, entryView(e))
		}
		state.Players = append(state.Players, pj)
	}
	return state
}

func (m *TienduizendModule) persist() {
	if m.store == nil {
		return
	}
	payload, err := scoring.MarshalTienduizend(m.session)
	if err != nil {
		m.log.Error().Err(err).Msg("encode session")
		return
	}
	if err := m.store.Save(m.ctx, m.session.Rules().Spec().StorageKey, payload); err != nil {
		m.log.Warn().Err(err).Msg("persist session")
	}
}

// State returns the current snapshot without mutating anything.
func (m *TienduizendModule) State() TienState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// Meta returns static variant metadata for the frontend.
func (m *TienduizendModule) Meta() scoring.VariantSpec {
	return m.session.Rules().Spec()
}

// AddPlayer joins a new player with a default name.
func (m *TienduizendModule) AddPlayer() TienState {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.session.AddPlayer("")
	m.log.Debug().Str("player", p.ID).Msg("player added")
	m.persist()
	return m.snapshot()
}

// RemovePlayer deletes a player permanently and re-clamps the turn
// pointer. Unknown ids are a no-op.
func (m *TienduizendModule) RemovePlayer(id string) TienState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session.RemovePlayer(id)
	m.persist()
	return m.snapshot()
}

// RenamePlayer changes a player's display name.
func (m *TienduizendModule) RenamePlayer(id, name string) TienState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session.Rename(id, name)
	m.persist()
	return m.snapshot()
}

// RecordScore commits one turn. A zero amount cancels the entry but
// still passes the turn.
func (m *TienduizendModule) RecordScore(playerID string, amount int) (TienState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	endedBefore := m.session.Ended()
	if err := m.session.RecordScore(playerID, amount); err != nil {
		return m.snapshot(), err
	}
	m.persist()

	if m.session.Ended() && !endedBefore {
		if w := m.session.Winner(); w != nil {
			m.fx.Celebrate(m.Meta().ID, w.Name)
		}
	}
	return m.snapshot(), nil
}

// RecordBust records a scoreless turn and passes play on.
func (m *TienduizendModule) RecordBust(playerID string) (TienState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.session.RecordBust(playerID); err != nil {
		return m.snapshot(), err
	}
	m.persist()
	return m.snapshot(), nil
}

// DeleteEntry removes one history entry; the total follows since it is
// derived. Missing entries are a no-op. A finished game stays finished.
func (m *TienduizendModule) DeleteEntry(playerID, entryID string) TienState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session.DeleteEntry(playerID, entryID)
	m.persist()
	return m.snapshot()
}

// History returns up to n most recent entries for a player, newest
// first.
func (m *TienduizendModule) History(playerID string, n int) ([]TienEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.session.Roster.Player(playerID)
	if !ok {
		return nil, scoring.ErrUnknownPlayer
	}
	out := make([]TienEntry, 0, n)
	for e := range p.Ledger.Recent(n) {
		out = append(out, entryView(e))
	}
	return out, nil
}

// PlayerStats returns derived statistics for one player.
func (m *TienduizendModule) PlayerStats(playerID string) (scoring.PlayerStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.session.Roster.Player(playerID)
	if !ok {
		return scoring.PlayerStats{}, scoring.ErrUnknownPlayer
	}
	return scoring.StatsFor(p), nil
}

// NewGame clears all ledgers and hands the first turn back to the first
// player.
func (m *TienduizendModule) NewGame() TienState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session.NewGame()
	m.log.Info().Msg("new game started")
	m.persist()
	return m.snapshot()
}
