package bindings

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/robinvb/scorebord/internal/scoring"
	"github.com/robinvb/scorebord/internal/store"
)

// JokerenModule is the Wails-bound surface of the Amerikaans Jokeren
// tracker. The frontend only ever calls these methods and renders the
// snapshots they return; it never holds engine state of its own.
type JokerenModule struct {
	ctx     context.Context
	mu      sync.Mutex
	log     zerolog.Logger
	store   store.Store
	session *scoring.Session
	fx      celebrator
}

// NewJokerenModule creates the module with an empty session.
func NewJokerenModule(logger zerolog.Logger) *JokerenModule {
	return &JokerenModule{
		log:     logger.With().Str("module", "jokeren").Logger(),
		session: scoring.NewSession(scoring.JokerenRules{}),
		fx:      noopCelebrator{},
	}
}

// startup restores the persisted session. A missing or corrupt payload
// silently yields a fresh one.
func (m *JokerenModule) startup(ctx context.Context, st store.Store) {
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

	s, err := scoring.UnmarshalJokeren(payload)
	if err != nil {
		m.log.Warn().Err(err).Msg("corrupt session payload; starting fresh")
		return
	}
	m.session = s
}

// JokerenScore is one round entry in a player's ledger.
type JokerenScore struct {
	ID       string `json:"id"`
	Round    int    `json:"round"`
	Value    int    `json:"value"`
	IsWinner bool   `json:"isWinner"`
}

// JokerenPlayer is the frontend-facing view of one player.
type JokerenPlayer struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Color  string         `json:"color"`
	Total  int            `json:"total"`
	Rank   int            `json:"rank"`
	Scores []JokerenScore `json:"scores"`
}

// JokerenSettings mirrors the engine's end-condition settings.
type JokerenSettings struct {
	EndCondition string `json:"endCondition"`
	MaxRounds    int    `json:"maxRounds"`
	MaxPoints    int    `json:"maxPoints"`
}

// JokerenState is the full snapshot the frontend renders.
type JokerenState struct {
	Players      []JokerenPlayer `json:"players"`
	CurrentRound int             `json:"currentRound"`
	Settings     JokerenSettings `json:"settings"`
	GameEnded    bool            `json:"gameEnded"`
	WinnerID     string          `json:"winnerId,omitempty"`
}

// RoundSubmission carries one completed round: a value per player plus
// the optional round winner, whose value is forced to zero.
type RoundSubmission struct {
	Scores   map[string]int `json:"scores"`
	WinnerID string         `json:"winnerId"`
}

func (m *JokerenModule) snapshot() JokerenState {
	s := m.session
	state := JokerenState{
		Players:      make([]JokerenPlayer, 0, s.Roster.Len()),
		CurrentRound: s.Round,
		Settings: JokerenSettings{
			EndCondition: string(s.Settings.EndCondition),
			MaxRounds:    s.Settings.MaxRounds,
			MaxPoints:    s.Settings.MaxPoints,
		},
		GameEnded: s.Ended(),
	}
	if w := s.Winner(); w != nil {
		state.WinnerID = w.ID
	}
	for _, p := range s.Roster.Players() {
		pj := JokerenPlayer{
			ID:     p.ID,
			Name:   p.Name,
			Color:  p.Color,
			Total:  p.Total(),
			Rank:   s.RankOf(p.ID),
			Scores: make([]JokerenScore, 0, p.Ledger.Len()),
		}
		for _, e := range p.Ledger.Entries() {
			pj.Scores = append(pj.Scores, JokerenScore{
				ID:       e.ID,
				Round:    e.Sequence,
				Value:    e.Amount,
				IsWinner: e.Kind == scoring.KindRoundWinner,
			})
		}
		state.Players = append(state.Players, pj)
	}
	return state
}

// persist writes the session through to the store. Storage trouble is
// logged, not surfaced: the session keeps working in memory.
func (m *JokerenModule) persist() {
	if m.store == nil {
		return
	}
	payload, err := scoring.MarshalJokeren(m.session)
	if err != nil {
		m.log.Error().Err(err).Msg("encode session")
		return
	}
	if err := m.store.Save(m.ctx, m.session.Rules().Spec().StorageKey, payload); err != nil {
		m.log.Warn().Err(err).Msg("persist session")
	}
}

// State returns the current snapshot without mutating anything.
func (m *JokerenModule) State() JokerenState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// Meta returns static variant metadata for the frontend.
func (m *JokerenModule) Meta() scoring.VariantSpec {
	return m.session.Rules().Spec()
}

// AddPlayer joins a new player with a default name.
func (m *JokerenModule) AddPlayer() JokerenState {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.session.AddPlayer("")
	m.log.Debug().Str("player", p.ID).Msg("player added")
	m.persist()
	return m.snapshot()
}

// RemovePlayer deletes a player permanently. Unknown ids are a no-op.
func (m *JokerenModule) RemovePlayer(id string) JokerenState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session.RemovePlayer(id)
	m.persist()
	return m.snapshot()
}

// RenamePlayer changes a player's display name.
func (m *JokerenModule) RenamePlayer(id, name string) JokerenState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session.Rename(id, name)
	m.persist()
	return m.snapshot()
}

// UpdateSettings replaces the end-condition settings.
func (m *JokerenModule) UpdateSettings(s JokerenSettings) (JokerenState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	err := m.session.UpdateSettings(scoring.Settings{
		EndCondition: scoring.EndCondition(s.EndCondition),
		MaxRounds:    s.MaxRounds,
		MaxPoints:    s.MaxPoints,
	})
	if err != nil {
		return m.snapshot(), err
	}
	m.persist()
	return m.snapshot(), nil
}

// CompleteRound commits one round. The submission must carry a value
// for every non-winner; otherwise nothing changes and the frontend
// keeps prompting.
func (m *JokerenModule) CompleteRound(sub RoundSubmission) (JokerenState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	endedBefore := m.session.Ended()
	if err := m.session.CompleteRound(sub.Scores, sub.WinnerID); err != nil {
		return m.snapshot(), err
	}
	m.log.Debug().Int("round", m.session.Round).Msg("round committed")
	m.persist()

	if m.session.Ended() && !endedBefore {
		if w := m.session.Winner(); w != nil {
			m.fx.Celebrate(m.Meta().ID, w.Name)
		}
	}
	return m.snapshot(), nil
}

// DeleteRoundScore removes one ledger entry; totals follow since they
// are derived. Missing entries are a no-op.
func (m *JokerenModule) DeleteRoundScore(playerID, scoreID string) JokerenState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session.DeleteEntry(playerID, scoreID)
	m.persist()
	return m.snapshot()
}

// PlayerStats returns derived statistics for one player.
func (m *JokerenModule) PlayerStats(playerID string) (scoring.PlayerStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.session.Roster.Player(playerID)
	if !ok {
		return scoring.PlayerStats{}, scoring.ErrUnknownPlayer
	}
	return scoring.StatsFor(p), nil
}

// NewGame clears all ledgers and restarts at round 1 with the same
// players and settings.
func (m *JokerenModule) NewGame() JokerenState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session.NewGame()
	m.log.Info().Msg("new game started")
	m.persist()
	return m.snapshot()
}
