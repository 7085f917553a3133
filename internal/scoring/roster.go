package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// palette cycles by join order. Colors are assigned once at add time and
// never reshuffled when players leave.
var palette = []string{"#e94560", "#08d9d6", "#f9ed69", "#b537f2", "#06d6a0", "#ff6b6b"}

const defaultNamePrefix = "Speler"

// Player is one named, colored participant. Identity never changes; the
// name may be edited at any time.
type Player struct {
	ID     string
	Name   string
	Color  string
	Ledger Ledger
}

// Total is the player's derived score.
func (p *Player) Total() int {
	return p.Ledger.Total()
}

// RankOrder picks which end of the totals ranking wins.
type RankOrder int

const (
	// LowestFirst ranks ascending by total (elimination games).
	LowestFirst RankOrder = iota
	// HighestFirst ranks descending by total (race games).
	HighestFirst
)

// Roster is the ordered set of players. Insertion order is meaningful:
// it fixes the default turn order and breaks ranking ties.
type Roster struct {
	players []*Player
}

// AddPlayer appends a player. An empty name gets the next sequential
// default. The color comes from the palette position of the current
// roster size.
func (r *Roster) AddPlayer(name string) *Player {
	if strings.TrimSpace(name) == "" {
		name = fmt.Sprintf("%s %d", defaultNamePrefix, len(r.players)+1)
	}
	p := &Player{
		ID:    NewID(),
		Name:  name,
		Color: palette[len(r.players)%len(palette)],
	}
	r.players = append(r.players, p)
	return p
}

// RemovePlayer deletes a player and its ledger permanently. Unknown ids
// are a no-op. Remaining players keep their ids and colors.
func (r *Roster) RemovePlayer(id string) bool {
	for i, p := range r.players {
		if p.ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return true
		}
	}
	return false
}

// Rename replaces the player's name. Blank or whitespace-only input is
// never stored; it falls back to the default placeholder.
func (r *Roster) Rename(id, name string) {
	p, ok := r.Player(id)
	if !ok {
		return
	}
	if strings.TrimSpace(name) == "" {
		name = defaultNamePrefix
	}
	p.Name = name
}

// Player looks up a player by id.
func (r *Roster) Player(id string) (*Player, bool) {
	for _, p := range r.players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Players returns the roster in insertion order. The slice is a copy;
// the players themselves are shared.
func (r *Roster) Players() []*Player {
	out := make([]*Player, len(r.players))
	copy(out, r.players)
	return out
}

// Len reports the roster size.
func (r *Roster) Len() int {
	return len(r.players)
}

// Sorted returns the players ordered by total score. The sort is stable,
// so tied players keep their roster order.
func (r *Roster) Sorted(order RankOrder) []*Player {
	out := r.Players()
	sort.SliceStable(out, func(i, j int) bool {
		if order == HighestFirst {
			return out[i].Total() > out[j].Total()
		}
		return out[i].Total() < out[j].Total()
	})
	return out
}

// RankOf returns the 1-based position of the player in the Sorted order,
// or 0 for an unknown id. Recomputed on every call.
func (r *Roster) RankOf(id string, order RankOrder) int {
	for i, p := range r.Sorted(order) {
		if p.ID == id {
			return i + 1
		}
	}
	return 0
}

// ResetAllLedgers clears every ledger while keeping player identities,
// names and colors. This is "new game, same players".
func (r *Roster) ResetAllLedgers() {
	for _, p := range r.players {
		p.Ledger.reset()
	}
}
