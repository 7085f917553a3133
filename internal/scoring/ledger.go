package scoring

import "iter"

// EntryKind tags how a ledger entry came to be.
type EntryKind string

const (
	// KindNormal is a regular score entered by a human.
	KindNormal EntryKind = "normal"
	// KindRoundWinner marks the player who went out this round. The
	// amount is always 0.
	KindRoundWinner EntryKind = "roundWinner"
	// KindBust records a turn that produced no score ("farkle"). The
	// amount is always 0; the entry exists for history only.
	KindBust EntryKind = "bust"
)

// Entry is one dated score event in a player's ledger. Immutable once
// created except for removal.
type Entry struct {
	ID       string
	Sequence int // round or turn number, for display only
	Amount   int
	Kind     EntryKind
}

// Ledger is the ordered, appendable and revocable record of one player's
// scoring events. It is the single source of truth for the player's
// total: the total is always derived by summing, never cached, so
// removing history can never desynchronize it.
type Ledger struct {
	entries []Entry
}

// Append adds an entry at the end and returns it. Insertion order is
// chronological order regardless of the sequence number, which only
// records the round or turn the entry belongs to. Zero-only kinds have
// their amount forced to 0 no matter what was submitted.
func (l *Ledger) Append(kind EntryKind, amount, sequence int) Entry {
	if kind == KindRoundWinner || kind == KindBust {
		amount = 0
	}
	e := Entry{
		ID:       NewID(),
		Sequence: sequence,
		Amount:   amount,
		Kind:     kind,
	}
	l.entries = append(l.entries, e)
	return e
}

// restore re-adds a previously persisted entry, keeping its id.
func (l *Ledger) restore(e Entry) {
	if e.Kind == KindRoundWinner || e.Kind == KindBust {
		e.Amount = 0
	}
	if e.ID == "" {
		e.ID = NewID()
	}
	l.entries = append(l.entries, e)
}

// Remove deletes the entry with the given id. Removing an entry that is
// already gone is a no-op, keeping deletion idempotent.
func (l *Ledger) Remove(entryID string) {
	for i, e := range l.entries {
		if e.ID == entryID {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Total sums the amounts of all remaining entries.
func (l *Ledger) Total() int {
	sum := 0
	for _, e := range l.entries {
		sum += e.Amount
	}
	return sum
}

// Len reports how many entries the ledger holds, busts included.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the ledger in chronological order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Recent yields up to n entries, most recent first. The sequence is lazy
// and can be ranged over any number of times; it never mutates the
// ledger.
func (l *Ledger) Recent(n int) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i := len(l.entries) - 1; i >= 0 && len(l.entries)-1-i < n; i-- {
			if !yield(l.entries[i]) {
				return
			}
		}
	}
}

func (l *Ledger) reset() {
	l.entries = nil
}
