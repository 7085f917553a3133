package scoring

import "testing"

func TestLedgerTotalIsDerived(t *testing.T) {
	var l Ledger

	ops := []struct {
		amount int
		want   int
	}{
		{10, 10},
		{15, 25},
		{0, 25},
		{100, 125},
	}
	for _, op := range ops {
		l.Append(KindNormal, op.amount, 1)
		if got := l.Total(); got != op.want {
			t.Errorf("after appending %d: total = %d, want %d", op.amount, got, op.want)
		}
	}
}

func TestLedgerRemoveRestoresTotal(t *testing.T) {
	var l Ledger
	l.Append(KindNormal, 50, 1)
	before := l.Total()

	e := l.Append(KindNormal, 300, 2)
	if l.Total() != before+300 {
		t.Fatalf("total = %d, want %d", l.Total(), before+300)
	}

	l.Remove(e.ID)
	if got := l.Total(); got != before {
		t.Errorf("total after remove = %d, want %d", got, before)
	}
	if l.Len() != 1 {
		t.Errorf("len = %d, want 1", l.Len())
	}
}

func TestLedgerRemoveMissingIsNoop(t *testing.T) {
	var l Ledger
	l.Append(KindNormal, 10, 1)

	l.Remove("nope")
	l.Remove("nope") // idempotent

	if l.Len() != 1 || l.Total() != 10 {
		t.Errorf("ledger changed by missing removal: len=%d total=%d", l.Len(), l.Total())
	}
}

func TestLedgerZeroOnlyKindsForceAmountZero(t *testing.T) {
	var l Ledger

	winner := l.Append(KindRoundWinner, 25, 3)
	if winner.Amount != 0 {
		t.Errorf("round-winner amount = %d, want 0", winner.Amount)
	}

	bust := l.Append(KindBust, 500, 4)
	if bust.Amount != 0 {
		t.Errorf("bust amount = %d, want 0", bust.Amount)
	}

	if l.Total() != 0 {
		t.Errorf("total = %d, want 0", l.Total())
	}
}

func TestLedgerBustCountsInHistoryNotInSum(t *testing.T) {
	var l Ledger
	l.Append(KindNormal, 100, 1)
	l.Append(KindBust, 0, 2)

	if l.Len() != 2 {
		t.Errorf("len = %d, want 2", l.Len())
	}
	if l.Total() != 100 {
		t.Errorf("total = %d, want 100", l.Total())
	}
}

func TestLedgerRecent(t *testing.T) {
	var l Ledger
	for i := 1; i <= 5; i++ {
		l.Append(KindNormal, i*10, i)
	}

	var got []int
	for e := range l.Recent(3) {
		got = append(got, e.Amount)
	}
	want := []int{50, 40, 30}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %d, want %d", i, got[i], want[i])
		}
	}

	// The sequence must be re-iterable.
	count := 0
	for range l.Recent(3) {
		count++
	}
	if count != 3 {
		t.Errorf("second iteration yielded %d entries, want 3", count)
	}

	// Asking for more than exists yields everything.
	count = 0
	for range l.Recent(100) {
		count++
	}
	if count != 5 {
		t.Errorf("unbounded iteration yielded %d entries, want 5", count)
	}
}

func TestLedgerRecentEarlyStop(t *testing.T) {
	var l Ledger
	for i := 1; i <= 5; i++ {
		l.Append(KindNormal, i, i)
	}

	count := 0
	for range l.Recent(5) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("iterated %d times after break at 2", count)
	}
}

func TestLedgerEntryIDsUnique(t *testing.T) {
	var l Ledger
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		e := l.Append(KindNormal, i, i)
		if seen[e.ID] {
			t.Fatalf("duplicate entry id %q", e.ID)
		}
		seen[e.ID] = true
	}
}
