package scoring

import "github.com/shopspring/decimal"

// PlayerStats are derived display numbers for one player. Computed on
// demand from the ledger, never stored.
type PlayerStats struct {
	Total   int             `json:"total"`
	Turns   int             `json:"turns"` // ledger length, busts included
	Busts   int             `json:"busts"`
	Best    int             `json:"best"`    // highest single entry
	Average decimal.Decimal `json:"average"` // mean per scoring entry, one decimal
}

// StatsFor computes the statistics for a player. Bust entries count as
// turns but are excluded from the average.
func StatsFor(p *Player) PlayerStats {
	st := PlayerStats{
		Total:   p.Total(),
		Turns:   p.Ledger.Len(),
		Average: decimal.Zero,
	}

	sum, scored := 0, 0
	for _, e := range p.Ledger.Entries() {
		switch e.Kind {
		case KindBust:
			st.Busts++
		default:
			sum += e.Amount
			scored++
		}
		if e.Amount > st.Best {
			st.Best = e.Amount
		}
	}
	if scored > 0 {
		st.Average = decimal.NewFromInt(int64(sum)).
			Div(decimal.NewFromInt(int64(scored))).
			Round(1)
	}
	return st
}
