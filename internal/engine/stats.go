package engine

import (
	"github.com/Apurva9997/planning-poker/internal/domain"
)

// VoteStats summarizes a revealed round over the voting players.
// Observers never count; non-numeric cards ("?" and "☕") count as cast
// votes but are excluded from the average.
type VoteStats struct {
	Average   *float64            `json:"average,omitempty"`
	VotesCast int                 `json:"votesCast"`
	Voters    int                 `json:"voters"`
	Counts    map[domain.Card]int `json:"counts"`
}

// VoteStatistics computes on-demand round statistics; nothing is stored.
func VoteStatistics(players []*domain.Player) VoteStats {
	stats := VoteStats{Counts: make(map[domain.Card]int)}
	var sum float64
	var numeric int
	for _, p := range players {
		if p.IsObserver {
			continue
		}
		stats.Voters++
		if p.Vote == domain.NoVote {
			continue
		}
		stats.VotesCast++
		stats.Counts[p.Vote]++
		if v, ok := p.Vote.Numeric(); ok {
			sum += v
			numeric++
		}
	}
	if numeric > 0 {
		avg := sum / float64(numeric)
		stats.Average = &avg
	}
	return stats
}
