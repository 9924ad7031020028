package aggregate

import (
	"sort"
	"time"

	"pug-tracker/internal/domain"
)

// Minimum participation before a pooled rating is considered for a leader
// pick. A single hot map is not a week's best performance.
const (
	minLeaderMaps = 2
)

// DecidedSince filters to matches that produced a result and started at or
// after the cutoff.
func DecidedSince(matches []domain.Match, cutoff time.Time) []domain.Match {
	var out []domain.Match
	for _, m := range matches {
		if !m.Decided() || m.StartTime == nil {
			continue
		}
		if m.StartTime.Before(cutoff) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// PoolStats folds raw per-map player rows from any number of matches into one
// cumulative stat line per player, ratings recomputed over the pooled totals.
func PoolStats(batches ...[]map[string]any) []domain.PlayerStat {
	var rows []map[string]any
	for _, batch := range batches {
		rows = append(rows, batch...)
	}
	pooled := pooledRows(rows)
	stats := make([]domain.PlayerStat, 0, len(pooled))
	for _, p := range pooled {
		stats = append(stats, p.stat)
	}
	return stats
}

// WeeklyLeader pools the given matches' rows and picks the player with the
// highest pooled rating, gated on minimum participation. Returns nil when no
// player passes the gate.
func WeeklyLeader(batches ...[]map[string]any) *domain.PlayerStat {
	var best *domain.PlayerStat
	for _, stat := range PoolStats(batches...) {
		if stat.TotalMaps < minLeaderMaps || stat.RoundsPlayed == 0 {
			continue
		}
		if best == nil || stat.AverageRating > best.AverageRating {
			s := stat
			best = &s
		}
	}
	return best
}

// SeasonTotals pools rows across a season's matches into a roster sorted by
// pooled rating descending, kills as the tie-break.
func SeasonTotals(batches ...[]map[string]any) []domain.PlayerStat {
	stats := PoolStats(batches...)
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].AverageRating != stats[j].AverageRating {
			return stats[i].AverageRating > stats[j].AverageRating
		}
		return stats[i].Kills > stats[j].Kills
	})
	return stats
}
