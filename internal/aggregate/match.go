// Package aggregate folds raw per-map player stat rows into per-player totals
// and derives roster splits, head-to-head records and time-window leaders.
//
// The pooling discipline throughout: ratings are always recomputed over summed
// raw counters. Averaging per-map ratings would weight short maps equally with
// long ones, so pooled records always force a recompute.
package aggregate

import (
	"sort"
	"strconv"

	"pug-tracker/internal/domain"
	"pug-tracker/internal/normalize"
)

// AssignmentPolicy names the strategy that placed a player on a side. The
// balanced fallback is a best-effort heuristic over genuinely ambiguous data,
// so callers and tests can see which path fired.
type AssignmentPolicy string

const (
	AssignMatched          AssignmentPolicy = "matched"
	AssignBalancedFallback AssignmentPolicy = "balanced-fallback"
)

// RosterSplit is a MatchRoster plus the per-player assignment policy record.
type RosterSplit struct {
	domain.MatchRoster
	Assignments map[string]AssignmentPolicy
}

// pooledRows groups raw per-map rows by player identity and sums every counter
// field, keeping first-seen order. TotalMaps becomes the row count and the
// source rating is forced to zero so the normalizer recomputes it from the
// pooled totals.
type pooledPlayer struct {
	stat      domain.PlayerStat
	rawTeamID int
}

var summedFields = []struct {
	key     string
	aliases []string
}{
	{"kills", []string{"kills"}},
	{"deaths", []string{"deaths"}},
	{"assists", []string{"assists"}},
	{"roundsplayed", []string{"roundsplayed", "rounds_played"}},
	{"k1", []string{"k1"}}, {"k2", []string{"k2"}}, {"k3", []string{"k3"}},
	{"k4", []string{"k4"}}, {"k5", []string{"k5"}},
	{"v1", []string{"v1"}}, {"v2", []string{"v2"}}, {"v3", []string{"v3"}},
	{"v4", []string{"v4"}}, {"v5", []string{"v5"}},
	{"headshot_kills", []string{"headshot_kills", "hsk"}},
	{"wins", []string{"wins"}},
}

func pooledRows(rows []map[string]any) []pooledPlayer {
	type bucket struct {
		pooled map[string]any
		maps   int
		teamID int
	}
	var order []string
	buckets := make(map[string]*bucket)

	for _, row := range rows {
		id := rowSteamID(row)
		if id == "" {
			continue
		}
		b, seen := buckets[id]
		if !seen {
			b = &bucket{
				pooled: map[string]any{
					"steam_id": id,
					"name":     rowString(row, "name"),
					// a per-map average would be wrong here
					"average_rating": 0,
				},
				teamID: rowInt(row, "team_id", "teamId"),
			}
			buckets[id] = b
			order = append(order, id)
		}
		for _, f := range summedFields {
			b.pooled[f.key] = rowInt(b.pooled, f.key) + rowInt(row, f.aliases...)
		}
		b.maps++
	}

	players := make([]pooledPlayer, 0, len(order))
	for _, id := range order {
		b := buckets[id]
		b.pooled["total_maps"] = b.maps
		players = append(players, pooledPlayer{
			stat:      normalize.Player(b.pooled),
			rawTeamID: b.teamID,
		})
	}
	return players
}

// MatchPlayerStats folds per-map player rows into one per-player total and
// assigns each player to side 1 or 2.
//
// A row whose team identity equals team1ID or team2ID is matched directly.
// Rows that match neither (common in ad-hoc matches with synthetic team ids)
// fall back to whichever side currently has fewer players. Each side is sorted
// by kills descending.
func MatchPlayerStats(rows []map[string]any, team1ID, team2ID int) RosterSplit {
	split := RosterSplit{Assignments: make(map[string]AssignmentPolicy)}

	for _, p := range pooledRows(rows) {
		switch {
		case team1ID != 0 && p.rawTeamID == team1ID:
			split.Team1 = append(split.Team1, p.stat)
			split.Assignments[p.stat.SteamID] = AssignMatched
		case team2ID != 0 && p.rawTeamID == team2ID:
			split.Team2 = append(split.Team2, p.stat)
			split.Assignments[p.stat.SteamID] = AssignMatched
		case len(split.Team1) <= len(split.Team2):
			split.Team1 = append(split.Team1, p.stat)
			split.Assignments[p.stat.SteamID] = AssignBalancedFallback
		default:
			split.Team2 = append(split.Team2, p.stat)
			split.Assignments[p.stat.SteamID] = AssignBalancedFallback
		}
	}

	sortByKills(split.Team1)
	sortByKills(split.Team2)
	return split
}

func sortByKills(players []domain.PlayerStat) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Kills > players[j].Kills
	})
}

// Raw-row accessors. Rows come straight from the envelope unwrapper, so the
// same loose typing rules apply as in the normalizers.

func rowSteamID(row map[string]any) string {
	if s := rowString(row, "steam_id", "steamId"); s != "" {
		return s
	}
	// some endpoints hand steam ids back as numbers
	for _, key := range []string{"steam_id", "steamId"} {
		if n, ok := row[key].(float64); ok {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
	}
	return ""
}

func rowString(row map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := row[key]; ok && v != nil {
			if s, isStr := v.(string); isStr {
				return s
			}
		}
	}
	return ""
}

func rowInt(row map[string]any, keys ...string) int {
	for _, key := range keys {
		if v, ok := row[key]; ok && v != nil {
			switch n := v.(type) {
			case int:
				return n
			case float64:
				return int(n)
			case int64:
				return int(n)
			}
		}
	}
	return 0
}
