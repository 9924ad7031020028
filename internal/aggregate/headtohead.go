package aggregate

import (
	"sort"

	"pug-tracker/internal/domain"
)

// WinnerKey is the sentinel roster entry holding the winning team number.
const WinnerKey = "__winner"

// RosterMap maps a player's steam ID to the team number (1 or 2) they played
// on in one match. The WinnerKey entry carries the match winner as a team
// number; it is absent when the match was undecided.
type RosterMap map[string]int

// TeamNumbers builds a RosterMap from one match's raw per-map player rows.
//
// When the match carries real team identities, rows are matched against them.
// Ad-hoc matches expose only synthetic, match-specific team ids with both
// team1_id and team2_id absent; the two distinct raw ids observed in the
// roster are then mapped by numeric ascending order, lower raw id becoming
// team 1. That keeps the mapping stable and reproducible across calls.
func TeamNumbers(rows []map[string]any, match domain.Match) RosterMap {
	roster := make(RosterMap)

	matched := match.Team1ID != 0 || match.Team2ID != 0
	var synthetic map[int]int
	if !matched {
		var ids []int
		seen := make(map[int]bool)
		for _, row := range rows {
			id := rowInt(row, "team_id", "teamId")
			if id != 0 && !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
		sort.Ints(ids)
		synthetic = make(map[int]int, 2)
		for i, id := range ids {
			if i >= 2 {
				break
			}
			synthetic[id] = i + 1
		}
	}

	for _, row := range rows {
		steamID := rowSteamID(row)
		if steamID == "" {
			continue
		}
		teamID := rowInt(row, "team_id", "teamId")
		switch {
		case matched && teamID == match.Team1ID:
			roster[steamID] = 1
		case matched && teamID == match.Team2ID:
			roster[steamID] = 2
		case !matched:
			if n, ok := synthetic[teamID]; ok {
				roster[steamID] = n
			}
		}
	}

	if match.Winner != nil {
		roster[WinnerKey] = *match.Winner
	}
	return roster
}

// HeadToHead scans per-match rosters and counts the encounters between two
// players. A match counts only when both players are present on different
// team numbers and a winner is resolvable.
func HeadToHead(rosters []RosterMap, player1ID, player2ID string) domain.HeadToHead {
	record := domain.HeadToHead{Player1ID: player1ID, Player2ID: player2ID}

	for _, roster := range rosters {
		team1, ok1 := roster[player1ID]
		team2, ok2 := roster[player2ID]
		winner, decided := roster[WinnerKey]
		if !ok1 || !ok2 || team1 == team2 || !decided {
			continue
		}
		record.TotalMatches++
		switch winner {
		case team1:
			record.Player1Wins++
		case team2:
			record.Player2Wins++
		}
	}
	return record
}
