package normalize

import (
	"pug-tracker/internal/domain"
)

// MapStat normalizes one completed map of a series. Map records do not carry
// the series' team identities, so the caller passes the parent match's team
// IDs for winner resolution.
func MapStat(rec map[string]any, team1ID, team2ID int) domain.MapStat {
	ms := domain.MapStat{
		ID:         intField(rec, "id"),
		MatchID:    intField(rec, "match_id"),
		MapNumber:  intField(rec, "map_number"),
		MapName:    strField(rec, "map_name"),
		Team1Score: intField(rec, "team1_score"),
		Team2Score: intField(rec, "team2_score"),
		StartTime:  timeField(rec, "start_time"),
		EndTime:    timeField(rec, "end_time"),
	}
	ms.Winner = ResolveWinner(optIntField(rec, "winner"), team1ID, team2ID, ms.Team1Score, ms.Team2Score)
	return ms
}
