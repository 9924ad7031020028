package normalize

import (
	"pug-tracker/internal/domain"
)

// Match normalizes a raw match record, resolving the winner through the
// priority chain. Cancelled and forfeit matches are not eligible for
// score-based winner derivation, so their scores are withheld from the
// resolver and only explicit winner values survive.
func Match(rec map[string]any) domain.Match {
	m := domain.Match{
		ID:            intField(rec, "id"),
		Team1ID:       intField(rec, "team1_id"),
		Team2ID:       intField(rec, "team2_id"),
		Team1Score:    optIntField(rec, "team1_score"),
		Team2Score:    optIntField(rec, "team2_score"),
		Team1MapScore: optIntField(rec, "team1_mapscore"),
		Team2MapScore: optIntField(rec, "team2_mapscore"),
		Team1Name:     strField(rec, "team1_string", "team1_name"),
		Team2Name:     strField(rec, "team2_string", "team2_name"),
		Cancelled:     boolField(rec, "cancelled"),
		Forfeit:       boolField(rec, "forfeit"),
		IsPug:         boolField(rec, "is_pug"),
		StartTime:     timeField(rec, "start_time"),
		EndTime:       timeField(rec, "end_time"),
		Title:         strField(rec, "title"),
		MaxMaps:       intField(rec, "max_maps"),
		SeasonID:      optIntField(rec, "season_id"),
	}
	if m.MaxMaps == 0 {
		m.MaxMaps = 1
	}

	score1, score2 := 0, 0
	if !m.Cancelled && !m.Forfeit {
		if m.Team1Score != nil {
			score1 = *m.Team1Score
		}
		if m.Team2Score != nil {
			score2 = *m.Team2Score
		}
	}
	m.Winner = ResolveWinner(optIntField(rec, "winner"), m.Team1ID, m.Team2ID, score1, score2)

	return m
}
