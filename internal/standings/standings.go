// Package standings derives team win/loss standings and a competition
// champion from a set of matches.
package standings

import (
	"sort"

	"pug-tracker/internal/domain"
)

// TeamStandings credits a win and a loss per decided match and ranks teams.
//
// Teams are keyed by display name, not numeric id: ad-hoc team names are
// reused across matches, and two backend ids sharing a name merge on purpose.
// Sort order is wins descending, then win-loss differential descending, then
// name ascending. Ranks are 1-based and sequential; tied records still get
// distinct ranks.
func TeamStandings(matches []domain.Match) []domain.TeamStanding {
	type record struct {
		wins, losses int
	}
	records := make(map[string]*record)
	credit := func(name string) *record {
		r, ok := records[name]
		if !ok {
			r = &record{}
			records[name] = r
		}
		return r
	}

	for _, m := range matches {
		if !m.Decided() {
			continue
		}
		winnerName, loserName := m.Team1Name, m.Team2Name
		if *m.Winner == 2 {
			winnerName, loserName = m.Team2Name, m.Team1Name
		}
		credit(winnerName).wins++
		credit(loserName).losses++
	}

	standings := make([]domain.TeamStanding, 0, len(records))
	for name, r := range records {
		total := r.wins + r.losses
		pct := 0.0
		if total > 0 {
			pct = float64(r.wins) / float64(total) * 100
		}
		standings = append(standings, domain.TeamStanding{
			TeamName:     name,
			Wins:         r.wins,
			Losses:       r.losses,
			TotalMatches: total,
			WinPct:       pct,
		})
	}

	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if da, db := a.Wins-a.Losses, b.Wins-b.Losses; da != db {
			return da > db
		}
		return a.TeamName < b.TeamName
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

// CompetitionWinner projects the top-ranked standing into a champion shape,
// nil when no match produced a standing.
func CompetitionWinner(matches []domain.Match) *domain.CompetitionWinner {
	standings := TeamStandings(matches)
	if len(standings) == 0 {
		return nil
	}
	top := standings[0]
	return &domain.CompetitionWinner{
		TeamName:     top.TeamName,
		MatchWins:    top.Wins,
		MatchLosses:  top.Losses,
		TotalMatches: top.TotalMatches,
	}
}
