package aggregate

import (
	"testing"

	"pug-tracker/internal/normalize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(steamID, name string, teamID, kills, deaths, rounds int) map[string]any {
	return map[string]any{
		"steam_id": steamID, "name": name, "team_id": float64(teamID),
		"kills": float64(kills), "deaths": float64(deaths), "roundsplayed": float64(rounds),
	}
}

func TestMatchPlayerStatsPoolsRows(t *testing.T) {
	rows := []map[string]any{
		row("a", "alfa", 47, 20, 10, 24),
		row("a", "alfa", 47, 15, 12, 30),
		row("b", "bravo", 48, 18, 14, 24),
	}

	split := MatchPlayerStats(rows, 47, 48)

	require.Len(t, split.Team1, 1)
	require.Len(t, split.Team2, 1)

	a := split.Team1[0]
	assert.Equal(t, 35, a.Kills, "counters are summed across maps")
	assert.Equal(t, 22, a.Deaths)
	assert.Equal(t, 54, a.RoundsPlayed)
	assert.Equal(t, 2, a.TotalMaps, "map participation is a count, not a sum")
}

func TestMatchPlayerStatsRecomputesRatingOverPooledTotals(t *testing.T) {
	rows := []map[string]any{
		func() map[string]any {
			r := row("a", "alfa", 47, 20, 10, 24)
			r["average_rating"] = 1.9 // per-map value must not survive pooling
			return r
		}(),
		row("a", "alfa", 47, 10, 14, 30),
	}

	split := MatchPlayerStats(rows, 47, 0)

	require.Len(t, split.Team1, 1)
	want := normalize.Rating(30, 54, 24, 0, 0, 0, 0, 0)
	assert.InDelta(t, want, split.Team1[0].AverageRating, 1e-12)
}

func TestMatchPlayerStatsAssignment(t *testing.T) {
	t.Run("matched team ids", func(t *testing.T) {
		split := MatchPlayerStats([]map[string]any{
			row("a", "alfa", 47, 10, 5, 20),
			row("b", "bravo", 48, 8, 6, 20),
		}, 47, 48)

		assert.Equal(t, AssignMatched, split.Assignments["a"])
		assert.Equal(t, AssignMatched, split.Assignments["b"])
	})

	t.Run("synthetic ids balance across sides", func(t *testing.T) {
		split := MatchPlayerStats([]map[string]any{
			row("a", "alfa", 901, 10, 5, 20),
			row("b", "bravo", 902, 8, 6, 20),
			row("c", "charlie", 901, 6, 7, 20),
			row("d", "delta", 902, 4, 8, 20),
		}, 0, 0)

		assert.Len(t, split.Team1, 2)
		assert.Len(t, split.Team2, 2)
		for _, id := range []string{"a", "b", "c", "d"} {
			assert.Equal(t, AssignBalancedFallback, split.Assignments[id])
		}
	})

	t.Run("unmatched row among matched ones", func(t *testing.T) {
		split := MatchPlayerStats([]map[string]any{
			row("a", "alfa", 47, 10, 5, 20),
			row("b", "bravo", 47, 8, 6, 20),
			row("x", "stray", 903, 7, 7, 20),
		}, 47, 48)

		assert.Equal(t, AssignBalancedFallback, split.Assignments["x"])
		assert.Len(t, split.Team2, 1, "stray lands on the emptier side")
	})
}

func TestMatchPlayerStatsSortedByKills(t *testing.T) {
	split := MatchPlayerStats([]map[string]any{
		row("low", "low", 47, 5, 5, 20),
		row("high", "high", 47, 25, 5, 20),
		row("mid", "mid", 47, 15, 5, 20),
	}, 47, 48)

	require.Len(t, split.Team1, 3)
	assert.Equal(t, "high", split.Team1[0].SteamID)
	assert.Equal(t, "mid", split.Team1[1].SteamID)
	assert.Equal(t, "low", split.Team1[2].SteamID)
}

func TestMatchPlayerStatsSkipsRowsWithoutIdentity(t *testing.T) {
	split := MatchPlayerStats([]map[string]any{
		{"name": "ghost", "kills": float64(10)},
		row("a", "alfa", 47, 10, 5, 20),
	}, 47, 48)

	assert.Len(t, split.Team1, 1)
	assert.Empty(t, split.Team2)
}

func TestMatchPlayerStatsEmptyInput(t *testing.T) {
	split := MatchPlayerStats(nil, 47, 48)

	assert.Empty(t, split.Team1)
	assert.Empty(t, split.Team2)
	assert.Empty(t, split.Assignments)
}
