package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchEmptyRecord(t *testing.T) {
	m := Match(map[string]any{})

	assert.Zero(t, m.ID)
	assert.Nil(t, m.Winner)
	assert.Nil(t, m.Team1Score)
	assert.Nil(t, m.SeasonID)
	assert.Equal(t, 1, m.MaxMaps, "series length defaults to a single map")
}

func TestMatchWinnerFromTeamID(t *testing.T) {
	m := Match(map[string]any{"team1_id": 47, "team2_id": 48, "winner": 48})

	require.NotNil(t, m.Winner)
	assert.Equal(t, 2, *m.Winner)
}

func TestMatchWinnerFromScores(t *testing.T) {
	m := Match(map[string]any{"team1_score": 2, "team2_score": 1})

	require.NotNil(t, m.Winner)
	assert.Equal(t, 1, *m.Winner)
}

func TestMatchCancelledSkipsScoreDerivation(t *testing.T) {
	m := Match(map[string]any{"team1_score": 2, "team2_score": 1, "cancelled": 1})

	assert.Nil(t, m.Winner, "cancelled matches must not derive a winner from scores")
	assert.True(t, m.Cancelled)
}

func TestMatchForfeitKeepsExplicitWinner(t *testing.T) {
	m := Match(map[string]any{"team1_id": 5, "team2_id": 6, "winner": 5, "forfeit": true})

	require.NotNil(t, m.Winner)
	assert.Equal(t, 1, *m.Winner)
}

func TestMatchZeroDateSentinel(t *testing.T) {
	m := Match(map[string]any{
		"start_time": "2026-03-01 20:00:00",
		"end_time":   "0000-00-00 00:00:00",
	})

	require.NotNil(t, m.StartTime)
	assert.Equal(t, time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC), *m.StartTime)
	assert.Nil(t, m.EndTime, "zero-date sentinel means the series is in progress")
}

func TestMatchTimeFormats(t *testing.T) {
	m := Match(map[string]any{"start_time": "2026-03-01T20:00:00Z"})

	require.NotNil(t, m.StartTime)
	assert.Equal(t, 20, m.StartTime.Hour())
}

func TestMatchSeasonID(t *testing.T) {
	withSeason := Match(map[string]any{"season_id": 3})
	require.NotNil(t, withSeason.SeasonID)
	assert.Equal(t, 3, *withSeason.SeasonID)

	unassigned := Match(map[string]any{"season_id": nil})
	assert.Nil(t, unassigned.SeasonID)
}

func TestMatchBoolCoercion(t *testing.T) {
	m := Match(map[string]any{"cancelled": float64(1), "forfeit": "0", "is_pug": true})

	assert.True(t, m.Cancelled)
	assert.False(t, m.Forfeit)
	assert.True(t, m.IsPug)
}

func TestMapStat(t *testing.T) {
	ms := MapStat(map[string]any{
		"id": 10, "match_id": 4, "map_number": 0, "map_name": "de_mirage",
		"team1_score": 16, "team2_score": 9, "winner": 47,
	}, 47, 48)

	assert.Equal(t, 4, ms.MatchID)
	assert.Equal(t, "de_mirage", ms.MapName)
	require.NotNil(t, ms.Winner)
	assert.Equal(t, 1, *ms.Winner)
}

func TestMapStatScoreFallback(t *testing.T) {
	ms := MapStat(map[string]any{"team1_score": 9, "team2_score": 16}, 0, 0)

	require.NotNil(t, ms.Winner)
	assert.Equal(t, 2, *ms.Winner)
}

func TestServer(t *testing.T) {
	s := Server(map[string]any{
		"id": 2, "display_name": "Chicago #1", "ip_string": "10.0.0.4",
		"port": 27015, "public_server": 1, "in_use": 0, "flag": "US",
	})

	assert.Equal(t, "Chicago #1", s.DisplayName)
	assert.Equal(t, 27015, s.Port)
	assert.True(t, s.PublicServer)
	assert.False(t, s.InUse)
}
