package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pug-tracker/internal/domain"
)

func winner(n int) *int { return &n }

func ts(t time.Time) *time.Time { return &t }

func playerRow(steamID string, teamID, kills, rounds int) map[string]any {
	return map[string]any{
		"steam_id": steamID, "team_id": float64(teamID),
		"kills": float64(kills), "deaths": float64(5), "roundsplayed": float64(rounds),
	}
}

func TestMatchServiceGetMatchDetail(t *testing.T) {
	backend := &MockBackend{
		GetMatchFunc: func(_ context.Context, matchID int) (*domain.Match, error) {
			return &domain.Match{ID: matchID, Team1ID: 47, Team2ID: 48, Winner: winner(1)}, nil
		},
		MatchPlayerRowsFunc: func(_ context.Context, _ int) ([]map[string]any, error) {
			return []map[string]any{
				playerRow("a", 47, 20, 24),
				playerRow("b", 48, 15, 24),
			}, nil
		},
		MatchMapStatsFunc: func(_ context.Context, matchID, _, _ int) ([]domain.MapStat, error) {
			return []domain.MapStat{{MatchID: matchID, MapName: "de_nuke"}}, nil
		},
	}
	svc := NewMatchService(backend, zerolog.Nop())

	detail, err := svc.GetMatchDetail(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, 7, detail.Match.ID)
	require.Len(t, detail.Maps, 1)
	require.Len(t, detail.Roster.Team1, 1)
	require.Len(t, detail.Roster.Team2, 1)
	assert.Equal(t, "a", detail.Roster.Team1[0].SteamID)
}

func TestMatchServiceUnknownMatch(t *testing.T) {
	svc := NewMatchService(&MockBackend{}, zerolog.Nop())

	detail, err := svc.GetMatchDetail(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestStandingsServiceSeasonFilter(t *testing.T) {
	var askedSeason int
	backend := &MockBackend{
		SeasonMatchesFunc: func(_ context.Context, seasonID int) ([]domain.Match, error) {
			askedSeason = seasonID
			return []domain.Match{
				{Team1Name: "Alpha", Team2Name: "Bravo", Winner: winner(1)},
			}, nil
		},
	}
	svc := NewStandingsService(backend, zerolog.Nop())

	season := 3
	table, err := svc.Standings(context.Background(), &season)
	require.NoError(t, err)
	assert.Equal(t, 3, askedSeason)
	require.Len(t, table, 2)
	assert.Equal(t, "Alpha", table[0].TeamName)

	champ, err := svc.Champion(context.Background(), &season)
	require.NoError(t, err)
	require.NotNil(t, champ)
	assert.Equal(t, "Alpha", champ.TeamName)
}

func TestLeaderboardServiceSeasonLeaderboard(t *testing.T) {
	backend := &MockBackend{
		ListPlayerStatsFunc: func(_ context.Context) ([]domain.PlayerStat, error) {
			return []domain.PlayerStat{
				{SteamID: "mid", Points: 1000},
				{SteamID: "top", Points: 1400},
				{SteamID: "low", Points: 900},
			}, nil
		},
	}
	svc := NewLeaderboardService(backend, zerolog.Nop())

	board, err := svc.SeasonLeaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, "top", board[0].SteamID)
	assert.Equal(t, "low", board[2].SteamID)
}

func TestLeaderboardServiceWeeklyLeader(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	backend := &MockBackend{
		ListMatchesFunc: func(_ context.Context) ([]domain.Match, error) {
			return []domain.Match{
				{ID: 1, Winner: winner(1), StartTime: ts(now.AddDate(0, 0, -1))},
				{ID: 2, Winner: winner(2), StartTime: ts(now.AddDate(0, 0, -2))},
				{ID: 3, Winner: winner(1), StartTime: ts(now.AddDate(0, 0, -30))}, // out of window
			}, nil
		},
		MatchPlayerRowsFunc: func(_ context.Context, matchID int) ([]map[string]any, error) {
			return []map[string]any{
				playerRow("ace", 901, 25, 24),
				playerRow("filler", 902, 5, 24),
			}, nil
		},
	}
	svc := NewLeaderboardService(backend, zerolog.Nop())
	svc.now = func() time.Time { return now }

	leader, err := svc.WeeklyLeader(context.Background())
	require.NoError(t, err)
	require.NotNil(t, leader)
	assert.Equal(t, "ace", leader.SteamID)
	assert.Equal(t, 2, leader.TotalMaps, "only in-window matches pooled")
	assert.Equal(t, 50, leader.Kills)
}

func TestLeaderboardServiceWeeklyLeaderIsolatesFailures(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	backend := &MockBackend{
		ListMatchesFunc: func(_ context.Context) ([]domain.Match, error) {
			return []domain.Match{
				{ID: 1, Winner: winner(1), StartTime: ts(now.AddDate(0, 0, -1))},
				{ID: 2, Winner: winner(1), StartTime: ts(now.AddDate(0, 0, -2))},
				{ID: 3, Winner: winner(2), StartTime: ts(now.AddDate(0, 0, -3))},
			}, nil
		},
		MatchPlayerRowsFunc: func(_ context.Context, matchID int) ([]map[string]any, error) {
			if matchID == 2 {
				return nil, errors.New("backend hiccup")
			}
			return []map[string]any{playerRow("steady", 901, 20, 24)}, nil
		},
	}
	svc := NewLeaderboardService(backend, zerolog.Nop())
	svc.now = func() time.Time { return now }

	leader, err := svc.WeeklyLeader(context.Background())
	require.NoError(t, err, "a failed item never aborts the aggregation")
	require.NotNil(t, leader)
	assert.Equal(t, 2, leader.TotalMaps, "failed match contributes nothing")
}

func TestHeadToHeadServiceCompare(t *testing.T) {
	backend := &MockBackend{
		ListMatchesFunc: func(_ context.Context) ([]domain.Match, error) {
			return []domain.Match{
				{ID: 1, Team1ID: 47, Team2ID: 48, Winner: winner(1)},
				{ID: 2, Team1ID: 47, Team2ID: 48, Winner: winner(2)},
				{ID: 3, Team1ID: 47, Team2ID: 48, Winner: winner(1), Cancelled: true},
			}, nil
		},
		MatchPlayerRowsFunc: func(_ context.Context, matchID int) ([]map[string]any, error) {
			return []map[string]any{
				playerRow("p1", 47, 20, 24),
				playerRow("p2", 48, 18, 24),
			}, nil
		},
	}
	svc := NewHeadToHeadService(backend, zerolog.Nop())

	record, err := svc.Compare(context.Background(), "p1", "p2")
	require.NoError(t, err)

	assert.Equal(t, 2, record.TotalMatches, "cancelled matches are not candidates")
	assert.Equal(t, 1, record.Player1Wins)
	assert.Equal(t, 1, record.Player2Wins)
}

func TestHeadToHeadServiceAdHocMatches(t *testing.T) {
	// PUGs with no persistent teams: both team ids zero, rows carry synthetic
	// ids. Lower raw id maps to team 1, matching the score-derived winner.
	backend := &MockBackend{
		ListMatchesFunc: func(_ context.Context) ([]domain.Match, error) {
			return []domain.Match{{ID: 1, IsPug: true, Winner: winner(1)}}, nil
		},
		MatchPlayerRowsFunc: func(_ context.Context, matchID int) ([]map[string]any, error) {
			return []map[string]any{
				playerRow("p2", 912, 18, 24),
				playerRow("p1", 905, 20, 24),
			}, nil
		},
	}
	svc := NewHeadToHeadService(backend, zerolog.Nop())

	record, err := svc.Compare(context.Background(), "p1", "p2")
	require.NoError(t, err)

	assert.Equal(t, 1, record.TotalMatches)
	assert.Equal(t, 1, record.Player1Wins, "lower synthetic id is side 1")
	assert.Zero(t, record.Player2Wins)
}

func TestHeadToHeadServiceOrderIndependence(t *testing.T) {
	// many matches so several batches run; the zip-back must stay aligned
	// with input order no matter how fetches resolve.
	var matches []domain.Match
	for i := 1; i <= 25; i++ {
		matches = append(matches, domain.Match{ID: i, Team1ID: 47, Team2ID: 48, Winner: winner(1 + i%2)})
	}
	backend := &MockBackend{
		ListMatchesFunc: func(_ context.Context) ([]domain.Match, error) { return matches, nil },
		MatchPlayerRowsFunc: func(_ context.Context, matchID int) ([]map[string]any, error) {
			time.Sleep(time.Duration(matchID%3) * time.Millisecond)
			return []map[string]any{
				playerRow("p1", 47, 20, 24),
				playerRow("p2", 48, 18, 24),
			}, nil
		},
	}
	svc := NewHeadToHeadService(backend, zerolog.Nop())

	record, err := svc.Compare(context.Background(), "p1", "p2")
	require.NoError(t, err)

	assert.Equal(t, 25, record.TotalMatches)
	assert.Equal(t, 12, record.Player1Wins, fmt.Sprintf("got %+v", record))
	assert.Equal(t, 13, record.Player2Wins)
}
