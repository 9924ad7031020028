package service

import (
	"context"

	"pug-tracker/internal/domain"
)

// MockBackend is a scripted Backend for tests. Unset funcs return empty
// results.
type MockBackend struct {
	ListMatchesFunc     func(ctx context.Context) ([]domain.Match, error)
	SeasonMatchesFunc   func(ctx context.Context, seasonID int) ([]domain.Match, error)
	GetMatchFunc        func(ctx context.Context, matchID int) (*domain.Match, error)
	MatchPlayerRowsFunc func(ctx context.Context, matchID int) ([]map[string]any, error)
	MatchMapStatsFunc   func(ctx context.Context, matchID, team1ID, team2ID int) ([]domain.MapStat, error)
	ListPlayerStatsFunc func(ctx context.Context) ([]domain.PlayerStat, error)
	GetPlayerStatsFunc  func(ctx context.Context, steamID string) (*domain.PlayerStat, error)
	ListServersFunc     func(ctx context.Context) ([]domain.GameServer, error)
}

func (m *MockBackend) ListMatches(ctx context.Context) ([]domain.Match, error) {
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc(ctx)
	}
	return nil, nil
}

func (m *MockBackend) SeasonMatches(ctx context.Context, seasonID int) ([]domain.Match, error) {
	if m.SeasonMatchesFunc != nil {
		return m.SeasonMatchesFunc(ctx, seasonID)
	}
	return nil, nil
}

func (m *MockBackend) GetMatch(ctx context.Context, matchID int) (*domain.Match, error) {
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(ctx, matchID)
	}
	return nil, nil
}

func (m *MockBackend) MatchPlayerRows(ctx context.Context, matchID int) ([]map[string]any, error) {
	if m.MatchPlayerRowsFunc != nil {
		return m.MatchPlayerRowsFunc(ctx, matchID)
	}
	return nil, nil
}

func (m *MockBackend) MatchMapStats(ctx context.Context, matchID, team1ID, team2ID int) ([]domain.MapStat, error) {
	if m.MatchMapStatsFunc != nil {
		return m.MatchMapStatsFunc(ctx, matchID, team1ID, team2ID)
	}
	return nil, nil
}

func (m *MockBackend) ListPlayerStats(ctx context.Context) ([]domain.PlayerStat, error) {
	if m.ListPlayerStatsFunc != nil {
		return m.ListPlayerStatsFunc(ctx)
	}
	return nil, nil
}

func (m *MockBackend) GetPlayerStats(ctx context.Context, steamID string) (*domain.PlayerStat, error) {
	if m.GetPlayerStatsFunc != nil {
		return m.GetPlayerStatsFunc(ctx, steamID)
	}
	return nil, nil
}

func (m *MockBackend) ListServers(ctx context.Context) ([]domain.GameServer, error) {
	if m.ListServersFunc != nil {
		return m.ListServersFunc(ctx)
	}
	return nil, nil
}
