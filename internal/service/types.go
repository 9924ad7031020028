// Package service orchestrates backend fetches into the derived views the
// dashboard consumes: match detail, standings, leaderboards and head-to-head
// records.
package service

import (
	"context"

	"pug-tracker/internal/aggregate"
	"pug-tracker/internal/domain"
)

// Backend is the slice of the API client the services consume. Kept as an
// interface so tests can substitute a scripted backend.
type Backend interface {
	ListMatches(ctx context.Context) ([]domain.Match, error)
	SeasonMatches(ctx context.Context, seasonID int) ([]domain.Match, error)
	GetMatch(ctx context.Context, matchID int) (*domain.Match, error)
	MatchPlayerRows(ctx context.Context, matchID int) ([]map[string]any, error)
	MatchMapStats(ctx context.Context, matchID, team1ID, team2ID int) ([]domain.MapStat, error)
	ListPlayerStats(ctx context.Context) ([]domain.PlayerStat, error)
	GetPlayerStats(ctx context.Context, steamID string) (*domain.PlayerStat, error)
	ListServers(ctx context.Context) ([]domain.GameServer, error)
}

// MatchDetail is one series with its completed maps and pooled roster split.
type MatchDetail struct {
	Match  domain.Match
	Maps   []domain.MapStat
	Roster aggregate.RosterSplit
}
