package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"pug-tracker/internal/aggregate"
	"pug-tracker/internal/batch"
	"pug-tracker/internal/constants"
	"pug-tracker/internal/domain"
)

type LeaderboardService struct {
	backend Backend
	logger  zerolog.Logger
	now     func() time.Time
}

func NewLeaderboardService(backend Backend, logger zerolog.Logger) *LeaderboardService {
	return &LeaderboardService{backend: backend, logger: logger, now: time.Now}
}

// SeasonLeaderboard returns the season-wide player board ordered by ranking
// points, rating as the tie-break.
func (s *LeaderboardService) SeasonLeaderboard(ctx context.Context) ([]domain.PlayerStat, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	players, err := s.backend.ListPlayerStats(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch player stats")
		return nil, fmt.Errorf("fetch player stats: %w", err)
	}

	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Points != players[j].Points {
			return players[i].Points > players[j].Points
		}
		return players[i].AverageRating > players[j].AverageRating
	})
	return players, nil
}

// PlayerStats returns one player's season line, nil when the backend has
// never seen them.
func (s *LeaderboardService) PlayerStats(ctx context.Context, steamID string) (*domain.PlayerStat, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	player, err := s.backend.GetPlayerStats(ctx, steamID)
	if err != nil {
		s.logger.Error().Err(err).Str("steam_id", steamID).Msg("failed to fetch player")
		return nil, fmt.Errorf("fetch player %s: %w", steamID, err)
	}
	return player, nil
}

// WeeklyLeader pools the last week's decided matches and picks the best
// pooled rating above the participation gate. A failed per-match fetch only
// removes that match from the pool.
func (s *LeaderboardService) WeeklyLeader(ctx context.Context) (*domain.PlayerStat, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	log := s.logger.With().Str("op_id", uuid.New().String()).Logger()

	matches, err := s.backend.ListMatches(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list matches for weekly leader")
		return nil, fmt.Errorf("list matches: %w", err)
	}

	cutoff := s.now().Add(-constants.WeeklyWindow)
	recent := aggregate.DecidedSince(matches, cutoff)
	log.Debug().Int("candidates", len(recent)).Time("cutoff", cutoff).Msg("weekly window selected")

	results := batch.Fetch(ctx, recent, constants.FetchBatchSize,
		func(ctx context.Context, m domain.Match) ([]map[string]any, error) {
			return s.backend.MatchPlayerRows(ctx, m.ID)
		})

	var batches [][]map[string]any
	for i, res := range results {
		if res.Err != nil {
			log.Warn().Err(res.Err).Int("match_id", recent[i].ID).Msg("skipping match in weekly pool")
			continue
		}
		batches = append(batches, res.Value)
	}

	return aggregate.WeeklyLeader(batches...), nil
}

// SeasonRoster pools every decided match of a season into cumulative stat
// lines sorted by pooled rating.
func (s *LeaderboardService) SeasonRoster(ctx context.Context, seasonID int) ([]domain.PlayerStat, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	log := s.logger.With().Str("op_id", uuid.New().String()).Int("season_id", seasonID).Logger()

	matches, err := s.backend.SeasonMatches(ctx, seasonID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list season matches")
		return nil, fmt.Errorf("list season %d matches: %w", seasonID, err)
	}

	var decided []domain.Match
	for _, m := range matches {
		if m.Decided() {
			decided = append(decided, m)
		}
	}

	results := batch.Fetch(ctx, decided, constants.FetchBatchSize,
		func(ctx context.Context, m domain.Match) ([]map[string]any, error) {
			return s.backend.MatchPlayerRows(ctx, m.ID)
		})

	var batches [][]map[string]any
	for i, res := range results {
		if res.Err != nil {
			log.Warn().Err(res.Err).Int("match_id", decided[i].ID).Msg("skipping match in season roster")
			continue
		}
		batches = append(batches, res.Value)
	}

	return aggregate.SeasonTotals(batches...), nil
}
