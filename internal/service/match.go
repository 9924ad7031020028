package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"pug-tracker/internal/aggregate"
	"pug-tracker/internal/constants"
	"pug-tracker/internal/domain"
)

type MatchService struct {
	backend Backend
	logger  zerolog.Logger
}

func NewMatchService(backend Backend, logger zerolog.Logger) *MatchService {
	return &MatchService{backend: backend, logger: logger}
}

func (s *MatchService) ListMatches(ctx context.Context) ([]domain.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	matches, err := s.backend.ListMatches(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list matches")
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

// GetMatchDetail fetches one match, its per-map player rows and its map
// stats, and folds the rows into a per-team roster split.
func (s *MatchService) GetMatchDetail(ctx context.Context, matchID int) (*MatchDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	log := s.logger.With().Str("op_id", uuid.New().String()).Int("match_id", matchID).Logger()

	match, err := s.backend.GetMatch(ctx, matchID)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch match")
		return nil, fmt.Errorf("fetch match %d: %w", matchID, err)
	}
	if match == nil {
		log.Info().Msg("match not found")
		return nil, nil
	}

	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	g, gCtx := errgroup.WithContext(apiCtx)
	var rows []map[string]any
	var maps []domain.MapStat

	g.Go(func() error {
		var err error
		rows, err = s.backend.MatchPlayerRows(gCtx, matchID)
		return err
	})
	g.Go(func() error {
		var err error
		maps, err = s.backend.MatchMapStats(gCtx, matchID, match.Team1ID, match.Team2ID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to fetch match detail")
		return nil, fmt.Errorf("fetch match %d detail: %w", matchID, err)
	}

	roster := aggregate.MatchPlayerStats(rows, match.Team1ID, match.Team2ID)
	log.Debug().
		Int("player_rows", len(rows)).
		Int("maps", len(maps)).
		Int("team1_size", len(roster.Team1)).
		Int("team2_size", len(roster.Team2)).
		Msg("match detail assembled")

	return &MatchDetail{Match: *match, Maps: maps, Roster: roster}, nil
}

// ListServers passes the platform's server list through.
func (s *MatchService) ListServers(ctx context.Context) ([]domain.GameServer, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	servers, err := s.backend.ListServers(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list servers")
		return nil, fmt.Errorf("list servers: %w", err)
	}
	return servers, nil
}
