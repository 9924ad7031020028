package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"pug-tracker/internal/constants"
	"pug-tracker/internal/domain"
	"pug-tracker/internal/standings"
)

type StandingsService struct {
	backend Backend
	logger  zerolog.Logger
}

func NewStandingsService(backend Backend, logger zerolog.Logger) *StandingsService {
	return &StandingsService{backend: backend, logger: logger}
}

// Standings derives team standings for a season, or across all matches when
// seasonID is nil.
func (s *StandingsService) Standings(ctx context.Context, seasonID *int) ([]domain.TeamStanding, error) {
	matches, err := s.seasonMatches(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	return standings.TeamStandings(matches), nil
}

// Champion derives the competition winner, nil when nothing is decided yet.
func (s *StandingsService) Champion(ctx context.Context, seasonID *int) (*domain.CompetitionWinner, error) {
	matches, err := s.seasonMatches(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	return standings.CompetitionWinner(matches), nil
}

func (s *StandingsService) seasonMatches(ctx context.Context, seasonID *int) ([]domain.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	log := s.logger.With().Str("op_id", uuid.New().String()).Logger()

	var matches []domain.Match
	var err error
	if seasonID != nil {
		log = log.With().Int("season_id", *seasonID).Logger()
		matches, err = s.backend.SeasonMatches(ctx, *seasonID)
	} else {
		matches, err = s.backend.ListMatches(ctx)
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch matches for standings")
		return nil, fmt.Errorf("fetch standings matches: %w", err)
	}

	log.Debug().Int("match_count", len(matches)).Msg("matches fetched for standings")
	return matches, nil
}
