package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"pug-tracker/internal/aggregate"
	"pug-tracker/internal/batch"
	"pug-tracker/internal/constants"
	"pug-tracker/internal/domain"
)

type HeadToHeadService struct {
	backend Backend
	logger  zerolog.Logger
}

func NewHeadToHeadService(backend Backend, logger zerolog.Logger) *HeadToHeadService {
	return &HeadToHeadService{backend: backend, logger: logger}
}

// Compare computes the record between two players across every non-cancelled
// match. Per-match roster fetches run in bounded batches; a failed fetch only
// drops that match from the record.
func (s *HeadToHeadService) Compare(ctx context.Context, player1ID, player2ID string) (domain.HeadToHead, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	log := s.logger.With().
		Str("op_id", uuid.New().String()).
		Str("player1", player1ID).
		Str("player2", player2ID).
		Logger()

	matches, err := s.backend.ListMatches(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list matches for head-to-head")
		return domain.HeadToHead{}, fmt.Errorf("list matches: %w", err)
	}

	var candidates []domain.Match
	for _, m := range matches {
		if !m.Cancelled {
			candidates = append(candidates, m)
		}
	}

	results := batch.Fetch(ctx, candidates, constants.FetchBatchSize,
		func(ctx context.Context, m domain.Match) ([]map[string]any, error) {
			return s.backend.MatchPlayerRows(ctx, m.ID)
		})

	// zip back with candidates: results stay index-aligned with input order
	rosters := make([]aggregate.RosterMap, 0, len(candidates))
	for i, res := range results {
		if res.Err != nil {
			log.Warn().Err(res.Err).Int("match_id", candidates[i].ID).Msg("skipping match in head-to-head")
			continue
		}
		rosters = append(rosters, aggregate.TeamNumbers(res.Value, candidates[i]))
	}

	record := aggregate.HeadToHead(rosters, player1ID, player2ID)
	log.Debug().Int("encounters", record.TotalMatches).Msg("head-to-head computed")
	return record, nil
}
