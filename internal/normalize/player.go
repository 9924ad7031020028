// Package normalize turns loosely-typed backend records into domain entities.
//
// Every normalizer is total: malformed or partial input degrades to documented
// defaults, never to an error. Field-name aliases reflect the variants the
// backend emits across endpoint versions.
package normalize

import (
	"pug-tracker/internal/domain"
)

// neutralPoints is the baseline ranking score for players the backend has not
// rated yet.
const neutralPoints = 1000

// Player normalizes a raw player stat record.
//
// Derived fields follow the source-first rule: hsp and average_rating are
// trusted when present and non-zero, and computed locally only when the source
// omits them and enough raw counters exist to compute from.
func Player(rec map[string]any) domain.PlayerStat {
	p := domain.PlayerStat{
		SteamID:       strField(rec, "steam_id", "steamId"),
		Name:          strField(rec, "name"),
		Kills:         intField(rec, "kills"),
		Deaths:        intField(rec, "deaths"),
		Assists:       intField(rec, "assists"),
		RoundsPlayed:  intField(rec, "roundsplayed", "rounds_played"),
		K1:            intField(rec, "k1"),
		K2:            intField(rec, "k2"),
		K3:            intField(rec, "k3"),
		K4:            intField(rec, "k4"),
		K5:            intField(rec, "k5"),
		V1:            intField(rec, "v1"),
		V2:            intField(rec, "v2"),
		V3:            intField(rec, "v3"),
		V4:            intField(rec, "v4"),
		V5:            intField(rec, "v5"),
		HeadshotKills: intField(rec, "headshot_kills", "hsk"),
		HeadshotPct:   floatField(rec, "hsp"),
		AverageRating: floatField(rec, "average_rating", "rating"),
		Wins:          intField(rec, "wins"),
		TotalMaps:     intField(rec, "total_maps", "totalMaps"),
		Points:        neutralPoints,
	}

	if v, ok := pick(rec, "points"); ok {
		p.Points = asInt(v)
	}

	if p.HeadshotPct == 0 && p.Kills > 0 && p.HeadshotKills > 0 {
		p.HeadshotPct = float64(p.HeadshotKills) / float64(p.Kills) * 100
	}

	if p.AverageRating == 0 && p.RoundsPlayed > 0 {
		p.AverageRating = Rating(p.Kills, p.RoundsPlayed, p.Deaths, p.K1, p.K2, p.K3, p.K4, p.K5)
	}

	return p
}
