package domain

import (
	"time"
)

// PlayerStat is a cumulative stat line for a single player, either season-wide
// or pooled across the maps of one match. Identity is the steam ID.
type PlayerStat struct {
	SteamID       string
	Name          string
	Kills         int
	Deaths        int
	Assists       int
	RoundsPlayed  int
	K1            int
	K2            int
	K3            int
	K4            int
	K5            int
	V1            int
	V2            int
	V3            int
	V4            int
	V5            int
	HeadshotKills int
	HeadshotPct   float64
	AverageRating float64
	Wins          int
	TotalMaps     int
	Points        int
}

// Match is one series (best-of-N) between two teams. Team IDs may be zero for
// ad-hoc PUGs; Winner is 1, 2 or nil, never a raw backend team id.
type Match struct {
	ID            int
	Team1ID       int
	Team2ID       int
	Winner        *int
	Team1Score    *int
	Team2Score    *int
	Team1MapScore *int
	Team2MapScore *int
	Team1Name     string
	Team2Name     string
	Cancelled     bool
	Forfeit       bool
	IsPug         bool
	StartTime     *time.Time
	EndTime       *time.Time // nil while the series is in progress
	Title         string
	MaxMaps       int
	SeasonID      *int // nil for unassigned matches
}

// Decided reports whether the match produced a countable result.
func (m Match) Decided() bool {
	return m.Winner != nil && !m.Cancelled && !m.Forfeit
}

// MapStat is one completed map within a match series.
type MapStat struct {
	ID         int
	MatchID    int
	Winner     *int
	MapNumber  int
	MapName    string
	Team1Score int
	Team2Score int
	StartTime  *time.Time
	EndTime    *time.Time
}

// GameServer is a registered game server on the platform.
type GameServer struct {
	ID           int
	DisplayName  string
	IPString     string
	Port         int
	PublicServer bool
	InUse        bool
	FlagCode     string
}

// TeamStanding is a derived win/loss standing row. Rank is assigned after
// sorting, 1-based and sequential even for tied records.
type TeamStanding struct {
	Rank         int
	TeamName     string
	Wins         int
	Losses       int
	TotalMatches int
	WinPct       float64
}

// CompetitionWinner is the top-ranked standing projected into a champion shape.
type CompetitionWinner struct {
	TeamName     string
	MatchWins    int
	MatchLosses  int
	TotalMatches int
}

// MatchRoster is a per-match roster split with pooled per-player totals,
// each side sorted by kills descending.
type MatchRoster struct {
	Team1 []PlayerStat
	Team2 []PlayerStat
}

// HeadToHead is the record between two players across matches where they
// played on opposite sides.
type HeadToHead struct {
	Player1ID    string
	Player2ID    string
	Player1Wins  int
	Player2Wins  int
	TotalMatches int
}
