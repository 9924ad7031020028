package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"pug-tracker/internal/domain"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func renderStandings(w io.Writer, table []domain.TeamStanding) {
	t := newTable(w)
	t.Header("RANK", "TEAM", "W", "L", "MATCHES", "WIN%")
	for _, s := range table {
		t.Append(
			strconv.Itoa(s.Rank),
			s.TeamName,
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.TotalMatches),
			fmt.Sprintf("%.1f%%", s.WinPct),
		)
	}
	t.Render()
}

func renderPlayers(w io.Writer, players []domain.PlayerStat) {
	t := newTable(w)
	t.Header("PLAYER", "K", "D", "A", "ROUNDS", "HS%", "RATING", "MAPS", "POINTS")
	for _, p := range players {
		t.Append(
			p.Name,
			strconv.Itoa(p.Kills),
			strconv.Itoa(p.Deaths),
			strconv.Itoa(p.Assists),
			strconv.Itoa(p.RoundsPlayed),
			fmt.Sprintf("%.0f%%", p.HeadshotPct),
			fmt.Sprintf("%.2f", p.AverageRating),
			strconv.Itoa(p.TotalMaps),
			strconv.Itoa(p.Points),
		)
	}
	t.Render()
}

func renderMaps(w io.Writer, maps []domain.MapStat) {
	t := newTable(w)
	t.Header("MAP#", "MAP", "SCORE", "WINNER")
	for _, m := range maps {
		winner := "-"
		if m.Winner != nil {
			winner = fmt.Sprintf("team %d", *m.Winner)
		}
		t.Append(
			strconv.Itoa(m.MapNumber+1),
			m.MapName,
			fmt.Sprintf("%d-%d", m.Team1Score, m.Team2Score),
			winner,
		)
	}
	t.Render()
}

func renderServers(w io.Writer, servers []domain.GameServer) {
	t := newTable(w)
	t.Header("ID", "NAME", "ADDRESS", "PUBLIC", "IN USE")
	for _, s := range servers {
		t.Append(
			strconv.Itoa(s.ID),
			s.DisplayName,
			fmt.Sprintf("%s:%d", s.IPString, s.Port),
			yesNo(s.PublicServer),
			yesNo(s.InUse),
		)
	}
	t.Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
