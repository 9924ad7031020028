// Package api is the client for the match-tracking backend, a loosely-typed
// G5API-style league/PUG platform.
//
// The client is the only place infrastructure errors may originate: network
// and parse failures surface here, while data-shape variance is absorbed by
// the envelope unwrapper and the normalizers downstream.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"pug-tracker/internal/config"
	"pug-tracker/internal/domain"
	"pug-tracker/internal/envelope"
	"pug-tracker/internal/normalize"
	"pug-tracker/internal/ratelimit"
)

// ErrRateLimited is returned when the client-side request budget for the
// backend is exhausted.
var ErrRateLimited = fmt.Errorf("backend request budget exhausted")

const limiterKey = "backend"

type Client struct {
	baseURL string
	apiKey  string
	client  *fasthttp.Client
	limiter *ratelimit.Limiter
	logger  zerolog.Logger

	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

// RateLimitInfo mirrors the backend's X-RateLimit-* response headers.
type RateLimitInfo struct {
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`

	// seconds until reset
	Reset int `json:"reset"`

	UpdatedAt time.Time `json:"updated_at"`
}

func NewClient(cfg *config.Config, limiter *ratelimit.Limiter, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: cfg.APIBaseURL,
		apiKey:  cfg.APIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		limiter: limiter,
		logger:  logger,
		rateLimit: RateLimitInfo{
			Limit:     cfg.RateLimit,
			Remaining: cfg.RateLimit,
			Reset:     int(cfg.RateWindow.Seconds()),
			UpdatedAt: time.Now(),
		},
	}
}

func (c *Client) RateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *Client) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if limit := string(resp.Header.Peek("X-RateLimit-Limit")); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil {
			c.rateLimit.Limit = val
		}
	}
	if remaining := string(resp.Header.Peek("X-RateLimit-Remaining")); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			c.rateLimit.Remaining = val
		}
	}
	if reset := string(resp.Header.Peek("X-RateLimit-Reset")); reset != "" {
		if val, err := strconv.Atoi(reset); err == nil {
			c.rateLimit.Reset = val
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

// ListMatches returns every match the backend knows about.
func (c *Client) ListMatches(ctx context.Context) ([]domain.Match, error) {
	raw, err := c.get(ctx, "/api/matches")
	if err != nil {
		return nil, err
	}
	return normalizeMatches(envelope.UnwrapArray(raw, "matches", "data")), nil
}

// SeasonMatches returns the matches assigned to one season.
func (c *Client) SeasonMatches(ctx context.Context, seasonID int) ([]domain.Match, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/api/seasons/%d/matches", seasonID))
	if err != nil {
		return nil, err
	}
	return normalizeMatches(envelope.UnwrapArray(raw, "matches", "data")), nil
}

// GetMatch returns one match, nil when the backend has no record for the id.
func (c *Client) GetMatch(ctx context.Context, matchID int) (*domain.Match, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/api/matches/%d", matchID))
	if err != nil {
		return nil, err
	}
	rec := envelope.UnwrapObject(raw, "match", "data")
	if rec == nil {
		return nil, nil
	}
	m := normalize.Match(rec)
	return &m, nil
}

// MatchPlayerRows returns the raw per-map player stat rows for one match.
// Rows stay raw because the aggregator pools them before normalizing.
func (c *Client) MatchPlayerRows(ctx context.Context, matchID int) ([]map[string]any, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/api/playerstats/match/%d", matchID))
	if err != nil {
		return nil, err
	}
	return envelope.UnwrapArray(raw, "playerstats", "player_stats", "data"), nil
}

// MatchMapStats returns the completed maps of one series. The parent match's
// team ids drive per-map winner resolution.
func (c *Client) MatchMapStats(ctx context.Context, matchID, team1ID, team2ID int) ([]domain.MapStat, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/api/mapstats/%d", matchID))
	if err != nil {
		return nil, err
	}
	records := envelope.UnwrapArray(raw, "mapstats", "map_stats", "data")
	maps := make([]domain.MapStat, 0, len(records))
	for _, rec := range records {
		maps = append(maps, normalize.MapStat(rec, team1ID, team2ID))
	}
	return maps, nil
}

// ListPlayerStats returns season-wide cumulative player stat lines.
func (c *Client) ListPlayerStats(ctx context.Context) ([]domain.PlayerStat, error) {
	raw, err := c.get(ctx, "/api/playerstats")
	if err != nil {
		return nil, err
	}
	return normalizePlayers(envelope.UnwrapArray(raw, "playerstats", "player_stats", "data")), nil
}

// GetPlayerStats returns one player's season stat line, nil when unknown.
func (c *Client) GetPlayerStats(ctx context.Context, steamID string) (*domain.PlayerStat, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/api/playerstats/%s", steamID))
	if err != nil {
		return nil, err
	}
	rec := envelope.UnwrapObject(raw, "playerstats", "player_stats", "data")
	if rec == nil {
		return nil, nil
	}
	p := normalize.Player(rec)
	return &p, nil
}

// ListServers returns the registered game servers.
func (c *Client) ListServers(ctx context.Context) ([]domain.GameServer, error) {
	raw, err := c.get(ctx, "/api/servers")
	if err != nil {
		return nil, err
	}
	records := envelope.UnwrapArray(raw, "servers", "data")
	servers := make([]domain.GameServer, 0, len(records))
	for _, rec := range records {
		servers = append(servers, normalize.Server(rec))
	}
	return servers, nil
}

func normalizeMatches(records []map[string]any) []domain.Match {
	matches := make([]domain.Match, 0, len(records))
	for _, rec := range records {
		matches = append(matches, normalize.Match(rec))
	}
	return matches
}

func normalizePlayers(records []map[string]any) []domain.PlayerStat {
	players := make([]domain.PlayerStat, 0, len(records))
	for _, rec := range records {
		players = append(players, normalize.Player(rec))
	}
	return players
}

// get performs one backend request and decodes the body without assuming an
// envelope shape.
func (c *Client) get(ctx context.Context, path string) (any, error) {
	if c.limiter != nil && !c.limiter.Allow(limiterKey) {
		c.logger.Warn().Str("path", path).Msg("request dropped by client-side rate limit")
		return nil, ErrRateLimited
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodGet)
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("backend request %s: %w", path, err)
		}
	} else {
		if err := c.client.Do(req, resp); err != nil {
			return nil, fmt.Errorf("backend request %s: %w", path, err)
		}
	}

	c.updateRateLimit(resp)

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("backend request %s: status %d", path, resp.StatusCode())
	}

	var data any
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, fmt.Errorf("backend response %s: %w", path, err)
	}
	return data, nil
}
