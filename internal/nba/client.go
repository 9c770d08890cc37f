// Package nba provides a minimal client for the stats.nba.com endpoints
// used by the role clustering pipeline.
package nba

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/courtvision/nbaroles/internal/model"
)

// baseURL is the root endpoint for the stats.nba.com JSON API.
const baseURL = "https://stats.nba.com/stats"

// Client is a minimal stats.nba.com client. The API is unauthenticated
// but rejects requests without browser-like headers.
type Client struct {
	http *http.Client
}

// NewClient returns a stats.nba.com client with a request timeout.
func NewClient() *Client {
	return &Client{
		http: &http.Client{Timeout: 60 * time.Second},
	}
}

// get performs a GET request against the stats API and returns the raw
// response body.
func (c *Client) get(path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequest("GET", baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	// stats.nba.com returns 403 without these.
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", "https://www.nba.com/")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: read body: %w", path, err)
	}
	return body, nil
}

// SeasonTotals fetches raw per-player season totals for one season.
func (c *Client) SeasonTotals(season string) ([]model.RawTotals, error) {
	params := url.Values{
		"LeagueID":       {"00"},
		"Season":         {season},
		"SeasonType":     {"Regular Season"},
		"PerMode":        {"Totals"},
		"MeasureType":    {"Base"},
		"PaceAdjust":     {"N"},
		"PlusMinus":      {"N"},
		"Rank":           {"N"},
		"LastNGames":     {"0"},
		"Month":          {"0"},
		"OpponentTeamID": {"0"},
		"Period":         {"0"},
		"TeamID":         {"0"},
	}
	body, err := c.get("/leaguedashplayerstats", params)
	if err != nil {
		return nil, err
	}
	return DecodeTotals(body)
}

// Roster fetches the league-wide player index for one season: team
// affiliation and listed position per player.
func (c *Client) Roster(season string) ([]model.RawRosterEntry, error) {
	params := url.Values{
		"LeagueID": {"00"},
		"Season":   {season},
	}
	body, err := c.get("/playerindex", params)
	if err != nil {
		return nil, err
	}
	return DecodeRoster(body)
}

// PlayTypeFrequencies fetches the ten synergy play-type tables for one
// season and returns the flattened frequency observations. One request
// per play type; any failed request fails the whole pull.
func (c *Client) PlayTypeFrequencies(season string) ([]model.RawPlayFreq, error) {
	var out []model.RawPlayFreq
	for _, key := range model.FreqKeys {
		params := url.Values{
			"LeagueID":     {"00"},
			"SeasonYear":   {season},
			"SeasonType":   {"Regular Season"},
			"PerMode":      {"PerGame"},
			"PlayerOrTeam": {"P"},
			"PlayType":     {key},
			"TypeGrouping": {"offensive"},
		}
		body, err := c.get("/synergyplaytypes", params)
		if err != nil {
			return nil, fmt.Errorf("play type %s: %w", key, err)
		}
		rows, err := DecodeSynergy(body, key)
		if err != nil {
			return nil, fmt.Errorf("play type %s: %w", key, err)
		}
		out = append(out, rows...)
	}
	return out, nil
}
