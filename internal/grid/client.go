// Package grid provides a minimal client for the GRID esports data
// platform: series discovery over GraphQL and per-game file downloads
// (summary JSON, livestats JSONL) over REST.
package grid

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the root endpoint of the GRID API.
const DefaultBaseURL = "https://api.grid.gg/"

// lolTitleID is GRID's title id for League of Legends.
const lolTitleID = 3

// ErrNotFound marks a resource the platform does not have (older games often
// lack livestats files). Terminal for that game; never retried.
var ErrNotFound = errors.New("grid: resource not found")

// ErrUnauthorized marks an auth failure. Terminal; never retried.
var ErrUnauthorized = errors.New("grid: unauthorized")

// Client is a GRID API client. A zero delay disables inter-request pacing.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	delay   time.Duration
	log     zerolog.Logger
}

// NewClient returns a client authenticated with the given API key.
func NewClient(apiKey, baseURL string, delay time.Duration, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		delay:   delay,
		log:     log,
	}
}

// Pace sleeps the configured inter-request delay, returning early on
// context cancellation.
func (c *Client) Pace(ctx context.Context) {
	if c.delay <= 0 {
		return
	}
	select {
	case <-time.After(c.delay):
	case <-ctx.Done():
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// postGraphQL runs a GraphQL query with retries and decodes the "data"
// object into out.
func (c *Client) postGraphQL(ctx context.Context, endpoint, query string, variables map[string]interface{}, out interface{}) error {
	payload, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return err
	}

	const retries = 3
	delay := time.Second
	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, delay); err != nil {
				return err
			}
			delay *= 2
		}
		req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+endpoint, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("x-api-key", c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return fmt.Errorf("POST %s: HTTP %d: %w", endpoint, resp.StatusCode, ErrUnauthorized)
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("POST %s: HTTP %d", endpoint, resp.StatusCode)
			continue
		}

		var envelope struct {
			Data   json.RawMessage `json:"data"`
			Errors []struct {
				Message string `json:"message"`
			} `json:"errors"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			return fmt.Errorf("POST %s: decode: %w", endpoint, err)
		}
		if len(envelope.Errors) > 0 {
			lastErr = fmt.Errorf("POST %s: graphql: %s", endpoint, envelope.Errors[0].Message)
			c.log.Warn().Str("endpoint", endpoint).Str("error", envelope.Errors[0].Message).Msg("graphql error, retrying")
			continue
		}
		return json.Unmarshal(envelope.Data, out)
	}
	return lastErr
}

// getFile downloads a REST resource with retries. 429 honors Retry-After;
// auth errors and 404 are terminal.
func (c *Client) getFile(ctx context.Context, endpoint string) ([]byte, error) {
	const retries = 5
	delay := 2 * time.Second
	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, delay); err != nil {
				return nil, err
			}
			delay *= 2
		}
		req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("x-api-key", c.apiKey)

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK:
			if readErr != nil {
				lastErr = readErr
				continue
			}
			return body, nil
		case http.StatusTooManyRequests:
			wait := delay
			if ra := resp.Header.Get("Retry-After"); ra != "" {
				if secs, err := strconv.Atoi(ra); err == nil {
					wait = time.Duration(secs) * time.Second
				}
			}
			c.log.Warn().Str("endpoint", endpoint).Dur("wait", wait).Msg("rate limited")
			if err := sleepCtx(ctx, wait); err != nil {
				return nil, err
			}
			lastErr = fmt.Errorf("GET %s: HTTP 429", endpoint)
		case http.StatusNotFound:
			return nil, fmt.Errorf("GET %s: %w", endpoint, ErrNotFound)
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, fmt.Errorf("GET %s: HTTP %d: %w", endpoint, resp.StatusCode, ErrUnauthorized)
		case http.StatusBadRequest:
			return nil, fmt.Errorf("GET %s: HTTP 400", endpoint)
		default:
			lastErr = fmt.Errorf("GET %s: HTTP %d", endpoint, resp.StatusCode)
		}
	}
	return nil, lastErr
}

// Series is one scheduled series of the target tournament.
type Series struct {
	ID                 string `json:"id"`
	StartTimeScheduled string `json:"startTimeScheduled"`
}

// TournamentSeries pages through every series of a tournament scheduled at
// or after startDateGTE (RFC 3339).
func (c *Client) TournamentSeries(ctx context.Context, tournamentID, startDateGTE string) ([]Series, error) {
	filter := map[string]interface{}{
		"titleId":      lolTitleID,
		"tournamentId": tournamentID,
		"types":        []string{"ESPORTS"},
	}
	if startDateGTE != "" {
		filter["startTimeScheduled"] = map[string]string{"gte": startDateGTE}
	}
	return c.listSeries(ctx, filter, "ASC")
}

// ScrimSeries pages through every scrim series scheduled at or after
// startDateGTE, most recent first. Scrims are not tied to a tournament.
func (c *Client) ScrimSeries(ctx context.Context, startDateGTE string) ([]Series, error) {
	filter := map[string]interface{}{
		"titleId": lolTitleID,
		"types":   []string{"SCRIM"},
	}
	if startDateGTE != "" {
		filter["startTimeScheduled"] = map[string]string{"gte": startDateGTE}
	}
	return c.listSeries(ctx, filter, "DESC")
}

func (c *Client) listSeries(ctx context.Context, filter map[string]interface{}, orderDirection string) ([]Series, error) {
	const query = `
		query FindSeries($filter: SeriesFilter, $after: Cursor, $orderDirection: OrderDirection) {
		  allSeries(filter: $filter, first: 50, after: $after, orderBy: StartTimeScheduled, orderDirection: $orderDirection) {
		    pageInfo { hasNextPage endCursor }
		    edges { node { id startTimeScheduled } }
		  }
		}`

	var all []Series
	var cursor interface{}
	for {
		variables := map[string]interface{}{
			"filter":         filter,
			"after":          cursor,
			"orderDirection": orderDirection,
		}
		var data struct {
			AllSeries struct {
				PageInfo struct {
					HasNextPage bool   `json:"hasNextPage"`
					EndCursor   string `json:"endCursor"`
				} `json:"pageInfo"`
				Edges []struct {
					Node Series `json:"node"`
				} `json:"edges"`
			} `json:"allSeries"`
		}
		if err := c.postGraphQL(ctx, "central-data/graphql", query, variables, &data); err != nil {
			return all, err
		}
		for _, edge := range data.AllSeries.Edges {
			if edge.Node.ID != "" {
				all = append(all, edge.Node)
			}
		}
		if !data.AllSeries.PageInfo.HasNextPage || data.AllSeries.PageInfo.EndCursor == "" {
			return all, nil
		}
		cursor = data.AllSeries.PageInfo.EndCursor
		c.Pace(ctx)
	}
}

// SeriesGame identifies one game of a series.
type SeriesGame struct {
	ID             string `json:"id"`
	SequenceNumber int    `json:"sequenceNumber"`
}

// SeriesGames lists the games played in a series.
func (c *Client) SeriesGames(ctx context.Context, seriesID string) ([]SeriesGame, error) {
	const query = `query GetSeriesGames($seriesId: ID!) { seriesState(id: $seriesId) { id games { id sequenceNumber } } }`
	var data struct {
		SeriesState *struct {
			Games []SeriesGame `json:"games"`
		} `json:"seriesState"`
	}
	err := c.postGraphQL(ctx, "live-data-feed/series-state/graphql", query,
		map[string]interface{}{"seriesId": seriesID}, &data)
	if err != nil {
		return nil, err
	}
	if data.SeriesState == nil {
		return nil, nil
	}
	return data.SeriesState.Games, nil
}

// EndStateGame carries the draft actions of one finished game.
type EndStateGame struct {
	SequenceNumber int             `json:"sequenceNumber"`
	DraftActions   json.RawMessage `json:"draftActions"`
}

// SeriesEndState downloads the platform end-state file for a series and
// returns its per-game draft data.
func (c *Client) SeriesEndState(ctx context.Context, seriesID string) ([]EndStateGame, error) {
	body, err := c.getFile(ctx, "file-download/end-state/grid/series/"+seriesID)
	if err != nil {
		return nil, err
	}
	var data struct {
		SeriesState struct {
			Games []EndStateGame `json:"games"`
		} `json:"seriesState"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode end state for series %s: %w", seriesID, err)
	}
	return data.SeriesState.Games, nil
}

// GameSummary downloads the Riot summary JSON for one game.
func (c *Client) GameSummary(ctx context.Context, seriesID string, sequenceNumber int) ([]byte, error) {
	endpoint := fmt.Sprintf("file-download/end-state/riot/series/%s/games/%d/summary", seriesID, sequenceNumber)
	return c.getFile(ctx, endpoint)
}

// GameLivestats downloads the livestats JSONL for one game. Payloads that
// are not valid UTF-8 are reinterpreted as Latin-1.
func (c *Client) GameLivestats(ctx context.Context, seriesID string, sequenceNumber int) ([]byte, error) {
	endpoint := fmt.Sprintf("file-download/events/riot/series/%s/games/%d", seriesID, sequenceNumber)
	body, err := c.getFile(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(body) {
		c.log.Warn().Str("series", seriesID).Int("game", sequenceNumber).Msg("livestats not valid UTF-8, decoding as Latin-1")
		body = latin1ToUTF8(body)
	}
	return body, nil
}

// latin1ToUTF8 reinterprets each byte as the Unicode code point of the same
// value.
func latin1ToUTF8(b []byte) []byte {
	buf := make([]byte, 0, len(b))
	for _, c := range b {
		buf = utf8.AppendRune(buf, rune(c))
	}
	return buf
}
