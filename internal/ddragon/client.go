// Package ddragon resolves champion metadata from Riot's Data Dragon
// catalog: numeric ids to display names and display names to icon keys.
package ddragon

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

const (
	versionsURL  = "https://ddragon.leagueoflegends.com/api/versions.json"
	championsURL = "https://ddragon.leagueoflegends.com/cdn/%s/data/en_US/champion.json"

	versionTTL  = time.Hour
	championTTL = 24 * time.Hour

	// fallbackVersion is used when the version catalog is unreachable.
	fallbackVersion = "14.7.1"
)

// ChampionData holds the two lookups the views need.
type ChampionData struct {
	// NamesByID maps numeric champion ids (as strings) to display names.
	NamesByID map[string]string
	// IconKeys maps display names to Data Dragon asset keys.
	IconKeys map[string]string
}

// Name resolves a numeric id to a display name, returning the id itself
// when unknown.
func (d *ChampionData) Champion(id string) string {
	if d == nil {
		return id
	}
	if name, ok := d.NamesByID[id]; ok {
		return name
	}
	return id
}

// IconKey resolves a display name to its asset key, falling back to the
// normalized name.
func (d *ChampionData) IconKey(name string) string {
	if d != nil {
		if key, ok := d.IconKeys[name]; ok {
			return key
		}
	}
	return NormalizeName(name)
}

// Client fetches and caches Data Dragon catalogs. Safe for concurrent use.
type Client struct {
	http *http.Client

	mu            sync.Mutex
	version       string
	versionAt     time.Time
	champions     *ChampionData
	championsAt   time.Time
}

// NewClient returns a Data Dragon client.
func NewClient() *Client {
	return &Client{http: &http.Client{Timeout: 15 * time.Second}}
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// LatestVersion returns the newest catalog version, cached for an hour.
// Falls back to a known-good version when the catalog is unreachable.
func (c *Client) LatestVersion(ctx context.Context) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.version != "" && time.Since(c.versionAt) < versionTTL {
		return c.version
	}
	var versions []string
	if err := c.getJSON(ctx, versionsURL, &versions); err != nil || len(versions) == 0 {
		return fallbackVersion
	}
	c.version = versions[0]
	c.versionAt = time.Now()
	return c.version
}

// Champions returns the champion lookups, cached for a day.
func (c *Client) Champions(ctx context.Context) (*ChampionData, error) {
	c.mu.Lock()
	if c.champions != nil && time.Since(c.championsAt) < championTTL {
		defer c.mu.Unlock()
		return c.champions, nil
	}
	c.mu.Unlock()

	version := c.LatestVersion(ctx)
	var payload struct {
		Data map[string]struct {
			Key  string `json:"key"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf(championsURL, version), &payload); err != nil {
		return nil, fmt.Errorf("fetch champion catalog: %w", err)
	}

	data := &ChampionData{
		NamesByID: make(map[string]string, len(payload.Data)),
		IconKeys:  make(map[string]string, len(payload.Data)),
	}
	for ddragonKey, info := range payload.Data {
		data.NamesByID[info.Key] = info.Name
		key := NormalizeName(info.Name)
		if key == "" {
			key = ddragonKey
		}
		data.IconKeys[info.Name] = key
	}

	c.mu.Lock()
	c.champions = data
	c.championsAt = time.Now()
	c.mu.Unlock()
	return data, nil
}

// nameOverrides covers display names whose Data Dragon key cannot be
// derived by stripping punctuation.
var nameOverrides = map[string]string{
	"Nunu & Willump": "Nunu",
	"Wukong":         "MonkeyKing",
	"Renata Glasc":   "Renata",
	"K'Sante":        "KSante",
	"LeBlanc":        "Leblanc",
	"Miss Fortune":   "MissFortune",
	"Jarvan IV":      "JarvanIV",
	"Twisted Fate":   "TwistedFate",
	"Dr. Mundo":      "DrMundo",
	"Xin Zhao":       "XinZhao",
	"Bel'Veth":       "Belveth",
	"Kai'Sa":         "Kaisa",
	"Cho'Gath":       "Chogath",
	"Kha'Zix":        "Khazix",
	"Vel'Koz":        "Velkoz",
	"Rek'Sai":        "RekSai",
	"Aurelion Sol":   "AurelionSol",
}

// cleanedOverrides fixes casing for names that survive cleanup but with the
// wrong capitalization.
var cleanedOverrides = map[string]string{
	"monkeyking":  "MonkeyKing",
	"ksante":      "KSante",
	"leblanc":     "Leblanc",
	"missfortune": "MissFortune",
	"jarvaniv":    "JarvanIV",
	"twistedfate": "TwistedFate",
	"drmundo":     "DrMundo",
	"xinzhao":     "XinZhao",
	"belveth":     "Belveth",
	"kaisa":       "Kaisa",
	"chogath":     "Chogath",
	"khazix":      "Khazix",
	"velkoz":      "Velkoz",
	"reksai":      "RekSai",
	"aurelionsol": "AurelionSol",
}

// NormalizeName converts a champion display name to its Data Dragon asset
// key. Returns "" for empty or placeholder input.
func NormalizeName(name string) string {
	if name == "" || name == "N/A" {
		return ""
	}
	if key, ok := nameOverrides[name]; ok {
		return key
	}
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if key, ok := cleanedOverrides[strings.ToLower(cleaned)]; ok {
		return key
	}
	return cleaned
}
