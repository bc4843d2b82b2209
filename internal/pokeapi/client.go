package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"pokedex/pkg/models"
)

// DefaultBaseURL is the public PokeAPI v2 root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// ErrFetch is the single failure kind: the request failed, the upstream
// answered with a non-2xx status, or the body did not decode.
var ErrFetch = errors.New("pokeapi: fetch failed")

// API is what the views depend on.
type API interface {
	FetchPage(ctx context.Context, limit int) ([]models.Pokemon, error)
	GetDetail(ctx context.Context, idOrName string) (*models.PokemonDetail, error)
}

// Client talks to a PokeAPI-compatible server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Log     *zap.Logger
}

type Option func(*Client)

// WithTimeout sets a per-request timeout. Zero keeps requests unbounded.
// The client's *http.Client is copied first, so one passed through
// WithHTTPClient is never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.HTTP
		hc.Timeout = d
		c.HTTP = &hc
	}
}

// WithHTTPClient replaces the transport client. nil is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.HTTP = hc
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.Log = l }
}

func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
		Log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// wire shapes; only the fields we render are decoded.

type listResponse struct {
	Results []models.Summary `json:"results"`
}

type namedRef struct {
	Name string `json:"name"`
}

type pokemonResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Types []struct {
		Type namedRef `json:"type"`
	} `json:"types"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`

	Height    int `json:"height"`
	Weight    int `json:"weight"`
	Abilities []struct {
		Ability namedRef `json:"ability"`
	} `json:"abilities"`
	Stats []struct {
		BaseStat int      `json:"base_stat"`
		Stat     namedRef `json:"stat"`
	} `json:"stats"`
}

func (r pokemonResponse) record() models.Pokemon {
	types := make([]string, 0, len(r.Types))
	for _, t := range r.Types {
		types = append(types, t.Type.Name)
	}
	return models.Pokemon{
		ID:     r.ID,
		Name:   r.Name,
		Types:  types,
		Sprite: r.Sprites.FrontDefault,
	}
}

func (r pokemonResponse) detail() models.PokemonDetail {
	d := models.PokemonDetail{
		Pokemon:   r.record(),
		Height:    r.Height,
		Weight:    r.Weight,
		Abilities: make([]string, 0, len(r.Abilities)),
		Stats:     make([]models.Stat, 0, len(r.Stats)),
	}
	for _, a := range r.Abilities {
		d.Abilities = append(d.Abilities, a.Ability.Name)
	}
	for _, s := range r.Stats {
		d.Stats = append(d.Stats, models.Stat{Name: s.Stat.Name, Base: s.BaseStat})
	}
	return d
}

// ListSummaries requests GET /pokemon?limit=N.
func (c *Client) ListSummaries(ctx context.Context, limit int) ([]models.Summary, error) {
	u, err := url.Parse(c.BaseURL + "/pokemon")
	if err != nil {
		return nil, fmt.Errorf("%w: parse base url: %v", ErrFetch, err)
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	var out listResponse
	if err := c.getJSON(ctx, u.String(), &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// GetPokemon resolves a summary locator into a record.
func (c *Client) GetPokemon(ctx context.Context, locator string) (*models.Pokemon, error) {
	var raw pokemonResponse
	if err := c.getJSON(ctx, locator, &raw); err != nil {
		return nil, err
	}
	p := raw.record()
	return &p, nil
}

// GetDetail requests GET /pokemon/{idOrName}.
func (c *Client) GetDetail(ctx context.Context, idOrName string) (*models.PokemonDetail, error) {
	var raw pokemonResponse
	if err := c.getJSON(ctx, c.BaseURL+"/pokemon/"+url.PathEscape(idOrName), &raw); err != nil {
		return nil, err
	}
	d := raw.detail()
	return &d, nil
}

// FetchPage lists limit summaries and resolves every one of them.
func (c *Client) FetchPage(ctx context.Context, limit int) ([]models.Pokemon, error) {
	summaries, err := c.ListSummaries(ctx, limit)
	if err != nil {
		return nil, err
	}
	return Resolve(ctx, c, summaries)
}

func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: build request %s: %v", ErrFetch, rawURL, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request %s: %w", ErrFetch, rawURL, err)
	}
	defer resp.Body.Close()

	c.Log.Debug("pokeapi request",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s: status %d: %s", ErrFetch, rawURL, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrFetch, rawURL, err)
	}
	return nil
}
