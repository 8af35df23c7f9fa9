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

	"github.com/bnema/pokedex-cli/internal/domain"
	"github.com/bnema/pokedex-cli/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	maxResponseBytes = 4 << 20
	userAgent        = "pdx/pokeapi"
)

// StatusError carries a non-2xx response from the remote API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ ports.PokemonSource = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) ListPokemon(ctx context.Context, window domain.PageWindow) ([]domain.ResourceRef, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(window.Limit))
	query.Set("offset", strconv.Itoa(window.Offset))
	endpoint := c.baseURL + "/pokemon?" + query.Encode()

	var payload listSchema
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("list pokemon at offset %d: %w", window.Offset, err)
	}

	return fromListSchema(payload), nil
}

func (c *Client) GetPokemon(ctx context.Context, ref domain.ResourceRef) (domain.PokemonRecord, error) {
	endpoint := strings.TrimSpace(ref.URL)
	if endpoint == "" {
		name := domain.NormalizeName(ref.Name)
		if name == "" {
			return domain.PokemonRecord{}, errors.New("pokemon name is empty")
		}
		endpoint = c.baseURL + "/pokemon/" + url.PathEscape(name)
	}

	var payload pokemonSchema
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return domain.PokemonRecord{}, fmt.Errorf("get pokemon %q: %w", refLabel(ref), err)
	}

	return fromPokemonSchema(payload), nil
}

func (c *Client) GetSpecies(ctx context.Context, speciesURL string) (domain.Species, error) {
	if strings.TrimSpace(speciesURL) == "" {
		return domain.Species{}, errors.New("species url is empty")
	}

	var payload speciesSchema
	if err := c.getJSON(ctx, speciesURL, &payload); err != nil {
		return domain.Species{}, fmt.Errorf("get species: %w", err)
	}
	if payload.EvolutionChain == nil || payload.EvolutionChain.URL == "" {
		return domain.Species{}, fmt.Errorf("%w: species %q has no evolution chain", domain.ErrNotFound, payload.Name)
	}

	return domain.Species{Name: payload.Name, EvolutionChainURL: payload.EvolutionChain.URL}, nil
}

func (c *Client) GetEvolutionChain(ctx context.Context, chainURL string) (domain.ChainLink, error) {
	if strings.TrimSpace(chainURL) == "" {
		return domain.ChainLink{}, errors.New("evolution chain url is empty")
	}

	var payload chainSchema
	if err := c.getJSON(ctx, chainURL, &payload); err != nil {
		return domain.ChainLink{}, fmt.Errorf("get evolution chain: %w", err)
	}

	return fromChainLinkSchema(payload.Chain), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, target any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", userAgent)

	response, err := c.httpClient.Do(request)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: perform request: %w", domain.ErrNetwork, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read response: %w", domain.ErrNetwork, err)
	}

	c.logger.Debug("pokeapi response",
		zap.String("url", endpoint),
		zap.Int("status", response.StatusCode),
		zap.Int("bytes", len(body)),
	)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: response.StatusCode, Body: strings.TrimSpace(string(body))}
		if response.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %w", domain.ErrNotFound, statusErr)
		}
		return fmt.Errorf("%w: %w", domain.ErrNetwork, statusErr)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%w: decode payload: %w", domain.ErrNetwork, err)
	}

	return nil
}

func refLabel(ref domain.ResourceRef) string {
	if ref.Name != "" {
		return ref.Name
	}
	return ref.URL
}
