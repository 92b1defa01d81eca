package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/olgasafonova/pokeapi-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/pokeapi-mcp-server/internal/errors"
	"github.com/olgasafonova/pokeapi-mcp-server/metrics"
)

// DefaultBaseURL is the public PokeAPI v2 root
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Client provides access to PokeAPI
type Client struct {
	*base.Client
}

// ClientOption configures the Client (re-export base.ClientOption for compatibility)
type ClientOption = base.ClientOption

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return base.WithHTTPClient(c)
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return base.WithLogger(l)
}

// WithBaseURL points the client at a different PokeAPI deployment
func WithBaseURL(u string) ClientOption {
	return base.WithBaseURL(u)
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) ClientOption {
	return base.WithTimeout(d)
}

// WithUserAgent overrides the default User-Agent
func WithUserAgent(ua string) ClientOption {
	return base.WithUserAgent(ua)
}

// NewClient creates a new PokeAPI client
func NewClient(opts ...ClientOption) *Client {
	opts = append([]ClientOption{base.WithBaseURL(DefaultBaseURL)}, opts...)
	return &Client{Client: base.NewClient(opts...)}
}

// Fetch performs one GET against endpoint, which is relative to the base URL
// (e.g. "/pokemon/25/"). The returned document is valid JSON. Any failure is
// an *apierrors.APIError and has already been logged.
func (c *Client) Fetch(ctx context.Context, endpoint string) (json.RawMessage, error) {
	resource := resourceOf(endpoint)
	fullURL := c.BaseURL + endpoint

	start := time.Now()
	body, status, err := c.DoRequest(ctx, base.RequestConfig{URL: fullURL, Resource: resource})
	apiErr := classify(body, status, err)
	duration := time.Since(start).Seconds()

	if apiErr != nil {
		metrics.RecordUpstreamCall(resource, duration, false, apiErr.Code())
		c.Logger.Error("PokeAPI request failed",
			"url", fullURL,
			"code", apiErr.Code(),
			"error", apiErr.Message,
			"details", base.Truncate(apiErr.Details, 200))
		return nil, apiErr
	}

	metrics.RecordUpstreamCall(resource, duration, true, "")
	return json.RawMessage(body), nil
}

func classify(body []byte, status int, err error) *apierrors.APIError {
	if err != nil {
		var reqErr *base.RequestError
		if errors.As(err, &reqErr) {
			return apierrors.NewTransportError(reqErr.Err)
		}
		return apierrors.NewUnexpectedError(err)
	}
	if status >= 400 {
		return apierrors.NewStatusError(status, string(body))
	}
	if !json.Valid(body) {
		return apierrors.NewUnexpectedError(errors.New("response body is not valid JSON"))
	}
	return nil
}

// ResolveSpecies fetches a creature and follows its species link to the
// species document.
func (c *Client) ResolveSpecies(ctx context.Context, id Identifier) (json.RawMessage, error) {
	doc, err := c.Fetch(ctx, pokemonEndpoint(normalizePokemon(id)))
	if err != nil {
		return nil, err
	}

	var p Pokemon
	if err := json.Unmarshal(doc, &p); err != nil {
		apiErr := apierrors.NewProcessingError("Pokémon species", err)
		c.Logger.Error("Failed to decode Pokémon document", "identifier", id.String(), "error", err)
		return nil, apiErr
	}

	if p.Species == nil || p.Species.URL == "" {
		c.Logger.Warn("Species URL not found", "identifier", id.String(), "name", p.Name)
		return nil, apierrors.NewNotFoundError("Species URL not found", p.Name)
	}

	return c.Fetch(ctx, strings.TrimPrefix(p.Species.URL, c.BaseURL))
}
