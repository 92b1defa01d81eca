package pokeapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	apierrors "github.com/olgasafonova/pokeapi-mcp-server/internal/errors"
)

const apiPrefix = "/api/v2"

// fakeAPI serves canned documents keyed by request path (without the /api/v2
// prefix) and records every path it was asked for. Documents may contain
// {{base}}, replaced by the server's base URL.
type fakeAPI struct {
	mu       sync.Mutex
	server   *httptest.Server
	docs     map[string]string
	statuses map[string]int
	paths    []string
}

func newFakeAPI(t *testing.T, docs map[string]string) *fakeAPI {
	t.Helper()
	f := &fakeAPI{docs: docs, statuses: map[string]int{}}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAPI) baseURL() string {
	return f.server.URL + apiPrefix
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, apiPrefix)
	if r.URL.RawQuery != "" {
		path += "?" + r.URL.RawQuery
	}

	f.mu.Lock()
	f.paths = append(f.paths, path)
	status, hasStatus := f.statuses[path]
	doc, ok := f.docs[path]
	f.mu.Unlock()

	if hasStatus {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(doc))
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Not Found"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(strings.ReplaceAll(doc, "{{base}}", f.baseURL())))
}

func (f *fakeAPI) setStatus(path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[path] = status
}

func (f *fakeAPI) requested() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}

func (f *fakeAPI) client() *Client {
	return NewClient(
		WithBaseURL(f.baseURL()),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

const pikachuDoc = `{
	"id": 25,
	"name": "pikachu",
	"height": 4,
	"weight": 60,
	"types": [{"slot": 1, "type": {"name": "electric", "url": "{{base}}/type/13/"}}],
	"stats": [
		{"base_stat": 35, "effort": 0, "stat": {"name": "hp", "url": "{{base}}/stat/1/"}},
		{"base_stat": 90, "effort": 2, "stat": {"name": "speed", "url": "{{base}}/stat/6/"}}
	],
	"sprites": {
		"front_default": "http://img/25.png",
		"other": {"official-artwork": {"front_default": "http://img/official/25.png"}}
	},
	"species": {"name": "pikachu", "url": "{{base}}/pokemon-species/25/"}
}`

const pikachuSpeciesDoc = `{
	"id": 25,
	"name": "pikachu",
	"color": {"name": "yellow", "url": "{{base}}/pokemon-color/10/"},
	"shape": {"name": "quadruped", "url": "{{base}}/pokemon-shape/8/"}
}`

func TestNewClient(t *testing.T) {
	client := NewClient()
	if client == nil {
		t.Fatal("NewClient returned nil")
	}
	if client.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", client.BaseURL, DefaultBaseURL)
	}
	if client.HTTPClient == nil {
		t.Error("HTTPClient is nil")
	}
}

func TestNewClientWithOptions(t *testing.T) {
	customHTTPClient := &http.Client{Timeout: 60 * time.Second}
	client := NewClient(
		WithHTTPClient(customHTTPClient),
		WithBaseURL("http://localhost:8000/api/v2/"),
		WithUserAgent("test/1.0"),
	)

	if client.HTTPClient != customHTTPClient {
		t.Error("custom HTTP client was not set")
	}
	if client.BaseURL != "http://localhost:8000/api/v2" {
		t.Errorf("BaseURL = %q", client.BaseURL)
	}
	if client.UserAgent != "test/1.0" {
		t.Errorf("UserAgent = %q", client.UserAgent)
	}
}

func TestFetch_Success(t *testing.T) {
	api := newFakeAPI(t, map[string]string{"/pokemon/25/": pikachuDoc})

	doc, err := api.client().Fetch(context.Background(), "/pokemon/25/")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !strings.Contains(string(doc), `"pikachu"`) {
		t.Errorf("unexpected document: %s", doc)
	}
}

func TestFetch_StatusError(t *testing.T) {
	api := newFakeAPI(t, map[string]string{})

	_, err := api.client().Fetch(context.Background(), "/pokemon/missingno/")
	if err == nil {
		t.Fatal("expected error for 404")
	}

	apiErr, ok := apierrors.As(err)
	if !ok {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.Message != "API request failed with status 404" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details != "Not Found" {
		t.Errorf("Details = %q, want upstream body", apiErr.Details)
	}
	if !apierrors.IsNotFound(err) {
		t.Error("IsNotFound should be true")
	}
}

func TestFetch_ServerErrorNotRetried(t *testing.T) {
	api := newFakeAPI(t, map[string]string{"/item/1/": "boom"})
	api.setStatus("/item/1/", http.StatusInternalServerError)

	_, err := api.client().Fetch(context.Background(), "/item/1/")
	apiErr, ok := apierrors.As(err)
	if !ok {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if got := len(api.requested()); got != 1 {
		t.Errorf("upstream called %d times, want 1", got)
	}
}

func TestFetch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(WithBaseURL(baseURL), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	_, err := client.Fetch(context.Background(), "/pokemon/25/")

	apiErr, ok := apierrors.As(err)
	if !ok {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Message != "API request error" {
		t.Errorf("Message = %q, want API request error", apiErr.Message)
	}
	if apiErr.Details == "" {
		t.Error("Details should carry the underlying cause")
	}
}

func TestFetch_InvalidJSON(t *testing.T) {
	api := newFakeAPI(t, map[string]string{"/pokemon/25/": "<html>not json</html>"})

	_, err := api.client().Fetch(context.Background(), "/pokemon/25/")
	apiErr, ok := apierrors.As(err)
	if !ok {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Kind != apierrors.KindUnexpected {
		t.Errorf("Kind = %v, want unexpected", apiErr.Kind)
	}
	if apiErr.Message != "An unexpected error occurred" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestResolveSpecies(t *testing.T) {
	api := newFakeAPI(t, map[string]string{
		"/pokemon/25/":         pikachuDoc,
		"/pokemon-species/25/": pikachuSpeciesDoc,
	})

	doc, err := api.client().ResolveSpecies(context.Background(), "25")
	if err != nil {
		t.Fatalf("ResolveSpecies failed: %v", err)
	}

	paths := api.requested()
	if len(paths) != 2 || paths[0] != "/pokemon/25/" || paths[1] != "/pokemon-species/25/" {
		t.Errorf("requested paths = %v, want [/pokemon/25/ /pokemon-species/25/]", paths)
	}
	if !strings.Contains(string(doc), `"color"`) {
		t.Errorf("expected species document, got %s", doc)
	}
	if strings.Contains(string(doc), `"stats"`) {
		t.Error("resolver returned the creature document instead of the species document")
	}
}

func TestResolveSpecies_LowerCasesIdentifier(t *testing.T) {
	api := newFakeAPI(t, map[string]string{
		"/pokemon/pikachu/":    pikachuDoc,
		"/pokemon-species/25/": pikachuSpeciesDoc,
	})

	if _, err := api.client().ResolveSpecies(context.Background(), "PIKACHU"); err != nil {
		t.Fatalf("ResolveSpecies failed: %v", err)
	}
	if paths := api.requested(); paths[0] != "/pokemon/pikachu/" {
		t.Errorf("first request = %q, want /pokemon/pikachu/", paths[0])
	}
}

func TestResolveSpecies_PropagatesFetchError(t *testing.T) {
	api := newFakeAPI(t, map[string]string{})

	_, err := api.client().ResolveSpecies(context.Background(), "missingno")
	if !apierrors.IsNotFound(err) {
		t.Fatalf("error = %v, want upstream 404", err)
	}
	if got := len(api.requested()); got != 1 {
		t.Errorf("upstream called %d times, want 1", got)
	}
}

func TestResolveSpecies_MissingSpeciesURL(t *testing.T) {
	api := newFakeAPI(t, map[string]string{
		"/pokemon/ditto/": `{"id": 132, "name": "ditto", "types": []}`,
	})

	_, err := api.client().ResolveSpecies(context.Background(), "ditto")
	apiErr, ok := apierrors.As(err)
	if !ok {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Message != "Species URL not found" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Name != "ditto" {
		t.Errorf("Name = %q, want ditto", apiErr.Name)
	}
}

func TestResolveSpecies_UndecodableCreature(t *testing.T) {
	api := newFakeAPI(t, map[string]string{
		"/pokemon/25/": `{"id": "twenty-five"}`,
	})

	_, err := api.client().ResolveSpecies(context.Background(), "25")
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Message != "Failed to process Pokémon species data" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}
