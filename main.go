// PokeAPI MCP Server - A Model Context Protocol server for the public PokeAPI
// Provides read-only tools for looking up Pokémon, species attributes and items
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/pokeapi-mcp-server/internal/pokeapi"
	"github.com/olgasafonova/pokeapi-mcp-server/metrics"
	"github.com/olgasafonova/pokeapi-mcp-server/tools"
	"github.com/olgasafonova/pokeapi-mcp-server/tracing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ServerName    = "pokeapi-mcp-server"
	ServerVersion = "1.0.0"

	shutdownTimeout = 10 * time.Second
)

const serverInstructions = `Welcome to the PokeAPI MCP Server!
This server provides read-only tools to query information about Pokémon and items from PokeAPI.

Available tools:
- get_pokemon_details: Profile of a Pokémon by English name or Pokédex ID (stats, types, size, artwork)
- get_pokemon_types: The type(s) of a Pokémon (e.g. fire, water)
- get_pokemon_color: The Pokédex color of a Pokémon (e.g. red, yellow)
- get_pokemon_shape: The body shape of a Pokémon (e.g. humanoid, quadruped)
- list_all_pokemon_names: Names of all Pokémon, useful for broad searches
- get_item_details: Profile of an item by name or ID (cost, category, effect)
- list_all_items: Names of items, paginated

Tips for effective use:
- Use English lowercase names (e.g. 'pikachu') or National Pokédex IDs (e.g. 25).
- Descriptive queries (e.g. 'find a yellow, bipedal Pokémon') may need several tools: list names first, then check color or shape for candidates.
- Errors come back as {"error": ..., "details": ...}; a 404 status means the name or ID does not exist.`

// CLI holds the server configuration. Every flag can also be set from the
// environment or a .env file.
type CLI struct {
	Transport string        `help:"MCP transport." enum:"sse,streamable,stdio" default:"sse" env:"MCP_TRANSPORT"`
	Host      string        `help:"Listen host for HTTP transports." default:"0.0.0.0" env:"MCP_HOST"`
	Port      int           `help:"Listen port for HTTP transports." default:"7796" env:"MCP_PORT"`
	BaseURL   string        `help:"PokeAPI base URL." default:"https://pokeapi.co/api/v2" env:"POKEAPI_BASE_URL"`
	Timeout   time.Duration `help:"PokeAPI request timeout." default:"30s" env:"POKEAPI_TIMEOUT"`
	UserAgent string        `help:"User-Agent sent to PokeAPI." env:"POKEAPI_USER_AGENT"`
	LogLevel  string        `help:"Log level." enum:"debug,info,warn,error" default:"info" env:"LOG_LEVEL"`

	Tracing      bool    `help:"Export OpenTelemetry spans (to stderr unless --otlp-endpoint is set)." env:"OTEL_ENABLED"`
	OTLPEndpoint string  `help:"OTLP/HTTP collector endpoint. Setting it enables tracing." env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Environment  string  `help:"Deployment environment recorded on spans." default:"development" env:"OTEL_ENVIRONMENT"`
	SampleRate   float64 `help:"Fraction of traces to sample." default:"1.0" env:"OTEL_SAMPLE_RATE"`

	Version kong.VersionFlag `help:"Print version and exit."`
}

// Addr returns the HTTP listen address.
func (c *CLI) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// TracingConfig returns the tracer setup for this process.
func (c *CLI) TracingConfig() tracing.Config {
	return tracing.Config{
		ServiceName:    ServerName,
		ServiceVersion: ServerVersion,
		Environment:    c.Environment,
		Enabled:        c.Tracing || c.OTLPEndpoint != "",
		OTLPEndpoint:   c.OTLPEndpoint,
		SampleRate:     c.SampleRate,
	}
}

// parseCLI parses command-line arguments, falling back to environment variables.
func parseCLI(args []string) (*CLI, error) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name(ServerName),
		kong.Description("MCP server exposing read-only PokeAPI lookups."),
		kong.Vars{"version": ServerVersion},
		kong.UsageOnError(),
	)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, err
	}
	return &cli, nil
}

// newLogger creates the process logger. stdout is reserved for the stdio transport.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// newServer creates the MCP server with all tools registered.
func newServer(client *pokeapi.Client, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	tools.NewHandlerRegistry(client, logger).RegisterAll(server)
	return server
}

// recoverPanic recovers a panic in a background goroutine and logs it
func recoverPanic(logger *slog.Logger, operation string) {
	if r := recover(); r != nil {
		logger.Error("Panic recovered",
			"operation", operation,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	cli, err := parseCLI(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(cli.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cli, logger); err != nil {
		logger.Error("Server error", "error", err)
		stop()
		os.Exit(1)
	}
}

// run serves until ctx is cancelled.
func run(ctx context.Context, cli *CLI, logger *slog.Logger) error {
	shutdownTracing, err := tracing.Setup(ctx, cli.TracingConfig())
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("Tracer shutdown failed", "error", err)
		}
	}()

	userAgent := cli.UserAgent
	if userAgent == "" {
		userAgent = ServerName + "/" + ServerVersion
	}
	client := pokeapi.NewClient(
		pokeapi.WithBaseURL(cli.BaseURL),
		pokeapi.WithTimeout(cli.Timeout),
		pokeapi.WithUserAgent(userAgent),
		pokeapi.WithLogger(logger),
	)
	server := newServer(client, logger)

	logger.Info("Starting PokeAPI MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"transport", cli.Transport,
		"pokeapi_url", cli.BaseURL,
		"tracing", cli.TracingConfig().Enabled,
	)

	if cli.Transport == "stdio" {
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}

	return serveHTTP(ctx, cli.Addr(), newHTTPHandler(server, cli.Transport, logger), logger)
}

// newHTTPHandler mounts the MCP endpoint for transport plus health and metrics.
// Every route, including the catch-all 404, is counted and timed per path.
func newHTTPHandler(server *mcp.Server, transport string, logger *slog.Logger) http.Handler {
	getServer := func(*http.Request) *mcp.Server { return server }

	mux := http.NewServeMux()
	handle := func(path string, h http.Handler) {
		label := path
		if path == "/" {
			label = "other"
		}
		mux.Handle(path, metrics.InstrumentHTTP(label, recoverHTTP(h, logger)))
	}

	switch transport {
	case "streamable":
		handle("/mcp", mcp.NewStreamableHTTPHandler(getServer, nil))
	default:
		handle("/sse", mcp.NewSSEHandler(getServer, nil))
	}
	handle("/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"status":"ok","name":%q,"version":%q}`, ServerName, ServerVersion)
	}))
	handle("/metrics", promhttp.Handler())
	handle("/", http.NotFoundHandler())

	return mux
}

// serveHTTP runs the HTTP server until ctx is cancelled, then shuts it down.
func serveHTTP(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer recoverPanic(logger, "http server")
		logger.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP shutdown failed: %w", err)
	}
	return nil
}

// recoverHTTP turns a handler panic into a 500 response.
func recoverHTTP(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				if p == http.ErrAbortHandler {
					panic(p)
				}
				logger.Error("Panic recovered",
					"operation", "http "+r.Method+" "+r.URL.Path,
					"panic", p,
					"stack", string(debug.Stack()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
