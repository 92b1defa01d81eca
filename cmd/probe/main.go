// Command probe calls every PokeAPI MCP tool once over an in-memory MCP
// session and prints the latency and outcome of each call. It exercises the
// same registration path as the server, so it doubles as a smoke test against
// a live or self-hosted PokeAPI.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/pokeapi-mcp-server/internal/pokeapi"
	"github.com/olgasafonova/pokeapi-mcp-server/tools"
)

// CLI configures a probe run. BaseURL and Timeout share their environment
// variables with the server.
type CLI struct {
	BaseURL  string        `help:"PokeAPI base URL." default:"https://pokeapi.co/api/v2" env:"POKEAPI_BASE_URL"`
	Timeout  time.Duration `help:"PokeAPI request timeout." default:"30s" env:"POKEAPI_TIMEOUT"`
	Pokemon  string        `help:"Pokémon name or ID to look up." default:"pikachu"`
	Item     string        `help:"Item name or ID to look up." default:"poke-ball"`
	Limit    int           `help:"Page size for list tools." default:"5"`
	Category string        `help:"Only probe tools in this category (pokemon, species, items)."`
	Repeat   int           `help:"Calls per tool; latency is averaged." default:"1"`
}

// probeCall is one tool invocation
type probeCall struct {
	Tool string
	Args map[string]any
}

// probeResult is the outcome of probing one tool
type probeResult struct {
	Tool    string
	Average time.Duration
	IsError bool
	Summary string
	Err     error
}

// plannedCalls builds the tool calls for the given flags.
func plannedCalls(cli *CLI) []probeCall {
	args := map[string]map[string]any{
		"get_pokemon_details":    {"pokemon_name_or_id": cli.Pokemon},
		"get_pokemon_types":      {"pokemon_name_or_id": cli.Pokemon},
		"get_pokemon_color":      {"pokemon_name_or_id": cli.Pokemon},
		"get_pokemon_shape":      {"pokemon_name_or_id": cli.Pokemon},
		"list_all_pokemon_names": {"limit": cli.Limit},
		"get_item_details":       {"item_name_or_id": cli.Item},
		"list_all_items":         {"limit": cli.Limit},
	}

	specs := tools.AllTools
	if cli.Category != "" {
		specs = tools.ToolsByCategory(cli.Category)
	}

	calls := make([]probeCall, 0, len(specs))
	for _, spec := range specs {
		calls = append(calls, probeCall{Tool: spec.Name, Args: args[spec.Name]})
	}
	return calls
}

// connect serves all tools on a fresh server and returns a client session to it.
func connect(ctx context.Context, client *pokeapi.Client, logger *slog.Logger) (*mcp.ClientSession, func(), error) {
	server := mcp.NewServer(&mcp.Implementation{Name: "pokeapi-mcp-probe", Version: "1.0.0"}, &mcp.ServerOptions{Logger: logger})
	tools.NewHandlerRegistry(client, logger).RegisterAll(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("server connect: %w", err)
	}

	mcpClient := mcp.NewClient(&mcp.Implementation{Name: "probe", Version: "1.0.0"}, nil)
	cs, err := mcpClient.Connect(ctx, clientTransport, nil)
	if err != nil {
		_ = ss.Close()
		return nil, nil, fmt.Errorf("client connect: %w", err)
	}

	return cs, func() {
		_ = cs.Close()
		_ = ss.Close()
	}, nil
}

// probe runs each call repeat times and reports the last outcome with the
// average latency.
func probe(ctx context.Context, cs *mcp.ClientSession, calls []probeCall, repeat int) []probeResult {
	if repeat < 1 {
		repeat = 1
	}

	results := make([]probeResult, 0, len(calls))
	for _, call := range calls {
		r := probeResult{Tool: call.Tool}
		var total time.Duration
		for i := 0; i < repeat; i++ {
			start := time.Now()
			res, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: call.Tool, Arguments: call.Args})
			total += time.Since(start)
			if err != nil {
				r.Err = err
				break
			}
			r.IsError = res.IsError
			r.Summary = summarize(res)
		}
		r.Average = total / time.Duration(repeat)
		results = append(results, r)
	}
	return results
}

// summarize renders structured content as compact JSON, truncated for display.
func summarize(res *mcp.CallToolResult) string {
	data, err := json.Marshal(res.StructuredContent)
	if err != nil {
		return err.Error()
	}
	const maxLen = 80
	if len(data) > maxLen {
		return string(data[:maxLen]) + "..."
	}
	return string(data)
}

func report(w io.Writer, results []probeResult) (failures int) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TOOL\tLATENCY\tOUTCOME\tRESULT")
	for _, r := range results {
		outcome := "ok"
		summary := r.Summary
		switch {
		case r.Err != nil:
			outcome = "protocol error"
			summary = r.Err.Error()
			failures++
		case r.IsError:
			outcome = "tool error"
			failures++
		}
		fmt.Fprintf(tw, "%s\t%v\t%s\t%s\n", r.Tool, r.Average.Round(time.Millisecond), outcome, summary)
	}
	_ = tw.Flush()
	return failures
}

func main() {
	_ = godotenv.Load()

	var cli CLI
	kong.Parse(&cli,
		kong.Name("probe"),
		kong.Description("Call every PokeAPI MCP tool once and report latency."),
		kong.UsageOnError(),
	)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := pokeapi.NewClient(
		pokeapi.WithBaseURL(cli.BaseURL),
		pokeapi.WithTimeout(cli.Timeout),
		pokeapi.WithLogger(logger),
	)

	ctx := context.Background()
	cs, closeSession, err := connect(ctx, client, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeSession()

	fmt.Printf("PokeAPI MCP Server - Tool Probe (%s)\n\n", cli.BaseURL)
	if failures := report(os.Stdout, probe(ctx, cs, plannedCalls(&cli), cli.Repeat)); failures > 0 {
		closeSession()
		os.Exit(1)
	}
}
