package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	apierrors "github.com/olgasafonova/pokeapi-mcp-server/internal/errors"
	"github.com/olgasafonova/pokeapi-mcp-server/internal/pokeapi"
	"github.com/olgasafonova/pokeapi-mcp-server/metrics"
	"github.com/olgasafonova/pokeapi-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *pokeapi.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *pokeapi.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	registered := 0
	for _, spec := range AllTools {
		if h.registerByName(server, spec) {
			registered++
		}
	}
	h.logger.Info("Registered all tools", "count", registered)
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) bool {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "GetPokemonDetails":
		return register(h, server, tool, spec, h.client.GetPokemonDetailsMCP)
	case "GetPokemonTypes":
		return register(h, server, tool, spec, h.client.GetPokemonTypesMCP)
	case "GetPokemonColor":
		return register(h, server, tool, spec, h.client.GetPokemonColorMCP)
	case "GetPokemonShape":
		return register(h, server, tool, spec, h.client.GetPokemonShapeMCP)
	case "ListPokemonNames":
		return register(h, server, tool, spec, h.client.ListPokemonNamesMCP)
	case "GetItemDetails":
		return register(h, server, tool, spec, h.client.GetItemDetailsMCP)
	case "ListItems":
		return register(h, server, tool, spec, h.client.ListItemsMCP)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
		return false
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Title:       spec.Title,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
// Failures come back to the caller as an error result carrying the APIError
// record, never as a protocol error.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) bool {
	in, err := inputSchema[Args]()
	if err != nil {
		h.logger.Error("Tool not registered", "tool", spec.Name, "error", err)
		return false
	}
	out, err := outputSchema[Result]()
	if err != nil {
		h.logger.Error("Tool not registered", "tool", spec.Name, "error", err)
		return false
	}
	tool.InputSchema = in
	tool.OutputSchema = out

	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (res *mcp.CallToolResult, output any, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				res, output, err = h.recoverPanic(spec.Name, rec), nil, nil
			}
		}()

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		tracing.AddToolAttributes(span, spec.Name, spec.Category)
		tracing.AddLookupAttributes(span, spec.Category, identifierOf(args))
		span.SetAttributes(attribute.Bool("mcp.tool.readonly", spec.ReadOnly))

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, callErr := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if callErr != nil {
			apiErr := apierrors.Wrap(callErr)
			tracing.RecordError(span, apiErr)
			span.SetStatus(codes.Error, apiErr.Message)
			span.SetAttributes(attribute.String("mcp.tool.error_code", apiErr.Code()))
			metrics.RecordRequest(spec.Name, duration, false)
			h.logger.Warn("Tool failed", "tool", spec.Name, "code", apiErr.Code(), "error", apiErr.Error())
			return errorResult(apiErr), nil, nil
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
	return true
}

// errorResult renders an APIError as a tool error result. The record is sent
// both as structured content and as its JSON text.
func errorResult(apiErr *apierrors.APIError) *mcp.CallToolResult {
	text, err := json.Marshal(apiErr)
	if err != nil {
		text = []byte(apiErr.Error())
	}
	return &mcp.CallToolResult{
		IsError:           true,
		Content:           []mcp.Content{&mcp.TextContent{Text: string(text)}},
		StructuredContent: apiErr,
	}
}

// recoverPanic logs and counts a recovered panic and converts it to an error result.
func (h *HandlerRegistry) recoverPanic(toolName string, rec any) *mcp.CallToolResult {
	metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
	h.logger.Error("Panic recovered",
		"tool", toolName,
		"panic", rec,
		"stack", string(debug.Stack()))
	return errorResult(apierrors.NewUnexpectedError(fmt.Errorf("panic: %v", rec)))
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "category", spec.Category}

	// Add extractable fields from args using type assertions
	if id := identifierOf(args); id != "" {
		attrs = append(attrs, "identifier", id)
	}
	switch a := args.(type) {
	case pokeapi.ListPokemonNamesArgs:
		attrs = append(attrs, "limit", optionalInt(a.Limit), "offset", optionalInt(a.Offset))
	case pokeapi.ListItemsArgs:
		attrs = append(attrs, "limit", optionalInt(a.Limit), "offset", optionalInt(a.Offset))
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case pokeapi.PokemonDetailsResult:
		attrs = append(attrs, "id", r.ID, "name", r.Name)
	case pokeapi.PokemonTypesResult:
		attrs = append(attrs, "id", r.ID, "types", len(r.Types))
	case pokeapi.PokemonColorResult:
		attrs = append(attrs, "name", r.Name, "color", r.Color)
	case pokeapi.PokemonShapeResult:
		attrs = append(attrs, "name", r.Name, "shape", r.Shape)
	case pokeapi.ListPokemonNamesResult:
		attrs = append(attrs, "results_count", len(r.PokemonNames), "total_results", r.Count)
	case pokeapi.ItemDetailsResult:
		attrs = append(attrs, "id", r.ID, "name", r.Name)
	case pokeapi.ListItemsResult:
		attrs = append(attrs, "results_count", len(r.ItemNames), "total_results", r.Count)
	}

	h.logger.Info("Tool executed", attrs...)
}

// identifierOf returns the creature or item identifier in args, if any.
func identifierOf(args any) string {
	switch a := args.(type) {
	case pokeapi.PokemonArgs:
		return a.PokemonNameOrID.String()
	case pokeapi.GetItemDetailsArgs:
		return a.ItemNameOrID.String()
	}
	return ""
}

func optionalInt(p *int) any {
	if p == nil {
		return "default"
	}
	return *p
}
