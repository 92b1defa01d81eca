// Package tools provides a metadata-driven registry for the PokeAPI MCP tools.
// Tools are declared in AllTools and bound to pokeapi.Client methods with
// type-safe handlers.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a pokeapi.Client method with matching Args/Result types.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "get_pokemon_details")
	Name string

	// Method is the client method name without the MCP suffix (e.g., "GetPokemonDetails")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (pokemon, species, items)
	Category string

	// ReadOnly indicates the tool doesn't modify upstream state
	ReadOnly bool

	// Destructive indicates the tool can delete or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ToolByName returns the spec registered under name.
func ToolByName(name string) (ToolSpec, bool) {
	for _, spec := range AllTools {
		if spec.Name == name {
			return spec, true
		}
	}
	return ToolSpec{}, false
}

// ToolsByCategory returns all tools in a category.
func ToolsByCategory(category string) []ToolSpec {
	var result []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			result = append(result, spec)
		}
	}
	return result
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
