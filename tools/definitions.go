package tools

// AllTools contains all tool specifications for the PokeAPI MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// POKÉMON TOOLS
	// ==========================================================================
	{
		Name:     "get_pokemon_details",
		Method:   "GetPokemonDetails",
		Title:    "Get Pokémon Details",
		Category: "pokemon",
		Description: `Get the compact profile of one Pokémon: ID, name, height, weight, types, base stats and artwork URL.

USE WHEN: User asks "tell me about pikachu", "what are charizard's stats", "how heavy is snorlax", or you know the Pokémon and need its full profile.

NOT FOR: Only the types (use get_pokemon_types). Color or shape (use get_pokemon_color / get_pokemon_shape). Finding Pokémon by name when you don't know it (use list_all_pokemon_names).

PARAMETERS:
- pokemon_name_or_id: English name (e.g. "pikachu") or National Pokédex ID (e.g. 25). Case-insensitive.

RETURNS: id, name, height (decimetres), weight (hectograms), types in slot order, stats keyed by stat name, sprite_url (official artwork, else default sprite, else null).`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_pokemon_types",
		Method:   "GetPokemonTypes",
		Title:    "Get Pokémon Types",
		Category: "pokemon",
		Description: `Get the elemental type(s) of one Pokémon (e.g. fire, water, electric).

USE WHEN: User asks "what type is gengar", "is gyarados a flying type", or you are filtering Pokémon by type.

NOT FOR: Stats, size or artwork (use get_pokemon_details).

PARAMETERS:
- pokemon_name_or_id: English name or National Pokédex ID. Case-insensitive.

RETURNS: name, id and the list of type names in slot order.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "list_all_pokemon_names",
		Method:   "ListPokemonNames",
		Title:    "List Pokémon Names",
		Category: "pokemon",
		Description: `List Pokémon names, one page at a time.

USE WHEN: You need candidate names for a broad question ("find a yellow, bipedal Pokémon"), want to check a spelling, or iterate over all Pokémon.

NOT FOR: Details about a Pokémon you already know (use get_pokemon_details).

PARAMETERS:
- limit: Maximum number of names (default 2000, enough for every Pokémon)
- offset: Position to start from (default 0)

RETURNS: count (total Pokémon known to PokeAPI) and pokemon_names for the requested page.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// SPECIES TOOLS
	// ==========================================================================
	{
		Name:     "get_pokemon_color",
		Method:   "GetPokemonColor",
		Title:    "Get Pokémon Color",
		Category: "species",
		Description: `Get the Pokédex color of a Pokémon's species (e.g. red, yellow, green).

USE WHEN: User asks "what color is pikachu" or you are filtering Pokémon by color.

NOT FOR: Types (use get_pokemon_types). Body shape (use get_pokemon_shape).

PARAMETERS:
- pokemon_name_or_id: English name or National Pokédex ID. Case-insensitive.

RETURNS: name, id (when known) and color.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_pokemon_shape",
		Method:   "GetPokemonShape",
		Title:    "Get Pokémon Shape",
		Category: "species",
		Description: `Get the Pokédex body shape of a Pokémon's species (e.g. humanoid, quadruped, wings).

USE WHEN: User asks "is machamp humanoid", "what shape is pikachu", or you are filtering Pokémon by body form.

NOT FOR: Height and weight (use get_pokemon_details). Color (use get_pokemon_color).

PARAMETERS:
- pokemon_name_or_id: English name or National Pokédex ID. Case-insensitive.

RETURNS: name, id (when known) and shape.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// ITEM TOOLS
	// ==========================================================================
	{
		Name:     "get_item_details",
		Method:   "GetItemDetails",
		Title:    "Get Item Details",
		Category: "items",
		Description: `Get the compact profile of one item: ID, name, cost, category, short English effect and sprite URL.

USE WHEN: User asks "what does a rare candy do", "how much is a poke ball", or needs an item's category.

NOT FOR: Discovering item names (use list_all_items).

PARAMETERS:
- item_name_or_id: Item name (e.g. "poke-ball" or "Poke Ball") or item ID. Case-insensitive, spaces become hyphens.

RETURNS: id, name, cost (0 if not sold), category, short_effect ("N/A" if no English text), sprite_url (may be null).`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "list_all_items",
		Method:   "ListItems",
		Title:    "List Items",
		Category: "items",
		Description: `List item names, one page at a time.

USE WHEN: You need to find an item's exact name or browse the item catalogue.

NOT FOR: Details about a known item (use get_item_details).

PARAMETERS:
- limit: Maximum number of names (default 100)
- offset: Position to start from (default 0)

RETURNS: count (total items known to PokeAPI) and item_names for the requested page.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
