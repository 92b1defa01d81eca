package pokeapi

const (
	// DefaultPokemonListLimit is the page size for list_all_pokemon_names
	DefaultPokemonListLimit = 2000

	// DefaultItemListLimit is the page size for list_all_items
	DefaultItemListLimit = 100
)

// PokemonArgs identifies a single creature
type PokemonArgs struct {
	PokemonNameOrID Identifier `json:"pokemon_name_or_id" jsonschema:"English name (e.g. pikachu) or National Pokédex ID (e.g. 25). Case-insensitive."`
}

// GetPokemonDetailsArgs contains parameters for get_pokemon_details
type GetPokemonDetailsArgs = PokemonArgs

// GetPokemonTypesArgs contains parameters for get_pokemon_types
type GetPokemonTypesArgs = PokemonArgs

// GetPokemonColorArgs contains parameters for get_pokemon_color
type GetPokemonColorArgs = PokemonArgs

// GetPokemonShapeArgs contains parameters for get_pokemon_shape
type GetPokemonShapeArgs = PokemonArgs

// PokemonDetailsResult is the compact creature profile
type PokemonDetailsResult struct {
	ID        int            `json:"id" jsonschema:"National Pokédex ID"`
	Name      string         `json:"name" jsonschema:"English lowercase name"`
	Height    int            `json:"height" jsonschema:"Height in decimetres"`
	Weight    int            `json:"weight" jsonschema:"Weight in hectograms"`
	Types     []string       `json:"types" jsonschema:"Elemental types in slot order"`
	Stats     map[string]int `json:"stats" jsonschema:"Base stats keyed by stat name"`
	SpriteURL *string        `json:"sprite_url" jsonschema:"Official artwork URL, falling back to the default sprite"`
}

// PokemonTypesResult lists a creature's elemental types
type PokemonTypesResult struct {
	Name  string   `json:"name"`
	ID    int      `json:"id"`
	Types []string `json:"types"`
}

// PokemonColorResult is the Pokédex color of a species
type PokemonColorResult struct {
	Name  string `json:"name"`
	ID    *int   `json:"id,omitempty" jsonschema:"Species ID, when the species record has one"`
	Color string `json:"color"`
}

// PokemonShapeResult is the Pokédex shape of a species
type PokemonShapeResult struct {
	Name  string `json:"name"`
	ID    *int   `json:"id,omitempty" jsonschema:"Species ID, when the species record has one"`
	Shape string `json:"shape"`
}

// ListPokemonNamesArgs contains pagination parameters for list_all_pokemon_names.
// Values are passed to PokeAPI unmodified.
type ListPokemonNamesArgs struct {
	Limit  *int `json:"limit,omitempty" jsonschema:"Maximum number of names to return (default 2000)"`
	Offset *int `json:"offset,omitempty" jsonschema:"Offset to start listing from (default 0)"`
}

// ListPokemonNamesResult is one page of creature names
type ListPokemonNamesResult struct {
	Count        int      `json:"count" jsonschema:"Total number of creature resources in PokeAPI"`
	PokemonNames []string `json:"pokemon_names"`
}

// GetItemDetailsArgs contains parameters for get_item_details
type GetItemDetailsArgs struct {
	ItemNameOrID Identifier `json:"item_name_or_id" jsonschema:"Item name (e.g. poke-ball or Poke Ball) or item ID. Case-insensitive; spaces become hyphens."`
}

// ItemDetailsResult is the compact item profile
type ItemDetailsResult struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Cost        int     `json:"cost" jsonschema:"Price in Pokédollars (0 if not sold)"`
	Category    string  `json:"category"`
	ShortEffect string  `json:"short_effect" jsonschema:"Short English effect description, N/A if none"`
	SpriteURL   *string `json:"sprite_url"`
}

// ListItemsArgs contains pagination parameters for list_all_items
type ListItemsArgs struct {
	Limit  *int `json:"limit,omitempty" jsonschema:"Maximum number of item names to return (default 100)"`
	Offset *int `json:"offset,omitempty" jsonschema:"Offset to start listing from (default 0)"`
}

// ListItemsResult is one page of item names
type ListItemsResult struct {
	Count     int      `json:"count" jsonschema:"Total number of item resources in PokeAPI"`
	ItemNames []string `json:"item_names"`
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
