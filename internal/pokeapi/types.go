// Package pokeapi provides a client for the public PokeAPI (https://pokeapi.co).
// It fetches creature, species and item documents and reshapes them into the
// compact records returned by the MCP tools.
package pokeapi

// The types below are partial views of PokeAPI documents. Only the fields the
// tools project are decoded; everything else in the payload is ignored.

// NamedResource is PokeAPI's {name, url} reference to another resource
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Pokemon is the /pokemon/{id}/ document
type Pokemon struct {
	ID      int            `json:"id"`
	Name    string         `json:"name"`
	Height  int            `json:"height"` // decimetres
	Weight  int            `json:"weight"` // hectograms
	Types   []PokemonType  `json:"types"`
	Stats   []PokemonStat  `json:"stats"`
	Sprites PokemonSprites `json:"sprites"`
	Species *NamedResource `json:"species"`
}

// PokemonType is one slot in a creature's type list
type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// PokemonStat is one base stat entry
type PokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// PokemonSprites holds the sprite URLs used by get_pokemon_details
type PokemonSprites struct {
	FrontDefault *string `json:"front_default"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault *string `json:"front_default"`
		} `json:"official-artwork"`
	} `json:"other"`
}

// Species is the /pokemon-species/{id}/ document
type Species struct {
	ID    *int           `json:"id"`
	Name  *string        `json:"name"`
	Color *NamedResource `json:"color"`
	Shape *NamedResource `json:"shape"`
}

// Item is the /item/{id}/ document
type Item struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Cost          *int           `json:"cost"`
	Category      *NamedResource `json:"category"`
	EffectEntries []ItemEffect   `json:"effect_entries"`
	Sprites       struct {
		Default *string `json:"default"`
	} `json:"sprites"`
}

// ItemEffect is a localized effect description
type ItemEffect struct {
	Effect      string        `json:"effect"`
	ShortEffect *string       `json:"short_effect"`
	Language    NamedResource `json:"language"`
}

// ResourceList is the paginated listing returned by /pokemon and /item
type ResourceList struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}
