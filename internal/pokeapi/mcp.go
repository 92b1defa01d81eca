package pokeapi

import (
	"context"
	"encoding/json"

	apierrors "github.com/olgasafonova/pokeapi-mcp-server/internal/errors"
)

// MCP Tool wrapper methods
// These methods wrap Fetch/ResolveSpecies with Args/Result types for MCP integration.

// lookup decodes a fetched document into Doc and projects it with project.
// A fetch error is returned unchanged; a decode or projection failure becomes
// "Failed to process <domain> data".
func lookup[Doc, Out any](
	c *Client,
	domain string,
	fetch func() (json.RawMessage, error),
	project func(Doc) (Out, error),
) (Out, error) {
	var zero Out

	raw, err := fetch()
	if err != nil {
		return zero, err
	}

	var doc Doc
	if err := json.Unmarshal(raw, &doc); err != nil {
		c.Logger.Error("Failed to decode upstream document", "domain", domain, "error", err)
		return zero, apierrors.NewProcessingError(domain, err)
	}

	out, err := project(doc)
	if err != nil {
		if _, ok := apierrors.As(err); ok {
			return zero, err
		}
		c.Logger.Error("Failed to project upstream document", "domain", domain, "error", err)
		return zero, apierrors.NewProcessingError(domain, err)
	}
	return out, nil
}

func (c *Client) fetchPokemon(ctx context.Context, id Identifier) func() (json.RawMessage, error) {
	return func() (json.RawMessage, error) {
		return c.Fetch(ctx, pokemonEndpoint(normalizePokemon(id)))
	}
}

func (c *Client) fetchSpecies(ctx context.Context, id Identifier) func() (json.RawMessage, error) {
	return func() (json.RawMessage, error) {
		return c.ResolveSpecies(ctx, id)
	}
}

func typeNames(types []PokemonType) []string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.Type.Name)
	}
	return names
}

func resultNames(results []NamedResource) []string {
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
	}
	return names
}

// spriteURL prefers the official artwork and falls back to the default sprite
func spriteURL(s PokemonSprites) *string {
	if u := s.Other.OfficialArtwork.FrontDefault; u != nil && *u != "" {
		return u
	}
	if u := s.FrontDefault; u != nil && *u != "" {
		return u
	}
	return nil
}

// speciesName returns the species name, or the caller's identifier when the
// species record has none.
func speciesName(s Species, id Identifier) string {
	if s.Name != nil {
		return *s.Name
	}
	return normalizePokemon(id)
}

// GetPokemonDetailsMCP is the MCP wrapper for /pokemon/{id}/
func (c *Client) GetPokemonDetailsMCP(ctx context.Context, args GetPokemonDetailsArgs) (PokemonDetailsResult, error) {
	c.Logger.Info("Fetching Pokémon details", "identifier", args.PokemonNameOrID.String())

	return lookup(c, "Pokémon", c.fetchPokemon(ctx, args.PokemonNameOrID),
		func(p Pokemon) (PokemonDetailsResult, error) {
			stats := make(map[string]int, len(p.Stats))
			for _, s := range p.Stats {
				stats[s.Stat.Name] = s.BaseStat
			}
			return PokemonDetailsResult{
				ID:        p.ID,
				Name:      p.Name,
				Height:    p.Height,
				Weight:    p.Weight,
				Types:     typeNames(p.Types),
				Stats:     stats,
				SpriteURL: spriteURL(p.Sprites),
			}, nil
		})
}

// GetPokemonTypesMCP is the MCP wrapper for a creature's types
func (c *Client) GetPokemonTypesMCP(ctx context.Context, args GetPokemonTypesArgs) (PokemonTypesResult, error) {
	c.Logger.Info("Fetching Pokémon types", "identifier", args.PokemonNameOrID.String())

	return lookup(c, "Pokémon type", c.fetchPokemon(ctx, args.PokemonNameOrID),
		func(p Pokemon) (PokemonTypesResult, error) {
			return PokemonTypesResult{
				Name:  p.Name,
				ID:    p.ID,
				Types: typeNames(p.Types),
			}, nil
		})
}

// GetPokemonColorMCP is the MCP wrapper for a species' Pokédex color
func (c *Client) GetPokemonColorMCP(ctx context.Context, args GetPokemonColorArgs) (PokemonColorResult, error) {
	c.Logger.Info("Fetching Pokémon color", "identifier", args.PokemonNameOrID.String())

	return lookup(c, "Pokémon color", c.fetchSpecies(ctx, args.PokemonNameOrID),
		func(s Species) (PokemonColorResult, error) {
			name := speciesName(s, args.PokemonNameOrID)
			if s.Color == nil || s.Color.Name == "" {
				c.Logger.Warn("Color not found in species data", "name", name)
				return PokemonColorResult{}, apierrors.NewNotFoundError("Color not found in species data", name)
			}
			return PokemonColorResult{Name: name, ID: s.ID, Color: s.Color.Name}, nil
		})
}

// GetPokemonShapeMCP is the MCP wrapper for a species' Pokédex shape
func (c *Client) GetPokemonShapeMCP(ctx context.Context, args GetPokemonShapeArgs) (PokemonShapeResult, error) {
	c.Logger.Info("Fetching Pokémon shape", "identifier", args.PokemonNameOrID.String())

	return lookup(c, "Pokémon shape", c.fetchSpecies(ctx, args.PokemonNameOrID),
		func(s Species) (PokemonShapeResult, error) {
			name := speciesName(s, args.PokemonNameOrID)
			if s.Shape == nil || s.Shape.Name == "" {
				c.Logger.Warn("Shape not found in species data", "name", name)
				return PokemonShapeResult{}, apierrors.NewNotFoundError("Shape not found in species data", name)
			}
			return PokemonShapeResult{Name: name, ID: s.ID, Shape: s.Shape.Name}, nil
		})
}

// ListPokemonNamesMCP is the MCP wrapper for /pokemon?limit=&offset=
func (c *Client) ListPokemonNamesMCP(ctx context.Context, args ListPokemonNamesArgs) (ListPokemonNamesResult, error) {
	limit := intOr(args.Limit, DefaultPokemonListLimit)
	offset := intOr(args.Offset, 0)
	c.Logger.Info("Listing Pokémon names", "limit", limit, "offset", offset)

	fetch := func() (json.RawMessage, error) {
		return c.Fetch(ctx, listEndpoint("pokemon", limit, offset))
	}
	return lookup(c, "Pokémon list", fetch,
		func(l ResourceList) (ListPokemonNamesResult, error) {
			return ListPokemonNamesResult{Count: l.Count, PokemonNames: resultNames(l.Results)}, nil
		})
}

// GetItemDetailsMCP is the MCP wrapper for /item/{id}/
func (c *Client) GetItemDetailsMCP(ctx context.Context, args GetItemDetailsArgs) (ItemDetailsResult, error) {
	c.Logger.Info("Fetching item details", "identifier", args.ItemNameOrID.String())

	fetch := func() (json.RawMessage, error) {
		return c.Fetch(ctx, itemEndpoint(normalizeItem(args.ItemNameOrID)))
	}
	return lookup(c, "item", fetch,
		func(it Item) (ItemDetailsResult, error) {
			result := ItemDetailsResult{
				ID:          it.ID,
				Name:        it.Name,
				Cost:        intOr(it.Cost, 0),
				ShortEffect: englishShortEffect(it.EffectEntries),
				SpriteURL:   it.Sprites.Default,
			}
			if it.Category != nil {
				result.Category = it.Category.Name
			}
			return result, nil
		})
}

// englishShortEffect returns the short effect of the first English entry, or "N/A"
func englishShortEffect(entries []ItemEffect) string {
	for _, e := range entries {
		if e.Language.Name != "en" {
			continue
		}
		if e.ShortEffect == nil {
			return "N/A"
		}
		return *e.ShortEffect
	}
	return "N/A"
}

// ListItemsMCP is the MCP wrapper for /item?limit=&offset=
func (c *Client) ListItemsMCP(ctx context.Context, args ListItemsArgs) (ListItemsResult, error) {
	limit := intOr(args.Limit, DefaultItemListLimit)
	offset := intOr(args.Offset, 0)
	c.Logger.Info("Listing items", "limit", limit, "offset", offset)

	fetch := func() (json.RawMessage, error) {
		return c.Fetch(ctx, listEndpoint("item", limit, offset))
	}
	return lookup(c, "item list", fetch,
		func(l ResourceList) (ListItemsResult, error) {
			return ListItemsResult{Count: l.Count, ItemNames: resultNames(l.Results)}, nil
		})
}
