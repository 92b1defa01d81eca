package pokeapi

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Identifier is a creature or item name or numeric ID. Callers may send it as
// a JSON string ("pikachu", "25") or a JSON integer (25).
type Identifier string

// UnmarshalJSON accepts both string and number literals.
func (id *Identifier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = Identifier(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = Identifier(n.String())
		return nil
	}
	return fmt.Errorf("identifier must be a string or an integer, got %s", string(data))
}

// String returns the identifier as the caller sent it.
func (id Identifier) String() string {
	return string(id)
}

// normalizePokemon lower-cases a creature identifier.
func normalizePokemon(id Identifier) string {
	return strings.ToLower(string(id))
}

// normalizeItem lower-cases an item identifier and turns spaces into hyphens,
// so "Poke Ball" becomes "poke-ball".
func normalizeItem(id Identifier) string {
	return strings.ReplaceAll(strings.ToLower(string(id)), " ", "-")
}

func pokemonEndpoint(id string) string {
	return "/pokemon/" + url.PathEscape(id) + "/"
}

func itemEndpoint(id string) string {
	return "/item/" + url.PathEscape(id) + "/"
}

func listEndpoint(resource string, limit, offset int) string {
	return fmt.Sprintf("/%s?limit=%d&offset=%d", resource, limit, offset)
}

// resourceOf extracts the resource name from a relative endpoint, e.g.
// "/pokemon-species/25/" -> "pokemon-species". Used as a metrics label.
func resourceOf(endpoint string) string {
	e := strings.TrimPrefix(endpoint, "/")
	if i := strings.IndexAny(e, "/?"); i >= 0 {
		e = e[:i]
	}
	if e == "" {
		return "unknown"
	}
	return e
}
