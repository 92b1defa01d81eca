package pokeapi

import (
	"encoding/json"
	"testing"
)

func TestIdentifier_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		want    Identifier
		wantErr bool
	}{
		{`"pikachu"`, "pikachu", false},
		{`"25"`, "25", false},
		{`25`, "25", false},
		{`"Poke Ball"`, "Poke Ball", false},
		{`true`, "", true},
		{`{"id": 25}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var args PokemonArgs
			err := json.Unmarshal([]byte(`{"pokemon_name_or_id": `+tt.input+`}`), &args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %q", args.PokemonNameOrID)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if args.PokemonNameOrID != tt.want {
				t.Errorf("got %q, want %q", args.PokemonNameOrID, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := normalizePokemon("Pikachu"); got != "pikachu" {
		t.Errorf("normalizePokemon(Pikachu) = %q", got)
	}
	if got := normalizePokemon("Mr Mime"); got != "mr mime" {
		t.Errorf("normalizePokemon should not hyphenate, got %q", got)
	}
	if got := normalizeItem("Poke Ball"); got != "poke-ball" {
		t.Errorf("normalizeItem(Poke Ball) = %q", got)
	}
	if got := normalizeItem("poke-ball"); got != "poke-ball" {
		t.Errorf("normalizeItem(poke-ball) = %q", got)
	}
}

func TestEndpoints(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{pokemonEndpoint("pikachu"), "/pokemon/pikachu/"},
		{pokemonEndpoint("mr mime"), "/pokemon/mr%20mime/"},
		{itemEndpoint("poke-ball"), "/item/poke-ball/"},
		{listEndpoint("pokemon", 2000, 0), "/pokemon?limit=2000&offset=0"},
		{listEndpoint("item", 100, 50), "/item?limit=100&offset=50"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("endpoint = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestResourceOf(t *testing.T) {
	tests := map[string]string{
		"/pokemon/25/":                 "pokemon",
		"/pokemon-species/25/":         "pokemon-species",
		"/pokemon?limit=2000&offset=0": "pokemon",
		"/item/poke-ball/":             "item",
		"/":                            "unknown",
		"":                             "unknown",
	}
	for endpoint, want := range tests {
		if got := resourceOf(endpoint); got != want {
			t.Errorf("resourceOf(%q) = %q, want %q", endpoint, got, want)
		}
	}
}
