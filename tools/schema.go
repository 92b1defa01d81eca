package tools

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/olgasafonova/pokeapi-mcp-server/internal/pokeapi"
)

// identifierSchema lets callers send a name or a numeric ID.
var identifierSchema = &jsonschema.Schema{Types: []string{"string", "integer"}}

// listDefaults are the default page sizes advertised in list tool schemas.
var listDefaults = map[reflect.Type]int{
	reflect.TypeFor[pokeapi.ListPokemonNamesArgs](): pokeapi.DefaultPokemonListLimit,
	reflect.TypeFor[pokeapi.ListItemsArgs]():        pokeapi.DefaultItemListLimit,
}

// inputSchema infers the input schema for Args.
func inputSchema[Args any]() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[Args](&jsonschema.ForOptions{
		TypeSchemas: map[reflect.Type]*jsonschema.Schema{
			reflect.TypeFor[pokeapi.Identifier](): identifierSchema,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("input schema for %s: %w", reflect.TypeFor[Args](), err)
	}

	if limit, ok := listDefaults[reflect.TypeFor[Args]()]; ok {
		if err := setDefault(schema, "limit", limit); err != nil {
			return nil, err
		}
		if err := setDefault(schema, "offset", 0); err != nil {
			return nil, err
		}
	}
	return schema, nil
}

// outputSchema infers the structured output schema for Result.
func outputSchema[Result any]() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[Result](&jsonschema.ForOptions{})
	if err != nil {
		return nil, fmt.Errorf("output schema for %s: %w", reflect.TypeFor[Result](), err)
	}
	return schema, nil
}

func setDefault(schema *jsonschema.Schema, property string, value int) error {
	prop, ok := schema.Properties[property]
	if !ok {
		return fmt.Errorf("schema has no %q property", property)
	}
	prop.Default = json.RawMessage(strconv.Itoa(value))
	return nil
}
