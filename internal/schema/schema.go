package schema

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"driftlint/internal/types"
)

const referenceSpecSchema = `{
	"type": "object",
	"required": ["props"],
	"properties": {
		"component": {"type": "string"},
		"variant": {"type": "string"},
		"props": {"type": "object"}
	}
}`

const tokenDictionarySchema = `{
	"type": "object",
	"additionalProperties": {"type": ["string", "number"]}
}`

var (
	referenceSpecCompiled   = jsonschema.MustCompileString("reference-spec.schema.json", referenceSpecSchema)
	tokenDictionaryCompiled = jsonschema.MustCompileString("token-dictionary.schema.json", tokenDictionarySchema)
)

// ValidateReferenceSpec parses and validates a design-tool reference spec.
// A parse failure or a schema violation both count as malformed input.
func ValidateReferenceSpec(data []byte) (*types.ReferenceSpec, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse reference spec: %w", err)
	}
	if err := referenceSpecCompiled.Validate(raw); err != nil {
		return nil, fmt.Errorf("validate reference spec: %w", err)
	}

	var spec types.ReferenceSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse reference spec: %w", err)
	}
	return &spec, nil
}

// ValidateTokens parses and validates a token dictionary: a flat object
// whose values are strings or numbers.
func ValidateTokens(data []byte) (types.TokenDictionary, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse token dictionary: %w", err)
	}
	if err := tokenDictionaryCompiled.Validate(raw); err != nil {
		return nil, fmt.Errorf("validate token dictionary: %w", err)
	}

	var dict types.TokenDictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("parse token dictionary: %w", err)
	}
	return dict, nil
}
