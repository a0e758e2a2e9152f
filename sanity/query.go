package sanity

import (
	"encoding/json"
	"fmt"
)

// Query is a GROQ query string plus its named variables.
//
// Variable names are given without the $ prefix; the client adds it
// when building the request. Values may be anything that marshals to
// JSON.
type Query struct {
	Query     string
	Variables map[string]any
}

// NewQuery creates a Query. vars may be nil for parameterless queries.
func NewQuery(query string, vars map[string]any) Query {
	return Query{
		Query:     query,
		Variables: vars,
	}
}

// encodeVariable JSON-encodes a query variable value. The query API
// expects JSON in parameter values, so strings arrive quoted and
// numbers bare.
func encodeVariable(value any) (string, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("not a JSON value: %w", err)
	}

	return string(encoded), nil
}
