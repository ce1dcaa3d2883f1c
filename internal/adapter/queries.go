package adapter

import "encoding/json"

// Query is a single list-documents predicate. The zero value is not useful;
// construct values with [Equal], [OrderDesc], [Limit] or [Search].
type Query struct {
	Method    string `json:"method"`
	Attribute string `json:"attribute,omitempty"`
	Values    []any  `json:"values,omitempty"`
}

// Equal matches documents whose attribute equals value. For relation
// attributes the value is the referenced document ID.
func Equal(attribute string, value any) Query {
	return Query{Method: "equal", Attribute: attribute, Values: []any{value}}
}

// OrderDesc sorts the result set by attribute, newest-first for timestamps.
func OrderDesc(attribute string) Query {
	return Query{Method: "orderDesc", Attribute: attribute}
}

// Limit caps the result set at n documents.
func Limit(n int) Query {
	return Query{Method: "limit", Values: []any{n}}
}

// Search matches documents whose attribute satisfies a full-text search for
// term.
func Search(attribute, term string) Query {
	return Query{Method: "search", Attribute: attribute, Values: []any{term}}
}

// encode serialises the predicate into the platform's JSON query string.
func (q Query) encode() string {
	payload, err := json.Marshal(q)
	if err != nil {
		return ""
	}
	return string(payload)
}

func encodeQueries(queries []Query) []string {
	encoded := make([]string, 0, len(queries))
	for _, q := range queries {
		if s := q.encode(); s != "" {
			encoded = append(encoded, s)
		}
	}
	return encoded
}
