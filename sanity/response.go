package sanity

import (
	"encoding/json"
	"net/http"
)

// Response is one completed HTTP exchange, returned as-is.
//
// The client deliberately does not turn 4xx/5xx responses into errors;
// interpreting the status code and body is the caller's job. The
// helpers below are conveniences for that caller-side interpretation.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// QueryResult is the envelope of a query response. Result is left raw
// so callers can decode it into their own document types.
type QueryResult struct {
	Query  string          `json:"query"`
	Result json.RawMessage `json:"result"`
	MS     int64           `json:"ms"`
}

// MutateResult is the envelope of a mutate response. Results carries
// per-document outcomes when returnIds or returnDocuments was set.
type MutateResult struct {
	TransactionID string          `json:"transactionId"`
	Results       []MutateOutcome `json:"results"`
}

// MutateOutcome is one entry of a mutate response's results array.
type MutateOutcome struct {
	ID        string          `json:"id"`
	Operation string          `json:"operation"`
	Document  json.RawMessage `json:"document,omitempty"`
}
