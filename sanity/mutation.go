package sanity

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// mutationKind is the wire tag of a mutation variant.
type mutationKind string

const (
	mutationCreate            mutationKind = "create"
	mutationCreateOrReplace   mutationKind = "createOrReplace"
	mutationCreateIfNotExists mutationKind = "createIfNotExists"
	mutationDelete            mutationKind = "delete"
	mutationPatch             mutationKind = "patch"
)

// Mutation is one create/replace/delete/patch operation in a batch.
// Construct values with Create, CreateOrReplace, CreateIfNotExists,
// Delete or Patch; the zero value is invalid and fails to serialize.
//
// The document payload is opaque to the client: anything that
// marshals to JSON (maps, structs, json.RawMessage) is accepted and
// passed through unvalidated.
type Mutation struct {
	kind mutationKind
	doc  any
}

// Mutations is an ordered batch, submitted atomically in one request.
type Mutations []Mutation

// Create returns a mutation that creates a new document and fails if
// the document ID already exists.
func Create(doc any) Mutation {
	return Mutation{kind: mutationCreate, doc: doc}
}

// CreateOrReplace returns a mutation that creates the document,
// replacing any existing document with the same ID.
func CreateOrReplace(doc any) Mutation {
	return Mutation{kind: mutationCreateOrReplace, doc: doc}
}

// CreateIfNotExists returns a mutation that creates the document only
// when no document with the same ID exists.
func CreateIfNotExists(doc any) Mutation {
	return Mutation{kind: mutationCreateIfNotExists, doc: doc}
}

// Delete returns a mutation that deletes the documents matched by the
// given selection, e.g. map[string]any{"id": "doc-id"} or a GROQ query
// selection.
func Delete(selection any) Mutation {
	return Mutation{kind: mutationDelete, doc: selection}
}

// DeleteByID returns a delete mutation for a single document ID.
func DeleteByID(id string) Mutation {
	return Delete(map[string]string{"id": id})
}

// Patch returns a mutation that applies the given patch description
// (set/unset/inc/insert and friends) to matched documents.
func Patch(patch any) Mutation {
	return Mutation{kind: mutationPatch, doc: patch}
}

// NewMutation builds a Mutation from its wire tag. It exists for
// data-driven callers that read mutation batches from files or other
// external input rather than constructing them in code.
func NewMutation(tag string, doc any) (Mutation, error) {
	switch mutationKind(tag) {
	case mutationCreate, mutationCreateOrReplace, mutationCreateIfNotExists, mutationDelete, mutationPatch:
		return Mutation{kind: mutationKind(tag), doc: doc}, nil
	default:
		return Mutation{}, fmt.Errorf("%w: %q", ErrUnknownMutation, tag)
	}
}

// Kind returns the mutation's wire tag.
func (m Mutation) Kind() string {
	return string(m.kind)
}

// MarshalJSON serializes the mutation as {"<tag>": <payload>}.
func (m Mutation) MarshalJSON() ([]byte, error) {
	if m.kind == "" {
		return nil, ErrEmptyMutation
	}

	return json.Marshal(map[string]any{string(m.kind): m.doc})
}

// mutationEnvelope is the request body of the mutate endpoint.
type mutationEnvelope struct {
	Mutations Mutations `json:"mutations"`
}

func encodeMutations(mutations Mutations) (string, error) {
	body, err := json.Marshal(mutationEnvelope{Mutations: mutations})
	if err != nil {
		return "", fmt.Errorf("failed to encode mutations: %w", err)
	}

	return string(body), nil
}

// MutateParams are the behavior flags of the mutate endpoint, sent as
// URL query parameters. The zero value sends no parameters.
type MutateParams struct {
	// ReturnIDs asks the API to list the IDs of affected documents.
	ReturnIDs bool
	// ReturnDocuments asks the API to return the documents after mutation.
	ReturnDocuments bool
	// DryRun validates the batch without committing it.
	DryRun bool
	// Visibility controls when the mutation becomes visible to queries:
	// "sync", "async" or "deferred". Empty uses the API default.
	Visibility string
}

func (p MutateParams) values() url.Values {
	params := url.Values{}
	if p.ReturnIDs {
		params.Set("returnIds", strconv.FormatBool(true))
	}
	if p.ReturnDocuments {
		params.Set("returnDocuments", strconv.FormatBool(true))
	}
	if p.DryRun {
		params.Set("dryRun", strconv.FormatBool(true))
	}
	if p.Visibility != "" {
		params.Set("visibility", p.Visibility)
	}

	return params
}
