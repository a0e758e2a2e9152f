package sanity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutationSerialization(t *testing.T) {
	doc := map[string]any{"_id": "author-1", "_type": "author"}

	tests := []struct {
		name     string
		mutation Mutation
		expected string
	}{
		{
			name:     "create",
			mutation: Create(doc),
			expected: `{"create":{"_id":"author-1","_type":"author"}}`,
		},
		{
			name:     "createOrReplace",
			mutation: CreateOrReplace(doc),
			expected: `{"createOrReplace":{"_id":"author-1","_type":"author"}}`,
		},
		{
			name:     "createIfNotExists",
			mutation: CreateIfNotExists(doc),
			expected: `{"createIfNotExists":{"_id":"author-1","_type":"author"}}`,
		},
		{
			name:     "delete",
			mutation: Delete(map[string]any{"id": "author-1"}),
			expected: `{"delete":{"id":"author-1"}}`,
		},
		{
			name:     "delete by ID",
			mutation: DeleteByID("author-1"),
			expected: `{"delete":{"id":"author-1"}}`,
		},
		{
			name:     "patch",
			mutation: Patch(map[string]any{"id": "author-1", "set": map[string]any{"name": "New"}}),
			expected: `{"patch":{"id":"author-1","set":{"name":"New"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.mutation)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestMutationEnvelope(t *testing.T) {
	body, err := encodeMutations(Mutations{
		CreateOrReplace(map[string]any{"_id": "a", "_type": "author"}),
		DeleteByID("b"),
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"mutations": [
			{"createOrReplace": {"_id": "a", "_type": "author"}},
			{"delete": {"id": "b"}}
		]
	}`, body)
}

func TestZeroMutationFailsToSerialize(t *testing.T) {
	_, err := json.Marshal(Mutation{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyMutation)
}

func TestNewMutation(t *testing.T) {
	tests := []struct {
		tag     string
		wantErr bool
	}{
		{tag: "create"},
		{tag: "createOrReplace"},
		{tag: "createIfNotExists"},
		{tag: "delete"},
		{tag: "patch"},
		{tag: "upsert", wantErr: true},
		{tag: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			m, err := NewMutation(tt.tag, map[string]any{"_type": "author"})
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownMutation)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.tag, m.Kind())
		})
	}
}

func TestMutateParams(t *testing.T) {
	t.Run("zero value sends nothing", func(t *testing.T) {
		assert.Empty(t, MutateParams{}.values())
	})

	t.Run("set flags become parameters", func(t *testing.T) {
		params := MutateParams{
			ReturnIDs:       true,
			ReturnDocuments: true,
			DryRun:          true,
			Visibility:      "async",
		}.values()

		assert.Equal(t, "true", params.Get("returnIds"))
		assert.Equal(t, "true", params.Get("returnDocuments"))
		assert.Equal(t, "true", params.Get("dryRun"))
		assert.Equal(t, "async", params.Get("visibility"))
	})
}
