package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_UnmarshalJSON_SplitsEnvelopeAndData(t *testing.T) {
	payload := `{
		"$id": "post-1",
		"$collectionId": "videos",
		"$createdAt": "2026-08-30T10:00:00Z",
		"$updatedAt": "2026-08-30T11:00:00Z",
		"title": "First flight",
		"prompt": "a drone over the sea"
	}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(payload), &doc))

	assert.Equal(t, "post-1", doc.ID)
	assert.Equal(t, "videos", doc.CollectionID)
	assert.Equal(t, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC), doc.CreatedAt)
	assert.Equal(t, "First flight", doc.String("title"))
	assert.Equal(t, "a drone over the sea", doc.String("prompt"))
}

func TestDocument_String_MissingOrWrongType(t *testing.T) {
	doc := Document{Data: map[string]any{"count": 3.0}}

	assert.Empty(t, doc.String("missing"))
	assert.Empty(t, doc.String("count"))
}

func TestDocument_Child_ExpandedRelation(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{
		"$id": "post-1",
		"creator": {
			"$id": "user-doc-1",
			"$createdAt": "2026-08-29T09:00:00Z",
			"username": "alice"
		}
	}`), &doc))

	child, ok := doc.Child("creator")
	require.True(t, ok)
	assert.Equal(t, "user-doc-1", child.ID)
	assert.Equal(t, "alice", child.String("username"))
	assert.Equal(t, 2026, child.CreatedAt.Year())
}

func TestDocument_Child_DanglingRelation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "null relation", payload: `{"$id":"post-1","creator":null}`},
		{name: "absent relation", payload: `{"$id":"post-1"}`},
		{name: "relation without id", payload: `{"$id":"post-1","creator":{"username":"ghost"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc Document
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &doc))

			_, ok := doc.Child("creator")
			assert.False(t, ok)
		})
	}
}
