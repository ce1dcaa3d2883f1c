package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostFromDocument_ResolvedCreator(t *testing.T) {
	doc := Document{
		ID:        "post-1",
		CreatedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		Data: map[string]any{
			"title":     "First flight",
			"thumbnail": "https://files/1/preview",
			"video":     "https://files/1/view",
			"prompt":    "a drone over the sea",
			"creator": map[string]any{
				"$id":      "user-doc-1",
				"username": "alice",
				"avatar":   "https://avatars/alice",
			},
		},
	}

	post := PostFromDocument(doc)

	assert.Equal(t, "post-1", post.ID)
	assert.Equal(t, "First flight", post.Title)
	assert.Equal(t, "https://files/1/preview", post.ThumbnailURL)
	assert.Equal(t, "https://files/1/view", post.VideoURL)
	require.NotNil(t, post.Creator)
	assert.Equal(t, "user-doc-1", post.Creator.ID)
	assert.Equal(t, "alice", post.Creator.Username)
	assert.Equal(t, "https://avatars/alice", post.Creator.AvatarURL)
}

func TestPostFromDocument_DanglingCreatorIsNil(t *testing.T) {
	doc := Document{
		ID: "post-1",
		Data: map[string]any{
			"title":   "orphaned",
			"creator": nil,
		},
	}

	post := PostFromDocument(doc)
	assert.Nil(t, post.Creator)
	assert.Equal(t, "orphaned", post.Title)
}

func TestUserFromDocument(t *testing.T) {
	doc := Document{
		ID: "user-doc-1",
		Data: map[string]any{
			"accountId": "acc-1",
			"email":     "alice@example.com",
			"username":  "alice",
			"avatar":    "https://avatars/alice",
		},
	}

	user := UserFromDocument(doc)
	assert.Equal(t, "user-doc-1", user.ID)
	assert.Equal(t, "acc-1", user.AccountID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "alice", user.Username)
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()

	assert.False(t, Session{}.Expired(now), "sessions without expiry never expire")
	assert.False(t, Session{ExpiresAt: now.Add(time.Hour)}.Expired(now))
	assert.True(t, Session{ExpiresAt: now.Add(-time.Hour)}.Expired(now))
}
