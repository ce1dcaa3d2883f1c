package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mh-apps/aora-client/models"
)

const (
	insertSession = `INSERT INTO sessions (id, account_id, secret, expires_at, saved_at)
    VALUES (?, ?, ?, ?, ?);`

	selectSession = `SELECT id, account_id, secret, expires_at
    FROM sessions
    LIMIT 1;`

	deleteSessions = `DELETE FROM sessions;`

	deleteFeedPosts = `DELETE FROM feed_posts;`
)

var feedColumns = []string{
	"id",
	"title",
	"thumbnail_url",
	"video_url",
	"prompt",
	"creator_id",
	"creator_username",
	"creator_avatar_url",
	"created_at",
	"cached_at",
}

// buildFeedInsert builds a multi-row insert for the cached feed.
func buildFeedInsert(posts []models.Post, cachedAt time.Time) (string, []any, error) {
	builder := sq.Insert("feed_posts").Columns(feedColumns...)

	for _, post := range posts {
		var creatorID, creatorUsername, creatorAvatarURL string
		if post.Creator != nil {
			creatorID = post.Creator.ID
			creatorUsername = post.Creator.Username
			creatorAvatarURL = post.Creator.AvatarURL
		}

		builder = builder.Values(
			post.ID,
			post.Title,
			post.ThumbnailURL,
			post.VideoURL,
			post.Prompt,
			creatorID,
			creatorUsername,
			creatorAvatarURL,
			post.CreatedAt,
			cachedAt,
		)
	}

	return builder.ToSql()
}

// buildFeedSelect builds the cached-feed query, newest posts first.
func buildFeedSelect(limit int) (string, []any, error) {
	builder := sq.Select(feedColumns[:len(feedColumns)-1]...).
		From("feed_posts").
		OrderBy("created_at DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.ToSql()
}
