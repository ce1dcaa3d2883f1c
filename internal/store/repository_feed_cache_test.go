package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mh-apps/aora-client/internal/logger"
	"github.com/mh-apps/aora-client/models"
)

func newTestFeedCacheRepo(t *testing.T) (*feedCacheRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &feedCacheRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func cachedFeedColumns() []string {
	return []string{
		"id", "title", "thumbnail_url", "video_url", "prompt",
		"creator_id", "creator_username", "creator_avatar_url", "created_at",
	}
}

// ── ReplaceFeed ──────────────────────────────────────────────────────────────

func TestFeedCacheRepository_ReplaceFeed_ClearsThenInserts(t *testing.T) {
	repo, mock, db := newTestFeedCacheRepo(t)
	defer db.Close()

	posts := []models.Post{
		{
			ID:           "post-1",
			Title:        "one",
			ThumbnailURL: "https://files/1/preview",
			VideoURL:     "https://files/1/view",
			Prompt:       "a prompt",
			Creator:      &models.User{ID: "user-doc-1", Username: "alice", AvatarURL: "https://avatars/alice"},
			CreatedAt:    time.Now(),
		},
		{ID: "post-2", Title: "two", CreatedAt: time.Now().Add(-time.Hour)},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM feed_posts").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO feed_posts").WillReturnResult(sqlmock.NewResult(2, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceFeed(context.Background(), posts))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedCacheRepository_ReplaceFeed_EmptyFeedOnlyClears(t *testing.T) {
	repo, mock, db := newTestFeedCacheRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM feed_posts").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceFeed(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedCacheRepository_ReplaceFeed_InsertFailureRollsBack(t *testing.T) {
	repo, mock, db := newTestFeedCacheRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM feed_posts").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO feed_posts").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.ReplaceFeed(context.Background(), []models.Post{{ID: "post-1"}})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── LoadFeed ─────────────────────────────────────────────────────────────────

func TestFeedCacheRepository_LoadFeed_Success(t *testing.T) {
	repo, mock, db := newTestFeedCacheRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(cachedFeedColumns()).
		AddRow("post-2", "newer", "t2", "v2", "p2", "user-doc-1", "alice", "a1", now).
		AddRow("post-1", "older", "t1", "v1", "p1", "user-doc-2", "bob", "a2", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT .+ FROM feed_posts").WillReturnRows(rows)

	posts, err := repo.LoadFeed(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "post-2", posts[0].ID)
	require.NotNil(t, posts[0].Creator)
	assert.Equal(t, "alice", posts[0].Creator.Username)
}

func TestFeedCacheRepository_LoadFeed_MissingCreatorStaysNil(t *testing.T) {
	repo, mock, db := newTestFeedCacheRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(cachedFeedColumns()).
		AddRow("post-1", "orphaned", "t1", "v1", "p1", "", "", "", time.Now())

	mock.ExpectQuery("SELECT .+ FROM feed_posts").WillReturnRows(rows)

	posts, err := repo.LoadFeed(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Nil(t, posts[0].Creator)
}

func TestFeedCacheRepository_LoadFeed_EmptyCache(t *testing.T) {
	repo, mock, db := newTestFeedCacheRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM feed_posts").
		WillReturnRows(sqlmock.NewRows(cachedFeedColumns()))

	posts, err := repo.LoadFeed(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestFeedCacheRepository_LoadFeed_QueryFailure(t *testing.T) {
	repo, mock, db := newTestFeedCacheRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM feed_posts").WillReturnError(errors.New("corrupt db"))

	_, err := repo.LoadFeed(context.Background(), 0)
	require.Error(t, err)
}
