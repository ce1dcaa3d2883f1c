package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mh-apps/aora-client/internal/adapter"
	"github.com/mh-apps/aora-client/internal/logger"
	"github.com/mh-apps/aora-client/internal/mock"
	"github.com/mh-apps/aora-client/internal/store"
	"github.com/mh-apps/aora-client/models"
)

func newTestPostSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientPostService,
	*mock.MockBackendAdapter,
	*mock.MockFeedCacheRepository,
) {
	t.Helper()
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	mockFeedCache := mock.NewMockFeedCacheRepository(ctrl)

	storages := &store.ClientStorages{FeedCacheRepository: mockFeedCache}

	svc := NewClientPostService(storages, mockAdapter, "videos", logger.Nop()).(*clientPostService)
	return svc, mockAdapter, mockFeedCache
}

func videoDoc(id, title string, createdAt time.Time) models.Document {
	return models.Document{
		ID:        id,
		CreatedAt: createdAt,
		Data: map[string]any{
			"title":     title,
			"thumbnail": "https://files/" + id + "/preview",
			"video":     "https://files/" + id + "/view",
			"prompt":    "a prompt",
			"creator": map[string]any{
				"$id":      "user-doc-1",
				"username": "alice",
				"avatar":   "https://avatars/alice",
			},
		},
	}
}

// ── GetAllPosts ──────────────────────────────────────────────────────────────

func TestClientPostService_GetAllPosts_OrdersNewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockFeedCache := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	now := time.Now()
	docs := []models.Document{
		videoDoc("post-2", "newer", now),
		videoDoc("post-1", "older", now.Add(-time.Hour)),
	}

	gomock.InOrder(
		mockAdapter.EXPECT().
			ListDocuments(ctx, "videos", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, queries []adapter.Query) ([]models.Document, error) {
				require.Len(t, queries, 1)
				assert.Equal(t, adapter.OrderDesc("$createdAt"), queries[0])
				return docs, nil
			}),
		mockFeedCache.EXPECT().ReplaceFeed(ctx, gomock.Len(2)).Return(nil),
	)

	posts, err := svc.GetAllPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "post-2", posts[0].ID)
	assert.Equal(t, "post-1", posts[1].ID)
	require.NotNil(t, posts[0].Creator)
	assert.Equal(t, "alice", posts[0].Creator.Username)
}

func TestClientPostService_GetAllPosts_CacheWriteFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockFeedCache := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		ListDocuments(ctx, "videos", gomock.Any()).
		Return([]models.Document{videoDoc("post-1", "one", time.Now())}, nil)
	mockFeedCache.EXPECT().ReplaceFeed(ctx, gomock.Any()).Return(errors.New("disk full"))

	posts, err := svc.GetAllPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestClientPostService_GetAllPosts_FetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	// A failed fetch never touches the cache.
	mockAdapter.EXPECT().
		ListDocuments(ctx, "videos", gomock.Any()).
		Return(nil, adapter.ErrBadGateway)

	_, err := svc.GetAllPosts(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
}

// ── GetLatestPosts ───────────────────────────────────────────────────────────

func TestClientPostService_GetLatestPosts_CapsAtSeven(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		ListDocuments(ctx, "videos", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, queries []adapter.Query) ([]models.Document, error) {
			require.Len(t, queries, 2)
			assert.Equal(t, adapter.OrderDesc("$createdAt"), queries[0])
			assert.Equal(t, adapter.Limit(7), queries[1])
			return nil, nil
		})

	_, err := svc.GetLatestPosts(ctx)
	require.NoError(t, err)
}

// ── SearchPosts ──────────────────────────────────────────────────────────────

func TestClientPostService_SearchPosts_MatchesTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		ListDocuments(ctx, "videos", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, queries []adapter.Query) ([]models.Document, error) {
			require.Len(t, queries, 1)
			assert.Equal(t, adapter.Search("title", "space"), queries[0])
			return []models.Document{videoDoc("post-1", "space ships", time.Now())}, nil
		})

	posts, err := svc.SearchPosts(ctx, "space")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "space ships", posts[0].Title)
}

func TestClientPostService_SearchPosts_BlankQuerySkipsBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations registered: a backend call would fail the test.
	svc, _, _ := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	for _, query := range []string{"", "   ", "\t\n"} {
		posts, err := svc.SearchPosts(ctx, query)
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	}
}

// ── GetUserPosts ─────────────────────────────────────────────────────────────

func TestClientPostService_GetUserPosts_FiltersByCreator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		ListDocuments(ctx, "videos", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, queries []adapter.Query) ([]models.Document, error) {
			require.Len(t, queries, 1)
			assert.Equal(t, adapter.Equal("creator", "user-doc-1"), queries[0])
			return []models.Document{videoDoc("post-1", "mine", time.Now())}, nil
		})

	posts, err := svc.GetUserPosts(ctx, "user-doc-1")
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

// ── GetCachedPosts ───────────────────────────────────────────────────────────

func TestClientPostService_GetCachedPosts_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockFeedCache := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	cached := []models.Post{{ID: "post-1", Title: "cached"}}
	mockFeedCache.EXPECT().LoadFeed(ctx, 0).Return(cached, nil)

	posts, err := svc.GetCachedPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, cached, posts)
}

func TestClientPostService_GetCachedPosts_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockFeedCache := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	mockFeedCache.EXPECT().LoadFeed(ctx, 0).Return(nil, errors.New("corrupt db"))

	_, err := svc.GetCachedPosts(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
}

// ── Dangling relations ───────────────────────────────────────────────────────

func TestClientPostService_GetAllPosts_DanglingCreator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockFeedCache := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	// The deleted creator comes back as a null relation.
	doc := models.Document{
		ID:        "post-1",
		CreatedAt: time.Now(),
		Data: map[string]any{
			"title":   "orphaned",
			"creator": nil,
		},
	}

	mockAdapter.EXPECT().ListDocuments(ctx, "videos", gomock.Any()).Return([]models.Document{doc}, nil)
	mockFeedCache.EXPECT().ReplaceFeed(ctx, gomock.Any()).Return(nil)

	posts, err := svc.GetAllPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Nil(t, posts[0].Creator)
	assert.Equal(t, "orphaned", posts[0].Title)
}
