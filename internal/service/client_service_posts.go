package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mh-apps/aora-client/internal/adapter"
	"github.com/mh-apps/aora-client/internal/logger"
	"github.com/mh-apps/aora-client/internal/store"
	"github.com/mh-apps/aora-client/models"
)

// latestPostsLimit caps the "latest" feed section.
const latestPostsLimit = 7

const createdAtAttribute = "$createdAt"

type clientPostService struct {
	localStore        *store.ClientStorages
	adapter           adapter.BackendAdapter
	videoCollectionID string
	logger            *logger.Logger
}

func NewClientPostService(localStore *store.ClientStorages, backend adapter.BackendAdapter, videoCollectionID string, logger *logger.Logger) ClientPostService {
	return &clientPostService{
		localStore:        localStore,
		adapter:           backend,
		videoCollectionID: videoCollectionID,
		logger:            logger,
	}
}

func (s *clientPostService) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.listPosts(ctx, []adapter.Query{
		adapter.OrderDesc(createdAtAttribute),
	})
	if err != nil {
		return nil, err
	}

	// The cache only ever holds a successfully fetched feed; a write failure
	// costs the offline fallback, not the current result.
	if err = s.localStore.FeedCacheRepository.ReplaceFeed(ctx, posts); err != nil {
		s.logger.Warn().Err(err).Msg("failed to refresh feed cache")
	}

	return posts, nil
}

func (s *clientPostService) GetLatestPosts(ctx context.Context) ([]models.Post, error) {
	return s.listPosts(ctx, []adapter.Query{
		adapter.OrderDesc(createdAtAttribute),
		adapter.Limit(latestPostsLimit),
	})
}

func (s *clientPostService) SearchPosts(ctx context.Context, query string) ([]models.Post, error) {
	// A blank query matches nothing rather than everything; deciding this
	// client-side keeps the backend's search defaults out of the contract.
	if strings.TrimSpace(query) == "" {
		return []models.Post{}, nil
	}

	return s.listPosts(ctx, []adapter.Query{
		adapter.Search("title", query),
	})
}

func (s *clientPostService) GetUserPosts(ctx context.Context, userID string) ([]models.Post, error) {
	return s.listPosts(ctx, []adapter.Query{
		adapter.Equal("creator", userID),
	})
}

func (s *clientPostService) GetCachedPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.localStore.FeedCacheRepository.LoadFeed(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: load cached feed: %v", ErrFetch, err)
	}

	return posts, nil
}

func (s *clientPostService) listPosts(ctx context.Context, queries []adapter.Query) ([]models.Post, error) {
	docs, err := s.adapter.ListDocuments(ctx, s.videoCollectionID, queries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	posts := make([]models.Post, 0, len(docs))
	for _, doc := range docs {
		posts = append(posts, models.PostFromDocument(doc))
	}

	return posts, nil
}
