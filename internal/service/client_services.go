package service

import (
	"context"

	"github.com/mh-apps/aora-client/internal/adapter"
	"github.com/mh-apps/aora-client/internal/config"
	"github.com/mh-apps/aora-client/internal/logger"
	"github.com/mh-apps/aora-client/internal/store"
)

// ClientServices aggregates the facade services behind a single value that
// can be passed to the application runtime.
type ClientServices struct {
	AuthService  ClientAuthService
	PostService  ClientPostService
	MediaService ClientMediaService
	RefreshJob   FeedRefreshJob
}

// NewClientServices wires the facade over the given transport and local
// storage. The refresh job is connected to the full-feed query so every tick
// also renews the local feed cache.
func NewClientServices(localStore *store.ClientStorages, backend adapter.BackendAdapter, cfg config.Backend, log *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(localStore, backend, cfg.UserCollectionID, log)
	postSvc := NewClientPostService(localStore, backend, cfg.VideoCollectionID, log)
	mediaSvc := NewClientMediaService(backend, cfg.VideoCollectionID, log)

	refreshJob := NewFeedRefreshJob(func(ctx context.Context) error {
		_, err := postSvc.GetAllPosts(ctx)
		return err
	}, log)

	return &ClientServices{
		AuthService:  authSvc,
		PostService:  postSvc,
		MediaService: mediaSvc,
		RefreshJob:   refreshJob,
	}
}
