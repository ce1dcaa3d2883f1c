package client

import (
	"context"
	"errors"
	"time"

	"github.com/mh-apps/aora-client/internal/config"
	"github.com/mh-apps/aora-client/internal/fetcher"
	"github.com/mh-apps/aora-client/internal/logger"
	"github.com/mh-apps/aora-client/internal/service"
	"github.com/mh-apps/aora-client/internal/session"
	"github.com/mh-apps/aora-client/internal/store"
	"github.com/mh-apps/aora-client/models"
)

type App struct {
	services *service.ClientServices
	provider *session.Provider
	feed     *fetcher.Fetcher[[]models.Post]

	refreshInterval time.Duration
	logger          *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(services *service.ClientServices, workersCfg config.Workers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}

	provider := session.NewProvider(services.AuthService.GetCurrentUser, log)
	feed := fetcher.New(services.PostService.GetAllPosts, func(err error) {
		log.Warn().Err(err).Msg("feed fetch failed")
	})

	return &App{
		services:        services,
		provider:        provider,
		feed:            feed,
		refreshInterval: workersCfg.RefreshInterval,
		logger:          log,
	}, nil
}

// Run drives the client lifecycle: restore any persisted session, resolve
// the signed-in user, load the feed (falling back to the local cache when
// the backend is unreachable), then keep the feed fresh in the background
// until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if _, err := a.services.AuthService.RestoreSession(ctx); err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			a.logger.Warn().Err(err).Msg("session restore failed, starting signed out")
		}
	}

	a.provider.Init(ctx)

	snapshot := a.provider.Current()
	if snapshot.State == session.Authenticated {
		a.logger.Info().Str("username", snapshot.User.Username).Msg("signed in")
	} else {
		a.logger.Info().Msg("anonymous session")
	}

	a.feed.Load(ctx)
	if state := a.feed.State(); state.Err != nil {
		cached, cacheErr := a.services.PostService.GetCachedPosts(ctx)
		if cacheErr != nil {
			a.logger.Warn().Err(cacheErr).Msg("no cached feed available")
		} else {
			a.logger.Info().Int("posts", len(cached)).Msg("serving cached feed")
		}
	} else {
		a.logger.Info().Int("posts", len(state.Data)).Msg("feed loaded")
	}

	a.services.RefreshJob.Start(ctx, a.refreshInterval)
	defer a.services.RefreshJob.Stop()

	<-ctx.Done()
	return nil
}
