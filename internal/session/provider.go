// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aora Client Authors

// Package session holds the process-wide "who is signed in" state.
//
// The [Provider] is an explicit, injectable value rather than an ambient
// singleton, so tests can construct isolated instances. Its lifecycle is
// Unknown -> Authenticated | Anonymous: Init resolves the initial state
// exactly once per provider, and sign-in/sign-up/sign-out flows move it
// afterwards via SetUser and Clear.
package session

import (
	"context"
	"sync"

	"github.com/mh-apps/aora-client/internal/logger"
	"github.com/mh-apps/aora-client/models"
)

// State enumerates the provider lifecycle states.
type State int

const (
	// Unknown is the initial state before Init has resolved.
	Unknown State = iota
	// Anonymous means no user is signed in.
	Anonymous
	// Authenticated means a user is signed in.
	Authenticated
)

// Snapshot is a consistent read of the provider state.
type Snapshot struct {
	State State

	// User is set only in the Authenticated state.
	User *models.User

	// IsLoading is true only while the initial resolution is in flight.
	IsLoading bool
}

// CurrentUserFunc resolves the signed-in user, returning (nil, nil) when
// nobody is.
type CurrentUserFunc func(ctx context.Context) (*models.User, error)

// Provider is the single source of truth for the authenticated user within
// one process. Safe for concurrent use.
type Provider struct {
	currentUser CurrentUserFunc
	logger      *logger.Logger

	initOnce sync.Once

	mu      sync.RWMutex
	state   State
	user    *models.User
	loading bool
}

// NewProvider returns a Provider in the Unknown state with IsLoading set.
func NewProvider(currentUser CurrentUserFunc, logger *logger.Logger) *Provider {
	return &Provider{
		currentUser: currentUser,
		logger:      logger,
		state:       Unknown,
		loading:     true,
	}
}

// Init resolves the initial session state by calling the current-user
// lookup. It runs at most once per provider; later calls are no-ops. A
// lookup failure is logged and lands in Anonymous so the app always reaches
// a determinate state, and IsLoading becomes false exactly once regardless
// of the outcome.
func (p *Provider) Init(ctx context.Context) {
	p.initOnce.Do(func() {
		defer func() {
			p.mu.Lock()
			p.loading = false
			p.mu.Unlock()
		}()

		user, err := p.currentUser(ctx)
		if err != nil {
			p.logger.Error().Err(err).Msg("session init failed, starting anonymous")
			p.Clear()
			return
		}

		if user != nil {
			p.SetUser(user)
		} else {
			p.Clear()
		}
	})
}

// SetUser moves the provider to Authenticated with the given user. Called by
// sign-in and sign-up flows after they succeed.
func (p *Provider) SetUser(user *models.User) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = Authenticated
	p.user = user
}

// Clear moves the provider to Anonymous. Called by the sign-out flow.
func (p *Provider) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = Anonymous
	p.user = nil
}

// Current returns a snapshot of the provider state.
func (p *Provider) Current() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Snapshot{State: p.state, User: p.user, IsLoading: p.loading}
}

// IsLogged reports whether a user is currently signed in.
func (p *Provider) IsLogged() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state == Authenticated
}
