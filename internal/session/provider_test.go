package session

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mh-apps/aora-client/internal/logger"
	"github.com/mh-apps/aora-client/models"
)

func staticUser(user *models.User, err error) CurrentUserFunc {
	return func(_ context.Context) (*models.User, error) {
		return user, err
	}
}

// ── NewProvider ──────────────────────────────────────────────────────────────

func TestNewProvider_StartsUnknownAndLoading(t *testing.T) {
	p := NewProvider(staticUser(nil, nil), logger.Nop())

	snap := p.Current()
	assert.Equal(t, Unknown, snap.State)
	assert.Nil(t, snap.User)
	assert.True(t, snap.IsLoading)
	assert.False(t, p.IsLogged())
}

// ── Init ─────────────────────────────────────────────────────────────────────

func TestProvider_Init_SignedIn(t *testing.T) {
	user := &models.User{ID: "user-doc-1", Username: "alice"}
	p := NewProvider(staticUser(user, nil), logger.Nop())

	p.Init(context.Background())

	snap := p.Current()
	assert.Equal(t, Authenticated, snap.State)
	require.NotNil(t, snap.User)
	assert.Equal(t, "alice", snap.User.Username)
	assert.False(t, snap.IsLoading)
	assert.True(t, p.IsLogged())
}

func TestProvider_Init_SignedOut(t *testing.T) {
	p := NewProvider(staticUser(nil, nil), logger.Nop())

	p.Init(context.Background())

	snap := p.Current()
	assert.Equal(t, Anonymous, snap.State)
	assert.Nil(t, snap.User)
	assert.False(t, snap.IsLoading)
	assert.False(t, p.IsLogged())
}

func TestProvider_Init_LookupFailureLandsAnonymous(t *testing.T) {
	p := NewProvider(staticUser(nil, errors.New("backend down")), logger.Nop())

	p.Init(context.Background())

	// The app always reaches a determinate state, even on failure.
	snap := p.Current()
	assert.Equal(t, Anonymous, snap.State)
	assert.False(t, snap.IsLoading)
}

func TestProvider_Init_RunsOnce(t *testing.T) {
	var calls atomic.Int64
	p := NewProvider(func(_ context.Context) (*models.User, error) {
		calls.Add(1)
		return nil, nil
	}, logger.Nop())

	ctx := context.Background()
	p.Init(ctx)
	p.Init(ctx)
	p.Init(ctx)

	assert.Equal(t, int64(1), calls.Load())
}

func TestProvider_Init_SecondCallKeepsCurrentState(t *testing.T) {
	p := NewProvider(staticUser(nil, nil), logger.Nop())
	ctx := context.Background()

	p.Init(ctx)
	assert.Equal(t, Anonymous, p.Current().State)

	// Sign in afterwards; a redundant Init must not reset it.
	p.SetUser(&models.User{ID: "user-doc-1"})
	p.Init(ctx)

	assert.Equal(t, Authenticated, p.Current().State)
}

// ── SetUser / Clear ──────────────────────────────────────────────────────────

func TestProvider_SetUser_ThenClear(t *testing.T) {
	p := NewProvider(staticUser(nil, nil), logger.Nop())

	p.SetUser(&models.User{ID: "user-doc-1", Username: "alice"})
	assert.True(t, p.IsLogged())
	assert.Equal(t, Authenticated, p.Current().State)

	p.Clear()
	assert.False(t, p.IsLogged())
	snap := p.Current()
	assert.Equal(t, Anonymous, snap.State)
	assert.Nil(t, snap.User)
}

func TestProvider_ConcurrentReads(t *testing.T) {
	p := NewProvider(staticUser(&models.User{ID: "user-doc-1"}, nil), logger.Nop())
	p.Init(context.Background())

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = p.Current()
				_ = p.IsLogged()
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	assert.True(t, p.IsLogged())
}
