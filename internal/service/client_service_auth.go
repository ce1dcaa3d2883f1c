package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mh-apps/aora-client/internal/adapter"
	"github.com/mh-apps/aora-client/internal/logger"
	"github.com/mh-apps/aora-client/internal/store"
	"github.com/mh-apps/aora-client/models"
)

type clientAuthService struct {
	localStore       *store.ClientStorages
	adapter          adapter.BackendAdapter
	userCollectionID string
	logger           *logger.Logger
}

func NewClientAuthService(localStore *store.ClientStorages, backend adapter.BackendAdapter, userCollectionID string, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		localStore:       localStore,
		adapter:          backend,
		userCollectionID: userCollectionID,
		logger:           logger,
	}
}

func (s *clientAuthService) Register(ctx context.Context, email, password, username string) (models.User, error) {
	account, err := s.adapter.CreateAccount(ctx, uuid.NewString(), email, password, username)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: create account: %v", ErrRegistration, err)
	}

	avatarURL := s.adapter.AvatarInitialsURL(username)

	// Registering authenticates: the profile document is created under the
	// fresh session, and callers land signed in.
	if _, err = s.LogIn(ctx, email, password); err != nil {
		return models.User{}, fmt.Errorf("%w: sign in after account creation: %v", ErrRegistration, err)
	}

	doc, err := s.adapter.CreateDocument(ctx, s.userCollectionID, uuid.NewString(), map[string]any{
		"accountId": account.ID,
		"email":     email,
		"username":  username,
		"avatar":    avatarURL,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: create profile document: %v", ErrRegistration, err)
	}

	return models.UserFromDocument(doc), nil
}

func (s *clientAuthService) LogIn(ctx context.Context, email, password string) (models.Session, error) {
	session, err := s.adapter.CreateEmailSession(ctx, email, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	// Persistence failure leaves the in-process session intact; the user is
	// still signed in, they just face a login on the next cold start.
	if err = s.localStore.SessionRepository.SaveSession(ctx, session); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist session locally")
	}

	return session, nil
}

func (s *clientAuthService) LogOut(ctx context.Context) error {
	if err := s.adapter.DeleteSession(ctx, "current"); err != nil {
		return fmt.Errorf("%w: delete session: %v", ErrAuth, err)
	}

	if err := s.localStore.SessionRepository.DeleteSession(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to remove persisted session")
	}

	return nil
}

func (s *clientAuthService) GetCurrentUser(ctx context.Context) (*models.User, error) {
	account, err := s.adapter.GetAccount(ctx)
	if err != nil {
		// Absence of a session is an expected state, not an error; other
		// failures degrade to "no user" as well, by contract.
		if !errors.Is(err, adapter.ErrUnauthorized) {
			s.logger.Warn().Err(err).Msg("get account failed, treating as signed out")
		}
		return nil, nil
	}

	docs, err := s.adapter.ListDocuments(ctx, s.userCollectionID, []adapter.Query{
		adapter.Equal("accountId", account.ID),
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("profile lookup failed, treating as signed out")
		return nil, nil
	}

	switch len(docs) {
	case 0:
		return nil, nil
	case 1:
		user := models.UserFromDocument(docs[0])
		return &user, nil
	default:
		return nil, fmt.Errorf("%w: %d profile documents for account %s", ErrRelationLookup, len(docs), account.ID)
	}
}

func (s *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := s.localStore.SessionRepository.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			return models.Session{}, err
		}
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	s.adapter.SetSession(session.Secret)
	return session, nil
}
