package sessionstore

import (
	"context"
	"sync"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/exceptions"
	"healthease-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionStore struct {
	Store contracts.KeyValueStore
	Log   *zap.Logger

	mu      sync.RWMutex
	current *models.Session
}

// NewSessionStore keeps the session in two durable slots of store: the token
// and the JSON encoded user record.
func NewSessionStore(store contracts.KeyValueStore, logger *zap.Logger) contracts.SessionStore {
	return &sessionStore{
		Store: store,
		Log:   logger,
	}
}

// Load reads both slots. A missing token, a missing user or a user slot that
// does not decode all yield an absent session without error.
func (s *sessionStore) Load(ctx context.Context) (*models.Session, error) {
	requestID := utils.RequestIDFromContext(ctx)
	s.Log.Info("sessionStore.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	token, err := s.Store.Get(ctx, constvars.SessionTokenSlotKey)
	if err != nil {
		s.Log.Error("sessionStore.Load error reading token slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	rawUser, err := s.Store.Get(ctx, constvars.SessionUserSlotKey)
	if err != nil {
		s.Log.Error("sessionStore.Load error reading user slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if token == "" || rawUser == "" {
		s.setCurrent(nil)
		s.Log.Info("sessionStore.Load no persisted session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, nil
	}

	var user models.UserRecord
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.setCurrent(nil)
		s.Log.Warn("sessionStore.Load malformed user slot treated as absent",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil
	}

	session := &models.Session{Token: token, User: user}
	s.setCurrent(session)

	s.Log.Info("sessionStore.Load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.UserID),
	)
	return cloneSession(session), nil
}

func (s *sessionStore) Save(ctx context.Context, session *models.Session) error {
	requestID := utils.RequestIDFromContext(ctx)
	if !session.IsValid() {
		return exceptions.ErrNoSession()
	}

	rawUser, err := json.Marshal(session.User)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := s.Store.Set(ctx, constvars.SessionTokenSlotKey, session.Token, 0); err != nil {
		s.Log.Error("sessionStore.Save error writing token slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if err := s.Store.Set(ctx, constvars.SessionUserSlotKey, string(rawUser), 0); err != nil {
		s.Log.Error("sessionStore.Save error writing user slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	s.setCurrent(cloneSession(session))

	s.Log.Info("sessionStore.Save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.User.UserID),
	)
	return nil
}

// SaveUser replaces the cached user record of the current session.
func (s *sessionStore) SaveUser(ctx context.Context, user models.UserRecord) error {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current == nil {
		return exceptions.ErrNoSession()
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := s.Store.Set(ctx, constvars.SessionUserSlotKey, string(rawUser), 0); err != nil {
		return err
	}

	s.mu.Lock()
	if s.current != nil {
		s.current.User = user.Clone()
	}
	s.mu.Unlock()

	s.Log.Info("sessionStore.SaveUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingUserIDKey, user.UserID),
	)
	return nil
}

// Clear forgets the in-process session first so readers stop sending the
// token even if the durable delete fails.
func (s *sessionStore) Clear(ctx context.Context) error {
	s.setCurrent(nil)

	err := s.Store.Delete(ctx, constvars.SessionTokenSlotKey, constvars.SessionUserSlotKey)
	if err != nil {
		s.Log.Error("sessionStore.Clear error deleting slots",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return err
	}

	s.Log.Info("sessionStore.Clear succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
	)
	return nil
}

func (s *sessionStore) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSession(s.current)
}

func (s *sessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

func (s *sessionStore) setCurrent(session *models.Session) {
	s.mu.Lock()
	s.current = session
	s.mu.Unlock()
}

func cloneSession(session *models.Session) *models.Session {
	if session == nil {
		return nil
	}
	return &models.Session{
		Token: session.Token,
		User:  session.User.Clone(),
	}
}
