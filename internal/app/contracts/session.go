package contracts

import (
	"context"
	"healthease-client/internal/app/models"
	"time"
)

// KeyValueStore is the durable client-local storage behind the session slots.
// Get returns an empty string and no error for a missing key.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, exp time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type SessionStore interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	SaveUser(ctx context.Context, user models.UserRecord) error
	Clear(ctx context.Context) error
	Current() *models.Session
	Token() string
}
