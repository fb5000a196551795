package redis

import (
	"context"
	"time"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/exceptions"
	"healthease-client/internal/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisRepository struct {
	Client *redis.Client
	Log    *zap.Logger
}

// NewRedisRepository returns the redis backed key-value store used for the
// persisted session slots.
func NewRedisRepository(client *redis.Client, logger *zap.Logger) contracts.KeyValueStore {
	return &redisRepository{
		Client: client,
		Log:    logger,
	}
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	requestID := utils.RequestIDFromContext(ctx)
	r.Log.Debug("redisRepository.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)

	data, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		r.Log.Error("redisRepository.Get error reading key",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return "", exceptions.ErrRedisGet(err)
	}

	return data, nil
}

func (r *redisRepository) Set(ctx context.Context, key string, value string, exp time.Duration) error {
	requestID := utils.RequestIDFromContext(ctx)
	err := r.Client.Set(ctx, key, value, exp).Err()
	if err != nil {
		r.Log.Error("redisRepository.Set error writing key",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return exceptions.ErrRedisSet(err)
	}

	r.Log.Debug("redisRepository.Set succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	err := r.Client.Del(ctx, keys...).Err()
	if err != nil {
		r.Log.Error("redisRepository.Delete error deleting keys",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Strings(constvars.LoggingRedisKey, keys),
			zap.Error(err),
		)
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
