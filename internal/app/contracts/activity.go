package contracts

import (
	"context"
	"healthease-client/internal/app/models"
)

type ActivityPublisher interface {
	Publish(ctx context.Context, event *models.ActivityEvent) error
	Close() error
}
