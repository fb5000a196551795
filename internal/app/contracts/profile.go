package contracts

import (
	"context"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/dto/requests"
)

// ProfileEditor buffers profile changes until they are saved.
type ProfileEditor interface {
	Begin(user models.UserRecord)
	Apply(patch *requests.ProfileDraftPatch) error
	Draft() (models.UserRecord, bool)
	Commit(ctx context.Context) (*models.UserRecord, error)
	Cancel()
}
