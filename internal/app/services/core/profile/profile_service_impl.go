package profile

import (
	"context"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/dto/responses"
	"healthease-client/internal/pkg/exceptions"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type profileService struct {
	Gateway contracts.APIGateway
	Log     *zap.Logger
}

func NewProfileService(gateway contracts.APIGateway, logger *zap.Logger) contracts.ProfileService {
	return &profileService{
		Gateway: gateway,
		Log:     logger,
	}
}

func (s *profileService) Get(ctx context.Context) (*models.UserRecord, error) {
	requestID := utils.RequestIDFromContext(ctx)
	s.Log.Info("profileService.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user := new(models.UserRecord)
	if err := s.Gateway.Get(ctx, constvars.EndpointProfile, nil, user); err != nil {
		s.Log.Error("profileService.Get error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	s.Log.Info("profileService.Get succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.UserID),
	)
	return user, nil
}

func (s *profileService) Update(ctx context.Context, request *requests.UpdateProfile) error {
	requestID := utils.RequestIDFromContext(ctx)
	s.Log.Info("profileService.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		s.Log.Error("profileService.Update validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrInputValidation(err)
	}

	var response responses.Message
	if err := s.Gateway.Put(ctx, constvars.EndpointProfile, request, &response); err != nil {
		s.Log.Error("profileService.Update error saving profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	s.Log.Info("profileService.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseMessageKey, response.Message),
	)
	return nil
}
