package health

import (
	"context"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/responses"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type healthService struct {
	Gateway contracts.APIGateway
	Log     *zap.Logger
}

func NewHealthService(gateway contracts.APIGateway, logger *zap.Logger) contracts.HealthService {
	return &healthService{
		Gateway: gateway,
		Log:     logger,
	}
}

func (s *healthService) Check(ctx context.Context) (*responses.Health, error) {
	requestID := utils.RequestIDFromContext(ctx)

	health := new(responses.Health)
	if err := s.Gateway.Get(ctx, constvars.EndpointHealth, nil, health); err != nil {
		s.Log.Warn("healthService.Check remote API unhealthy",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	s.Log.Info("healthService.Check succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHealthStatusKey, health.Status),
	)
	return health, nil
}
