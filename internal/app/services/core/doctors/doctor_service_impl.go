package doctors

import (
	"context"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/responses"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type doctorService struct {
	Gateway contracts.APIGateway
	Log     *zap.Logger
}

func NewDoctorService(gateway contracts.APIGateway, logger *zap.Logger) contracts.DoctorService {
	return &doctorService{
		Gateway: gateway,
		Log:     logger,
	}
}

func (s *doctorService) List(ctx context.Context) ([]models.Doctor, error) {
	requestID := utils.RequestIDFromContext(ctx)
	s.Log.Info("doctorService.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var response responses.DoctorList
	if err := s.Gateway.Get(ctx, constvars.EndpointDoctors, nil, &response); err != nil {
		s.Log.Error("doctorService.List error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	doctors := response.Doctors
	if doctors == nil {
		doctors = []models.Doctor{}
	}

	s.Log.Info("doctorService.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(doctors)),
	)
	return doctors, nil
}
