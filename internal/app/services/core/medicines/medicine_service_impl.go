package medicines

import (
	"context"
	"net/url"
	"strings"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/responses"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type medicineService struct {
	Gateway contracts.APIGateway
	Log     *zap.Logger
}

func NewMedicineService(gateway contracts.APIGateway, logger *zap.Logger) contracts.MedicineService {
	return &medicineService{
		Gateway: gateway,
		Log:     logger,
	}
}

// Search lists the catalogue. An empty query returns every medicine.
func (s *medicineService) Search(ctx context.Context, query string) ([]models.Medicine, error) {
	requestID := utils.RequestIDFromContext(ctx)
	query = strings.TrimSpace(query)
	s.Log.Info("medicineService.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineQueryKey, query),
	)

	params := url.Values{}
	if query != "" {
		params.Set(constvars.QueryParamQuery, query)
	}

	var response responses.MedicineList
	if err := s.Gateway.Get(ctx, constvars.EndpointMedicines, params, &response); err != nil {
		s.Log.Error("medicineService.Search error fetching medicines",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	medicines := response.Medicines
	if medicines == nil {
		medicines = []models.Medicine{}
	}

	s.Log.Info("medicineService.Search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(medicines)),
	)
	return medicines, nil
}
