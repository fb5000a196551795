package reports

import (
	"context"
	"fmt"
	"net/url"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/responses"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type reportService struct {
	Gateway contracts.APIGateway
	Log     *zap.Logger
}

func NewReportService(gateway contracts.APIGateway, logger *zap.Logger) contracts.ReportService {
	return &reportService{
		Gateway: gateway,
		Log:     logger,
	}
}

func (s *reportService) List(ctx context.Context) ([]models.Report, error) {
	requestID := utils.RequestIDFromContext(ctx)
	s.Log.Info("reportService.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var response responses.ReportList
	if err := s.Gateway.Get(ctx, constvars.EndpointReports, nil, &response); err != nil {
		s.Log.Error("reportService.List error fetching reports",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	reports := response.Reports
	if reports == nil {
		reports = []models.Report{}
	}

	s.Log.Info("reportService.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(reports)),
	)
	return reports, nil
}

func (s *reportService) FindByID(ctx context.Context, reportID string) (*models.Report, error) {
	requestID := utils.RequestIDFromContext(ctx)
	s.Log.Info("reportService.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	report := new(models.Report)
	endpoint := fmt.Sprintf(constvars.EndpointReportByIDFormat, url.PathEscape(reportID))
	if err := s.Gateway.Get(ctx, endpoint, nil, report); err != nil {
		s.Log.Error("reportService.FindByID error fetching report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReportIDKey, reportID),
			zap.Error(err),
		)
		return nil, err
	}

	s.Log.Info("reportService.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)
	return report, nil
}
