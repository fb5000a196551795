package controllers

import (
	"net/http"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReportController struct {
	Log          *zap.Logger
	Orchestrator contracts.Orchestrator
}

func NewReportController(logger *zap.Logger, orchestrator contracts.Orchestrator) *ReportController {
	return &ReportController{
		Log:          logger,
		Orchestrator: orchestrator,
	}
}

func (ctrl *ReportController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	reportID := chi.URLParam(r, constvars.URLParamReportID)
	ctrl.Log.Info("ReportController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	report, err := ctrl.Orchestrator.GetReport(r.Context(), reportID)
	if err != nil {
		ctrl.Log.Error("ReportController.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportSuccessMessage, report)
}

func (ctrl *ReportController) Upload(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())

	request := new(requests.UploadReports)
	if err := utils.ParseJSONBody(r, request); err != nil {
		ctrl.Log.Error("ReportController.Upload error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ReportController.Upload called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingFileCountKey, len(request.Files)),
	)

	results, err := ctrl.Orchestrator.UploadReports(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("ReportController.Upload error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ReportController.Upload succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(results)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadReportsSuccessMessage, results)
}

func (ctrl *ReportController) UploadProgress(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUploadProgressMessage, ctrl.Orchestrator.UploadProgress())
}
