package controllers

import (
	"net/http"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type EmergencyController struct {
	Log          *zap.Logger
	Orchestrator contracts.Orchestrator
}

func NewEmergencyController(logger *zap.Logger, orchestrator contracts.Orchestrator) *EmergencyController {
	return &EmergencyController{
		Log:          logger,
		Orchestrator: orchestrator,
	}
}

func (ctrl *EmergencyController) TriggerSOS(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())

	request := new(requests.TriggerSOS)
	if err := utils.ParseJSONBody(r, request); err != nil {
		ctrl.Log.Error("EmergencyController.TriggerSOS error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("EmergencyController.TriggerSOS called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmergencyTypeKey, request.EmergencyType),
	)

	alert, err := ctrl.Orchestrator.TriggerSOS(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("EmergencyController.TriggerSOS error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("EmergencyController.TriggerSOS succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSOSIDKey, alert.SOSID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.TriggerSOSSuccessMessage, alert)
}
