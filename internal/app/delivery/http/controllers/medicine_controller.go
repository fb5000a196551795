package controllers

import (
	"net/http"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type MedicineController struct {
	Log          *zap.Logger
	Orchestrator contracts.Orchestrator
}

func NewMedicineController(logger *zap.Logger, orchestrator contracts.Orchestrator) *MedicineController {
	return &MedicineController{
		Log:          logger,
		Orchestrator: orchestrator,
	}
}

func (ctrl *MedicineController) Search(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	query := r.URL.Query().Get(constvars.QueryParamQuery)
	ctrl.Log.Info("MedicineController.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineQueryKey, query),
	)

	medicines, err := ctrl.Orchestrator.SearchMedicines(r.Context(), query)
	if err != nil {
		ctrl.Log.Error("MedicineController.Search error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MedicineController.Search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(medicines)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchMedicinesSuccessMessage, medicines)
}
