package controllers

import (
	"net/http"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CollectionController struct {
	Log          *zap.Logger
	Orchestrator contracts.Orchestrator
}

func NewCollectionController(logger *zap.Logger, orchestrator contracts.Orchestrator) *CollectionController {
	return &CollectionController{
		Log:          logger,
		Orchestrator: orchestrator,
	}
}

func (ctrl *CollectionController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("CollectionController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCollectionsSuccessMessage, ctrl.Orchestrator.Collections())
}

func (ctrl *CollectionController) Refresh(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	collection := chi.URLParam(r, constvars.URLParamCollection)
	ctrl.Log.Info("CollectionController.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, collection),
	)

	if err := ctrl.Orchestrator.RefreshCollection(r.Context(), collection); err != nil {
		ctrl.Log.Error("CollectionController.Refresh error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, collection),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RefreshCollectionSuccessMessage, ctrl.Orchestrator.Collections())
}
