package controllers

import (
	"net/http"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/dto/responses"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type FacilityController struct {
	Log          *zap.Logger
	Orchestrator contracts.Orchestrator
}

func NewFacilityController(logger *zap.Logger, orchestrator contracts.Orchestrator) *FacilityController {
	return &FacilityController{
		Log:          logger,
		Orchestrator: orchestrator,
	}
}

func (ctrl *FacilityController) FindAll(w http.ResponseWriter, r *http.Request) {
	facilities, category := ctrl.Orchestrator.NearbyFacilities()
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFacilitiesSuccessMessage, &responses.Facilities{
		Category:   category,
		Facilities: facilities,
	})
}

func (ctrl *FacilityController) Filter(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())

	request := new(requests.FacilityFilter)
	if err := utils.ParseJSONBody(r, request); err != nil {
		ctrl.Log.Error("FacilityController.Filter error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("FacilityController.Filter called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCategoryKey, request.Type),
	)

	facilities, err := ctrl.Orchestrator.FilterFacilities(r.Context(), request.Type)
	if err != nil {
		ctrl.Log.Error("FacilityController.Filter error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FacilityFilterSuccessMessage, &responses.Facilities{
		Category:   request.Type,
		Facilities: facilities,
	})
}

func (ctrl *FacilityController) RenderMap(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("FacilityController.RenderMap called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := ctrl.Orchestrator.RenderMap(r.Context()); err != nil {
		ctrl.Log.Error("FacilityController.RenderMap error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RenderMapSuccessMessage, nil)
}
