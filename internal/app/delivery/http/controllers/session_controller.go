package controllers

import (
	"net/http"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type SessionController struct {
	Log          *zap.Logger
	Orchestrator contracts.Orchestrator
}

func NewSessionController(logger *zap.Logger, orchestrator contracts.Orchestrator) *SessionController {
	return &SessionController{
		Log:          logger,
		Orchestrator: orchestrator,
	}
}

func (ctrl *SessionController) GetState(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("SessionController.GetState called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	state := ctrl.Orchestrator.State(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStateSuccessMessage, state)
}

func (ctrl *SessionController) Navigate(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())

	request := new(requests.Navigate)
	if err := utils.ParseJSONBody(r, request); err != nil {
		ctrl.Log.Error("SessionController.Navigate error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SessionController.Navigate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewToKey, request.View),
	)

	if err := ctrl.Orchestrator.Navigate(r.Context(), request.View); err != nil {
		ctrl.Log.Error("SessionController.Navigate error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NavigateSuccessMessage, ctrl.Orchestrator.State(r.Context()))
}

func (ctrl *SessionController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("SessionController.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := ctrl.Orchestrator.Logout(r.Context()); err != nil {
		ctrl.Log.Error("SessionController.Logout error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SessionController.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}
