package controllers

import (
	"net/http"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/exceptions"
	"healthease-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ProfileController struct {
	Log          *zap.Logger
	Orchestrator contracts.Orchestrator
}

func NewProfileController(logger *zap.Logger, orchestrator contracts.Orchestrator) *ProfileController {
	return &ProfileController{
		Log:          logger,
		Orchestrator: orchestrator,
	}
}

func (ctrl *ProfileController) BeginEdit(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("ProfileController.BeginEdit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	draft, err := ctrl.Orchestrator.BeginProfileEdit(r.Context())
	if err != nil {
		ctrl.Log.Error("ProfileController.BeginEdit error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, draft)
}

// UpdateDraft applies a partial patch, so the body is decoded without
// struct validation.
func (ctrl *ProfileController) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())

	patch := new(requests.ProfileDraftPatch)
	if err := json.NewDecoder(r.Body).Decode(patch); err != nil {
		ctrl.Log.Error("ProfileController.UpdateDraft error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctrl.Log.Info("ProfileController.UpdateDraft called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	draft, err := ctrl.Orchestrator.UpdateProfileDraft(r.Context(), patch)
	if err != nil {
		ctrl.Log.Error("ProfileController.UpdateDraft error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileDraftSuccessMessage, draft)
}

func (ctrl *ProfileController) Commit(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("ProfileController.Commit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	saved, err := ctrl.Orchestrator.CommitProfile(r.Context())
	if err != nil {
		ctrl.Log.Error("ProfileController.Commit error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ProfileController.Commit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, saved.UserID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileSavedSuccessMessage, saved)
}

func (ctrl *ProfileController) Cancel(w http.ResponseWriter, r *http.Request) {
	ctrl.Orchestrator.CancelProfileEdit(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileDraftCanceledMessage, nil)
}
