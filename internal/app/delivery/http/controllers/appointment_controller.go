package controllers

import (
	"net/http"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type AppointmentController struct {
	Log          *zap.Logger
	Orchestrator contracts.Orchestrator
}

func NewAppointmentController(logger *zap.Logger, orchestrator contracts.Orchestrator) *AppointmentController {
	return &AppointmentController{
		Log:          logger,
		Orchestrator: orchestrator,
	}
}

func (ctrl *AppointmentController) Book(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())

	request := new(requests.BookAppointment)
	if err := utils.ParseJSONBody(r, request); err != nil {
		ctrl.Log.Error("AppointmentController.Book error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	appointment, err := ctrl.Orchestrator.BookAppointment(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.Book error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.AppointmentID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookAppointmentSuccessMessage, appointment)
}
