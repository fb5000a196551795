package orchestrator

import (
	"context"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/app/services/shared/activity"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/dto/responses"
	"healthease-client/internal/pkg/exceptions"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

// Services groups the collaborators the orchestrator drives.
type Services struct {
	Gateway      contracts.APIGateway
	Sessions     contracts.SessionStore
	Views        contracts.ViewController
	Loader       contracts.DataLoader
	Location     contracts.LocationService
	Facilities   contracts.FacilitySync
	Map          contracts.FacilityMap
	Uploads      contracts.UploadPipeline
	Files        contracts.FileResolver
	Reports      contracts.ReportService
	Appointments contracts.AppointmentService
	Emergency    contracts.EmergencyService
	Medicines    contracts.MedicineService
	Editor       contracts.ProfileEditor
	Activity     contracts.ActivityPublisher
}

type orchestrator struct {
	Services
	Log *zap.Logger
}

// NewOrchestrator registers the auth-expired hook on the gateway, so a
// rejected session anywhere sends the shell back home with empty collections.
func NewOrchestrator(services Services, logger *zap.Logger) contracts.Orchestrator {
	o := &orchestrator{
		Services: services,
		Log:      logger,
	}
	services.Gateway.OnAuthExpired(o.handleAuthExpired)
	return o
}

func (o *orchestrator) State(ctx context.Context) responses.State {
	state := responses.State{
		View:             o.Views.Current(),
		Authenticated:    o.Views.IsAuthenticated(),
		FacilityCategory: o.Facilities.Category(),
		Facilities:       o.Facilities.Facilities(),
		Collections:      o.Loader.Snapshot(),
	}
	if session := o.Sessions.Current(); session != nil {
		user := session.User
		state.User = &user
	}
	if coords, ok := o.Location.Last(); ok {
		state.Location = &coords
	}
	if percent, ok := o.Uploads.Progress(); ok {
		state.UploadProgress = &percent
	}
	_, state.ProfileDraft = o.Editor.Draft()
	return state
}

func (o *orchestrator) Navigate(ctx context.Context, view string) error {
	target, ok := models.ParseViewState(view)
	if !ok {
		return exceptions.ErrUnknownView(view)
	}
	return o.Views.Navigate(target)
}

func (o *orchestrator) Logout(ctx context.Context) error {
	requestID := utils.RequestIDFromContext(ctx)
	userID := o.currentUserID()
	o.Log.Info("orchestrator.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if err := o.Sessions.Clear(ctx); err != nil {
		o.Log.Error("orchestrator.Logout error clearing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	o.endSession()
	o.publish(ctx, constvars.ActivityEventSessionLoggedOut, userID, nil)

	o.Log.Info("orchestrator.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// handleAuthExpired runs after the gateway has already cleared the store.
func (o *orchestrator) handleAuthExpired(ctx context.Context) {
	o.Log.Warn("orchestrator.handleAuthExpired session rejected by remote API",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
	)
	o.endSession()
	o.publish(ctx, constvars.ActivityEventSessionExpired, "", nil)
}

func (o *orchestrator) endSession() {
	o.Views.Logout()
	o.Loader.Reset()
	o.Facilities.Reset()
	o.Location.Reset()
	o.Editor.Cancel()
}

func (o *orchestrator) Collections() models.Snapshot {
	return o.Loader.Snapshot()
}

func (o *orchestrator) RefreshCollection(ctx context.Context, collection string) error {
	if _, err := o.requireSession(); err != nil {
		return err
	}
	return o.Loader.Refresh(ctx, contracts.Collection(collection))
}

func (o *orchestrator) GetReport(ctx context.Context, reportID string) (*models.Report, error) {
	if _, err := o.requireSession(); err != nil {
		return nil, err
	}
	return o.Reports.FindByID(ctx, reportID)
}

// UploadReports sends the batch and, on any successful call, refetches the
// reports collection. Per-file failures live in the returned entries.
func (o *orchestrator) UploadReports(ctx context.Context, request *requests.UploadReports) ([]models.UploadResult, error) {
	requestID := utils.RequestIDFromContext(ctx)
	session, err := o.requireSession()
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	files := make([]contracts.FileHandle, 0, len(request.Files))
	for _, ref := range request.Files {
		files = append(files, o.Files.Resolve(ctx, ref))
	}

	results, err := o.Uploads.Upload(ctx, files, nil)
	if err != nil {
		return nil, err
	}

	failed := 0
	for _, result := range results {
		if result.Failed() {
			failed++
		}
	}
	o.Log.Info("orchestrator.UploadReports succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingFileCountKey, len(results)),
		zap.Int(constvars.LoggingPerFileErrorsKey, failed),
	)

	o.refresh(ctx, contracts.CollectionReports)
	o.publish(ctx, constvars.ActivityEventReportsUploaded, session.User.UserID, map[string]interface{}{
		constvars.LoggingFileCountKey:     len(results),
		constvars.LoggingPerFileErrorsKey: failed,
	})
	return results, nil
}

func (o *orchestrator) UploadProgress() responses.UploadProgress {
	percent, inProgress := o.Uploads.Progress()
	return responses.UploadProgress{InProgress: inProgress, Percent: percent}
}

func (o *orchestrator) BookAppointment(ctx context.Context, request *requests.BookAppointment) (*models.Appointment, error) {
	session, err := o.requireSession()
	if err != nil {
		return nil, err
	}

	appointment, err := o.Appointments.Book(ctx, session.User.UserID, request)
	if err != nil {
		return nil, err
	}

	o.refresh(ctx, contracts.CollectionAppointments)
	o.publish(ctx, constvars.ActivityEventAppointmentBooked, session.User.UserID, map[string]interface{}{
		constvars.LoggingAppointmentIDKey: appointment.AppointmentID,
		constvars.LoggingDoctorIDKey:      appointment.DoctorID,
	})
	return appointment, nil
}

func (o *orchestrator) NearbyFacilities() ([]models.Facility, string) {
	return o.Facilities.Facilities(), o.Facilities.Category()
}

func (o *orchestrator) FilterFacilities(ctx context.Context, category string) ([]models.Facility, error) {
	if _, err := o.requireSession(); err != nil {
		return nil, err
	}
	if err := o.Facilities.Refresh(ctx, category); err != nil {
		return nil, err
	}
	return o.Facilities.Facilities(), nil
}

func (o *orchestrator) RenderMap(ctx context.Context) error {
	center := o.Location.Current(ctx)
	return o.Map.RenderFacilities(ctx, center, o.Facilities.Facilities())
}

// BeginProfileEdit opens a draft from the freshest known user record.
func (o *orchestrator) BeginProfileEdit(ctx context.Context) (*models.UserRecord, error) {
	session, err := o.requireSession()
	if err != nil {
		return nil, err
	}

	user := session.User
	if profile := o.Loader.Snapshot().Profile; profile != nil {
		user = *profile
	}
	o.Editor.Begin(user)

	draft, _ := o.Editor.Draft()
	return &draft, nil
}

func (o *orchestrator) UpdateProfileDraft(ctx context.Context, patch *requests.ProfileDraftPatch) (*models.UserRecord, error) {
	if err := o.Editor.Apply(patch); err != nil {
		return nil, err
	}
	draft, _ := o.Editor.Draft()
	return &draft, nil
}

// CommitProfile saves the draft and only then adopts it as the session user.
func (o *orchestrator) CommitProfile(ctx context.Context) (*models.UserRecord, error) {
	requestID := utils.RequestIDFromContext(ctx)
	if _, err := o.requireSession(); err != nil {
		return nil, err
	}

	saved, err := o.Editor.Commit(ctx)
	if err != nil {
		return nil, err
	}

	if err := o.Sessions.SaveUser(ctx, *saved); err != nil {
		o.Log.Error("orchestrator.CommitProfile error caching saved user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	o.refresh(ctx, contracts.CollectionProfile)
	o.publish(ctx, constvars.ActivityEventProfileUpdated, saved.UserID, nil)
	return saved, nil
}

func (o *orchestrator) CancelProfileEdit(ctx context.Context) {
	o.Editor.Cancel()
}

// TriggerSOS reports the last resolved position, resolving one if none is
// known yet.
func (o *orchestrator) TriggerSOS(ctx context.Context, request *requests.TriggerSOS) (*models.SOSAlert, error) {
	session, err := o.requireSession()
	if err != nil {
		return nil, err
	}

	coords, ok := o.Location.Last()
	if !ok {
		coords = o.Location.Current(ctx)
	}

	alert, err := o.Emergency.TriggerSOS(ctx, session.User.UserID, coords, request)
	if err != nil {
		return nil, err
	}

	o.publish(ctx, constvars.ActivityEventSOSTriggered, session.User.UserID, map[string]interface{}{
		constvars.LoggingSOSIDKey:         alert.SOSID,
		constvars.LoggingEmergencyTypeKey: request.EmergencyType,
	})
	return alert, nil
}

func (o *orchestrator) SearchMedicines(ctx context.Context, query string) ([]models.Medicine, error) {
	return o.Medicines.Search(ctx, query)
}

func (o *orchestrator) requireSession() (*models.Session, error) {
	session := o.Sessions.Current()
	if !session.IsValid() {
		return nil, exceptions.ErrNoSession()
	}
	return session, nil
}

func (o *orchestrator) currentUserID() string {
	if session := o.Sessions.Current(); session != nil {
		return session.User.UserID
	}
	return ""
}

// refresh refetches after a mutation. The mutation already succeeded, so a
// failed refetch is only logged.
func (o *orchestrator) refresh(ctx context.Context, collection contracts.Collection) {
	if err := o.Loader.Refresh(ctx, collection); err != nil {
		o.Log.Warn("orchestrator.refresh error refetching collection",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingCollectionKey, string(collection)),
			zap.Error(err),
		)
	}
}

func (o *orchestrator) publish(ctx context.Context, eventType, userID string, attributes map[string]interface{}) {
	if err := o.Activity.Publish(ctx, activity.NewEvent(eventType, userID, attributes)); err != nil {
		o.Log.Warn("orchestrator.publish failed to publish activity",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}
