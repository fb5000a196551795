package profile

import (
	"context"
	"sync"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/exceptions"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

// Editor buffers profile edits. The authoritative user record is never
// touched; Commit hands back the saved record for the caller to adopt.
type Editor struct {
	Service contracts.ProfileService
	Log     *zap.Logger

	mu    sync.Mutex
	draft *models.UserRecord
}

func NewEditor(service contracts.ProfileService, logger *zap.Logger) *Editor {
	return &Editor{
		Service: service,
		Log:     logger,
	}
}

// Begin opens a draft from user, discarding any previous one.
func (e *Editor) Begin(user models.UserRecord) {
	draft := user.Clone()
	e.mu.Lock()
	e.draft = &draft
	e.mu.Unlock()
}

func (e *Editor) Apply(patch *requests.ProfileDraftPatch) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.draft == nil {
		return exceptions.ErrNoProfileDraft()
	}

	if patch.Name != nil {
		e.draft.Name = *patch.Name
	}
	if patch.Age != nil {
		age := *patch.Age
		e.draft.Profile.Age = &age
	}
	if patch.Gender != nil {
		gender := *patch.Gender
		e.draft.Profile.Gender = &gender
	}
	if patch.BloodGroup != nil {
		bloodGroup := *patch.BloodGroup
		e.draft.Profile.BloodGroup = &bloodGroup
	}
	if patch.Phone != nil {
		phone := *patch.Phone
		e.draft.Profile.Phone = &phone
	}
	if patch.MedicalHistory != nil {
		e.draft.Profile.MedicalHistory = append([]string(nil), patch.MedicalHistory...)
	}
	if patch.Allergies != nil {
		e.draft.Profile.Allergies = append([]string(nil), patch.Allergies...)
	}
	if patch.EmergencyContacts != nil {
		e.draft.Profile.EmergencyContacts = append([]models.EmergencyContact(nil), (*patch.EmergencyContacts)...)
	}
	return nil
}

func (e *Editor) Draft() (models.UserRecord, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.draft == nil {
		return models.UserRecord{}, false
	}
	return e.draft.Clone(), true
}

// Commit saves the draft. On failure the draft stays open so the user can
// retry or cancel.
func (e *Editor) Commit(ctx context.Context) (*models.UserRecord, error) {
	requestID := utils.RequestIDFromContext(ctx)

	draft, ok := e.Draft()
	if !ok {
		return nil, exceptions.ErrNoProfileDraft()
	}

	e.Log.Info("Editor.Commit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, draft.UserID),
	)

	request := &requests.UpdateProfile{
		Name:              draft.Name,
		Email:             draft.Email,
		Age:               draft.Profile.Age,
		Gender:            draft.Profile.Gender,
		BloodGroup:        draft.Profile.BloodGroup,
		Phone:             draft.Profile.Phone,
		MedicalHistory:    nonNilStrings(draft.Profile.MedicalHistory),
		Allergies:         nonNilStrings(draft.Profile.Allergies),
		EmergencyContacts: draft.Profile.EmergencyContacts,
	}
	if request.EmergencyContacts == nil {
		request.EmergencyContacts = []models.EmergencyContact{}
	}

	if err := e.Service.Update(ctx, request); err != nil {
		e.Log.Error("Editor.Commit error saving draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	e.Cancel()

	e.Log.Info("Editor.Commit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, draft.UserID),
	)
	return &draft, nil
}

func (e *Editor) Cancel() {
	e.mu.Lock()
	e.draft = nil
	e.mu.Unlock()
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
