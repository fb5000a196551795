package orchestrator

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/app/services/core/appointments"
	"healthease-client/internal/app/services/core/doctors"
	"healthease-client/internal/app/services/core/emergency"
	"healthease-client/internal/app/services/core/facilities"
	"healthease-client/internal/app/services/core/loader"
	"healthease-client/internal/app/services/core/medicines"
	"healthease-client/internal/app/services/core/profile"
	"healthease-client/internal/app/services/core/reports"
	"healthease-client/internal/app/services/core/uploads"
	"healthease-client/internal/app/services/core/views"
	"healthease-client/internal/app/services/shared/gateway/gatewaytest"
	"healthease-client/internal/app/services/shared/location"
	"healthease-client/internal/app/services/shared/mapview"
	"healthease-client/internal/app/services/shared/storage"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(ctx context.Context, event *models.ActivityEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event.Type)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) Events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

type harness struct {
	api      *gatewaytest.FakeAPI
	sessions contracts.SessionStore
	views    contracts.ViewController
	loader   contracts.DataLoader
	location contracts.LocationService
	renderer *mapview.LogRenderer
	activity *recordingPublisher
	app      contracts.Orchestrator
}

var device = models.Coordinates{Lat: 51.5074, Lng: -0.1278}

func newHarness(t *testing.T) *harness {
	logger := zap.NewNop()
	api := gatewaytest.NewFakeAPI(t)
	gw, sessions := gatewaytest.NewGateway(t, api)

	locationService := location.NewLocationService(location.NewStaticGeolocator(device), models.Coordinates{Lat: constvars.FallbackLatitude, Lng: constvars.FallbackLongitude}, logger)
	facilitySync := facilities.NewFacilitySync(gw, locationService, constvars.FacilityCategoryAll, logger)
	profileService := profile.NewProfileService(gw, logger)
	reportService := reports.NewReportService(gw, logger)
	appointmentService := appointments.NewAppointmentService(gw, logger)
	dataLoader := loader.NewDataLoader(profileService, reportService, doctors.NewDoctorService(gw, logger), appointmentService, facilitySync, locationService, logger)

	gate := mapview.NewGate()
	renderer := mapview.NewLogRenderer(logger)
	mapService := mapview.NewMapService(gate, renderer, logger)
	mapService.InitProvider(context.Background(), "test-key")

	h := &harness{
		api:      api,
		sessions: sessions,
		views:    views.NewViewController(logger),
		loader:   dataLoader,
		location: locationService,
		renderer: renderer,
		activity: &recordingPublisher{},
	}
	h.app = NewOrchestrator(Services{
		Gateway:      gw,
		Sessions:     sessions,
		Views:        h.views,
		Loader:       dataLoader,
		Location:     locationService,
		Facilities:   facilitySync,
		Map:          mapService,
		Uploads:      uploads.NewUploadPipeline(gw, logger),
		Files:        storage.NewFileResolver(nil, "", logger),
		Reports:      reportService,
		Appointments: appointmentService,
		Emergency:    emergency.NewEmergencyService(gw, logger),
		Medicines:    medicines.NewMedicineService(gw, logger),
		Editor:       profile.NewEditor(profileService, logger),
		Activity:     h.activity,
	}, logger)
	return h
}

func (h *harness) login(t *testing.T) {
	gatewaytest.SaveSession(t, h.sessions, "tok-1", "u1")
	h.views.Authenticate()
}

func validBooking() *requests.BookAppointment {
	return &requests.BookAppointment{DoctorID: "d1", Date: "2025-01-15", Time: "10:00", Type: constvars.AppointmentTypeOnline}
}

func TestOrchestrator_AuthExpiry(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejected Session Ends At Home With Nothing Stored", func(t *testing.T) {
		h := newHarness(t)
		h.login(t)
		require.NoError(t, h.views.Navigate(models.ViewAppointments))
		h.api.JSON(constvars.MethodPost, constvars.EndpointAppointments, http.StatusUnauthorized, `{"detail":"Session expired"}`)

		_, err := h.app.BookAppointment(ctx, validBooking())

		require.Error(t, err)
		assert.True(t, exceptions.IsAuthExpired(err))
		assert.Nil(t, h.sessions.Current())
		stored, loadErr := h.sessions.Load(ctx)
		require.NoError(t, loadErr)
		assert.Nil(t, stored)
		assert.Equal(t, models.ViewHome, h.views.Current())
		assert.False(t, h.views.IsAuthenticated())
		assert.Empty(t, h.app.Collections().Appointments)
		assert.Contains(t, h.activity.Events(), constvars.ActivityEventSessionExpired)
	})

	t.Run("Rejected Session Forgets Facilities And Location", func(t *testing.T) {
		h := newHarness(t)
		h.login(t)
		h.api.JSON(constvars.MethodGet, constvars.EndpointNearbyFacilities, http.StatusOK, `{"facilities":[{"facility_id":"p1","name":"Corner Pharmacy","type":"pharmacy"}]}`)
		_, err := h.app.FilterFacilities(ctx, constvars.FacilityCategoryPharmacy)
		require.NoError(t, err)
		h.api.JSON(constvars.MethodPost, constvars.EndpointAppointments, http.StatusUnauthorized, `{"detail":"Session expired"}`)

		_, err = h.app.BookAppointment(ctx, validBooking())
		require.True(t, exceptions.IsAuthExpired(err))

		state := h.app.State(ctx)
		assert.False(t, state.Authenticated)
		assert.Nil(t, state.Location)
		assert.Empty(t, state.Facilities)
		assert.Equal(t, constvars.FacilityCategoryAll, state.FacilityCategory)
	})

	t.Run("Logout Clears Everything", func(t *testing.T) {
		h := newHarness(t)
		h.login(t)

		h.location.Resolve(ctx)

		require.NoError(t, h.app.Logout(ctx))

		assert.Nil(t, h.sessions.Current())
		assert.Equal(t, models.ViewHome, h.views.Current())
		_, located := h.location.Last()
		assert.False(t, located)
		assert.Equal(t, []string{constvars.ActivityEventSessionLoggedOut}, h.activity.Events())
	})

	t.Run("Actions Need A Session", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.app.BookAppointment(ctx, validBooking())

		assert.Equal(t, http.StatusUnauthorized, exceptions.StatusCodeOf(err))
		assert.Empty(t, h.api.Requests(constvars.MethodPost, constvars.EndpointAppointments))
	})
}

func TestOrchestrator_BookAppointment(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.api.JSON(constvars.MethodPost, constvars.EndpointAppointments, http.StatusOK, `{"appointment_id":"a9","message":"Appointment booked successfully","appointment":{"appointment_id":"a9","doctor_id":"d1","patient_id":"u1","date":"2025-01-15","time":"10:00","type":"online","status":"scheduled"}}`)
	h.api.JSON(constvars.MethodGet, constvars.EndpointAppointments, http.StatusOK, `{"appointments":[{"appointment_id":"a9","doctor_id":"d1","patient_id":"u1","status":"scheduled"}]}`)

	appointment, err := h.app.BookAppointment(context.Background(), validBooking())

	require.NoError(t, err)
	assert.Equal(t, "a9", appointment.AppointmentID)

	posted := h.api.Requests(constvars.MethodPost, constvars.EndpointAppointments)
	require.Len(t, posted, 1)
	var payload requests.AppointmentPayload
	require.NoError(t, json.Unmarshal(posted[0].Body, &payload))
	assert.Equal(t, "u1", payload.PatientID)

	booked := h.app.Collections().Appointments
	require.Len(t, booked, 1)
	assert.Equal(t, "d1", booked[0].DoctorID)
	assert.Contains(t, h.activity.Events(), constvars.ActivityEventAppointmentBooked)
}

func TestOrchestrator_UploadReports(t *testing.T) {
	ctx := context.Background()

	t.Run("Refetches Reports After Upload", func(t *testing.T) {
		h := newHarness(t)
		h.login(t)
		dir := t.TempDir()
		first := filepath.Join(dir, "blood.pdf")
		second := filepath.Join(dir, "xray.png")
		require.NoError(t, os.WriteFile(first, []byte("%PDF-1.4 glucose 99"), 0o600))
		require.NoError(t, os.WriteFile(second, []byte("png"), 0o600))
		h.api.JSON(constvars.MethodPost, constvars.EndpointReportsUpload, http.StatusOK, `{"results":[{"report_id":"r1","filename":"blood.pdf","confidence_score":0.92,"success":true},{"filename":"xray.png","error":"Unsupported image","success":false}]}`)
		h.api.JSON(constvars.MethodGet, constvars.EndpointReports, http.StatusOK, `{"reports":[{"report_id":"r1","filename":"blood.pdf","confidence_score":0.92}]}`)

		results, err := h.app.UploadReports(ctx, &requests.UploadReports{Files: []requests.UploadFileRef{{Path: first}, {Path: second}}})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.False(t, results[0].Failed())
		assert.True(t, results[1].Failed())
		assert.Len(t, h.api.Requests(constvars.MethodGet, constvars.EndpointReports), 1)
		assert.Len(t, h.app.Collections().Reports, 1)
		assert.False(t, h.app.UploadProgress().InProgress)
	})

	t.Run("Empty Batch Is Rejected", func(t *testing.T) {
		h := newHarness(t)
		h.login(t)

		_, err := h.app.UploadReports(ctx, &requests.UploadReports{})

		assert.True(t, exceptions.IsValidation(err))
		assert.Empty(t, h.api.Requests(constvars.MethodPost, constvars.EndpointReportsUpload))
	})
}

func TestOrchestrator_ProfileEdit(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.login(t)

	draft, err := h.app.BeginProfileEdit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", draft.UserID)

	name := "Grace"
	updated, err := h.app.UpdateProfileDraft(ctx, &requests.ProfileDraftPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Grace", updated.Name)
	assert.NotEqual(t, "Grace", h.sessions.Current().User.Name)

	h.api.JSON(constvars.MethodPut, constvars.EndpointProfile, http.StatusInternalServerError, `{"detail":"database unavailable"}`)
	_, err = h.app.CommitProfile(ctx)
	require.Error(t, err)
	assert.NotEqual(t, "Grace", h.sessions.Current().User.Name)
	assert.True(t, h.app.State(ctx).ProfileDraft)

	h.api.JSON(constvars.MethodPut, constvars.EndpointProfile, http.StatusOK, `{"message":"Profile updated successfully"}`)
	h.api.JSON(constvars.MethodGet, constvars.EndpointProfile, http.StatusOK, `{"user_id":"u1","email":"u1@example.com","name":"Grace","profile":{}}`)
	saved, err := h.app.CommitProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Grace", saved.Name)
	assert.Equal(t, "Grace", h.sessions.Current().User.Name)
	assert.False(t, h.app.State(ctx).ProfileDraft)
}

func TestOrchestrator_TriggerSOS(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.login(t)
	h.location.Resolve(ctx)
	h.api.JSON(constvars.MethodPost, constvars.EndpointSOS, http.StatusOK, `{"sos_id":"s1","message":"Emergency alert sent","status":"active"}`)

	alert, err := h.app.TriggerSOS(ctx, &requests.TriggerSOS{EmergencyType: "medical"})

	require.NoError(t, err)
	assert.Equal(t, "s1", alert.SOSID)
	posted := h.api.Requests(constvars.MethodPost, constvars.EndpointSOS)
	require.Len(t, posted, 1)
	var payload requests.SOSPayload
	require.NoError(t, json.Unmarshal(posted[0].Body, &payload))
	assert.Equal(t, device, payload.Location)
	assert.Equal(t, "u1", payload.PatientID)
}

func TestOrchestrator_Navigation(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(h.app.Navigate(ctx, "settings")))
	assert.Error(t, h.app.Navigate(ctx, string(models.ViewReports)))

	h.login(t)
	require.NoError(t, h.app.Navigate(ctx, string(models.ViewMap)))

	state := h.app.State(ctx)
	assert.Equal(t, models.ViewMap, state.View)
	assert.True(t, state.Authenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, "u1", state.User.UserID)
	assert.Equal(t, constvars.FacilityCategoryAll, state.FacilityCategory)
}

func TestOrchestrator_FacilitiesAndMap(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.login(t)
	h.api.JSON(constvars.MethodGet, constvars.EndpointNearbyFacilities, http.StatusOK, `{"facilities":[{"facility_id":"p1","name":"Corner Pharmacy","type":"pharmacy","lat":51.5,"lng":-0.12}]}`)

	found, err := h.app.FilterFacilities(ctx, constvars.FacilityCategoryPharmacy)
	require.NoError(t, err)
	require.Len(t, found, 1)

	listed, category := h.app.NearbyFacilities()
	assert.Len(t, listed, 1)
	assert.Equal(t, constvars.FacilityCategoryPharmacy, category)

	require.NoError(t, h.app.RenderMap(ctx))
	center, markers := h.renderer.LastFrame()
	assert.Equal(t, device, center)
	require.Len(t, markers, 2)
	assert.Equal(t, constvars.MapMarkerKindCurrentLocation, markers[0].Kind)
}
