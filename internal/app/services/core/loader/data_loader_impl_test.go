package loader

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProfiles struct{ err error }

func (f *fakeProfiles) Get(ctx context.Context) (*models.UserRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.UserRecord{UserID: "u1", Name: "Ada"}, nil
}

func (f *fakeProfiles) Update(ctx context.Context, request *requests.UpdateProfile) error {
	return nil
}

// fakeReports serves one report whose id follows the server-side version,
// read before the call blocks.
type fakeReports struct {
	calls   atomic.Int32
	version atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (f *fakeReports) List(ctx context.Context) ([]models.Report, error) {
	f.calls.Add(1)
	reportID := "r" + strconv.Itoa(int(f.version.Load())+1)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return []models.Report{{ReportID: reportID}}, nil
}

func (f *fakeReports) FindByID(ctx context.Context, reportID string) (*models.Report, error) {
	return nil, nil
}

type fakeDoctors struct{ err error }

func (f *fakeDoctors) List(ctx context.Context) ([]models.Doctor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.Doctor{{DoctorID: "d1"}}, nil
}

type fakeAppointments struct{}

func (f *fakeAppointments) List(ctx context.Context) ([]models.Appointment, error) {
	return []models.Appointment{{AppointmentID: "a1"}}, nil
}

func (f *fakeAppointments) Book(ctx context.Context, patientID string, request *requests.BookAppointment) (*models.Appointment, error) {
	return nil, nil
}

type fakeFacilities struct {
	mu         sync.Mutex
	categories []string
}

func (f *fakeFacilities) Fetch(ctx context.Context, coords models.Coordinates, category string) ([]models.Facility, error) {
	return nil, nil
}

func (f *fakeFacilities) Refresh(ctx context.Context, category string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeFacilities) Facilities() []models.Facility { return nil }

func (f *fakeFacilities) Category() string { return constvars.FacilityCategoryAll }

func (f *fakeFacilities) Reset() {}

type fakeLocation struct{ resolved atomic.Int32 }

func (f *fakeLocation) Resolve(ctx context.Context) models.Coordinates {
	f.resolved.Add(1)
	return models.Coordinates{Lat: constvars.FallbackLatitude, Lng: constvars.FallbackLongitude}
}

func (f *fakeLocation) Current(ctx context.Context) models.Coordinates { return f.Resolve(ctx) }

func (f *fakeLocation) Last() (models.Coordinates, bool) { return models.Coordinates{}, false }

func (f *fakeLocation) Reset() {}

type fixture struct {
	profiles   *fakeProfiles
	reports    *fakeReports
	doctors    *fakeDoctors
	facilities *fakeFacilities
	location   *fakeLocation
	loader     contracts.DataLoader
}

func newFixture() *fixture {
	f := &fixture{
		profiles:   &fakeProfiles{},
		reports:    &fakeReports{},
		doctors:    &fakeDoctors{},
		facilities: &fakeFacilities{},
		location:   &fakeLocation{},
	}
	f.loader = NewDataLoader(f.profiles, f.reports, f.doctors, &fakeAppointments{}, f.facilities, f.location, zap.NewNop())
	return f
}

func TestDataLoader_LoadAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Loads Every Collection", func(t *testing.T) {
		f := newFixture()

		require.NoError(t, f.loader.LoadAll(ctx))

		snapshot := f.loader.Snapshot()
		require.NotNil(t, snapshot.Profile)
		assert.Equal(t, "u1", snapshot.Profile.UserID)
		assert.Len(t, snapshot.Reports, 1)
		assert.Len(t, snapshot.Doctors, 1)
		assert.Len(t, snapshot.Appointments, 1)
		assert.Equal(t, int32(1), f.location.resolved.Load())
		assert.Equal(t, []string{constvars.FacilityCategoryAll}, f.facilities.categories)
	})

	t.Run("One Failure Does Not Stop Others", func(t *testing.T) {
		f := newFixture()
		doctorsDown := errors.New("doctors down")
		f.doctors.err = doctorsDown

		err := f.loader.LoadAll(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, doctorsDown)
		snapshot := f.loader.Snapshot()
		assert.Empty(t, snapshot.Doctors)
		assert.Len(t, snapshot.Reports, 1)
		assert.NotNil(t, snapshot.Profile)
	})
}

func TestDataLoader_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Refresh During A Fetch Sees Data Written After It Started", func(t *testing.T) {
		f := newFixture()
		f.reports.started = make(chan struct{}, 2)
		f.reports.release = make(chan struct{})

		eager := make(chan error, 1)
		go func() { eager <- f.loader.Refresh(ctx, contracts.CollectionReports) }()
		<-f.reports.started

		f.reports.version.Store(1)
		refetch := make(chan error, 1)
		go func() { refetch <- f.loader.Refresh(ctx, contracts.CollectionReports) }()
		time.Sleep(50 * time.Millisecond)
		close(f.reports.release)

		require.NoError(t, <-eager)
		require.NoError(t, <-refetch)
		assert.Equal(t, int32(2), f.reports.calls.Load())
		require.Len(t, f.loader.Snapshot().Reports, 1)
		assert.Equal(t, "r2", f.loader.Snapshot().Reports[0].ReportID)
	})

	t.Run("Refreshes During A Fetch Share One Trailing Fetch", func(t *testing.T) {
		f := newFixture()
		f.reports.started = make(chan struct{}, 2)
		f.reports.release = make(chan struct{})

		var wg sync.WaitGroup
		wg.Add(3)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.loader.Refresh(ctx, contracts.CollectionReports))
		}()
		<-f.reports.started
		for i := 0; i < 2; i++ {
			go func() {
				defer wg.Done()
				assert.NoError(t, f.loader.Refresh(ctx, contracts.CollectionReports))
			}()
		}
		time.Sleep(50 * time.Millisecond)
		close(f.reports.release)
		wg.Wait()

		assert.Equal(t, int32(2), f.reports.calls.Load())
		assert.Len(t, f.loader.Snapshot().Reports, 1)
	})

	t.Run("Sequential Refreshes Each Fetch", func(t *testing.T) {
		f := newFixture()

		require.NoError(t, f.loader.Refresh(ctx, contracts.CollectionReports))
		f.reports.version.Store(1)
		require.NoError(t, f.loader.Refresh(ctx, contracts.CollectionReports))

		assert.Equal(t, int32(2), f.reports.calls.Load())
		assert.Equal(t, "r2", f.loader.Snapshot().Reports[0].ReportID)
	})

	t.Run("Reset Discards In Flight Result", func(t *testing.T) {
		f := newFixture()
		f.reports.started = make(chan struct{}, 1)
		f.reports.release = make(chan struct{})

		done := make(chan error, 1)
		go func() { done <- f.loader.Refresh(ctx, contracts.CollectionReports) }()
		<-f.reports.started
		f.loader.Reset()
		close(f.reports.release)

		require.NoError(t, <-done)
		assert.Empty(t, f.loader.Snapshot().Reports)
	})

	t.Run("Unknown Collection", func(t *testing.T) {
		f := newFixture()

		err := f.loader.Refresh(ctx, contracts.Collection("billing"))

		assert.True(t, exceptions.IsValidation(err))
	})
}

func TestDataLoader_Snapshot(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.loader.LoadAll(context.Background()))

	snapshot := f.loader.Snapshot()
	snapshot.Reports[0].ReportID = "changed"
	snapshot.Profile.Name = "changed"

	again := f.loader.Snapshot()
	assert.Equal(t, "r1", again.Reports[0].ReportID)
	assert.Equal(t, "Ada", again.Profile.Name)
}
