package loader

import (
	"context"
	"errors"
	"slices"
	"sync"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/exceptions"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var eagerCollections = []contracts.Collection{
	contracts.CollectionProfile,
	contracts.CollectionReports,
	contracts.CollectionDoctors,
	contracts.CollectionAppointments,
	contracts.CollectionFacilities,
}

type dataLoader struct {
	Profiles     contracts.ProfileService
	Reports      contracts.ReportService
	Doctors      contracts.DoctorService
	Appointments contracts.AppointmentService
	Facilities   contracts.FacilitySync
	Location     contracts.LocationService
	Log          *zap.Logger

	flightMu sync.Mutex
	flights  map[contracts.Collection]*collectionFlights

	mu         sync.RWMutex
	generation uint64
	snapshot   models.Snapshot
}

// flight is one fetch of a collection; done is closed once err is set.
type flight struct {
	done chan struct{}
	err  error
}

// collectionFlights holds the running fetch of a collection and at most one
// queued fetch that starts after it.
type collectionFlights struct {
	current *flight
	next    *flight
}

func NewDataLoader(
	profiles contracts.ProfileService,
	reports contracts.ReportService,
	doctors contracts.DoctorService,
	appointments contracts.AppointmentService,
	facilities contracts.FacilitySync,
	location contracts.LocationService,
	logger *zap.Logger,
) contracts.DataLoader {
	return &dataLoader{
		Profiles:     profiles,
		Reports:      reports,
		Doctors:      doctors,
		Appointments: appointments,
		Facilities:   facilities,
		Location:     location,
		Log:          logger,
		flights:      make(map[contracts.Collection]*collectionFlights),
		snapshot:     emptySnapshot(),
	}
}

// LoadAll fetches every collection concurrently. A failing collection does
// not stop the others; all failures are returned joined.
func (l *dataLoader) LoadAll(ctx context.Context) error {
	ctx = utils.ContextWithRequestID(ctx)
	requestID := utils.RequestIDFromContext(ctx)
	l.Log.Info("dataLoader.LoadAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		group errgroup.Group
		mu    sync.Mutex
		errs  []error
	)
	for _, collection := range eagerCollections {
		group.Go(func() error {
			if err := l.Refresh(ctx, collection); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = group.Wait()

	if err := errors.Join(errs...); err != nil {
		l.Log.Error("dataLoader.LoadAll error loading collections",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingFailedCountKey, len(errs)),
			zap.Error(err),
		)
		return err
	}

	l.Log.Info("dataLoader.LoadAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// Refresh refetches one collection and returns once a fetch that started
// after the call has finished. A refresh arriving while a fetch is running
// queues one trailing fetch, shared by every refresh arriving meanwhile.
func (l *dataLoader) Refresh(ctx context.Context, collection contracts.Collection) error {
	requestID := utils.RequestIDFromContext(ctx)
	l.Log.Info("dataLoader.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, string(collection)),
	)

	if !slices.Contains(eagerCollections, collection) {
		return exceptions.ErrUnknownCollection(string(collection))
	}

	f, shared := l.join(ctx, collection)
	select {
	case <-f.done:
	case <-ctx.Done():
		return exceptions.ErrServerDeadlineExceeded(ctx.Err())
	}

	if f.err != nil {
		l.Log.Error("dataLoader.Refresh error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, string(collection)),
			zap.Error(f.err),
		)
		return f.err
	}

	l.Log.Info("dataLoader.Refresh succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, string(collection)),
		zap.Bool(constvars.LoggingSharedFlightKey, shared),
	)
	return nil
}

// join returns the flight the caller waits on: a new one when the collection
// is idle, otherwise the queued trailing flight.
func (l *dataLoader) join(ctx context.Context, collection contracts.Collection) (*flight, bool) {
	l.flightMu.Lock()
	defer l.flightMu.Unlock()

	state, ok := l.flights[collection]
	if !ok {
		state = &collectionFlights{}
		l.flights[collection] = state
	}

	if state.current == nil {
		state.current = &flight{done: make(chan struct{})}
		go l.run(context.WithoutCancel(ctx), collection, state.current)
		return state.current, false
	}

	shared := state.next != nil
	if !shared {
		state.next = &flight{done: make(chan struct{})}
	}
	return state.next, shared
}

// run executes f and then any trailing flight queued while it was running.
func (l *dataLoader) run(ctx context.Context, collection contracts.Collection, f *flight) {
	for f != nil {
		f.err = l.fetch(ctx, collection, l.currentGeneration())

		l.flightMu.Lock()
		state := l.flights[collection]
		next := state.next
		state.current, state.next = next, nil
		l.flightMu.Unlock()

		close(f.done)
		f = next
	}
}

func (l *dataLoader) fetch(ctx context.Context, collection contracts.Collection, generation uint64) error {
	switch collection {
	case contracts.CollectionProfile:
		profile, err := l.Profiles.Get(ctx)
		if err != nil {
			return err
		}
		l.apply(generation, func(snapshot *models.Snapshot) { snapshot.Profile = profile })
	case contracts.CollectionReports:
		reports, err := l.Reports.List(ctx)
		if err != nil {
			return err
		}
		l.apply(generation, func(snapshot *models.Snapshot) { snapshot.Reports = reports })
	case contracts.CollectionDoctors:
		doctors, err := l.Doctors.List(ctx)
		if err != nil {
			return err
		}
		l.apply(generation, func(snapshot *models.Snapshot) { snapshot.Doctors = doctors })
	case contracts.CollectionAppointments:
		appointments, err := l.Appointments.List(ctx)
		if err != nil {
			return err
		}
		l.apply(generation, func(snapshot *models.Snapshot) { snapshot.Appointments = appointments })
	case contracts.CollectionFacilities:
		l.Location.Resolve(ctx)
		return l.Facilities.Refresh(ctx, l.Facilities.Category())
	default:
		return exceptions.ErrUnknownCollection(string(collection))
	}
	return nil
}

// apply writes into the snapshot unless Reset ran since the fetch started.
func (l *dataLoader) apply(generation uint64, update func(snapshot *models.Snapshot)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if generation != l.generation {
		return
	}
	update(&l.snapshot)
}

func (l *dataLoader) currentGeneration() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.generation
}

func (l *dataLoader) Snapshot() models.Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := models.Snapshot{
		Reports:      append([]models.Report{}, l.snapshot.Reports...),
		Doctors:      append([]models.Doctor{}, l.snapshot.Doctors...),
		Appointments: append([]models.Appointment{}, l.snapshot.Appointments...),
	}
	if l.snapshot.Profile != nil {
		profile := l.snapshot.Profile.Clone()
		snapshot.Profile = &profile
	}
	return snapshot
}

func (l *dataLoader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.generation++
	l.snapshot = emptySnapshot()
}

func emptySnapshot() models.Snapshot {
	return models.Snapshot{
		Reports:      []models.Report{},
		Doctors:      []models.Doctor{},
		Appointments: []models.Appointment{},
	}
}
