package facilities

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/dto/responses"
	"healthease-client/internal/pkg/exceptions"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type facilitySync struct {
	Gateway  contracts.APIGateway
	Location contracts.LocationService
	Log      *zap.Logger

	defaultCategory string

	mu         sync.RWMutex
	sequence   uint64
	category   string
	facilities []models.Facility
}

// NewFacilitySync keeps the nearby facility list for the current filter.
// Only the response to the most recent Refresh is ever applied.
func NewFacilitySync(gateway contracts.APIGateway, location contracts.LocationService, defaultCategory string, logger *zap.Logger) contracts.FacilitySync {
	if defaultCategory == "" {
		defaultCategory = constvars.FacilityCategoryAll
	}
	return &facilitySync{
		Gateway:    gateway,
		Location:   location,
		Log:        logger,

		defaultCategory: defaultCategory,
		category:        defaultCategory,
		facilities:      []models.Facility{},
	}
}

func (s *facilitySync) Fetch(ctx context.Context, coords models.Coordinates, category string) ([]models.Facility, error) {
	requestID := utils.RequestIDFromContext(ctx)
	s.Log.Info("facilitySync.Fetch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCategoryKey, category),
		zap.Float64(constvars.LoggingLatitudeKey, coords.Lat),
		zap.Float64(constvars.LoggingLongitudeKey, coords.Lng),
	)

	if err := utils.ValidateStruct(&requests.FacilityFilter{Type: category}); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	query := url.Values{}
	query.Set(constvars.QueryParamLatitude, strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	query.Set(constvars.QueryParamLongitude, strconv.FormatFloat(coords.Lng, 'f', -1, 64))
	query.Set(constvars.QueryParamType, category)

	var response responses.FacilityList
	if err := s.Gateway.Get(ctx, constvars.EndpointNearbyFacilities, query, &response); err != nil {
		s.Log.Error("facilitySync.Fetch error fetching facilities",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	facilities := response.Facilities
	if facilities == nil {
		facilities = []models.Facility{}
	}

	s.Log.Info("facilitySync.Fetch succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(facilities)),
	)
	return facilities, nil
}

// Refresh switches the filter to category and refetches around the last
// resolved position. A response that arrives after a newer Refresh started
// is dropped.
func (s *facilitySync) Refresh(ctx context.Context, category string) error {
	requestID := utils.RequestIDFromContext(ctx)

	if err := utils.ValidateStruct(&requests.FacilityFilter{Type: category}); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	s.mu.Lock()
	s.sequence++
	sequence := s.sequence
	s.category = category
	s.mu.Unlock()

	coords := s.Location.Current(ctx)

	facilities, err := s.Fetch(ctx, coords, category)

	s.mu.Lock()
	defer s.mu.Unlock()

	if sequence != s.sequence {
		s.Log.Info("facilitySync.Refresh dropping superseded response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Uint64(constvars.LoggingSequenceKey, sequence),
			zap.Uint64(constvars.LoggingLatestSequenceKey, s.sequence),
		)
		return nil
	}
	if err != nil {
		return err
	}

	s.facilities = facilities
	return nil
}

func (s *facilitySync) Facilities() []models.Facility {
	s.mu.RLock()
	defer s.mu.RUnlock()
	facilities := make([]models.Facility, len(s.facilities))
	copy(facilities, s.facilities)
	return facilities
}

func (s *facilitySync) Category() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.category
}

// Reset empties the list and restores the default filter. A Refresh still in
// flight is treated as superseded.
func (s *facilitySync) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sequence++
	s.category = s.defaultCategory
	s.facilities = []models.Facility{}
}
