package location

import (
	"context"
	"sync"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type locationService struct {
	Geolocator contracts.Geolocator
	Fallback   models.Coordinates
	Log        *zap.Logger

	mu       sync.RWMutex
	epoch    uint64
	last     models.Coordinates
	resolved bool
}

// NewLocationService never fails: when geolocator cannot produce a position
// the fallback coordinate is used instead.
func NewLocationService(geolocator contracts.Geolocator, fallback models.Coordinates, logger *zap.Logger) contracts.LocationService {
	return &locationService{
		Geolocator: geolocator,
		Fallback:   fallback,
		Log:        logger,
	}
}

func (s *locationService) Resolve(ctx context.Context) models.Coordinates {
	requestID := utils.RequestIDFromContext(ctx)
	s.Log.Info("locationService.Resolve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	s.mu.RLock()
	epoch := s.epoch
	s.mu.RUnlock()

	coords, err := s.Geolocator.CurrentPosition(ctx)
	if err != nil {
		s.Log.Warn("locationService.Resolve geolocator failed, using fallback coordinate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Float64(constvars.LoggingLatitudeKey, s.Fallback.Lat),
			zap.Float64(constvars.LoggingLongitudeKey, s.Fallback.Lng),
			zap.Error(err),
		)
		coords = s.Fallback
	}

	s.mu.Lock()
	if epoch == s.epoch {
		s.last = coords
		s.resolved = true
	}
	s.mu.Unlock()

	s.Log.Info("locationService.Resolve succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Float64(constvars.LoggingLatitudeKey, coords.Lat),
		zap.Float64(constvars.LoggingLongitudeKey, coords.Lng),
	)
	return coords
}

// Current returns the last resolved coordinate, resolving first when there is
// none yet.
func (s *locationService) Current(ctx context.Context) models.Coordinates {
	if coords, ok := s.Last(); ok {
		return coords
	}
	return s.Resolve(ctx)
}

func (s *locationService) Last() (models.Coordinates, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.resolved
}

// Reset forgets the last position. A Resolve that started before Reset does
// not record its result.
func (s *locationService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.last = models.Coordinates{}
	s.resolved = false
}
