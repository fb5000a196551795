package mapview

import (
	"context"
	"errors"
	"sync"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/exceptions"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type MapService struct {
	Gate     *Gate
	Renderer contracts.MapRenderer
	Log      *zap.Logger
}

func NewMapService(gate *Gate, renderer contracts.MapRenderer, logger *zap.Logger) *MapService {
	return &MapService{
		Gate:     gate,
		Renderer: renderer,
		Log:      logger,
	}
}

// InitProvider opens the gate once the provider credential has been checked.
// A missing credential leaves the map unavailable but the rest of the client
// keeps working.
func (s *MapService) InitProvider(ctx context.Context, apiKey string) {
	requestID := utils.RequestIDFromContext(ctx)
	if apiKey == "" {
		s.Log.Warn("MapService.InitProvider map provider credential missing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		s.Gate.Open(exceptions.ErrMapProviderNotConfigured())
		return
	}

	s.Log.Info("MapService.InitProvider map provider ready",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	s.Gate.Open(nil)
}

// RenderFacilities draws the facilities around center after the provider is
// ready. The device position is always the first marker.
func (s *MapService) RenderFacilities(ctx context.Context, center models.Coordinates, facilities []models.Facility) error {
	requestID := utils.RequestIDFromContext(ctx)
	s.Log.Info("MapService.RenderFacilities called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMapMarkerCountKey, len(facilities)+1),
	)

	if err := s.Gate.Wait(ctx); err != nil {
		s.Log.Error("MapService.RenderFacilities map provider unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			return err
		}
		return exceptions.ErrMapProviderFailed(err)
	}

	markers := BuildMarkers(center, facilities)
	if err := s.Renderer.Render(ctx, center, markers); err != nil {
		s.Log.Error("MapService.RenderFacilities error rendering markers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMapProviderFailed(err)
	}

	s.Log.Info("MapService.RenderFacilities succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMapMarkerCountKey, len(markers)),
	)
	return nil
}

func BuildMarkers(center models.Coordinates, facilities []models.Facility) []contracts.MapMarker {
	markers := make([]contracts.MapMarker, 0, len(facilities)+1)
	markers = append(markers, contracts.MapMarker{
		Position: center,
		Title:    constvars.MapMarkerCurrentLocationTitle,
		Kind:     constvars.MapMarkerKindCurrentLocation,
	})
	for _, facility := range facilities {
		markers = append(markers, contracts.MapMarker{
			Position: facility.Coordinates(),
			Title:    facility.Name,
			Kind:     facility.Type,
		})
	}
	return markers
}

// LogRenderer stands in for an interactive map engine. It records the last
// frame so the control API can hand it to the shell.
type LogRenderer struct {
	Log *zap.Logger

	mu      sync.RWMutex
	center  models.Coordinates
	markers []contracts.MapMarker
}

func NewLogRenderer(logger *zap.Logger) *LogRenderer {
	return &LogRenderer{Log: logger}
}

func (r *LogRenderer) Render(ctx context.Context, center models.Coordinates, markers []contracts.MapMarker) error {
	r.mu.Lock()
	r.center = center
	r.markers = append([]contracts.MapMarker(nil), markers...)
	r.mu.Unlock()

	r.Log.Debug("LogRenderer.Render frame",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.Float64(constvars.LoggingLatitudeKey, center.Lat),
		zap.Float64(constvars.LoggingLongitudeKey, center.Lng),
		zap.Int(constvars.LoggingMapMarkerCountKey, len(markers)),
	)
	return nil
}

func (r *LogRenderer) LastFrame() (models.Coordinates, []contracts.MapMarker) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.center, append([]contracts.MapMarker(nil), r.markers...)
}
