package mapview

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingRenderer struct{}

func (failingRenderer) Render(ctx context.Context, center models.Coordinates, markers []contracts.MapMarker) error {
	return errors.New("tiles unavailable")
}

func TestGate(t *testing.T) {
	t.Run("Wait Blocks Until Open", func(t *testing.T) {
		gate := NewGate()
		assert.False(t, gate.Ready())

		done := make(chan error, 1)
		go func() {
			done <- gate.Wait(context.Background())
		}()

		select {
		case <-done:
			t.Fatal("Wait returned before Open")
		case <-time.After(20 * time.Millisecond):
		}

		gate.Open(nil)

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("Wait did not return after Open")
		}
		assert.True(t, gate.Ready())
	})

	t.Run("First Open Wins", func(t *testing.T) {
		gate := NewGate()
		gate.Open(errors.New("script failed"))
		gate.Open(nil)

		assert.False(t, gate.Ready())
		assert.EqualError(t, gate.Wait(context.Background()), "script failed")
	})

	t.Run("Wait Honors Context", func(t *testing.T) {
		gate := NewGate()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		assert.ErrorIs(t, gate.Wait(ctx), context.DeadlineExceeded)
	})
}

func TestMapService_RenderFacilities(t *testing.T) {
	ctx := context.Background()
	center := models.Coordinates{Lat: 40.7128, Lng: -74.0060}
	facilities := []models.Facility{
		{FacilityID: "f1", Name: "City Hospital", Type: constvars.FacilityCategoryHospital, Lat: 40.71, Lng: -74.01},
		{FacilityID: "f2", Name: "Corner Pharmacy", Type: constvars.FacilityCategoryPharmacy, Lat: 40.72, Lng: -74.00},
	}

	t.Run("Renders After Provider Ready", func(t *testing.T) {
		renderer := NewLogRenderer(zap.NewNop())
		service := NewMapService(NewGate(), renderer, zap.NewNop())
		service.InitProvider(ctx, "map-key")

		err := service.RenderFacilities(ctx, center, facilities)

		require.NoError(t, err)
		gotCenter, markers := renderer.LastFrame()
		assert.Equal(t, center, gotCenter)
		require.Len(t, markers, 3)
		assert.Equal(t, constvars.MapMarkerKindCurrentLocation, markers[0].Kind)
		assert.Equal(t, "City Hospital", markers[1].Title)
		assert.Equal(t, models.Coordinates{Lat: 40.72, Lng: -74.00}, markers[2].Position)
	})

	t.Run("Missing Credential Makes Map Unavailable", func(t *testing.T) {
		renderer := NewLogRenderer(zap.NewNop())
		service := NewMapService(NewGate(), renderer, zap.NewNop())
		service.InitProvider(ctx, "")

		err := service.RenderFacilities(ctx, center, facilities)

		assert.Error(t, err)
		_, markers := renderer.LastFrame()
		assert.Empty(t, markers)
	})

	t.Run("Renderer Failure Is Returned", func(t *testing.T) {
		service := NewMapService(NewGate(), failingRenderer{}, zap.NewNop())
		service.InitProvider(ctx, "map-key")

		assert.Error(t, service.RenderFacilities(ctx, center, facilities))
	})

	t.Run("Wrapped Provider Error Keeps Its Classification", func(t *testing.T) {
		gate := NewGate()
		gate.Open(fmt.Errorf("loading map script: %w", exceptions.ErrMapProviderNotConfigured()))
		service := NewMapService(gate, NewLogRenderer(zap.NewNop()), zap.NewNop())

		err := service.RenderFacilities(ctx, center, facilities)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrDevMapProviderNotConfigured, customErr.DevMessage)
	})
}
