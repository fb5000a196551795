package location

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"healthease-client/internal/app/config"
	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/exceptions"

	"github.com/tidwall/gjson"
)

type staticGeolocator struct {
	Coordinates models.Coordinates
}

// NewStaticGeolocator reports a fixed device position.
func NewStaticGeolocator(coords models.Coordinates) contracts.Geolocator {
	return &staticGeolocator{Coordinates: coords}
}

func (g *staticGeolocator) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinates{}, exceptions.ErrLocationUnavailable(err)
	}
	return g.Coordinates, nil
}

type ipGeolocator struct {
	LookupUrl string
	Client    *http.Client
}

// NewIPGeolocator estimates the position from the public address of the
// machine. The lookup service answers {"lat": .., "lon": ..}.
func NewIPGeolocator(lookupUrl string, timeout time.Duration) contracts.Geolocator {
	return &ipGeolocator{
		LookupUrl: lookupUrl,
		Client:    &http.Client{Timeout: timeout},
	}
}

func (g *ipGeolocator) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, g.LookupUrl, nil)
	if err != nil {
		return models.Coordinates{}, exceptions.ErrLocationUnavailable(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := g.Client.Do(req)
	if err != nil {
		return models.Coordinates{}, exceptions.ErrLocationUnavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return models.Coordinates{}, exceptions.ErrLocationUnavailable(errors.New(resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Coordinates{}, exceptions.ErrLocationUnavailable(err)
	}

	lat := gjson.GetBytes(body, "lat")
	lon := gjson.GetBytes(body, "lon")
	if lat.Type != gjson.Number || lon.Type != gjson.Number {
		return models.Coordinates{}, exceptions.ErrLocationUnavailable(errors.New(constvars.ErrDevLocationUnavailable))
	}

	return models.Coordinates{Lat: lat.Float(), Lng: lon.Float()}, nil
}

type unsupportedGeolocator struct{}

// NewUnsupportedGeolocator is used when the platform has no location source.
func NewUnsupportedGeolocator() contracts.Geolocator {
	return unsupportedGeolocator{}
}

func (unsupportedGeolocator) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	return models.Coordinates{}, exceptions.ErrLocationUnavailable(errors.New(constvars.ErrDevGeolocatorUnsupported))
}

// NewGeolocator picks the geolocator named by the location config.
func NewGeolocator(internalConfig *config.InternalConfig) contracts.Geolocator {
	switch internalConfig.Location.Driver {
	case constvars.GeolocatorDriverStatic:
		return NewStaticGeolocator(models.Coordinates{
			Lat: internalConfig.Location.DeviceLatitude,
			Lng: internalConfig.Location.DeviceLongitude,
		})
	case constvars.GeolocatorDriverIP:
		return NewIPGeolocator(
			internalConfig.Location.LookupUrl,
			time.Duration(internalConfig.Location.TimeoutInSeconds)*time.Second,
		)
	default:
		return NewUnsupportedGeolocator()
	}
}
