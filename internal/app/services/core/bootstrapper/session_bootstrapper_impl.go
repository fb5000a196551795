package bootstrapper

import (
	"context"
	"sync"

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

const (
	pathExchange = "exchange"
	pathRestore  = "restore"
	pathNone     = "none"
)

type sessionBootstrapper struct {
	Gateway  contracts.APIGateway
	Sessions contracts.SessionStore
	Views    contracts.ViewController
	Loader   contracts.DataLoader
	Location contracts.ClientLocation
	Activity contracts.ActivityPublisher
	Log      *zap.Logger

	mu  sync.Mutex
	ran bool
}

func NewSessionBootstrapper(
	gateway contracts.APIGateway,
	sessions contracts.SessionStore,
	views contracts.ViewController,
	loader contracts.DataLoader,
	location contracts.ClientLocation,
	activityPublisher contracts.ActivityPublisher,
	logger *zap.Logger,
) contracts.SessionBootstrapper {
	return &sessionBootstrapper{
		Gateway:  gateway,
		Sessions: sessions,
		Views:    views,
		Loader:   loader,
		Location: location,
		Activity: activityPublisher,
		Log:      logger,
	}
}

// Run resolves the startup session exactly once. An exchange code in the
// location fragment wins over a stored session; the fragment is removed
// whether or not the exchange succeeds.
func (b *sessionBootstrapper) Run(ctx context.Context) error {
	ctx = utils.ContextWithRequestID(ctx)
	requestID := utils.RequestIDFromContext(ctx)

	b.mu.Lock()
	if b.ran {
		b.mu.Unlock()
		return exceptions.ErrAlreadyBootstrapped()
	}
	b.ran = true
	b.mu.Unlock()

	if code, ok := ExchangeCode(b.Location.Href()); ok {
		b.Log.Info("sessionBootstrapper.Run called",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBootstrapPathKey, pathExchange),
		)
		return b.exchange(ctx, code)
	}

	session, err := b.Sessions.Load(ctx)
	if err != nil {
		b.Log.Error("sessionBootstrapper.Run error loading stored session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if session == nil {
		b.Log.Info("sessionBootstrapper.Run called",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBootstrapPathKey, pathNone),
		)
		return nil
	}

	b.Log.Info("sessionBootstrapper.Run called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBootstrapPathKey, pathRestore),
		zap.String(constvars.LoggingUserIDKey, session.User.UserID),
	)
	b.establish(ctx, session, constvars.ActivityEventSessionRestored)
	return b.load(ctx)
}

func (b *sessionBootstrapper) exchange(ctx context.Context, code string) error {
	requestID := utils.RequestIDFromContext(ctx)
	defer b.Location.Replace(StripFragment(b.Location.Href()))

	var response responses.ExchangeSession
	if err := b.Gateway.Post(ctx, constvars.EndpointAuthExchange, &requests.ExchangeSession{SessionID: code}, &response); err != nil {
		b.Log.Error("sessionBootstrapper.exchange error exchanging code",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	session := &models.Session{Token: response.SessionToken, User: response.User}
	if !session.IsValid() {
		b.Log.Error("sessionBootstrapper.exchange received an unusable session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return exceptions.ErrSessionExchange()
	}
	if err := b.Sessions.Save(ctx, session); err != nil {
		b.Log.Error("sessionBootstrapper.exchange error saving session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	b.Log.Info("sessionBootstrapper.exchange succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.User.UserID),
	)
	b.establish(ctx, session, constvars.ActivityEventSessionEstablished)
	return b.load(ctx)
}

func (b *sessionBootstrapper) establish(ctx context.Context, session *models.Session, eventType string) {
	b.Views.Authenticate()
	if err := b.Activity.Publish(ctx, activity.NewEvent(eventType, session.User.UserID, nil)); err != nil {
		b.Log.Warn("sessionBootstrapper.establish failed to publish activity",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}

func (b *sessionBootstrapper) load(ctx context.Context) error {
	if err := b.Loader.LoadAll(ctx); err != nil {
		b.Log.Warn("sessionBootstrapper.load finished with errors",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return err
	}
	return nil
}
