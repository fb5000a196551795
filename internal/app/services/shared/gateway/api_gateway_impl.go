package gateway

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"healthease-client/internal/app/config"
	"healthease-client/internal/app/contracts"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/exceptions"
	"healthease-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type apiGateway struct {
	BaseUrl  string
	Client   *http.Client
	Limiter  *rate.Limiter
	Sessions contracts.SessionStore
	Log      *zap.Logger

	hooksMu sync.RWMutex
	hooks   []contracts.AuthExpiredHook
}

// NewAPIGateway returns the single entry point for remote API calls. It reads
// the session token from sessions and clears it when the API answers 401.
func NewAPIGateway(internalConfig *config.InternalConfig, sessions contracts.SessionStore, logger *zap.Logger) contracts.APIGateway {
	limit := rate.Inf
	if internalConfig.API.MaxRequestsPerSecond > 0 {
		limit = rate.Limit(internalConfig.API.MaxRequestsPerSecond)
	}
	burst := internalConfig.API.MaxBurst
	if burst <= 0 {
		burst = 1
	}

	return &apiGateway{
		BaseUrl: strings.TrimRight(internalConfig.API.BaseUrl, "/"),
		Client: &http.Client{
			Timeout: time.Duration(internalConfig.API.RequestTimeoutInSeconds) * time.Second,
		},
		Limiter:  rate.NewLimiter(limit, burst),
		Sessions: sessions,
		Log:      logger,
	}
}

func (g *apiGateway) OnAuthExpired(hook contracts.AuthExpiredHook) {
	if hook == nil {
		return
	}
	g.hooksMu.Lock()
	g.hooks = append(g.hooks, hook)
	g.hooksMu.Unlock()
}

func (g *apiGateway) Get(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	return g.Call(ctx, &contracts.APIRequest{
		Method:   constvars.MethodGet,
		Endpoint: endpoint,
		Query:    query,
	}, out)
}

func (g *apiGateway) Post(ctx context.Context, endpoint string, body interface{}, out interface{}) error {
	return g.Call(ctx, &contracts.APIRequest{
		Method:   constvars.MethodPost,
		Endpoint: endpoint,
		Body:     body,
	}, out)
}

func (g *apiGateway) Put(ctx context.Context, endpoint string, body interface{}, out interface{}) error {
	return g.Call(ctx, &contracts.APIRequest{
		Method:   constvars.MethodPut,
		Endpoint: endpoint,
		Body:     body,
	}, out)
}

func (g *apiGateway) Call(ctx context.Context, request *contracts.APIRequest, out interface{}) error {
	requestID := utils.RequestIDFromContext(ctx)
	startTime := time.Now()

	g.Log.Info("apiGateway.Call called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, request.Method),
		zap.String(constvars.LoggingEndpointKey, request.Endpoint),
	)

	if err := g.Limiter.Wait(ctx); err != nil {
		g.Log.Error("apiGateway.Call error waiting for rate limiter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRateLimiterWait(err)
	}

	req, err := g.buildRequest(ctx, request, requestID)
	if err != nil {
		return err
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		g.Log.Error("apiGateway.Call error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, request.Endpoint),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrReadHTTPResponse(err)
	}

	g.Log.Info("apiGateway.Call received response",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, request.Endpoint),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(startTime)),
	)

	if resp.StatusCode == constvars.StatusUnauthorized {
		message := extractErrorMessage(body, resp.StatusCode)
		g.expireSession(ctx, requestID)
		return exceptions.ErrAuthExpired(message, request.Method, request.Endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := extractErrorMessage(body, resp.StatusCode)
		g.Log.Error("apiGateway.Call remote API returned error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, request.Endpoint),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingErrorMessageKey, message),
		)
		return exceptions.ErrAPIResponse(resp.StatusCode, message, request.Method, request.Endpoint)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		g.Log.Error("apiGateway.Call error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, request.Endpoint),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, request.Endpoint)
	}

	g.Log.Info("apiGateway.Call succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, request.Endpoint),
	)
	return nil
}

func (g *apiGateway) buildRequest(ctx context.Context, request *contracts.APIRequest, requestID string) (*http.Request, error) {
	target := g.BaseUrl + request.Endpoint
	if len(request.Query) > 0 {
		target += "?" + request.Query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case request.RawBody != nil:
		body = request.RawBody
		contentType = request.ContentType
	case request.Body != nil:
		requestJSON, err := json.Marshal(request.Body)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(requestJSON)
		contentType = constvars.MIMEApplicationJSON
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, target, body)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if request.RawBody != nil && request.ContentLength > 0 {
		req.ContentLength = request.ContentLength
	}

	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXRequestID, requestID)
	if contentType != "" {
		req.Header.Set(constvars.HeaderContentType, contentType)
	}
	if token := g.Sessions.Token(); token != "" {
		req.Header.Set(constvars.HeaderXSessionID, token)
	}
	for key, value := range request.Headers {
		req.Header.Set(key, value)
	}

	return req, nil
}

// expireSession clears the stored session and runs every hook before the
// caller sees the failure.
func (g *apiGateway) expireSession(ctx context.Context, requestID string) {
	g.Log.Warn("apiGateway.Call session rejected by remote API",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := g.Sessions.Clear(ctx); err != nil {
		g.Log.Error("apiGateway.Call error clearing rejected session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	g.hooksMu.RLock()
	hooks := append([]contracts.AuthExpiredHook(nil), g.hooks...)
	g.hooksMu.RUnlock()

	for _, hook := range hooks {
		hook(ctx)
	}
}

// extractErrorMessage reads the human readable message from an error body.
// The API answers {"detail": "..."}, validation failures carry a list of
// {"msg": "..."} under detail, and some proxies answer {"message": "..."}.
func extractErrorMessage(body []byte, statusCode int) string {
	if gjson.ValidBytes(body) {
		detail := gjson.GetBytes(body, "detail")
		switch {
		case detail.Type == gjson.String && detail.String() != "":
			return detail.String()
		case detail.IsArray():
			if msg := detail.Get("0.msg"); msg.Exists() {
				return msg.String()
			}
		}

		if message := gjson.GetBytes(body, "message"); message.Type == gjson.String && message.String() != "" {
			return message.String()
		}
	}

	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return constvars.ErrClientCannotProcessRequest
}
