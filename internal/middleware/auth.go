package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/trailforge/backend/api/transport"
	"github.com/trailforge/backend/pkg/token"
)

// UserIDKey is the request-scoped key under which the authenticated user id
// is exposed to handlers.
const UserIDKey = "user_id"

const bearerPrefix = "Bearer "

// Auth verifies the bearer token before the wrapped handler runs. Every
// failure answers 401 inside the response envelope; the guard never
// escalates to 500 and never reveals whether a fault was the caller's or
// the server's.
func Auth(tokens *token.Manager, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			header := string(ctx.Request.Header.Peek("Authorization"))
			if header == "" || !strings.HasPrefix(header, bearerPrefix) {
				unauthorized(ctx, "Missing or invalid authorization token")
				return
			}

			userID, err := verify(tokens, strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				if errors.Is(err, token.ErrInvalidToken) {
					logger.Warn("rejected bearer token", zap.Error(err))
					unauthorized(ctx, "Invalid token")
					return
				}
				logger.Error("authentication error", zap.Error(err))
				unauthorized(ctx, "Authentication failed")
				return
			}

			ctx.SetUserValue(UserIDKey, userID)
			next(ctx)
		}
	}
}

// UserID returns the authenticated user id placed on the request by Auth.
func UserID(ctx *fasthttp.RequestCtx) (int, bool) {
	id, ok := ctx.UserValue(UserIDKey).(int)
	return id, ok
}

func verify(tokens *token.Manager, raw string) (userID int, err error) {
	// Verification is pure, but a panic here must stay a 401, not a 500.
	defer func() {
		if r := recover(); r != nil {
			userID = 0
			err = fmt.Errorf("token verification panic: %v", r)
		}
	}()
	return tokens.Verify(strings.TrimSpace(raw))
}

func unauthorized(ctx *fasthttp.RequestCtx, message string) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusUnauthorized)
	body, _ := json.Marshal(transport.NewError(message))
	ctx.SetBody(body)
}
