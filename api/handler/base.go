package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/trailforge/backend/api/transport"
	"github.com/trailforge/backend/domain"
	"github.com/trailforge/backend/pkg/httpcontext"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	h.respondJSON(ctx, status, transport.NewSuccess(data))
}

func (h baseHandler) respondInvalid(ctx *fasthttp.RequestCtx, message string) {
	h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(message))
}

// respondError normalizes any handler error into the envelope. Expected
// failures keep their precise message and status; everything else is logged
// in full and surfaced only as the generic internal error.
func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, err error) {
	var dErr *domain.Error
	if errors.As(err, &dErr) && dErr.Code != domain.ErrCodeInternal {
		h.respondJSON(ctx, statusFor(dErr.Code), transport.NewError(dErr.Message))
		return
	}

	h.logger.Error("unhandled handler error",
		zap.ByteString("path", ctx.Path()),
		zap.ByteString("method", ctx.Method()),
		zap.Error(err),
	)
	h.respondJSON(ctx, http.StatusInternalServerError, transport.NewError(transport.InternalErrorMessage))
}

func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case domain.ErrCodeInvalid:
		return http.StatusBadRequest
	case domain.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// parseIntID parses a path or query identifier. The empty check and the
// parse failure carry different messages, so both are surfaced by callers.
func parseIntID(raw string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return id, true
}

// coerceID handles body identifiers that arrive either as JSON numbers or
// as numeric strings.
func coerceID(value interface{}) (int, bool) {
	switch v := value.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	case string:
		return parseIntID(v)
	case json.Number:
		id, err := strconv.Atoi(v.String())
		return id, err == nil
	default:
		return 0, false
	}
}
