package middleware

import (
	"encoding/json"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/trailforge/backend/api/transport"
)

// Recover is the outermost pipeline stage. A panic anywhere below it is
// logged with full detail and surfaced as the generic internal error
// envelope; no fault text crosses the trust boundary.
func Recover(logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("unhandled panic",
						zap.Any("panic", r),
						zap.ByteString("path", ctx.Path()),
						zap.ByteString("method", ctx.Method()),
						zap.Stack("stack"),
					)
					ctx.Response.Reset()
					ctx.Response.Header.SetContentType("application/json")
					ctx.SetStatusCode(fasthttp.StatusInternalServerError)
					body, _ := json.Marshal(transport.NewError(transport.InternalErrorMessage))
					ctx.SetBody(body)
				}
			}()
			next(ctx)
		}
	}
}
