package handler

import (
	"encoding/json"

	"github.com/valyala/fasthttp"
)

// Health answers a static liveness payload. It sits outside the /api
// envelope contract on purpose, mirroring what deploy probes expect.
func Health(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	body, _ := json.Marshal(map[string]string{"status": "healthy"})
	ctx.SetBody(body)
}
