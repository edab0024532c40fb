package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/trailforge/backend/api/handler"
)

type Handlers struct {
	Auth     *apiHandler.AuthHandler
	Activity *apiHandler.ActivityHandler
	Trail    *apiHandler.TrailHandler
	Profile  *apiHandler.ProfileHandler
	Post     *apiHandler.PostHandler
	Upload   *apiHandler.UploadHandler
}

// Middleware is a single request interceptor stage.
type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

// Pipeline is the ordered interceptor list applied to every /api route:
// outermost first, so Pipeline[0] sees the request before Pipeline[1].
type Pipeline []Middleware

// Wrap applies the pipeline stages around a handler in declared order.
func (p Pipeline) Wrap(h fasthttp.RequestHandler) fasthttp.RequestHandler {
	for i := len(p) - 1; i >= 0; i-- {
		h = p[i](h)
	}
	return h
}

// New wires all routes. public runs for unauthenticated endpoints,
// protected additionally verifies the bearer token.
func New(handlers Handlers, public, protected Pipeline) *router.Router {
	r := router.New()

	r.GET("/health", apiHandler.Health)

	r.POST("/api/login", public.Wrap(handlers.Auth.Login))
	r.GET("/api/trails", public.Wrap(handlers.Trail.List))
	r.GET("/api/trails/{id}", public.Wrap(handlers.Trail.Get))

	r.POST("/api/activities", protected.Wrap(handlers.Activity.Create))
	r.GET("/api/activities/{id}", protected.Wrap(handlers.Activity.Get))
	r.GET("/api/profile", protected.Wrap(handlers.Profile.GetProfile))
	r.GET("/api/profile/achievements", protected.Wrap(handlers.Profile.GetAchievements))
	r.GET("/api/posts", protected.Wrap(handlers.Post.List))
	r.POST("/api/upload", protected.Wrap(handlers.Upload.Upload))

	return r
}
