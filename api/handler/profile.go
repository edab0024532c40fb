package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/trailforge/backend/pkg/httpcontext"
	profileUC "github.com/trailforge/backend/usecase/profile"
)

type ProfileHandler struct {
	baseHandler
	uc *profileUC.UseCase
}

func NewProfileHandler(uc *profileUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Get the aggregated profile view
// @Tags profile
// @Router /api/profile [get]
func (h *ProfileHandler) GetProfile(ctx *fasthttp.RequestCtx) {
	userID, ok := h.queryUserID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	view, err := h.uc.GetView(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, view)
}

// @Summary List unlocked badges
// @Tags profile
// @Router /api/profile/achievements [get]
func (h *ProfileHandler) GetAchievements(ctx *fasthttp.RequestCtx) {
	userID, ok := h.queryUserID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	badges, err := h.uc.ListUnlockedBadges(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, badges)
}

// queryUserID validates the userId query parameter before any fetch runs.
// It writes the 400 response itself when validation fails.
func (h *ProfileHandler) queryUserID(ctx *fasthttp.RequestCtx) (int, bool) {
	raw := string(ctx.QueryArgs().Peek("userId"))
	if raw == "" {
		h.respondInvalid(ctx, "User ID required")
		return 0, false
	}
	id, ok := parseIntID(raw)
	if !ok {
		h.respondInvalid(ctx, "Invalid user ID")
		return 0, false
	}
	return id, true
}
