package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/trailforge/backend/api/transport"
	"github.com/trailforge/backend/pkg/httpcontext"
	activityUC "github.com/trailforge/backend/usecase/activity"
)

type ActivityHandler struct {
	baseHandler
	uc *activityUC.UseCase
}

func NewActivityHandler(uc *activityUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

type activityCreatedResponse struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// @Summary Log an activity
// @Tags activities
// @Router /api/activities [post]
func (h *ActivityHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.ActivityCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "Invalid payload")
		return
	}
	if req.UserID == nil || req.Type == "" {
		h.respondInvalid(ctx, "userId and type are required")
		return
	}

	userID, ok := coerceID(req.UserID)
	if !ok {
		h.respondInvalid(ctx, "Invalid user ID")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Log(stdCtx, userID, req.Type, req.Data)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, activityCreatedResponse{
		ID:        created.ID,
		Type:      created.Type,
		CreatedAt: created.CreatedAt,
	})
}

// @Summary Get activity details
// @Tags activities
// @Router /api/activities/{id} [get]
func (h *ActivityHandler) Get(ctx *fasthttp.RequestCtx) {
	raw, _ := ctx.UserValue("id").(string)
	id, ok := parseIntID(raw)
	if !ok {
		h.respondInvalid(ctx, "Invalid activity ID")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	activity, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, activity)
}
