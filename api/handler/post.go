package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/trailforge/backend/pkg/httpcontext"
	postUC "github.com/trailforge/backend/usecase/post"
)

type PostHandler struct {
	baseHandler
	uc *postUC.UseCase
}

func NewPostHandler(uc *postUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Get the adventure feed
// @Tags posts
// @Router /api/posts [get]
func (h *PostHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	feed, err := h.uc.Feed(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, feed)
}
