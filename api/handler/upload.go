package handler

import (
	"io"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/trailforge/backend/internal/infrastructure/blob"
	"github.com/trailforge/backend/pkg/httpcontext"
)

type UploadHandler struct {
	baseHandler
	store blob.Store
}

func NewUploadHandler(store blob.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
	}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// @Summary Upload a file
// @Tags upload
// @Router /api/upload [post]
func (h *UploadHandler) Upload(ctx *fasthttp.RequestCtx) {
	header, err := ctx.FormFile("file")
	if err != nil {
		h.respondInvalid(ctx, "No file uploaded")
		return
	}
	if header.Filename == "" {
		h.respondInvalid(ctx, "No selected file")
		return
	}

	file, err := header.Open()
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	url, err := h.store.StoreFile(stdCtx, data, header.Filename)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, uploadResponse{URL: url})
}
