package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/trailforge/backend/domain"
	"github.com/trailforge/backend/pkg/httpcontext"
	trailUC "github.com/trailforge/backend/usecase/trail"
)

type TrailHandler struct {
	baseHandler
	uc *trailUC.UseCase
}

func NewTrailHandler(uc *trailUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TrailHandler {
	return &TrailHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

type trailSummary struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Difficulty    string  `json:"difficulty"`
	Distance      float64 `json:"distance"`
	ElevationGain float64 `json:"elevationGain"`
}

type trailListResponse struct {
	Trails []trailSummary `json:"trails"`
}

// @Summary List trails
// @Tags trails
// @Router /api/trails [get]
func (h *TrailHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	trails, err := h.uc.List(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	summaries := make([]trailSummary, 0, len(trails))
	for _, t := range trails {
		summaries = append(summaries, trailSummary{
			ID:            t.ID,
			Name:          t.Name,
			Difficulty:    t.Difficulty,
			Distance:      t.Distance,
			ElevationGain: t.ElevationGain,
		})
	}
	h.respondSuccess(ctx, http.StatusOK, trailListResponse{Trails: summaries})
}

type trailDetailResponse struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Difficulty    string          `json:"difficulty"`
	Distance      float64         `json:"distance"`
	ElevationGain float64         `json:"elevationGain"`
	Features      []string        `json:"features"`
	RecentReviews []domain.Review `json:"recentReviews"`
}

// @Summary Get trail details
// @Tags trails
// @Router /api/trails/{id} [get]
func (h *TrailHandler) Get(ctx *fasthttp.RequestCtx) {
	raw, _ := ctx.UserValue("id").(string)
	id, ok := parseIntID(raw)
	if !ok {
		h.respondInvalid(ctx, "Invalid trail ID")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	trail, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	features := trail.Features
	if features == nil {
		features = []string{}
	}
	reviews := trail.Reviews
	if reviews == nil {
		reviews = []domain.Review{}
	}
	h.respondSuccess(ctx, http.StatusOK, trailDetailResponse{
		ID:            trail.ID,
		Name:          trail.Name,
		Description:   trail.Description,
		Difficulty:    trail.Difficulty,
		Distance:      trail.Distance,
		ElevationGain: trail.ElevationGain,
		Features:      features,
		RecentReviews: reviews,
	})
}
