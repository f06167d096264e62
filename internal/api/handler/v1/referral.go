package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mugdha2626/dishfolio-api/internal/api/handler/v1/request"
	"github.com/mugdha2626/dishfolio-api/internal/api/handler/v1/response"
	"github.com/mugdha2626/dishfolio-api/internal/domain"
	"github.com/mugdha2626/dishfolio-api/internal/service"
)

type ReferralService interface {
	RecordReferral(ctx context.Context, referrerFid, refereeFid domain.Fid, dishID string) error
}

type ReferralHandler struct {
	svc ReferralService
}

func NewReferralHandler(svc ReferralService) *ReferralHandler {
	return &ReferralHandler{
		svc: svc,
	}
}

// HandleRecordReferral godoc
// @Summary      Record a dish referral
// @Description  Attributes the referee's entry into a dish to the referrer. The referrer must hold a position in the dish and cannot refer themselves. Recording is idempotent and the first referrer wins.
// @Tags         referrals
// @Accept       json
// @Produce      json
// @Param        input  body      request.RecordReferralRequest  true  "Referral details"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /referrals [post]
func (h *ReferralHandler) HandleRecordReferral(ctx *gin.Context) {
	var req request.RecordReferralRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	err := h.svc.RecordReferral(ctx.Request.Context(), req.ReferrerFid, req.RefereeFid, req.DishID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidReferral) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleRecordReferral -> h.svc.RecordReferral -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "referral recorded"})
}
