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

type UserService interface {
	SyncUser(ctx context.Context, user domain.User, urlRefCode string) (domain.User, bool, string, error)
	GetUser(ctx context.Context, fid domain.Fid) (domain.User, error)
	UpdateReputation(ctx context.Context, fid domain.Fid, score int) error
	AwardBadge(ctx context.Context, fid domain.Fid, badge string) error
	AddToWishlist(ctx context.Context, fid domain.Fid, item domain.WishItem) error
	RemoveFromWishlist(ctx context.Context, fid domain.Fid, dishID string) error
}

type PortfolioService interface {
	ComputePortfolio(ctx context.Context, fid domain.Fid) (domain.Portfolio, error)
	Summarize(ctx context.Context, fid domain.Fid) (service.PortfolioSummary, error)
	SetHolding(ctx context.Context, fid domain.Fid, dishID string, quantity int64) error
}

type UserHandler struct {
	svc  UserService
	pSvc PortfolioService
}

func NewUserHandler(svc UserService, pSvc PortfolioService) *UserHandler {
	return &UserHandler{
		svc:  svc,
		pSvc: pSvc,
	}
}

func parseFidParam(ctx *gin.Context) (domain.Fid, *response.Err) {
	fid, err := domain.ParseFid(ctx.Param("fid"))
	if err != nil {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid fid: %w", err))
	}

	return fid, nil
}

// HandleSyncUser godoc
// @Summary      Sync a user
// @Description  Upserts the user by fid and resolves the referral code the visit carried, if any
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        ref    query     string                   false  "Referral code from the visit URL"
// @Param        input  body      request.SyncUserRequest  true   "User details"
// @Success      200    {object}  response.SyncUserResponse
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /users/sync [post]
func (h *UserHandler) HandleSyncUser(ctx *gin.Context) {
	var req request.SyncUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user := domain.User{
		Fid:           req.Fid,
		Username:      req.Username,
		WalletAddress: req.WalletAddress,
	}

	synced, created, code, err := h.svc.SyncUser(ctx.Request.Context(), user, ctx.Query("ref"))
	if err != nil {
		err = fmt.Errorf("HandleSyncUser -> h.svc.SyncUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.SyncUserResponse{
		User:         synced,
		Created:      created,
		ReferralCode: code,
	})
}

// HandleGetUser godoc
// @Summary      Get a user profile
// @Description  Returns the stored user with badges and wishlist, the derived portfolio and the investor tier
// @Tags         users
// @Produce      json
// @Param        fid  path      int  true  "User fid"
// @Success      200  {object}  response.UserProfileResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/{fid} [get]
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	fid, respErr := parseFidParam(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), fid)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "fid", fid))
			return
		}

		err = fmt.Errorf("HandleGetUser -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	summary, err := h.pSvc.Summarize(ctx.Request.Context(), fid)
	if err != nil {
		err = fmt.Errorf("HandleGetUser -> h.pSvc.Summarize -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	tier := domain.ClassifyTier(summary.DishesBacked, summary.DishesCreated, summary.Portfolio.TotalValue, user.ReputationScore)

	ctx.JSON(http.StatusOK, response.UserProfileResponse{
		User:      user,
		Portfolio: summary.Portfolio,
		Tier:      tier,
	})
}

// HandleGetPortfolio godoc
// @Summary      Get a user's portfolio
// @Description  Returns the portfolio derived from the user's positions and current dish prices
// @Tags         users
// @Produce      json
// @Param        fid  path      int  true  "User fid"
// @Success      200  {object}  domain.Portfolio
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/{fid}/portfolio [get]
func (h *UserHandler) HandleGetPortfolio(ctx *gin.Context) {
	fid, respErr := parseFidParam(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	portfolio, err := h.pSvc.ComputePortfolio(ctx.Request.Context(), fid)
	if err != nil {
		err = fmt.Errorf("HandleGetPortfolio -> h.pSvc.ComputePortfolio -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, portfolio)
}

// HandleUpdateReputation godoc
// @Summary      Update a user's reputation score
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        fid    path      int                              true  "User fid"
// @Param        input  body      request.UpdateReputationRequest  true  "New reputation score"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/{fid}/reputation [patch]
func (h *UserHandler) HandleUpdateReputation(ctx *gin.Context) {
	fid, respErr := parseFidParam(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateReputationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	err := h.svc.UpdateReputation(ctx.Request.Context(), fid, req.ReputationScore)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "fid", fid))
			return
		}

		err = fmt.Errorf("HandleUpdateReputation -> h.svc.UpdateReputation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "reputation updated"})
}

// HandleAddWishlistItem godoc
// @Summary      Add a dish to the user's wishlist
// @Description  Bookmarks an existing dish, keeping the referrer that introduced it when one is given
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        fid    path      int                             true  "User fid"
// @Param        input  body      request.AddWishlistItemRequest  true  "Wishlist entry"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/{fid}/wishlist [post]
func (h *UserHandler) HandleAddWishlistItem(ctx *gin.Context) {
	fid, respErr := parseFidParam(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AddWishlistItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item := domain.WishItem{
		DishID:   req.DishID,
		Referrer: req.Referrer,
	}

	err := h.svc.AddToWishlist(ctx.Request.Context(), fid, item)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "fid", fid))
		case errors.Is(err, service.ErrDishNotFound):
			response.RenderErr(ctx, response.ErrNotFound("dish", "dishID", req.DishID))
		default:
			err = fmt.Errorf("HandleAddWishlistItem -> h.svc.AddToWishlist -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "dish added to wishlist"})
}

// HandleRemoveWishlistItem godoc
// @Summary      Remove a dish from the user's wishlist
// @Tags         users
// @Produce      json
// @Param        fid     path  int     true  "User fid"
// @Param        dishID  path  string  true  "Dish ID"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/{fid}/wishlist/{dishID} [delete]
func (h *UserHandler) HandleRemoveWishlistItem(ctx *gin.Context) {
	fid, respErr := parseFidParam(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	err := h.svc.RemoveFromWishlist(ctx.Request.Context(), fid, ctx.Param("dishID"))
	if err != nil {
		err = fmt.Errorf("HandleRemoveWishlistItem -> h.svc.RemoveFromWishlist -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "dish removed from wishlist"})
}

// HandleSetHolding godoc
// @Summary      Set a user's holding in a dish
// @Description  Records the quantity the user currently holds, creating the position on first acquisition and removing it when drained to zero
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        fid    path      int                        true  "User fid"
// @Param        input  body      request.SetHoldingRequest  true  "Holding details"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/{fid}/holdings [put]
func (h *UserHandler) HandleSetHolding(ctx *gin.Context) {
	fid, respErr := parseFidParam(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SetHoldingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	err := h.pSvc.SetHolding(ctx.Request.Context(), fid, req.DishID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrDishNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("dish", "dishID", req.DishID))
			return
		}

		err = fmt.Errorf("HandleSetHolding -> h.pSvc.SetHolding -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "holding updated"})
}
