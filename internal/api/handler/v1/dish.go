package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mugdha2626/dishfolio-api/internal/api/handler/v1/request"
	"github.com/mugdha2626/dishfolio-api/internal/api/handler/v1/response"
	"github.com/mugdha2626/dishfolio-api/internal/domain"
	"github.com/mugdha2626/dishfolio-api/internal/service"
)

type DishService interface {
	CreateDish(ctx context.Context, dish domain.Dish) (domain.Dish, error)
	GetDish(ctx context.Context, dishID string) (domain.Dish, error)
	GetDishesByCreator(ctx context.Context, creator domain.Fid) ([]domain.Dish, error)
	GetDishesByRestaurant(ctx context.Context, restaurantID string) ([]domain.Dish, error)
	RefreshHolders(ctx context.Context, dishID string) (domain.Dish, error)
}

type DishHandler struct {
	svc DishService
}

func NewDishHandler(svc DishService) *DishHandler {
	return &DishHandler{
		svc: svc,
	}
}

// HandleCreateDish godoc
// @Summary      Create a dish
// @Description  Mints a dish under an existing restaurant. The dish id is generated when not supplied and the creator receives the initial position.
// @Tags         dishes
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateDishRequest  true  "Dish details"
// @Success      201    {object}  domain.Dish
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /dishes [post]
func (h *DishHandler) HandleCreateDish(ctx *gin.Context) {
	var req request.CreateDishRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	startingPrice, err := decimal.NewFromString(req.StartingPrice)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid starting price: %w", err)))
		return
	}
	if startingPrice.IsNegative() {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("starting price cannot be negative")))
		return
	}

	dish := domain.Dish{
		DishID:        req.DishID,
		Name:          req.Name,
		Creator:       req.Creator,
		RestaurantID:  req.RestaurantID,
		ImageURL:      req.ImageURL,
		StartingPrice: startingPrice,
		CurrentSupply: req.CurrentSupply,
	}

	created, err := h.svc.CreateDish(ctx.Request.Context(), dish)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRestaurantNotFound):
			response.RenderErr(ctx, response.ErrNotFound("restaurant", "ID", req.RestaurantID))
		case errors.Is(err, service.ErrDishExists):
			response.RenderErr(ctx, response.ErrConflict(fmt.Errorf("dish %v already exists", req.DishID)))
		default:
			err = fmt.Errorf("HandleCreateDish -> h.svc.CreateDish -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetDish godoc
// @Summary      Get a dish
// @Tags         dishes
// @Produce      json
// @Param        dishID  path      string  true  "Dish ID"
// @Success      200  {object}  domain.Dish
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /dishes/{dishID} [get]
func (h *DishHandler) HandleGetDish(ctx *gin.Context) {
	dishID := ctx.Param("dishID")

	dish, err := h.svc.GetDish(ctx.Request.Context(), dishID)
	if err != nil {
		if errors.Is(err, service.ErrDishNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("dish", "dishID", dishID))
			return
		}

		err = fmt.Errorf("HandleGetDish -> h.svc.GetDish -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, dish)
}

// HandleGetCreatedDishes godoc
// @Summary      Get dishes created by a user
// @Tags         dishes,users
// @Produce      json
// @Param        creator  query     int  true  "Creator fid"
// @Success      200  {array}   domain.Dish
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /dishes [get]
func (h *DishHandler) HandleGetCreatedDishes(ctx *gin.Context) {
	fid, err := domain.ParseFid(ctx.Query("creator"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid creator fid: %w", err)))
		return
	}

	dishes, err := h.svc.GetDishesByCreator(ctx.Request.Context(), fid)
	if err != nil {
		err = fmt.Errorf("HandleGetCreatedDishes -> h.svc.GetDishesByCreator -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, dishes)
}

// HandleGetRestaurantDishes godoc
// @Summary      Get dishes of a restaurant
// @Tags         dishes,restaurants
// @Produce      json
// @Param        restaurantID  path      string  true  "Restaurant ID"
// @Success      200  {array}   domain.Dish
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /restaurants/{restaurantID}/dishes [get]
func (h *DishHandler) HandleGetRestaurantDishes(ctx *gin.Context) {
	restaurantID := ctx.Param("restaurantID")

	dishes, err := h.svc.GetDishesByRestaurant(ctx.Request.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("restaurant", "ID", restaurantID))
			return
		}

		err = fmt.Errorf("HandleGetRestaurantDishes -> h.svc.GetDishesByRestaurant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, dishes)
}

// HandleRefreshHolders godoc
// @Summary      Refresh a dish's holder count
// @Description  Reads the holder count from the token contract and writes it through to the dish record
// @Tags         dishes
// @Produce      json
// @Param        dishID  path      string  true  "Dish ID"
// @Success      200  {object}  domain.Dish
// @Failure      404  {object}  response.Err
// @Failure      502  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /dishes/{dishID}/refresh [post]
func (h *DishHandler) HandleRefreshHolders(ctx *gin.Context) {
	dishID := ctx.Param("dishID")

	dish, err := h.svc.RefreshHolders(ctx.Request.Context(), dishID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDishNotFound):
			response.RenderErr(ctx, response.ErrNotFound("dish", "dishID", dishID))
		case errors.Is(err, service.ErrChainUnavailable):
			response.RenderErr(ctx, response.ErrUpstreamUnavailable(err))
		default:
			err = fmt.Errorf("HandleRefreshHolders -> h.svc.RefreshHolders -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, dish)
}
