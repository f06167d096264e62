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

type RestaurantService interface {
	CreateRestaurant(ctx context.Context, restaurant domain.Restaurant) (domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id string) (domain.CascadeReport, error)
}

type RestaurantHandler struct {
	svc RestaurantService
}

func NewRestaurantHandler(svc RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		svc: svc,
	}
}

// HandleCreateRestaurant godoc
// @Summary      Create a restaurant
// @Tags         restaurants
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateRestaurantRequest  true  "Restaurant details"
// @Success      201    {object}  domain.Restaurant
// @Failure      400    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /restaurants [post]
func (h *RestaurantHandler) HandleCreateRestaurant(ctx *gin.Context) {
	var req request.CreateRestaurantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	restaurant := domain.Restaurant{
		ID:          req.ID,
		Name:        req.Name,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Rating:      req.Rating,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}

	created, err := h.svc.CreateRestaurant(ctx.Request.Context(), restaurant)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantExists) {
			response.RenderErr(ctx, response.ErrConflict(fmt.Errorf("restaurant %v already exists", req.ID)))
			return
		}

		err = fmt.Errorf("HandleCreateRestaurant -> h.svc.CreateRestaurant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetRestaurant godoc
// @Summary      Get a restaurant
// @Tags         restaurants
// @Produce      json
// @Param        restaurantID  path      string  true  "Restaurant ID"
// @Success      200  {object}  domain.Restaurant
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /restaurants/{restaurantID} [get]
func (h *RestaurantHandler) HandleGetRestaurant(ctx *gin.Context) {
	restaurantID := ctx.Param("restaurantID")

	restaurant, err := h.svc.GetRestaurant(ctx.Request.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("restaurant", "ID", restaurantID))
			return
		}

		err = fmt.Errorf("HandleGetRestaurant -> h.svc.GetRestaurant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, restaurant)
}

// HandleDeleteRestaurant godoc
// @Summary      Delete a restaurant and everything that references it
// @Description  Removes the restaurant, all its dishes, and every wishlist and portfolio reference to those dishes. Returns a report of what was removed.
// @Tags         restaurants
// @Produce      json
// @Param        restaurantID  path      string  true  "Restaurant ID"
// @Success      200  {object}  response.CascadeResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /restaurants/{restaurantID} [delete]
func (h *RestaurantHandler) HandleDeleteRestaurant(ctx *gin.Context) {
	restaurantID := ctx.Param("restaurantID")

	report, err := h.svc.DeleteRestaurant(ctx.Request.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("restaurant", "ID", restaurantID))
			return
		}

		// A partial cascade still reports 500; re-running the delete
		// converges because every purge step is idempotent.
		err = fmt.Errorf("HandleDeleteRestaurant -> h.svc.DeleteRestaurant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CascadeResponse{
		Message: "restaurant deleted",
		Report:  report,
	})
}
