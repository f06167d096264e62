package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/mugdha2626/dishfolio-api/docs"
	v1 "github.com/mugdha2626/dishfolio-api/internal/api/handler/v1"
	"github.com/mugdha2626/dishfolio-api/internal/api/middleware"
	"github.com/mugdha2626/dishfolio-api/internal/chain"
	"github.com/mugdha2626/dishfolio-api/internal/config"
	"github.com/mugdha2626/dishfolio-api/internal/pkg/refcode"
	"github.com/mugdha2626/dishfolio-api/internal/repository"
	"github.com/mugdha2626/dishfolio-api/internal/repository/dao"
	"github.com/mugdha2626/dishfolio-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, rdb *redis.Client, holderCounter chain.HolderCounter) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userHandler := s.initUserHandler(db, rdb)
	restaurantHandler := s.initRestaurantHandler(db)
	dishHandler := s.initDishHandler(db, holderCounter)
	referralHandler := s.initReferralHandler(db)
	s.MountHandlers(userHandler, restaurantHandler, dishHandler, referralHandler)

	return s
}

func (s *Server) initUserHandler(db *gorm.DB, rdb *redis.Client) *v1.UserHandler {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	dishRepo := repository.NewDishRepository(dao.NewDishDAO(db))
	portfolioRepo := repository.NewPortfolioRepository(dao.NewPositionDAO(db))
	resolver := refcode.NewResolver(refcode.NewRedisStore(rdb))
	svc := service.NewUserService(userRepo, dishRepo, resolver)
	pSvc := service.NewPortfolioService(portfolioRepo, dishRepo)
	handler := v1.NewUserHandler(svc, pSvc)

	return handler
}

func (s *Server) initRestaurantHandler(db *gorm.DB) *v1.RestaurantHandler {
	dishRepo := repository.NewDishRepository(dao.NewDishDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	portfolioRepo := repository.NewPortfolioRepository(dao.NewPositionDAO(db))
	svc := service.NewRestaurantService(dishRepo, userRepo, portfolioRepo)
	handler := v1.NewRestaurantHandler(svc)

	return handler
}

func (s *Server) initDishHandler(db *gorm.DB, holderCounter chain.HolderCounter) *v1.DishHandler {
	dishRepo := repository.NewDishRepository(dao.NewDishDAO(db))
	portfolioRepo := repository.NewPortfolioRepository(dao.NewPositionDAO(db))
	svc := service.NewDishService(dishRepo, portfolioRepo, holderCounter)
	handler := v1.NewDishHandler(svc)

	return handler
}

func (s *Server) initReferralHandler(db *gorm.DB) *v1.ReferralHandler {
	portfolioRepo := repository.NewPortfolioRepository(dao.NewPositionDAO(db))
	svc := service.NewReferralService(portfolioRepo)
	handler := v1.NewReferralHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(userHandler *v1.UserHandler, restaurantHandler *v1.RestaurantHandler, dishHandler *v1.DishHandler, referralHandler *v1.ReferralHandler) {
	const basePath = "/api/v1"

	users := s.Router.Group(basePath)
	{
		users.POST("/users/sync", userHandler.HandleSyncUser)
		users.GET("/users/:fid", userHandler.HandleGetUser)
		users.GET("/users/:fid/portfolio", userHandler.HandleGetPortfolio)
		users.PATCH("/users/:fid/reputation", userHandler.HandleUpdateReputation)
		users.PUT("/users/:fid/holdings", userHandler.HandleSetHolding)
		users.POST("/users/:fid/wishlist", userHandler.HandleAddWishlistItem)
		users.DELETE("/users/:fid/wishlist/:dishID", userHandler.HandleRemoveWishlistItem)
	}

	restaurants := s.Router.Group(basePath)
	{
		restaurants.POST("/restaurants", restaurantHandler.HandleCreateRestaurant)
		restaurants.GET("/restaurants/:restaurantID", restaurantHandler.HandleGetRestaurant)
		restaurants.GET("/restaurants/:restaurantID/dishes", dishHandler.HandleGetRestaurantDishes)
		restaurants.DELETE("/restaurants/:restaurantID", restaurantHandler.HandleDeleteRestaurant)
	}

	dishes := s.Router.Group(basePath)
	{
		dishes.POST("/dishes", dishHandler.HandleCreateDish)
		dishes.GET("/dishes", dishHandler.HandleGetCreatedDishes)
		dishes.GET("/dishes/:dishID", dishHandler.HandleGetDish)
		dishes.POST("/dishes/:dishID/refresh", dishHandler.HandleRefreshHolders)
		dishes.POST("/referrals", referralHandler.HandleRecordReferral)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Dishfolio API"
	docs.SwaggerInfo.Description = "Portfolios, referrals and tiers for tokenized dishes."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
