package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/viewmall/commerce-api/internal/api/handler"
	"github.com/viewmall/commerce-api/internal/api/middleware"
	"github.com/viewmall/commerce-api/internal/core/service"
	"github.com/viewmall/commerce-api/internal/infrastructure/config"
	mongodb "github.com/viewmall/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/viewmall/commerce-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	questionRepo := mongodb.NewQuestionRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	wishlistRepo := mongodb.NewWishlistRepository(db)
	ratingCache := redisdb.NewRatingCache(rdb)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	productService := service.NewProductService(productRepo, log)
	qnaService := service.NewQnaService(questionRepo, log)
	reviewService := service.NewReviewService(reviewRepo, productRepo, ratingCache, log)
	wishlistService := service.NewWishlistService(wishlistRepo, productRepo, log)

	// The principal is resolved once here and carried through the request
	// context; no handler or service reads auth state from anywhere else.
	e.Use(middleware.ResolvePrincipal(tokenService, userRepo))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	qnaHandler := handler.NewQnaHandler(qnaService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	wishlistHandler := handler.NewWishlistHandler(wishlistService)

	apiGroup := e.Group("/api")

	auth := apiGroup.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/me", authHandler.Me)

	products := apiGroup.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/search", productHandler.Search)
	products.GET("/category/:category", productHandler.ByCategory)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	qna := apiGroup.Group("/qna")
	qna.GET("", qnaHandler.List)
	qna.GET("/search", qnaHandler.Search)
	qna.GET("/my", qnaHandler.My)
	qna.GET("/:id", qnaHandler.Get)
	qna.POST("", qnaHandler.Create)
	qna.DELETE("/:id", qnaHandler.Delete)
	qna.POST("/:id/answer", qnaHandler.Answer)

	reviews := apiGroup.Group("/reviews")
	reviews.GET("/product/:productId", reviewHandler.ByProduct)
	reviews.GET("/product/:productId/rating", reviewHandler.Rating)
	reviews.POST("", reviewHandler.Create)
	reviews.DELETE("/:id", reviewHandler.Delete)

	wishlist := apiGroup.Group("/wishlist")
	wishlist.GET("", wishlistHandler.List)
	wishlist.GET("/check/:productId", wishlistHandler.Check)
	wishlist.POST("/:productId", wishlistHandler.Add)
	wishlist.DELETE("/:productId", wishlistHandler.Remove)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
