package http

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mikiasgoitom/PetLikes/internal/handler/http/dto"
	"github.com/mikiasgoitom/PetLikes/internal/handler/http/middleware"
	"github.com/mikiasgoitom/PetLikes/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/PetLikes/internal/usecase/contract"
)

type Router struct {
	likeHandler    LikeHandlerInterface
	graphqlHandler http.Handler
	identity       usecase.IdentityProvider
	ratePerSecond  float64
}

func NewRouter(likeUsecase usecasecontract.ILikeUseCase, identity usecase.IdentityProvider, config usecasecontract.IConfigProvider) *Router {
	return &Router{
		likeHandler:    NewLikeHandler(likeUsecase),
		graphqlHandler: NewGraphQLHandler(likeUsecase),
		identity:       identity,
		ratePerSecond:  config.GetRateLimitPerSecond(),
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	if r.ratePerSecond > 0 {
		lmt := tollbooth.NewLimiter(r.ratePerSecond, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
		lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
		lmt.SetMessage("Too many requests, please try again later.")
		router.Use(middleware.RateLimiter(lmt))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	})

	// Public read routes
	router.GET("/likes/:postId", r.likeHandler.GetLikes)
	router.POST("/graphql", gin.WrapH(r.graphqlHandler))

	// Protected routes (authentication required)
	protected := router.Group("/likes")
	protected.Use(middleware.AuthMiddleWare(r.identity))
	{
		protected.POST("/add", r.likeHandler.AddLike)
		protected.DELETE("/remove", r.likeHandler.RemoveLike)
	}
}
