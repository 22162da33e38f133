package http

import (
	"time"

	"backoffice/internal/config"
	"backoffice/internal/http/handlers"
	"backoffice/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with the full API surface.
func NewRouter(env config.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handlers.SetJWTSecret(env.JWTSecret)
	handlers.SetRouter(r)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.GET("/db-check", handlers.DBCheck)
		api.GET("/routes", handlers.Routes)

		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.Login)
			auth.POST("/register", handlers.Register)
		}

		api.GET("/reservations", handlers.ListReservations)
		api.GET("/reservations/:code", handlers.GetReservation)
		api.GET("/reservations/:code/invoice", handlers.DownloadInvoice)

		api.GET("/options", handlers.ListOptions)

		api.GET("/reports/settlement", handlers.GetSettlementReport)
		api.GET("/reports/settlement/pdf", handlers.DownloadSettlementReport)

		secured := api.Group("")
		secured.Use(middleware.RequireAuth(handlers.JWTSecret()))
		{
			secured.POST("/reservations", handlers.CreateReservation)
			secured.PUT("/reservations/:code", handlers.UpdateReservation)
			secured.POST("/options/upsert", handlers.UpsertOptions)
		}
	}

	return r
}
