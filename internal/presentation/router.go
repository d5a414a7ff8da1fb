package presentation

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"repodash/internal/middleware"
	"repodash/internal/presentation/handlers"
)

// Handlers bundles everything the router mounts
type Handlers struct {
	Health     *handlers.HealthHandler
	Repository *handlers.RepositoryHandler
	Dashboard  *handlers.DashboardHandler
	Sidebar    *handlers.SidebarHandler
	History    *handlers.HistoryHandler
	Auth       *middleware.SessionAuth
}

// NewRouter builds the gin engine with all API v1 routes
func NewRouter(h Handlers, corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(corsOrigins)))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", h.Health.Health)

		v1.GET("/users/:account/repos", h.Repository.GetAccountRepositories)

		v1.GET("/sidebar", h.Sidebar.GetSidebar)
		v1.POST("/sidebar/image", h.Sidebar.RefreshImage)

		v1.GET("/history", h.History.GetHistory)

		v1.POST("/dashboard/sessions", h.Dashboard.CreateSession)

		sessions := v1.Group("/dashboard/sessions/:id")
		{
			sessions.GET("/stream", h.Auth.RequireStreamSession(), h.Dashboard.StreamSession)

			authed := sessions.Group("")
			authed.Use(h.Auth.RequireSession())
			authed.GET("", h.Dashboard.GetSession)
			authed.DELETE("", h.Dashboard.CloseSession)
			authed.POST("/account", h.Dashboard.SubmitAccount)
			authed.PUT("/search", h.Dashboard.SetSearch)
			authed.POST("/next", h.Dashboard.NextPage)
			authed.POST("/prev", h.Dashboard.PrevPage)
		}
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
