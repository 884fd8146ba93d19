package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pos-register/internal/handler/api"
	"pos-register/internal/handler/middleware"
	"pos-register/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, catalogHandler *api.CatalogHandler, checkoutHandler *api.CheckoutHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, checkoutHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RateLimitMiddleware(cfg.RateLimit))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, catalogHandler *api.CatalogHandler, checkoutHandler *api.CheckoutHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		catalogGroup := apiGroup.Group("/catalog")
		catalogGroup.Use(authMiddleware.RequireAuth())
		{
			addRoutes(catalogGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.Load},
				{Method: http.MethodGet, Path: "/search", Handler: catalogHandler.Search},
			})
		}

		checkout := apiGroup.Group("/checkout")
		checkout.Use(authMiddleware.RequireAuth())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "", Handler: checkoutHandler.Start},
				{Method: http.MethodGet, Path: "", Handler: checkoutHandler.State},
				{Method: http.MethodDelete, Path: "", Handler: checkoutHandler.Discard},
				{Method: http.MethodPost, Path: "/items", Handler: checkoutHandler.AddItem},
				{Method: http.MethodPatch, Path: "/items/:id", Handler: checkoutHandler.SetQuantity},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: checkoutHandler.RemoveItem},
				{Method: http.MethodPost, Path: "/finalize", Handler: checkoutHandler.Finalize},
				{Method: http.MethodPost, Path: "/cancel", Handler: checkoutHandler.Cancel},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
