package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"invoice-admin/internal/handler/api"
	"invoice-admin/internal/handler/middleware"
	"invoice-admin/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, authHandler *api.AuthHandler, invoiceHandler *api.InvoiceHandler, userHandler *api.UserHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, invoiceHandler, userHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, authHandler *api.AuthHandler, invoiceHandler *api.InvoiceHandler, userHandler *api.UserHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(engine.Group(""), []route{
		{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
		{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
	})

	// The authorization gate covers the /dashboard subtree only; every other
	// path above bypasses it.
	dashboard := engine.Group("/dashboard")
	dashboard.Use(authMiddleware.DashboardGate())
	{
		dashboard.GET("", dashboardLanding)

		invoices := dashboard.Group("/invoices")
		addRoutes(invoices, []route{
			{Method: http.MethodGet, Path: "", Handler: invoiceHandler.List},
			{Method: http.MethodPost, Path: "", Handler: invoiceHandler.Create},
			{Method: http.MethodGet, Path: "/:id/edit", Handler: invoiceHandler.Get},
			{Method: http.MethodPost, Path: "/:id/edit", Handler: invoiceHandler.Update},
			{Method: http.MethodPost, Path: "/:id/delete", Handler: invoiceHandler.Delete},
		})

		// Upper-case segment preserved: it is the path the dashboard frontend
		// links, posts to, and expects in redirects.
		users := dashboard.Group("/USERS")
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "", Handler: userHandler.List},
			{Method: http.MethodPost, Path: "", Handler: userHandler.Create},
			{Method: http.MethodGet, Path: "/:id/edit", Handler: userHandler.Get},
			{Method: http.MethodPost, Path: "/:id/edit", Handler: userHandler.Update},
			{Method: http.MethodPost, Path: "/:id/delete", Handler: userHandler.Delete},
		})
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

// dashboardLanding is the default page authenticated sessions land on.
func dashboardLanding(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"role":    role.String(),
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
