package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stayhub/internal/domain/staff"
	"stayhub/internal/handler/api"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Guard requirements per route group. Admin always passes; other staff get in
// through department, role, or access level, in that order.
var (
	promoAdminAccess = staff.Requirement{
		Roles:          []staff.Role{staff.RoleManager},
		MinAccessLevel: 4,
	}
	availabilityWriteAccess = staff.Requirement{
		Roles:          []staff.Role{staff.RoleManager},
		Departments:    []staff.Department{staff.DepartmentFrontOffice},
		MinAccessLevel: 3,
	}
	bookingDeskAccess = staff.Requirement{
		Roles:          []staff.Role{staff.RoleManager, staff.RoleReceptionist},
		Departments:    []staff.Department{staff.DepartmentFrontOffice},
		MinAccessLevel: 2,
	}
	catalogAdminAccess = staff.Requirement{
		Roles:          []staff.Role{staff.RoleManager},
		MinAccessLevel: 4,
	}
)

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	promoHandler *api.PromoCodeHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	catalogHandler *api.CatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, promoHandler, availabilityHandler, bookingHandler, catalogHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	promoHandler *api.PromoCodeHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	catalogHandler *api.CatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		services := apiGroup.Group("/services")
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.Get},
			})

			catalogAdmin := services.Group("")
			catalogAdmin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAccess(catalogAdminAccess))
			addRoutes(catalogAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: catalogHandler.Update},
			})
		}

		promoCodes := apiGroup.Group("/promo-codes")
		{
			// Preview is guest-facing and needs no session.
			addRoutes(promoCodes, []route{
				{Method: http.MethodPost, Path: "/preview", Handler: promoHandler.Preview},
			})

			promoAdmin := promoCodes.Group("")
			promoAdmin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAccess(promoAdminAccess))
			addRoutes(promoAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: promoHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: promoHandler.List},
				{Method: http.MethodGet, Path: "/:code", Handler: promoHandler.Get},
				{Method: http.MethodPut, Path: "/:code", Handler: promoHandler.Update},
				{Method: http.MethodPatch, Path: "/:code/usage", Handler: promoHandler.CorrectUsage},
			})
		}

		availability := apiGroup.Group("/availability")
		availability.Use(authMiddleware.RequireAuth())
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "/:serviceType/:serviceId", Handler: availabilityHandler.GetByMonth},
			})

			availabilityWrite := availability.Group("")
			availabilityWrite.Use(authMiddleware.RequireAccess(availabilityWriteAccess))
			addRoutes(availabilityWrite, []route{
				{Method: http.MethodPut, Path: "/:serviceType/:serviceId", Handler: availabilityHandler.Update},
				{Method: http.MethodPut, Path: "/:serviceType/:serviceId/bulk", Handler: availabilityHandler.BulkUpdate},
				{Method: http.MethodPost, Path: "/:serviceType/:serviceId/block", Handler: availabilityHandler.Block},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAccess(bookingDeskAccess))
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Cancel},
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
