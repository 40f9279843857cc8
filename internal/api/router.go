package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/backoffice/admin-api/internal/api/handler"
	"github.com/backoffice/admin-api/internal/api/middleware"
	"github.com/backoffice/admin-api/internal/core/ports"
)

// Handlers groups the request handlers wired into the router.
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Role    *handler.RoleHandler
	Menu    *handler.MenuHandler
	Module  *handler.ModuleHandler
	Product *handler.ProductHandler
	Audit   *handler.AuditHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, users ports.UserRepository, h Handlers, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("admin"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Auth routes (no token required) ---
	e.POST("/v1/auth/login", h.Auth.Login)

	// --- Protected routes ---
	authMW := middleware.Auth(jwtSecret)
	identityMW := middleware.ActiveUser(users)

	v1 := e.Group("/v1", authMW, identityMW)

	v1.GET("/auth/me", h.Auth.Me)

	v1.GET("/users", h.User.List)
	v1.POST("/users", h.User.Create)
	v1.GET("/users/document-available/:number", h.User.DocumentAvailable)
	v1.GET("/users/:id", h.User.Get)
	v1.PUT("/users/:id", h.User.Update)
	v1.DELETE("/users/:id", h.User.Delete)
	v1.PATCH("/users/:id/active", h.User.ChangeActive)
	v1.PATCH("/users/:id/password", h.User.ChangePassword)
	v1.POST("/users/:id/reset-password", h.User.ResetPassword)

	v1.GET("/roles", h.Role.List)
	v1.POST("/roles", h.Role.Create)
	v1.GET("/roles/:id", h.Role.Get)
	v1.PUT("/roles/:id", h.Role.Update)
	v1.DELETE("/roles/:id", h.Role.Delete)
	v1.PATCH("/roles/:id/active", h.Role.ChangeActive)

	v1.GET("/menus", h.Menu.List)
	v1.POST("/menus", h.Menu.Create)
	v1.GET("/menus/:id", h.Menu.Get)
	v1.PUT("/menus/:id", h.Menu.Update)
	v1.DELETE("/menus/:id", h.Menu.Delete)
	v1.PATCH("/menus/:id/active", h.Menu.ChangeActive)
	v1.GET("/menus/:id/items", h.Menu.ListItems)

	v1.POST("/menu-items", h.Menu.CreateItem)
	v1.GET("/menu-items/:id", h.Menu.GetItem)
	v1.PUT("/menu-items/:id", h.Menu.UpdateItem)
	v1.DELETE("/menu-items/:id", h.Menu.DeleteItem)
	v1.PATCH("/menu-items/:id/active", h.Menu.ChangeItemActive)

	v1.GET("/modules", h.Module.List)
	v1.POST("/modules", h.Module.Create)
	v1.GET("/modules/:id", h.Module.Get)
	v1.PUT("/modules/:id", h.Module.Update)
	v1.DELETE("/modules/:id", h.Module.Delete)
	v1.PATCH("/modules/:id/active", h.Module.ChangeActive)

	v1.GET("/products", h.Product.List)
	v1.POST("/products", h.Product.Create)
	v1.GET("/products/:id", h.Product.Get)
	v1.PUT("/products/:id", h.Product.Update)
	v1.DELETE("/products/:id", h.Product.Delete)
	v1.PATCH("/products/:id/active", h.Product.ChangeActive)

	v1.GET("/audit/logins", h.Audit.List)

	// --- Operational endpoints (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
