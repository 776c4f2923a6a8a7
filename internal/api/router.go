package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/calvacorro/legal-records-api/docs"
	"github.com/calvacorro/legal-records-api/internal/api/handler"
	"github.com/calvacorro/legal-records-api/internal/api/middleware"
	"github.com/calvacorro/legal-records-api/internal/core/domain"
	"github.com/calvacorro/legal-records-api/internal/core/ports"
	"github.com/calvacorro/legal-records-api/internal/infrastructure/http/handlers"
)

const banner = "¡Backend de CCA App funcionando!"

// Dependencies are the services and settings the router is built from.
type Dependencies struct {
	Log            zerolog.Logger
	Production     bool
	AllowedOrigins []string

	// AuthRequired puts every record route behind a bearer token signed
	// with JWTSecret; user management additionally requires the admin role.
	AuthRequired bool
	JWTSecret    string

	Clients        ports.ClientService
	CaseFiles      ports.CaseFileService
	OtherDocuments ports.OtherDocumentService
	Users          ports.UserService

	// Checks are the readiness probes of the configured dependencies.
	Checks []handlers.Check
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log, d.Production)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(middleware.CORS(d.AllowedOrigins))
	e.Use(echoprometheus.NewMiddleware("legal_records"))

	// --- Ambient routes (never authenticated) ---
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, banner) })
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Checks...)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	var authed, admin []echo.MiddlewareFunc
	if d.AuthRequired {
		authed = []echo.MiddlewareFunc{middleware.Auth(d.JWTSecret)}
		admin = append(authed, middleware.RequireRole(domain.RoleAdmin))
	}

	// --- Clients ---
	clients := handler.NewClientHandler(d.Clients)
	e.POST("/cliente", clients.Create, authed...)
	e.GET("/clientes", clients.List, authed...)
	e.GET("/cliente/:id", clients.Get, authed...)
	e.POST("/cliente/:id", clients.Update, authed...)
	e.DELETE("/cliente/:id", clients.Delete, authed...)

	// --- Case files ---
	cases := handler.NewCaseFileHandler(d.CaseFiles)
	e.POST("/case", cases.Create, authed...)
	e.GET("/cases", cases.List, authed...)
	e.GET("/cases/client/:clientId", cases.ListByClient, authed...)
	e.GET("/case/:id/documents", cases.ListDocuments, authed...)
	e.GET("/case/:id", cases.Get, authed...)
	e.POST("/case/:id", cases.Update, authed...)
	e.DELETE("/case/:id", cases.Delete, authed...)

	// --- Other documents ---
	others := handler.NewOtherDocumentHandler(d.OtherDocuments)
	e.POST("/other", others.Create, authed...)
	e.GET("/others", others.List, authed...)
	e.GET("/other/:id/documents", others.ListDocuments, authed...)
	e.GET("/other/:id", others.Get, authed...)
	e.POST("/other/:id", others.Update, authed...)
	e.DELETE("/other/:id", others.Delete, authed...)

	// --- Users ---
	users := handler.NewUserHandler(d.Users)
	e.POST("/login", users.Login)
	e.GET("/usuarios", users.List, admin...)
	e.POST("/usuario", users.Create, admin...)
	e.GET("/usuario/:id", users.Get, admin...)
	e.PUT("/usuario/:id", users.Update, admin...)
	e.DELETE("/usuario/:id", users.Delete, admin...)

	return e
}
