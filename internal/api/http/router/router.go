package router

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agrosense/croprec-server/internal/api/http/handler"
	"github.com/agrosense/croprec-server/internal/api/http/middleware"
	"github.com/agrosense/croprec-server/internal/logger"
	"github.com/agrosense/croprec-server/internal/model"
	"github.com/agrosense/croprec-server/internal/service"
)

// Router wires the page handlers and middleware into an echo instance.
type Router struct {
	authService       *service.Auth
	predictionService *service.Prediction
	reviewService     *service.Review
	sessionManager    model.SessionManager
	contextManager    model.ContextManager
	cookieName        string
	sessionTTL        time.Duration
	logger            *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	predictionService *service.Prediction,
	reviewService *service.Review,
	sessionManager model.SessionManager,
	contextManager model.ContextManager,
	cookieName string,
	sessionTTL time.Duration,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:       authService,
		predictionService: predictionService,
		reviewService:     reviewService,
		sessionManager:    sessionManager,
		contextManager:    contextManager,
		cookieName:        cookieName,
		sessionTTL:        sessionTTL,
		logger:            logger,
	}
}

// Register builds the echo instance with all routes and middleware.
func (r *Router) Register() (*echo.Echo, error) {
	renderer, err := handler.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.sessionManager, r.contextManager, r.cookieName, r.logger)

	e.Use(logging.Handle)

	pagesHandler := handler.NewPages(r.contextManager, r.logger)
	authHandler := handler.NewAuth(r.authService, r.sessionManager, r.cookieName, r.sessionTTL, r.logger)
	predictionHandler := handler.NewPrediction(r.predictionService, r.contextManager, r.logger)
	reviewHandler := handler.NewReview(r.reviewService, r.contextManager, r.logger)

	e.GET("/", pagesHandler.Home)
	e.GET("/aboutus", pagesHandler.About)
	e.GET("/service", pagesHandler.Services)
	e.GET("/contact", pagesHandler.ContactForm)
	e.POST("/contact", pagesHandler.SubmitContact)

	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	gated := e.Group("", authenticate.Handle)
	gated.GET("/dashboard", pagesHandler.Dashboard)
	gated.GET("/predict", predictionHandler.Form)
	gated.POST("/form", predictionHandler.Submit)
	gated.GET("/history", reviewHandler.History)
	gated.GET("/download_csv", reviewHandler.DownloadCSV)
	gated.GET("/delete/:id", reviewHandler.Delete)
	gated.GET("/delete_all", reviewHandler.DeleteAll)

	return e, nil
}
