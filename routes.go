// routes.go
package main

import (
	"net/http"
	"path/filepath"

	"club-events/controllers"
	"club-events/middleware"
	"club-events/services"
	"club-events/websocket"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// App bundles everything the router needs.
type App struct {
	Events         services.EventServiceInterface
	Certificates   services.CertificateServiceInterface
	DB             controllers.Pinger
	Hub            *websocket.Hub
	TemplatesDir   string
	StaticDir      string
	SessionSecret  string
	ApplicationURL string
	Secure         bool
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(app App) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeaders(), middleware.ErrorHandler())

	// flash messages only; there are no logins
	store := cookie.NewStore([]byte(app.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		Secure:   app.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("club_events", store))

	router.LoadHTMLGlob(filepath.Join(app.TemplatesDir, "*.html"))
	if app.StaticDir != "" {
		router.Static("/static", app.StaticDir)
	}

	eventController := controllers.NewEventController(app.Events)
	registrationController := controllers.NewRegistrationController(app.Events)
	certificateController := controllers.NewCertificateController(app.Certificates)
	pageController := controllers.NewPageController(app.Events, app.DB, app.Hub, app.ApplicationURL)

	router.GET("/health", pageController.Health)

	router.GET("/", eventController.Index)
	router.GET("/events", eventController.ListEvents)

	admin := router.Group("/admin")
	{
		admin.GET("/create_event", eventController.ShowCreateEvent)
		admin.POST("/create_event", eventController.CreateEvent)
	}

	router.GET("/register/:event_id", registrationController.ShowRegister)
	router.POST("/register/:event_id", registrationController.Register)
	router.GET("/dashboard/:event_id", registrationController.Dashboard)
	router.GET("/attend/:user_id/:event_id", registrationController.MarkAttended)

	router.GET("/certificate/:user_id", certificateController.Generate)
	router.GET("/certificate/:user_id/download", certificateController.Download)

	router.GET("/qrcode/:event_id", pageController.EventQRCode)
	router.GET("/ws/dashboard/:event_id", pageController.DashboardUpdates)

	return router
}
