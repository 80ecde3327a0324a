package routes

import (
	"net/http"

	"github.com/Govind-619/Plug233/controllers"
	"github.com/Govind-619/Plug233/middleware"
	"github.com/Govind-619/Plug233/services"
	"github.com/Govind-619/Plug233/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Options wires the router to the application.
type Options struct {
	Controller    *controllers.Controller
	Accounts      *services.AccountService
	JWTSecret     string
	SessionSecret string
	AllowOrigin   string
	SecureCookies bool
}

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware(opts.AllowOrigin))
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	// The cart lives in this cookie session
	store := cookie.NewStore([]byte(opts.SessionSecret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24 * 30,
		Path:     "/",
		Secure:   opts.SecureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("233plug", store))

	h := opts.Controller
	auth := middleware.AuthMiddleware(opts.JWTSecret, opts.Accounts)

	router.GET("/robots.txt", h.Robots)
	router.GET("/sitemap.xml", h.Sitemap)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Gateway endpoints keep the paths the hosted checkout scripts call
	payments := router.Group("/api/payments")
	{
		payments.POST("/paystack/init", h.PaystackInit)
		payments.POST("/paystack/webhook", h.PaystackWebhook)
		payments.POST("/stripe/checkout", h.StripeCheckout)
		payments.POST("/stripe/webhook", h.StripeWebhook)
	}

	api := router.Group("/v1")
	{
		initUserRoutes(api, h, auth)
		initAdminRoutes(api, h, auth)
	}

	return router
}
