package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bigrusstattoo/studio/internal/auth"
	"github.com/bigrusstattoo/studio/internal/logger"
	"github.com/bigrusstattoo/studio/internal/middleware"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Request     *RequestHandler
	Appointment *AppointmentHandler
	Customer    *CustomerHandler
	User        *UserHandler
	File        *FileHandler
	Contact     *ContactHandler
	Payment     *PaymentHandler
}

// NewRouter builds the gin engine with all routes and middleware
func NewRouter(h *Handlers, tokens *auth.TokenManager, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.ResolvePrincipal(tokens),
	)

	router.GET("/health", h.Health.Check)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/passkey/register/options", h.Auth.RegisterOptions)
		authGroup.POST("/passkey/register/verify", h.Auth.RegisterVerify)
		authGroup.POST("/passkey/login/options", h.Auth.LoginOptions)
		authGroup.POST("/passkey/login/verify", h.Auth.LoginVerify)
		authGroup.POST("/session", h.Auth.CreateSession)
	}

	api := router.Group("/api/v1")

	// Public intake and provider callbacks.
	api.POST("/requests", h.Request.Create)
	api.POST("/payments/webhook", h.Payment.Webhook)

	staff := api.Group("", middleware.RequireAuth())
	{
		staff.GET("/requests", h.Request.List)
		staff.GET("/appointments", h.Appointment.ListMine)
		staff.DELETE("/availability/:id", h.Appointment.DeleteAvailability)
	}

	admin := api.Group("", middleware.RequireAdmin())
	{
		admin.GET("/admin/appointments", h.Appointment.ListAll)
		admin.PATCH("/requests/bulk", h.Request.BulkUpdateStatus)
		admin.POST("/waitlist/:id/activate", h.Request.Activate)
		admin.GET("/users", h.User.List)
		admin.GET("/customers", h.Customer.List)
		admin.GET("/customers/:id", h.Customer.GetDetail)
		admin.GET("/files", h.File.List)
		admin.POST("/contact", h.Contact.Send)
		admin.POST("/payments/intent", h.Payment.CreateIntent)
	}

	return router
}
