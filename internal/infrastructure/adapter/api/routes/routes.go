package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/masjid-digital/donation-processor/internal/domain/port/core"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/api/handler"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API. Donation intake and
// lookups are public; status transitions and registry mutations require a
// staff token.
func SetupRoutes(
	router *gin.Engine,
	donationHandler *handler.DonationHandler,
	paymentMethodHandler *handler.PaymentMethodHandler,
	healthHandler *handler.HealthHandler,
	jwtSecret string,
	logger coreport.Logger,
) {
	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")

	donations := api.Group("/donations")
	{
		donations.POST("", donationHandler.Create)
		donations.GET("/code/:code", donationHandler.GetByCode)
		donations.GET("/stats", donationHandler.Stats)
	}

	staffAuth := middleware.StaffAuth(jwtSecret, logger)

	staffDonations := api.Group("/donations", staffAuth)
	{
		staffDonations.GET("", donationHandler.List)
		staffDonations.GET("/:id", donationHandler.Get)
		staffDonations.PUT("/:id/confirm", donationHandler.Confirm)
		staffDonations.PUT("/:id/cancel", donationHandler.Cancel)
	}

	paymentMethods := api.Group("/payment-methods")
	{
		paymentMethods.GET("", paymentMethodHandler.List)
		paymentMethods.GET("/:id", paymentMethodHandler.Get)
	}

	staffPaymentMethods := api.Group("/payment-methods", staffAuth)
	{
		staffPaymentMethods.POST("", paymentMethodHandler.Create)
		staffPaymentMethods.PUT("/reorder", paymentMethodHandler.Reorder)
		staffPaymentMethods.PUT("/:id", paymentMethodHandler.Update)
		staffPaymentMethods.PUT("/:id/deactivate", paymentMethodHandler.Deactivate)
		staffPaymentMethods.DELETE("/:id", paymentMethodHandler.Delete)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
