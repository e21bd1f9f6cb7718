// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "estate_backend/internal/feature/auth/transport/handler"
	cataloghandler "estate_backend/internal/feature/catalog/transport/handler"
	portfoliohandler "estate_backend/internal/feature/portfolio/transport/handler"
	"estate_backend/internal/platform/http/handler"
	jwtmw "estate_backend/internal/platform/jwt"
)

func NewRouter(jwtSecret string, authH *authhandler.AuthHandler,
	portfolioH *portfoliohandler.PortfolioHandler,
	propertyH *cataloghandler.PropertyHandler,
	resetH *handler.ResetHandler) *gin.Engine {
	r := gin.Default()

	// No authentication required
	r.GET("/healthz", handler.Health)
	r.POST("/signup", authH.Signup)
	r.POST("/login", authH.Login)

	// The catalog and the guest projection are public: unauthenticated
	// visitors browse the market overview without a portfolio of their own.
	r.GET("/properties", propertyH.List)
	r.GET("/properties/:id", propertyH.Get)
	r.GET("/portfolio/guest", portfolioH.Guest)

	// Authenticated routes
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(jwtSecret))
	{
		auth.GET("/me", authH.Me)
		auth.POST("/logout", authH.Logout)

		auth.GET("/portfolio", portfolioH.Get)
		auth.POST("/portfolio/buy", portfolioH.Buy)
		auth.POST("/portfolio/sell", portfolioH.Sell)

		admin := auth.Group("/admin")
		{
			admin.POST("/properties", propertyH.Create)
			admin.PUT("/properties/:id", propertyH.Update)
			admin.DELETE("/properties/:id", propertyH.Delete)
			admin.POST("/market/simulate", portfolioH.Simulate)
			admin.POST("/reset", resetH.Reset)
		}
	}

	return r
}
