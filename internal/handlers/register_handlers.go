package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/adityapw/user_management_app/internal/core/ports"
	"github.com/adityapw/user_management_app/internal/core/services"
	"github.com/adityapw/user_management_app/internal/middleware"
	"github.com/adityapw/user_management_app/internal/platform/config"
)

// RegisterHandlers wires every route group onto the engine.
func RegisterHandlers(r *gin.Engine, cfg *config.Config, svc *services.ServicesContainer, userRepo ports.UserRepository, photoStore ports.PhotoStore) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.ClientBaseURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// 5 requests per minute per IP on credential-guessing surfaces.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	authHandler := NewAuthHandler(svc.Auth, svc.PasswordReset, cfg)
	userHandler := NewUserHandler(svc.User)

	requireAuth := middleware.AuthMiddleware(svc.Token, userRepo, photoStore)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", limitMiddleware, authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/current", requireAuth, middleware.AuthorizeAll(), authHandler.Current)
		auth.PATCH("/profile", requireAuth, middleware.AuthorizeAll(), authHandler.UpdateProfile)
		auth.POST("/reset-password/request", limitMiddleware, authHandler.RequestPasswordReset)
		auth.POST("/reset-password", authHandler.ResetPassword)
	}

	users := r.Group("/api/v1/users", requireAuth, middleware.AuthorizeAdmin())
	{
		users.GET("", userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
		users.GET("/:userID", userHandler.GetUser)
		users.PUT("/:userID", userHandler.UpdateUser)
		users.DELETE("/:userID", userHandler.DeleteUser)
	}
}
