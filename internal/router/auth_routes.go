package router

import (
	"github.com/Hamziss/agence-immobliere/internal/handler"
	"github.com/Hamziss/agence-immobliere/internal/middleware"
	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *handler.AuthHandler) {
	api.POST("/register", authLimiter, h.Register)
	api.POST("/login", authLimiter, h.Login)

	api.GET("/me", middleware.JWTAuth(), middleware.UserRoleCheck(), h.Me)
	api.POST("/logout", middleware.JWTAuth(), h.Logout)
}
