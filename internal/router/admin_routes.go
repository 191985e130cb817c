package router

import (
	adminhandler "github.com/Hamziss/agence-immobliere/internal/handler/admin"
	"github.com/Hamziss/agence-immobliere/internal/middleware"
	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, h *adminhandler.PropertyManageHandler) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.JWTAuth())
	adminGroup.Use(middleware.UserRoleCheck())
	adminGroup.Use(middleware.AdminCheck())

	adminGroup.GET("/properties/trashed", h.ListTrashed)
	adminGroup.POST("/properties/:id/restore", h.Restore)
	adminGroup.DELETE("/properties/:id/force", h.ForceDelete)
}
