package router

import (
	"github.com/Hamziss/agence-immobliere/internal/handler"
	adminhandler "github.com/Hamziss/agence-immobliere/internal/handler/admin"
	"github.com/Hamziss/agence-immobliere/internal/middleware"
	"github.com/gin-gonic/gin"
)

func registerPropertyRoutes(api *gin.RouterGroup, h *handler.PropertyHandler, statHandler *adminhandler.StatHandler) {
	props := api.Group("/properties")

	// 公开读取：匿名按游客处理，只看到已发布的房源
	props.GET("", middleware.OptionalJWTAuth(), h.List)
	props.GET("/:id", middleware.OptionalJWTAuth(), h.Get)

	// 认证路由
	authed := props.Group("")
	authed.Use(middleware.JWTAuth())
	authed.Use(middleware.UserRoleCheck())

	authed.GET("/mine", h.Mine)
	authed.GET("/stats", statHandler.PropertyStats)
	authed.POST("", h.Create)
	authed.PUT("/:id", h.Update)
	authed.DELETE("/:id", h.Delete)
	authed.POST("/:id/toggle-publish", h.TogglePublish)
}
