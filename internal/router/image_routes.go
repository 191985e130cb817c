package router

import (
	"github.com/Hamziss/agence-immobliere/internal/handler"
	"github.com/Hamziss/agence-immobliere/internal/middleware"
	"github.com/gin-gonic/gin"
)

func registerImageRoutes(api *gin.RouterGroup, h *handler.ImageHandler) {
	images := api.Group("/images")

	// 房源图片列表对匿名开放，可见性随房源走
	images.GET("/properties/:id", middleware.OptionalJWTAuth(), h.ListForProperty)

	authed := images.Group("")
	authed.Use(middleware.JWTAuth())
	authed.Use(middleware.UserRoleCheck())

	// 上传限流与上传专用的请求体上限
	uploadLimiter := middleware.UploadRateLimit()
	uploadBodyLimit := middleware.UploadBodyLimitMiddleware()

	authed.POST("/properties/:id", uploadBodyLimit, uploadLimiter, h.Upload)
	authed.POST("/:id/set-primary", h.SetPrimary)
	authed.DELETE("/:id", h.Delete)
}
