package router

import (
	"github.com/Hamziss/agence-immobliere/internal/handler"
	adminhandler "github.com/Hamziss/agence-immobliere/internal/handler/admin"
	"github.com/Hamziss/agence-immobliere/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler           *handler.AuthHandler
	propertyHandler       *handler.PropertyHandler
	imageHandler          *handler.ImageHandler
	propertyManageHandler *adminhandler.PropertyManageHandler
	statHandler           *adminhandler.StatHandler
}

func NewRouter(
	authHandler *handler.AuthHandler,
	propertyHandler *handler.PropertyHandler,
	imageHandler *handler.ImageHandler,
	propertyManageHandler *adminhandler.PropertyManageHandler,
	statHandler *adminhandler.StatHandler,
) *Router {
	return &Router{
		authHandler:           authHandler,
		propertyHandler:       propertyHandler,
		imageHandler:          imageHandler,
		propertyManageHandler: propertyManageHandler,
		statHandler:           statHandler,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware())

	// 认证限流：登录与注册共用同一个实例
	authLimiter := middleware.AuthRateLimit()

	registerAuthRoutes(api, authLimiter, rt.authHandler)
	registerPropertyRoutes(api, rt.propertyHandler, rt.statHandler)
	registerImageRoutes(api, rt.imageHandler)
	registerAdminRoutes(api, rt.propertyManageHandler)
}
