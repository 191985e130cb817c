package handler

import (
	"strconv"

	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/Hamziss/agence-immobliere/internal/policy"
	"github.com/Hamziss/agence-immobliere/internal/usecase/app"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase *app.AuthUseCase
}

type PropertyHandler struct {
	propertyUseCase *app.PropertyUseCase
}

type ImageHandler struct {
	imageUseCase *app.ImageUseCase
}

func NewAuthHandler(authUseCase *app.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

func NewPropertyHandler(propertyUseCase *app.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{propertyUseCase: propertyUseCase}
}

func NewImageHandler(imageUseCase *app.ImageUseCase) *ImageHandler {
	return &ImageHandler{imageUseCase: imageUseCase}
}

// ActorFromContext 从 JWT 中间件写入的上下文字段还原请求者。
// 未认证请求返回 nil。
func ActorFromContext(c *gin.Context) *policy.Actor {
	userID, exists := c.Get("id")
	if !exists {
		return nil
	}
	uid, ok := userID.(uint)
	if !ok {
		return nil
	}

	role := consts.RoleGuest
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok && consts.ValidRole(consts.Role(s)) {
			role = consts.Role(s)
		}
	}

	return &policy.Actor{ID: uid, Role: role}
}

// parseIDParam 解析路径中的数字 ID。
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parsePageQuery 解析分页查询参数，越界值交由用例层收敛。
func parsePageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	return page, perPage
}
