package handler

import (
	"net/http"

	"github.com/Hamziss/agence-immobliere/internal/common/httpx"
	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/gin-gonic/gin"
)

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètres invalides"})
		return
	}

	role := consts.Role(req.Role)
	if req.Role == "" {
		role = consts.RoleGuest
	}

	user, err := h.authUseCase.Register(req.Name, req.Email, req.Password, role)
	if err != nil {
		httpx.WriteServiceError(c, err, "L'inscription a échoué, veuillez réessayer")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Inscription réussie",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètres invalides"})
		return
	}

	token, user, err := h.authUseCase.Login(req.Email, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "La connexion a échoué, veuillez réessayer")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Connexion réussie",
		"token":   token,
		"user":    user,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := c.Get("id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentification requise"})
		return
	}
	uid, ok := userID.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Jeton invalide"})
		return
	}

	user, err := h.authUseCase.Me(uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de récupérer l'utilisateur")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout 无服务端会话状态，客户端丢弃令牌即可。
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Déconnexion réussie"})
}
