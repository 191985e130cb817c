package admin

import (
	"net/http"
	"strconv"

	"github.com/Hamziss/agence-immobliere/internal/common/httpx"
	"github.com/Hamziss/agence-immobliere/internal/handler"
	"github.com/gin-gonic/gin"
)

// ListTrashed 软删除房源的分页列表。
func (h *PropertyManageHandler) ListTrashed(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	properties, pagination, err := h.propertyManageUseCase.ListTrashed(handler.ActorFromContext(c), page, perPage)
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de récupérer la corbeille")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       properties,
		"pagination": pagination,
	})
}

// Restore 恢复软删除的房源。
func (h *PropertyManageHandler) Restore(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bien supprimé introuvable"})
		return
	}

	property, svcErr := h.propertyManageUseCase.Restore(handler.ActorFromContext(c), uint(id))
	if svcErr != nil {
		httpx.WriteServiceError(c, svcErr, "La restauration du bien a échoué")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Bien restauré avec succès",
		"data":    property,
	})
}

// ForceDelete 物理删除房源及其图片。
func (h *PropertyManageHandler) ForceDelete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bien supprimé introuvable"})
		return
	}

	if svcErr := h.propertyManageUseCase.ForceDelete(handler.ActorFromContext(c), uint(id)); svcErr != nil {
		httpx.WriteServiceError(c, svcErr, "La suppression définitive a échoué")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bien supprimé définitivement"})
}
