package admin

import (
	"net/http"

	"github.com/Hamziss/agence-immobliere/internal/common/httpx"
	"github.com/Hamziss/agence-immobliere/internal/handler"
	"github.com/gin-gonic/gin"
)

// PropertyStats 房源统计：管理员看全量，经纪人只看自己的。
func (h *StatHandler) PropertyStats(c *gin.Context) {
	stats, err := h.statUseCase.Properties(handler.ActorFromContext(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de calculer les statistiques")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats})
}
