package handler

import (
	"net/http"

	"github.com/Hamziss/agence-immobliere/internal/common/httpx"
	"github.com/gin-gonic/gin"
)

// ListForProperty 返回房源图片，主图排在最前。
func (h *ImageHandler) ListForProperty(c *gin.Context) {
	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bien introuvable"})
		return
	}

	images, err := h.imageUseCase.ListForProperty(ActorFromContext(c), propertyID)
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de récupérer les images")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": images})
}

// Upload 批量上传图片，表单字段名为 images[]。
func (h *ImageHandler) Upload(c *gin.Context) {
	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bien introuvable"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formulaire invalide"})
		return
	}

	files := form.File["images[]"]
	if len(files) == 0 {
		files = form.File["images"]
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez sélectionner au moins une image"})
		return
	}

	images, err := h.imageUseCase.UploadBatch(ActorFromContext(c), propertyID, files)
	if err != nil {
		httpx.WriteServiceError(c, err, "Le téléversement a échoué, veuillez réessayer")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Images téléversées avec succès",
		"data":    images,
	})
}

// SetPrimary 将图片设为主图，同房源其余图片被取消标记。
func (h *ImageHandler) SetPrimary(c *gin.Context) {
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image introuvable"})
		return
	}

	image, err := h.imageUseCase.SetPrimary(ActorFromContext(c), imageID)
	if err != nil {
		httpx.WriteServiceError(c, err, "La définition de l'image principale a échoué")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Image principale définie",
		"data":    image,
	})
}

func (h *ImageHandler) Delete(c *gin.Context) {
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image introuvable"})
		return
	}

	if err := h.imageUseCase.Delete(ActorFromContext(c), imageID); err != nil {
		httpx.WriteServiceError(c, err, "La suppression de l'image a échoué")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image supprimée avec succès"})
}
