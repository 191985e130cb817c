package handler

import (
	"net/http"
	"strconv"

	"github.com/Hamziss/agence-immobliere/internal/common/httpx"
	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/Hamziss/agence-immobliere/internal/usecase/app"
	"github.com/gin-gonic/gin"
)

// List 房源列表，匿名可访问。可见性由用例层强制。
func (h *PropertyHandler) List(c *gin.Context) {
	page, perPage := parsePageQuery(c)

	input := app.ListPropertiesInput{
		City:          c.Query("city"),
		Type:          consts.PropertyType(c.Query("type")),
		Status:        consts.PropertyStatus(c.Query("status")),
		Search:        c.Query("search"),
		OnlyPublished: c.Query("published") == "true",
		Page:          page,
		PerPage:       perPage,
	}

	if v := c.Query("price_min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			input.PriceMin = &f
		}
	}
	if v := c.Query("price_max"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			input.PriceMax = &f
		}
	}

	properties, pagination, err := h.propertyUseCase.List(ActorFromContext(c), input)
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de récupérer la liste des biens")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       properties,
		"pagination": pagination,
	})
}

// Mine 当前用户的房源，含未发布。
func (h *PropertyHandler) Mine(c *gin.Context) {
	page, perPage := parsePageQuery(c)

	properties, pagination, err := h.propertyUseCase.Mine(ActorFromContext(c), page, perPage)
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de récupérer vos biens")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       properties,
		"pagination": pagination,
	})
}

func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bien introuvable"})
		return
	}

	property, err := h.propertyUseCase.Get(ActorFromContext(c), id)
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de récupérer le bien")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": property})
}

func (h *PropertyHandler) Create(c *gin.Context) {
	var req struct {
		Type        string  `json:"type" binding:"required"`
		Rooms       *int    `json:"rooms"`
		Surface     float64 `json:"surface" binding:"required"`
		Price       float64 `json:"price" binding:"required"`
		City        string  `json:"city" binding:"required"`
		District    string  `json:"district"`
		Description string  `json:"description"`
		Status      string  `json:"status"`
		IsPublished bool    `json:"is_published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètres invalides"})
		return
	}

	property, err := h.propertyUseCase.Create(ActorFromContext(c), app.CreatePropertyInput{
		Type:        consts.PropertyType(req.Type),
		Rooms:       req.Rooms,
		Surface:     req.Surface,
		Price:       req.Price,
		City:        req.City,
		District:    req.District,
		Description: req.Description,
		Status:      consts.PropertyStatus(req.Status),
		IsPublished: req.IsPublished,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "La création du bien a échoué")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Bien créé avec succès",
		"data":    property,
	})
}

func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bien introuvable"})
		return
	}

	var req struct {
		Type        *string  `json:"type"`
		Rooms       *int     `json:"rooms"`
		Surface     *float64 `json:"surface"`
		Price       *float64 `json:"price"`
		City        *string  `json:"city"`
		District    *string  `json:"district"`
		Description *string  `json:"description"`
		Status      *string  `json:"status"`
		IsPublished *bool    `json:"is_published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètres invalides"})
		return
	}

	input := app.UpdatePropertyInput{
		Rooms:       req.Rooms,
		Surface:     req.Surface,
		Price:       req.Price,
		City:        req.City,
		District:    req.District,
		Description: req.Description,
		IsPublished: req.IsPublished,
	}
	if req.Type != nil {
		t := consts.PropertyType(*req.Type)
		input.Type = &t
	}
	if req.Status != nil {
		s := consts.PropertyStatus(*req.Status)
		input.Status = &s
	}

	property, err := h.propertyUseCase.Update(ActorFromContext(c), id, input)
	if err != nil {
		httpx.WriteServiceError(c, err, "La modification du bien a échoué")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Bien modifié avec succès",
		"data":    property,
	})
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bien introuvable"})
		return
	}

	if err := h.propertyUseCase.Delete(ActorFromContext(c), id); err != nil {
		httpx.WriteServiceError(c, err, "La suppression du bien a échoué")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bien supprimé avec succès"})
}

// TogglePublish 原子翻转发布状态，返回翻转后的房源。
func (h *PropertyHandler) TogglePublish(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bien introuvable"})
		return
	}

	property, err := h.propertyUseCase.TogglePublish(ActorFromContext(c), id)
	if err != nil {
		httpx.WriteServiceError(c, err, "Le changement de statut de publication a échoué")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Statut de publication modifié",
		"data":    property,
	})
}
