package app

import (
	"errors"
	"log"

	"github.com/Hamziss/agence-immobliere/internal/common"
	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/Hamziss/agence-immobliere/internal/model"
	"github.com/Hamziss/agence-immobliere/internal/policy"
	"github.com/Hamziss/agence-immobliere/internal/repository"
	"gorm.io/gorm"
)

// ListPropertiesInput 列表请求参数，未认证或 guest 的请求者强制只看已发布。
type ListPropertiesInput struct {
	City          string
	Type          consts.PropertyType
	Status        consts.PropertyStatus
	PriceMin      *float64
	PriceMax      *float64
	Search        string
	OnlyPublished bool
	Page          int
	PerPage       int
}

// CreatePropertyInput 创建房源的输入。标题自动生成，不接受外部传入。
type CreatePropertyInput struct {
	Type        consts.PropertyType
	Rooms       *int
	Surface     float64
	Price       float64
	City        string
	District    string
	Description string
	Status      consts.PropertyStatus
	IsPublished bool
}

// UpdatePropertyInput 部分更新：nil 字段保持原值。
type UpdatePropertyInput struct {
	Type        *consts.PropertyType
	Rooms       *int
	Surface     *float64
	Price       *float64
	City        *string
	District    *string
	Description *string
	Status      *consts.PropertyStatus
	IsPublished *bool
}

// List 返回请求者可见的房源分页。
// guest 与匿名请求在查询执行前被强制加上“仅已发布”的过滤，
// 未发布的房源既不出现在结果里，也不计入总数。
func (c *PropertyUseCase) List(actor *policy.Actor, input ListPropertiesInput) ([]model.Property, common.Pagination, error) {
	page, perPage := common.ClampPage(input.Page, input.PerPage)

	onlyPublished := input.OnlyPublished
	if actor.IsGuestOrAnonymous() {
		onlyPublished = true
	}

	filter := repository.PropertyFilter{
		City:          input.City,
		Type:          input.Type,
		Status:        input.Status,
		PriceMin:      input.PriceMin,
		PriceMax:      input.PriceMax,
		Search:        input.Search,
		OnlyPublished: onlyPublished,
		Page:          page,
		PerPage:       perPage,
	}

	properties, total, err := c.propertyStore.List(filter)
	if err != nil {
		log.Printf("List properties error: %v\n", err)
		return nil, common.Pagination{}, common.NewInternalError("Impossible de récupérer la liste des biens")
	}

	return properties, common.NewPagination(page, perPage, total), nil
}

// Mine 返回请求者自己的房源（含未发布）。
func (c *PropertyUseCase) Mine(actor *policy.Actor, page, perPage int) ([]model.Property, common.Pagination, error) {
	if actor == nil {
		return nil, common.Pagination{}, common.NewUnauthorizedError("Authentification requise")
	}

	page, perPage = common.ClampPage(page, perPage)
	filter := repository.PropertyFilter{
		UserID:  &actor.ID,
		Page:    page,
		PerPage: perPage,
	}

	properties, total, err := c.propertyStore.List(filter)
	if err != nil {
		log.Printf("List own properties error: %v\n", err)
		return nil, common.Pagination{}, common.NewInternalError("Impossible de récupérer vos biens")
	}

	return properties, common.NewPagination(page, perPage, total), nil
}

// Get 返回一个请求者可见的房源。
// 未发布房源对无权限的请求者一律报“不存在”，不暴露其存在本身。
func (c *PropertyUseCase) Get(actor *policy.Actor, id uint) (*model.Property, error) {
	property, err := c.propertyStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Bien introuvable")
		}
		log.Printf("Find property error: %v\n", err)
		return nil, common.NewInternalError("Impossible de récupérer le bien")
	}

	if !policy.CanView(actor, property) {
		return nil, common.NewNotFoundError("Bien introuvable")
	}

	return property, nil
}

// Create 创建房源。仅 admin 与 agent 可创建，所有者为请求者本人。
func (c *PropertyUseCase) Create(actor *policy.Actor, input CreatePropertyInput) (*model.Property, error) {
	if !policy.CanCreate(actor) {
		return nil, common.NewForbiddenError("Vous n'êtes pas autorisé à créer un bien")
	}

	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = consts.StatusDisponible
	}

	property := &model.Property{
		UserID:      actor.ID,
		Type:        input.Type,
		Rooms:       input.Rooms,
		Surface:     input.Surface,
		Price:       input.Price,
		City:        input.City,
		District:    input.District,
		Description: input.Description,
		Status:      status,
		IsPublished: input.IsPublished,
		Title:       model.DeriveTitle(input.Type, input.Rooms, input.Surface, input.City, input.District),
	}

	if err := c.propertyStore.Create(property); err != nil {
		log.Printf("Create property error: %v\n", err)
		return nil, common.NewInternalError("La création du bien a échoué")
	}

	return property, nil
}

// Update 部分更新房源。触碰 type/rooms/city/district 时重新生成标题。
func (c *PropertyUseCase) Update(actor *policy.Actor, id uint, input UpdatePropertyInput) (*model.Property, error) {
	property, err := c.propertyStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Bien introuvable")
		}
		log.Printf("Find property error: %v\n", err)
		return nil, common.NewInternalError("Impossible de récupérer le bien")
	}

	if !policy.CanUpdate(actor, property) {
		return nil, common.NewForbiddenError("Vous n'êtes pas autorisé à modifier ce bien")
	}

	if err := validateUpdateInput(input); err != nil {
		return nil, err
	}

	retitle := property.TitleInputsChanged(input.Type, input.Rooms, input.City, input.District) || property.Title == ""

	updates := map[string]interface{}{}
	if input.Type != nil {
		property.Type = *input.Type
		updates["type"] = *input.Type
	}
	if input.Rooms != nil {
		property.Rooms = input.Rooms
		updates["rooms"] = *input.Rooms
	}
	if input.Surface != nil {
		property.Surface = *input.Surface
		updates["surface"] = *input.Surface
	}
	if input.Price != nil {
		property.Price = *input.Price
		updates["price"] = *input.Price
	}
	if input.City != nil {
		property.City = *input.City
		updates["city"] = *input.City
	}
	if input.District != nil {
		property.District = *input.District
		updates["district"] = *input.District
	}
	if input.Description != nil {
		property.Description = *input.Description
		updates["description"] = *input.Description
	}
	if input.Status != nil {
		property.Status = *input.Status
		updates["status"] = *input.Status
	}
	if input.IsPublished != nil {
		property.IsPublished = *input.IsPublished
		updates["is_published"] = *input.IsPublished
	}

	if retitle {
		property.Title = model.DeriveTitle(property.Type, property.Rooms, property.Surface, property.City, property.District)
		updates["title"] = property.Title
	}

	if len(updates) == 0 {
		return property, nil
	}

	if err := c.propertyStore.UpdateByID(id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Bien introuvable")
		}
		log.Printf("Update property error: %v\n", err)
		return nil, common.NewInternalError("La modification du bien a échoué")
	}

	return property, nil
}

// Delete 软删除房源（可由管理员恢复）。
func (c *PropertyUseCase) Delete(actor *policy.Actor, id uint) error {
	property, err := c.propertyStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("Bien introuvable")
		}
		log.Printf("Find property error: %v\n", err)
		return common.NewInternalError("Impossible de récupérer le bien")
	}

	if !policy.CanDelete(actor, property) {
		return common.NewForbiddenError("Vous n'êtes pas autorisé à supprimer ce bien")
	}

	if err := c.propertyStore.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("Bien introuvable")
		}
		log.Printf("Soft delete property error: %v\n", err)
		return common.NewInternalError("La suppression du bien a échoué")
	}

	return nil
}

// TogglePublish 原子翻转发布状态并返回更新后的房源。
func (c *PropertyUseCase) TogglePublish(actor *policy.Actor, id uint) (*model.Property, error) {
	property, err := c.propertyStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Bien introuvable")
		}
		log.Printf("Find property error: %v\n", err)
		return nil, common.NewInternalError("Impossible de récupérer le bien")
	}

	if !policy.CanUpdate(actor, property) {
		return nil, common.NewForbiddenError("Vous n'êtes pas autorisé à modifier ce bien")
	}

	// 翻转在存储层单条 SQL 内完成，这里不做“取反后写回”。
	if err := c.propertyStore.TogglePublish(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Bien introuvable")
		}
		log.Printf("Toggle publish error: %v\n", err)
		return nil, common.NewInternalError("Le changement de statut de publication a échoué")
	}

	property, err = c.propertyStore.FindByID(id)
	if err != nil {
		log.Printf("Reload property error: %v\n", err)
		return nil, common.NewInternalError("Impossible de récupérer le bien")
	}

	return property, nil
}

func validateCreateInput(input CreatePropertyInput) error {
	if !consts.ValidPropertyType(input.Type) {
		return common.NewValidationError("Type de bien invalide")
	}
	if input.Status != "" && !consts.ValidPropertyStatus(input.Status) {
		return common.NewValidationError("Statut de bien invalide")
	}
	if input.Surface <= 0 {
		return common.NewValidationError("La surface doit être strictement positive")
	}
	if input.Price < 0 {
		return common.NewValidationError("Le prix ne peut pas être négatif")
	}
	if input.Rooms != nil && *input.Rooms <= 0 {
		return common.NewValidationError("Le nombre de pièces doit être strictement positif")
	}
	if input.City == "" {
		return common.NewValidationError("La ville est requise")
	}
	return nil
}

func validateUpdateInput(input UpdatePropertyInput) error {
	if input.Type != nil && !consts.ValidPropertyType(*input.Type) {
		return common.NewValidationError("Type de bien invalide")
	}
	if input.Status != nil && !consts.ValidPropertyStatus(*input.Status) {
		return common.NewValidationError("Statut de bien invalide")
	}
	if input.Surface != nil && *input.Surface <= 0 {
		return common.NewValidationError("La surface doit être strictement positive")
	}
	if input.Price != nil && *input.Price < 0 {
		return common.NewValidationError("Le prix ne peut pas être négatif")
	}
	if input.Rooms != nil && *input.Rooms <= 0 {
		return common.NewValidationError("Le nombre de pièces doit être strictement positif")
	}
	if input.City != nil && *input.City == "" {
		return common.NewValidationError("La ville est requise")
	}
	return nil
}
