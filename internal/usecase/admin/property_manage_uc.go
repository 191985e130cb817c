package admin

import (
	"errors"
	"log"

	"github.com/Hamziss/agence-immobliere/internal/common"
	"github.com/Hamziss/agence-immobliere/internal/model"
	"github.com/Hamziss/agence-immobliere/internal/policy"
	"gorm.io/gorm"
)

// ListTrashed 分页返回软删除的房源，仅管理员可用。
func (c *PropertyManageUseCase) ListTrashed(actor *policy.Actor, page, perPage int) ([]model.Property, common.Pagination, error) {
	if !policy.CanRestore(actor, nil) {
		return nil, common.Pagination{}, common.NewForbiddenError("Accès réservé aux administrateurs")
	}

	page, perPage = common.ClampPage(page, perPage)
	properties, total, err := c.propertyStore.ListTrashed(page, perPage)
	if err != nil {
		log.Printf("List trashed properties error: %v\n", err)
		return nil, common.Pagination{}, common.NewInternalError("Impossible de récupérer la corbeille")
	}

	return properties, common.NewPagination(page, perPage, total), nil
}

// Restore 恢复软删除的房源。房源未被删除或不存在时返回 not_found。
func (c *PropertyManageUseCase) Restore(actor *policy.Actor, id uint) (*model.Property, error) {
	if !policy.CanRestore(actor, nil) {
		return nil, common.NewForbiddenError("Accès réservé aux administrateurs")
	}

	if _, err := c.propertyStore.FindTrashedByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Bien supprimé introuvable")
		}
		log.Printf("Find trashed property error: %v\n", err)
		return nil, common.NewInternalError("Impossible de récupérer le bien")
	}

	if err := c.propertyStore.Restore(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Bien supprimé introuvable")
		}
		log.Printf("Restore property error: %v\n", err)
		return nil, common.NewInternalError("La restauration du bien a échoué")
	}

	property, err := c.propertyStore.FindByID(id)
	if err != nil {
		log.Printf("Reload restored property error: %v\n", err)
		return nil, common.NewInternalError("Impossible de récupérer le bien")
	}
	return property, nil
}

// ForceDelete 物理删除房源：先在事务内删除记录，成功后再清理磁盘文件。
func (c *PropertyManageUseCase) ForceDelete(actor *policy.Actor, id uint) error {
	if !policy.CanForceDelete(actor, nil) {
		return common.NewForbiddenError("Accès réservé aux administrateurs")
	}

	if _, err := c.propertyStore.FindTrashedByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("Bien supprimé introuvable")
		}
		log.Printf("Find trashed property error: %v\n", err)
		return common.NewInternalError("Impossible de récupérer le bien")
	}

	// 先收集文件路径，记录删除后文件路径无处可查。
	images, err := c.imageStore.ListByProperty(id)
	if err != nil {
		log.Printf("List property images error: %v\n", err)
		return common.NewInternalError("Impossible de récupérer les images")
	}

	if err := c.propertyStore.ForceDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("Bien supprimé introuvable")
		}
		log.Printf("Force delete property error: %v\n", err)
		return common.NewInternalError("La suppression définitive a échoué")
	}

	for _, image := range images {
		if err := c.storageService.Delete(image.Path); err != nil {
			log.Printf("Delete image file error: %v\n", err)
		}
	}

	return nil
}
