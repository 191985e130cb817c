package repository

import (
	"github.com/Hamziss/agence-immobliere/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ImageRepository struct {
	db *gorm.DB
}

func (r *ImageRepository) ListByProperty(propertyID uint) ([]model.Image, error) {
	var images []model.Image
	err := r.db.
		Where("property_id = ?", propertyID).
		Order("is_primary DESC, created_at ASC, id ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) FindByID(id uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) CreateBatch(propertyID uint, images []*model.Image) error {
	if len(images) == 0 {
		return nil
	}
	// 计数与插入放进同一事务，避免并发上传时出现两张“第一张主图”。
	// 图片为空时没有可锁的行，先锁住父房源行，让并发的首批上传相互串行。
	return r.db.Transaction(func(tx *gorm.DB) error {
		var property model.Property
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").First(&property, propertyID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Image{}).Where("property_id = ?", propertyID).Count(&count).Error; err != nil {
			return err
		}

		for i, image := range images {
			image.PropertyID = propertyID
			image.IsPrimary = count == 0 && i == 0
			if err := tx.Create(image).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ImageRepository) SetPrimary(image *model.Image) error {
	// 先全部取消再设置目标，一个事务内完成，保证同一房源至多一张主图。
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Image{}).
			Where("property_id = ? AND id != ?", image.PropertyID, image.ID).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		result := tx.Model(&model.Image{}).
			Where("id = ?", image.ID).
			Update("is_primary", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *ImageRepository) Delete(image *model.Image) error {
	return r.db.Delete(image).Error
}

func (r *ImageRepository) CountByProperty(propertyID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Image{}).Where("property_id = ?", propertyID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
