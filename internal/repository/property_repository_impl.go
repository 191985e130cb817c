package repository

import (
	"github.com/Hamziss/agence-immobliere/internal/model"
	"gorm.io/gorm"
)

type PropertyRepository struct {
	db *gorm.DB
}

func (r *PropertyRepository) List(filter PropertyFilter) ([]model.Property, int64, error) {
	query := r.db.Model(&model.Property{})

	if filter.OnlyPublished {
		query = query.Where("is_published = ?", true)
	}
	if filter.City != "" {
		query = query.Where("city LIKE ?", "%"+filter.City+"%")
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PriceMin != nil {
		query = query.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", *filter.PriceMax)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ? OR city LIKE ?", like, like, like)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 15
	}

	var properties []model.Property
	err := query.
		Preload("Images").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

func (r *PropertyRepository) FindByID(id uint) (*model.Property, error) {
	var p model.Property
	if err := r.db.Preload("Images").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) Create(p *model.Property) error {
	return r.db.Create(p).Error
}

func (r *PropertyRepository) UpdateByID(id uint, updates map[string]interface{}) error {
	result := r.db.Model(&model.Property{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PropertyRepository) SoftDelete(id uint) error {
	result := r.db.Delete(&model.Property{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PropertyRepository) TogglePublish(id uint) error {
	// 单条 UPDATE 完成取反，避免并发下读-改-写造成的更新丢失。
	result := r.db.Model(&model.Property{}).
		Where("id = ?", id).
		UpdateColumn("is_published", gorm.Expr("NOT is_published"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PropertyRepository) Restore(id uint) error {
	result := r.db.Unscoped().Model(&model.Property{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PropertyRepository) ForceDelete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var p model.Property
		if err := tx.Unscoped().First(&p, id).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("property_id = ?", id).Delete(&model.Image{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&p).Error
	})
}

func (r *PropertyRepository) FindTrashedByID(id uint) (*model.Property, error) {
	var p model.Property
	err := r.db.Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) ListTrashed(page, perPage int) ([]model.Property, int64, error) {
	query := r.db.Unscoped().Model(&model.Property{}).Where("deleted_at IS NOT NULL")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 15
	}

	var properties []model.Property
	err := query.
		Order("deleted_at DESC, id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

func (r *PropertyRepository) Stats(userID *uint) (*PropertyStats, error) {
	base := r.db.Model(&model.Property{})
	if userID != nil {
		base = base.Where("user_id = ?", *userID)
	}

	stats := &PropertyStats{ByType: map[string]int64{}}

	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("is_published = ?", true).Count(&stats.Published).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("status = ?", "disponible").Count(&stats.Disponible).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("status = ?", "vendu").Count(&stats.Vendu).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("status = ?", "location").Count(&stats.Location).Error; err != nil {
		return nil, err
	}

	rows := []struct {
		Type  string
		Count int64
	}{}
	if err := base.Session(&gorm.Session{}).
		Select("type, count(*) as count").
		Group("type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.ByType[row.Type] = row.Count
	}

	return stats, nil
}
