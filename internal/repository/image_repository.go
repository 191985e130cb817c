package repository

import "github.com/Hamziss/agence-immobliere/internal/model"

type ImageStore interface {
	ListByProperty(propertyID uint) ([]model.Image, error)
	FindByID(id uint) (*model.Image, error)
	// CreateBatch 在一个事务内写入整批图片记录。
	// 房源当前没有任何图片时，批次的第一张自动成为主图。
	CreateBatch(propertyID uint, images []*model.Image) error
	// SetPrimary 在一个事务内取消同房源其他图片的主图标记并设置目标图片。
	SetPrimary(image *model.Image) error
	// Delete 删除图片记录。主图被删除后不自动递补。
	Delete(image *model.Image) error
	CountByProperty(propertyID uint) (int64, error)
}
