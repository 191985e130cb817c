package repository

import (
	"github.com/Hamziss/agence-immobliere/internal/consts"
	"github.com/Hamziss/agence-immobliere/internal/model"
)

// PropertyFilter 房源列表的查询条件。
// OnlyPublished 为强制过滤：游客与匿名请求在进入查询前即被置为 true。
type PropertyFilter struct {
	City          string
	Type          consts.PropertyType
	Status        consts.PropertyStatus
	PriceMin      *float64
	PriceMax      *float64
	Search        string
	OnlyPublished bool
	UserID        *uint
	Page          int
	PerPage       int
}

// PropertyStats 房源统计。
type PropertyStats struct {
	Total      int64            `json:"total"`
	Published  int64            `json:"published"`
	Disponible int64            `json:"disponible"`
	Vendu      int64            `json:"vendu"`
	Location   int64            `json:"location"`
	ByType     map[string]int64 `json:"by_type"`
}

type PropertyStore interface {
	// List 返回一页房源与总数。软删除的房源永远不出现。
	List(filter PropertyFilter) ([]model.Property, int64, error)
	FindByID(id uint) (*model.Property, error)
	Create(p *model.Property) error
	// UpdateByID 仅更新给定字段（部分更新语义）。
	UpdateByID(id uint, updates map[string]interface{}) error
	SoftDelete(id uint) error
	// TogglePublish 在单条 SQL 中原子翻转发布状态。
	TogglePublish(id uint) error
	// Restore 恢复软删除的房源；非删除状态或不存在时返回 gorm.ErrRecordNotFound。
	Restore(id uint) error
	// ForceDelete 物理删除房源及其图片记录（同一事务）。
	ForceDelete(id uint) error
	FindTrashedByID(id uint) (*model.Property, error)
	ListTrashed(page, perPage int) ([]model.Property, int64, error)
	Stats(userID *uint) (*PropertyStats, error)
}
