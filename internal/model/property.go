package model

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Hamziss/agence-immobliere/internal/consts"
	"gorm.io/gorm"
)

type Property struct {
	ID          uint `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at" gorm:"index:idx_properties_created_at,sort:desc"`
	UpdatedAt   time.Time `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	UserID      uint   `json:"user_id" gorm:"not null;index"`
	Title       string `json:"title" gorm:"not null"`
	Type        consts.PropertyType `json:"type" gorm:"type:varchar(32);not null;index"`
	Rooms       *int    `json:"rooms,omitempty"`
	Surface     float64 `json:"surface" gorm:"not null"`
	Price       float64 `json:"price" gorm:"not null;index"`
	City        string  `json:"city" gorm:"not null;index"`
	District    string  `json:"district,omitempty"`
	Description string  `json:"description,omitempty" gorm:"type:text"`
	Status      consts.PropertyStatus `json:"status" gorm:"type:varchar(16);not null;default:'disponible';index"`
	IsPublished bool    `json:"is_published" gorm:"not null;default:false;index"`
	Images      []Image `json:"images,omitempty" gorm:"foreignKey:PropertyID"`
	User        *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Property) TableName() string {
	return "properties"
}

// PrimaryImage 返回当前主图；没有主图时返回 nil。
func (p *Property) PrimaryImage() *Image {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	return nil
}

// DeriveTitle 根据类型、房间数、面积、城市与街区生成标题。
// 纯函数，相同输入永远得到相同标题。
func DeriveTitle(t consts.PropertyType, rooms *int, surface float64, city, district string) string {
	label, ok := consts.TypeLabels[t]
	if !ok {
		label = capitalize(string(t))
	}

	var b strings.Builder
	b.WriteString(label)

	if rooms != nil && *rooms > 0 && consts.RoomsApplicable(t) {
		fmt.Fprintf(&b, " %d pièces", *rooms)
	}

	if surface > 0 {
		// 面积取整展示，四舍五入。
		fmt.Fprintf(&b, " - %dm²", int64(math.Round(surface)))
	}

	b.WriteString(" à ")
	b.WriteString(city)
	if district != "" {
		b.WriteString(" - ")
		b.WriteString(district)
	}

	return b.String()
}

// TitleInputsChanged 判断一次更新是否触碰了标题的派生字段。
func (p *Property) TitleInputsChanged(t *consts.PropertyType, rooms *int, city, district *string) bool {
	if t != nil && *t != p.Type {
		return true
	}
	if rooms != nil && (p.Rooms == nil || *p.Rooms != *rooms) {
		return true
	}
	if city != nil && *city != p.City {
		return true
	}
	if district != nil && *district != p.District {
		return true
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
