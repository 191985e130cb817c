package consts

// PropertyType 房源类型。
type PropertyType string

const (
	TypeAppartement     PropertyType = "appartement"
	TypeVilla           PropertyType = "villa"
	TypeTerrain         PropertyType = "terrain"
	TypeBureau          PropertyType = "bureau"
	TypeLocalCommercial PropertyType = "local_commercial"
)

// PropertyStatus 房源状态。
type PropertyStatus string

const (
	StatusDisponible PropertyStatus = "disponible"
	StatusVendu      PropertyStatus = "vendu"
	StatusLocation   PropertyStatus = "location"
)

// TypeLabels 类型到展示名的映射，用于自动生成标题。
var TypeLabels = map[PropertyType]string{
	TypeAppartement:     "Appartement",
	TypeVilla:           "Villa",
	TypeTerrain:         "Terrain",
	TypeBureau:          "Bureau",
	TypeLocalCommercial: "Local Commercial",
}

// RoomsApplicable 判断某类型是否按房间数展示（terrain 和 local_commercial 不按房间数）。
func RoomsApplicable(t PropertyType) bool {
	switch t {
	case TypeAppartement, TypeVilla, TypeBureau:
		return true
	}
	return false
}

// ValidPropertyType 判断类型取值是否合法。
func ValidPropertyType(t PropertyType) bool {
	_, ok := TypeLabels[t]
	return ok
}

// ValidPropertyStatus 判断状态取值是否合法。
func ValidPropertyStatus(s PropertyStatus) bool {
	switch s {
	case StatusDisponible, StatusVendu, StatusLocation:
		return true
	}
	return false
}
