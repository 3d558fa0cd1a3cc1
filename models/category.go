package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 消费类别（启动时初始化，供表单下拉使用）
type Category struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Sort      int            `json:"sort" gorm:"default:0;index"`
	Color     string         `json:"color" gorm:"size:20;default:#64748b"` // 颜色代码，如 #ef4444
	Icon      string         `json:"icon" gorm:"size:30;default:piggy-bank"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Category) TableName() string {
	return "categories"
}

// 类别常量
const (
	CategoryDiningOut      = "Dining Out"
	CategoryShopping       = "Shopping"
	CategoryTransportation = "Transportation"
	CategoryRent           = "Rent"
	CategoryUtilities      = "Utilities"
	CategoryEntertainment  = "Entertainment"
	CategoryHealthcare     = "Healthcare"
	CategoryGroceries      = "Groceries"
	CategoryOther          = "Other"
)

// 未知类别的兜底展示
const (
	DefaultIcon  = "piggy-bank"
	DefaultColor = "#64748b"
)

// GetCategories 获取所有消费类别
func GetCategories() []string {
	return []string{
		CategoryDiningOut,
		CategoryShopping,
		CategoryTransportation,
		CategoryRent,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryGroceries,
		CategoryOther,
	}
}

var categoryIcons = map[string]string{
	CategoryDiningOut:      "utensils",
	CategoryShopping:       "shopping-cart",
	CategoryTransportation: "car",
	CategoryRent:           "home",
	CategoryUtilities:      "home",
	CategoryEntertainment:  "coffee",
	CategoryHealthcare:     "heart",
	CategoryGroceries:      "shopping-cart",
	CategoryOther:          "piggy-bank",
}

var categoryColors = map[string]string{
	CategoryDiningOut:      "#f97316", // 橙色
	CategoryShopping:       "#3b82f6", // 蓝色
	CategoryTransportation: "#22c55e", // 绿色
	CategoryRent:           "#ef4444", // 红色
	CategoryUtilities:      "#a855f7", // 紫色
	CategoryEntertainment:  "#eab308", // 黄色
	CategoryHealthcare:     "#ec4899", // 粉色
	CategoryGroceries:      "#84cc16", // 青柠色
	CategoryOther:          "#64748b", // 灰色
}

// IconFor 按类别名查图标，未知类别返回默认图标
func IconFor(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return DefaultIcon
}

// ColorFor 按类别名查颜色，未知类别返回默认灰色
func ColorFor(category string) string {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return DefaultColor
}
