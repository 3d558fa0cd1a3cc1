package models

import (
	"time"

	"gorm.io/gorm"
)

// Budget 类别预算模型
//
// category 不建唯一索引：每个类别至多一条预算的约束由 upsert 接口
// 以 category 为键保证，而不是表结构。
type Budget struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Category  string         `json:"category" gorm:"size:50;not null;index"`
	Amount    float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Budget) TableName() string {
	return "budgets"
}
