package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction 交易记录模型
//
// 类别只是普通字符串：写入时不校验是否在类别表中，未知类别在前端
// 回退到默认图标和颜色展示。金额和描述的业务约束（金额为正、描述至
// 少两个字符）由表单负责，存储层不做限制。
type Transaction struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Description string         `json:"description" gorm:"size:255;not null"`
	Amount      float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Category    string         `json:"category" gorm:"size:50;not null"`
	Date        time.Time      `json:"date" gorm:"not null;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}
