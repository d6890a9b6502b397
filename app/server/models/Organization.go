package models

import "github.com/google/uuid"

type Organization struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name    string    `gorm:"column:name"`     // 显示名称
	Website *string   `gorm:"column:website"`  // 官网地址
	Slug    *string   `gorm:"column:slug"`     // 短名称
	LogoURL *string   `gorm:"column:logo_url"` // 标志图片地址
}

func (Organization) TableName() string {
	return "organizations"
}
