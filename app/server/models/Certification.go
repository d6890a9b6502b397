package models

import (
	"github.com/google/uuid"
	"time"
)

type Certification struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	SerialID       string    `gorm:"column:serial_id;uniqueIndex"`          // 证书编号，形如 HS-C-2025-000001
	OrganizationID uuid.UUID `gorm:"column:organization_id;type:uuid;index"` // 所属机构
	Status         string    `gorm:"column:status"`                          // 原表里大小写不固定，读取时统一转换

	// 证书详情
	Tier              *string    `gorm:"column:tier"`
	StandardVersion   *string    `gorm:"column:standard_version"`
	DisclosureSummary *string    `gorm:"column:disclosure_summary"`
	SealURL           *string    `gorm:"column:seal_url"`
	IssuedAt          time.Time  `gorm:"column:issued_at"`
	ExpiresAt         *time.Time `gorm:"column:expires_at"` // NULL 表示长期有效

	// 连接模型时使用，没有对应机构时为 nil
	Organization *Organization `gorm:"foreignKey:OrganizationID"`
}

func (Certification) TableName() string {
	return "certifications"
}

func (c *Certification) ValidAt(now time.Time, checkExpiry bool) bool {
	return validAt(c.Status, c.ExpiresAt, now, checkExpiry)
}
