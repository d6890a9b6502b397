package models

import "time"

// CertificateView 对应只读视图 certificates ，状态已经被视图转为小写
type CertificateView struct {
	Serial    string     `gorm:"column:serial;primaryKey"`
	OrgName   string     `gorm:"column:org_name"`
	Status    string     `gorm:"column:status"`
	IssuedAt  time.Time  `gorm:"column:issued_at"`
	ExpiresAt *time.Time `gorm:"column:expires_at"`
}

func (CertificateView) TableName() string {
	return "certificates"
}

func (c *CertificateView) ValidAt(now time.Time, checkExpiry bool) bool {
	return validAt(c.Status, c.ExpiresAt, now, checkExpiry)
}
