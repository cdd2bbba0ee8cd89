package model

import (
	"time"
)

// CertificateValidity 有效期分类，读取时按当前时间推导，不落库
type CertificateValidity string

const (
	CertificateValid        CertificateValidity = "valid"
	CertificateExpiringSoon CertificateValidity = "expiring_soon"
	CertificateExpired      CertificateValidity = "expired"
)

// 有效期 12 个月，到期前 30 天进入 expiring_soon
const (
	CertificateValidityMonths = 12
	CertificateExpiryWarning  = 30 * 24 * time.Hour
)

// Certificate 每个 (员工, 等级) 只签发一次；过期证书保留不删，仅在查询时分类
// swagger:model Certificate
type Certificate struct {
	BaseModel

	StaffID  uint `gorm:"index:idx_staff_tier,unique;type:bigint unsigned;not null" json:"staffId"`
	Tier     Tier `gorm:"index:idx_staff_tier,unique;size:20;not null" json:"tier"`
	TierName string `gorm:"size:100" json:"tierName"`

	CertificateNumber string    `gorm:"size:100;unique;not null" json:"certificateNumber"`
	IssuedAt          time.Time `gorm:"not null" json:"issuedAt"`
	ExpiresAt         time.Time `gorm:"not null" json:"expiresAt"`
	ScoreSnapshot     int       `gorm:"default:0" json:"scoreSnapshot"` // 签发依据的测验成绩快照

	Staff *User `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

func (Certificate) TableName() string {
	return "certificates"
}

// ValidityAt 按给定时刻分类有效期，随 now 前移只会 valid → expiring_soon → expired 单向变化
func (c *Certificate) ValidityAt(now time.Time) CertificateValidity {
	if now.After(c.ExpiresAt) {
		return CertificateExpired
	}
	if c.ExpiresAt.Sub(now) <= CertificateExpiryWarning {
		return CertificateExpiringSoon
	}
	return CertificateValid
}
