package model

import (
	"time"
)

// Shift 排班条目
// swagger:model Shift
type Shift struct {
	BaseModel
	StaffID  uint      `gorm:"index;type:bigint unsigned;not null" json:"staffId"`
	Role     string    `gorm:"size:100" json:"role"` // 当班岗位
	StartsAt time.Time `gorm:"index;not null" json:"startsAt"`
	EndsAt   time.Time `gorm:"not null" json:"endsAt"`
	Notes    string    `gorm:"size:255" json:"notes"`

	Staff *User `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

func (Shift) TableName() string {
	return "shifts"
}
