package model

import (
	"time"
)

type UserRole string

const (
	Staff   UserRole = "staff"
	Manager UserRole = "manager"
	Admin   UserRole = "admin"
)

// User 员工账号
// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"size:20;default:'staff'" json:"role"`
	Position  string    `gorm:"size:100" json:"position"` // 岗位，如 line cook / server
	Site      string    `gorm:"size:100" json:"site"`     // 所属门店
	Avatar    string    `gorm:"size:255" json:"avatar"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
