package model

import (
	"time"
)

// TemperatureLog 合规温度记录，超出安全区间的记录会被标记
// swagger:model TemperatureLog
type TemperatureLog struct {
	BaseModel
	StaffID    uint      `gorm:"index;type:bigint unsigned;not null" json:"staffId"`
	Location   string    `gorm:"size:100;index;not null" json:"location"` // walk-in / freezer / hot-hold
	Celsius    float64   `gorm:"not null" json:"celsius"`
	RecordedAt time.Time `gorm:"index;not null" json:"recordedAt"`
	OutOfRange bool      `gorm:"default:false" json:"outOfRange"`
	PhotoURL   string    `gorm:"size:255" json:"photoUrl"` // 温度计读数照片
	Notes      string    `gorm:"size:255" json:"notes"`

	Staff *User `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

func (TemperatureLog) TableName() string {
	return "temperature_logs"
}
