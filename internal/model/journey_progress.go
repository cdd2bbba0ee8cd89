package model

import (
	"time"
)

// JourneyStep 入职旅程里程碑，按固定顺序推进
type JourneyStep string

const (
	JourneyStepValues        JourneyStep = "values"
	JourneyStepHygiene       JourneyStep = "hygiene"
	JourneyStepCertification JourneyStep = "certification"
)

// JourneyStepOrder 里程碑在序列中的下标，未知值返回 -1
func JourneyStepOrder(s JourneyStep) int {
	switch s {
	case JourneyStepValues:
		return 0
	case JourneyStepHygiene:
		return 1
	case JourneyStepCertification:
		return 2
	}
	return -1
}

// JourneyProgress 每个员工一条的跨模块入职状态。
// currentStep 只进不退，是历史棘轮而非实时合规指标。
// swagger:model JourneyProgress
type JourneyProgress struct {
	BaseModel

	StaffID          uint        `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"staffId"`
	ValuesCompleted  bool        `gorm:"default:false" json:"valuesCompleted"`
	HygieneCompleted bool        `gorm:"default:false" json:"hygieneCompleted"`
	CurrentStep      JourneyStep `gorm:"size:20;default:'values'" json:"currentStep"`
	LastUpdated      time.Time   `json:"lastUpdated"`
}

func (JourneyProgress) TableName() string {
	return "journey_progress"
}
