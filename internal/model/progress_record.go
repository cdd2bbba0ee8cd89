package model

import (
	"time"
)

type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not_started"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressCompleted  ProgressStatus = "completed"
)

// 进度百分比仅用于展示，status 才是权威状态
const (
	ProgressPercentNone       = 0
	ProgressPercentFailed     = 50
	ProgressPercentReflecting = 90
	ProgressPercentDone       = 100
)

// ProgressRecord 每个 (员工, 课程) 至多一条，只由完成记录器修改，从不删除
// swagger:model ProgressRecord
type ProgressRecord struct {
	BaseModel

	StaffID  uint `gorm:"index:idx_staff_course,unique;type:bigint unsigned;not null" json:"staffId"`
	CourseID uint `gorm:"index:idx_staff_course,unique;type:bigint unsigned;not null" json:"courseId"`

	Status          ProgressStatus `gorm:"size:20;default:'not_started'" json:"status"`
	ProgressPercent int            `gorm:"default:0" json:"progressPercent"`
	LastQuizScore   int            `gorm:"default:0" json:"lastQuizScore"`
	AttemptCount    int            `gorm:"default:0" json:"attemptCount"`
	CompletedAt     *time.Time     `json:"completedAt,omitempty"`
}

func (ProgressRecord) TableName() string {
	return "progress_records"
}
