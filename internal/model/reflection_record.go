package model

const (
	ReflectionPublic  = "public"  // 员工与经理可见
	ReflectionPrivate = "private" // 仅 HR 可见
)

// ReflectionRecord 压轴课完成时提交的结构化反思，创建后不可修改
// swagger:model ReflectionRecord
type ReflectionRecord struct {
	UUIDBase

	StaffID  uint `gorm:"index:idx_reflection_staff_course;type:bigint unsigned;not null" json:"staffId"`
	CourseID uint `gorm:"index:idx_reflection_staff_course;type:bigint unsigned;not null" json:"courseId"`

	Learned     string `gorm:"type:text;not null" json:"learned"`     // 学到了什么
	ValueCode   string `gorm:"size:50;not null" json:"valueCode"`     // 选定的企业价值观
	ProudMoment string `gorm:"type:text;not null" json:"proudMoment"` // 自豪时刻叙述
	Visibility  string `gorm:"size:10;default:'public'" json:"visibility"`

	Staff *User `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

func (ReflectionRecord) TableName() string {
	return "reflection_records"
}
