package model

const (
	CourseTypeReading = "reading"
	CourseTypeQuiz    = "quiz"
)

// Course 培训课程目录条目，由内容管理员维护，进度引擎只读
// swagger:model Course
type Course struct {
	BaseModel

	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Tier        Tier   `gorm:"size:20;index;not null" json:"tier"`
	ContentType string `gorm:"size:20;not null" json:"contentType"` // reading / quiz
	OrderIndex  int    `gorm:"default:0" json:"orderIndex"`         // 等级内排序
	IsMandatory bool   `gorm:"default:true" json:"isMandatory"`
	IsCapstone  bool   `gorm:"default:false" json:"isCapstone"` // 需要反思提交的压轴课
	Body        string `gorm:"type:text" json:"body"`           // 阅读型课程正文
	IsPublished bool   `gorm:"default:false" json:"isPublished"`

	// 及格线覆盖值，0 表示使用等级默认值
	PassMarkOverride int `gorm:"default:0" json:"passMarkOverride"`

	Questions []CourseQuestion `gorm:"foreignKey:CourseID" json:"questions,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// PassMark 课程生效的及格线
func (c *Course) PassMark() int {
	if c.PassMarkOverride > 0 {
		return c.PassMarkOverride
	}
	return TierPassMark(c.Tier)
}

// CourseQuestion 单选题，正确答案为选项下标
// swagger:model CourseQuestion
type CourseQuestion struct {
	BaseModel

	CourseID      uint   `gorm:"index;type:bigint unsigned" json:"courseId"`
	Stem          string `gorm:"type:text;not null" json:"stem"`
	Options       string `gorm:"type:json" json:"options"` // JSON array of option texts
	CorrectOption int    `gorm:"not null" json:"-"`        // 不下发给前端
	OrderIndex    int    `gorm:"default:0" json:"orderIndex"`
}

func (CourseQuestion) TableName() string {
	return "course_questions"
}
