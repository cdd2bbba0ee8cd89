package model

// CompanyValue 企业价值观条目，反思提交时从中选择
// swagger:model CompanyValue
type CompanyValue struct {
	BaseModel
	Code        string `gorm:"size:50;unique;not null" json:"code"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Order       int    `gorm:"default:0" json:"order"`
	Enabled     bool   `gorm:"default:true" json:"enabled"`
}

func (CompanyValue) TableName() string {
	return "company_values"
}

// ValueAcknowledgment 员工对价值观手册的确认记录，触发旅程 values 里程碑
// swagger:model ValueAcknowledgment
type ValueAcknowledgment struct {
	BaseModel
	StaffID uint `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"staffId"`
}

func (ValueAcknowledgment) TableName() string {
	return "value_acknowledgments"
}
