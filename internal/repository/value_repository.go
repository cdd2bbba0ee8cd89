package repository

import (
	"resto_ops_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ValueRepository struct {
	DB *gorm.DB
}

func NewValueRepository(db *gorm.DB) *ValueRepository {
	return &ValueRepository{DB: db}
}

func (r *ValueRepository) ListEnabled() ([]model.CompanyValue, error) {
	var values []model.CompanyValue
	err := r.DB.Where("enabled = ?", true).Order("`order`").Find(&values).Error
	return values, err
}

func (r *ValueRepository) FindByCode(code string) (*model.CompanyValue, error) {
	var value model.CompanyValue
	err := r.DB.Where("code = ? AND enabled = ?", code, true).First(&value).Error
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// CreateAcknowledgment 重复确认是无害的，冲突直接忽略
func (r *ValueRepository) CreateAcknowledgment(staffID uint) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.ValueAcknowledgment{StaffID: staffID}).Error
}

func (r *ValueRepository) HasAcknowledged(staffID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ValueAcknowledgment{}).
		Where("staff_id = ?", staffID).Count(&count).Error
	return count > 0, err
}
