package repository

import (
	"resto_ops_backend/internal/model"

	"gorm.io/gorm"
)

type ReflectionRepository struct {
	DB *gorm.DB
}

func NewReflectionRepository(db *gorm.DB) *ReflectionRepository {
	return &ReflectionRepository{DB: db}
}

func (r *ReflectionRepository) Create(rec *model.ReflectionRecord) error {
	return r.DB.Create(rec).Error
}

func (r *ReflectionRepository) FindByStaffAndCourse(staffID, courseID uint) (*model.ReflectionRecord, error) {
	var rec model.ReflectionRecord
	err := r.DB.Where("staff_id = ? AND course_id = ?", staffID, courseID).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ReflectionRepository) Exists(staffID, courseID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ReflectionRecord{}).
		Where("staff_id = ? AND course_id = ?", staffID, courseID).
		Count(&count).Error
	return count > 0, err
}

// ListVisible 经理端审阅列表，private 记录只有 HR（admin）可见
func (r *ReflectionRepository) ListVisible(includePrivate bool, page, pageSize int) ([]model.ReflectionRecord, int64, error) {
	var recs []model.ReflectionRecord
	var total int64

	query := r.DB.Model(&model.ReflectionRecord{})
	if !includePrivate {
		query = query.Where("visibility = ?", model.ReflectionPublic)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Staff").Order("created_at DESC").
		Offset(offset).Limit(pageSize).Find(&recs).Error
	return recs, total, err
}
