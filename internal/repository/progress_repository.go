package repository

import (
	"errors"
	"resto_ops_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByStaffAndCourse(staffID, courseID uint) (*model.ProgressRecord, error) {
	var rec model.ProgressRecord
	err := r.DB.Where("staff_id = ? AND course_id = ?", staffID, courseID).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindOrCreate 首次交互时惰性建档。唯一索引保证并发下也只会存在一条，
// 冲突时重查已有记录。
func (r *ProgressRepository) FindOrCreate(staffID, courseID uint) (*model.ProgressRecord, error) {
	rec, err := r.FindByStaffAndCourse(staffID, courseID)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := &model.ProgressRecord{
		StaffID:  staffID,
		CourseID: courseID,
		Status:   model.ProgressNotStarted,
	}
	res := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(fresh)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return r.FindByStaffAndCourse(staffID, courseID)
	}
	return fresh, nil
}

func (r *ProgressRepository) Save(rec *model.ProgressRecord) error {
	return r.DB.Save(rec).Error
}

func (r *ProgressRepository) ListByStaff(staffID uint) ([]model.ProgressRecord, error) {
	var recs []model.ProgressRecord
	err := r.DB.Where("staff_id = ?", staffID).Find(&recs).Error
	return recs, err
}

func (r *ProgressRepository) ListByStaffAndCourses(staffID uint, courseIDs []uint) ([]model.ProgressRecord, error) {
	if len(courseIDs) == 0 {
		return []model.ProgressRecord{}, nil
	}
	var recs []model.ProgressRecord
	err := r.DB.Where("staff_id = ? AND course_id IN ?", staffID, courseIDs).Find(&recs).Error
	return recs, err
}

func (r *ProgressRepository) CountCompleted(staffID uint, courseIDs []uint) (int64, error) {
	if len(courseIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.DB.Model(&model.ProgressRecord{}).
		Where("staff_id = ? AND course_id IN ? AND status = ?", staffID, courseIDs, model.ProgressCompleted).
		Count(&count).Error
	return count, err
}
