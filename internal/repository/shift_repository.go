package repository

import (
	"resto_ops_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ShiftRepository struct {
	DB *gorm.DB
}

func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{DB: db}
}

func (r *ShiftRepository) Create(shift *model.Shift) error {
	return r.DB.Create(shift).Error
}

func (r *ShiftRepository) Save(shift *model.Shift) error {
	return r.DB.Save(shift).Error
}

func (r *ShiftRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Shift{}, id).Error
}

func (r *ShiftRepository) FindByID(id uint) (*model.Shift, error) {
	var shift model.Shift
	if err := r.DB.First(&shift, id).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *ShiftRepository) ListByStaffBetween(staffID uint, from, to time.Time) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.DB.Where("staff_id = ? AND starts_at >= ? AND starts_at < ?", staffID, from, to).
		Order("starts_at").Find(&shifts).Error
	return shifts, err
}

func (r *ShiftRepository) ListBetween(from, to time.Time) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.DB.Preload("Staff").
		Where("starts_at >= ? AND starts_at < ?", from, to).
		Order("starts_at").Find(&shifts).Error
	return shifts, err
}
