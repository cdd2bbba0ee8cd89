package repository

import (
	"errors"
	"resto_ops_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JourneyRepository struct {
	DB *gorm.DB
}

func NewJourneyRepository(db *gorm.DB) *JourneyRepository {
	return &JourneyRepository{DB: db}
}

// FindOrCreate 员工首次接触任一受控模块时建档
func (r *JourneyRepository) FindOrCreate(staffID uint) (*model.JourneyProgress, error) {
	var jp model.JourneyProgress
	err := r.DB.Where("staff_id = ?", staffID).First(&jp).Error
	if err == nil {
		return &jp, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := &model.JourneyProgress{
		StaffID:     staffID,
		CurrentStep: model.JourneyStepValues,
		LastUpdated: time.Now(),
	}
	res := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(fresh)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		err = r.DB.Where("staff_id = ?", staffID).First(&jp).Error
		return &jp, err
	}
	return fresh, nil
}

func (r *JourneyRepository) Save(jp *model.JourneyProgress) error {
	return r.DB.Save(jp).Error
}
