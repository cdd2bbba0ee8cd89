package repository

import (
	"resto_ops_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ComplianceRepository struct {
	DB *gorm.DB
}

func NewComplianceRepository(db *gorm.DB) *ComplianceRepository {
	return &ComplianceRepository{DB: db}
}

func (r *ComplianceRepository) CreateLog(log *model.TemperatureLog) error {
	return r.DB.Create(log).Error
}

func (r *ComplianceRepository) ListRecent(location string, since time.Time, page, pageSize int) ([]model.TemperatureLog, int64, error) {
	var logs []model.TemperatureLog
	var total int64

	query := r.DB.Model(&model.TemperatureLog{}).Where("recorded_at >= ?", since)
	if location != "" {
		query = query.Where("location = ?", location)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Staff").Order("recorded_at DESC").
		Offset(offset).Limit(pageSize).Find(&logs).Error
	return logs, total, err
}

func (r *ComplianceRepository) ListOutOfRange(since time.Time) ([]model.TemperatureLog, error) {
	var logs []model.TemperatureLog
	err := r.DB.Preload("Staff").
		Where("out_of_range = ? AND recorded_at >= ?", true, since).
		Order("recorded_at DESC").Find(&logs).Error
	return logs, err
}
