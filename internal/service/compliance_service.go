package service

import (
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/repository"
	"time"
)

// 各存放点的安全温度区间（摄氏度）
type tempRange struct {
	min float64
	max float64
}

var safeRanges = map[string]tempRange{
	"walk-in":  {0, 5},
	"freezer":  {-30, -15},
	"hot-hold": {63, 100},
}

// ComplianceService 温度合规记录。超出安全区间的记录只做标记上报，
// 不做任何自动处置。
type ComplianceService struct {
	ComplianceRepo *repository.ComplianceRepository
}

func NewComplianceService(complianceRepo *repository.ComplianceRepository) *ComplianceService {
	return &ComplianceService{ComplianceRepo: complianceRepo}
}

// OutOfRange 未知存放点不判定越界，由经理在列表里自行核查
func OutOfRange(location string, celsius float64) bool {
	r, ok := safeRanges[location]
	if !ok {
		return false
	}
	return celsius < r.min || celsius > r.max
}

type TemperatureLogRequest struct {
	Location string  `json:"location" binding:"required"`
	Celsius  float64 `json:"celsius" binding:"required"`
	PhotoURL string  `json:"photoUrl"`
	Notes    string  `json:"notes"`
}

func (s *ComplianceService) RecordLog(staffID uint, req TemperatureLogRequest) (*model.TemperatureLog, error) {
	log := &model.TemperatureLog{
		StaffID:    staffID,
		Location:   req.Location,
		Celsius:    req.Celsius,
		RecordedAt: time.Now(),
		OutOfRange: OutOfRange(req.Location, req.Celsius),
		PhotoURL:   req.PhotoURL,
		Notes:      req.Notes,
	}
	if err := s.ComplianceRepo.CreateLog(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *ComplianceService) ListRecent(location string, days, page, pageSize int) ([]model.TemperatureLog, int64, error) {
	since := time.Now().AddDate(0, 0, -days)
	return s.ComplianceRepo.ListRecent(location, since, page, pageSize)
}

func (s *ComplianceService) ListOutOfRange(days int) ([]model.TemperatureLog, error) {
	since := time.Now().AddDate(0, 0, -days)
	return s.ComplianceRepo.ListOutOfRange(since)
}
