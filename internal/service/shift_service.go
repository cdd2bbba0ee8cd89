package service

import (
	"errors"
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/repository"
	"time"
)

// ShiftService 排班
type ShiftService struct {
	ShiftRepo *repository.ShiftRepository
	UserRepo  *repository.UserRepository
}

func NewShiftService(shiftRepo *repository.ShiftRepository, userRepo *repository.UserRepository) *ShiftService {
	return &ShiftService{
		ShiftRepo: shiftRepo,
		UserRepo:  userRepo,
	}
}

type ShiftRequest struct {
	StaffID  uint      `json:"staffId" binding:"required"`
	Role     string    `json:"role"`
	StartsAt time.Time `json:"startsAt" binding:"required"`
	EndsAt   time.Time `json:"endsAt" binding:"required"`
	Notes    string    `json:"notes"`
}

func (s *ShiftService) validate(req *ShiftRequest) error {
	if !req.EndsAt.After(req.StartsAt) {
		return errors.New("shift must end after it starts")
	}
	if _, err := s.UserRepo.FindByID(req.StaffID); err != nil {
		return errors.New("staff member not found")
	}
	return nil
}

func (s *ShiftService) Create(req ShiftRequest) (*model.Shift, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	shift := &model.Shift{
		StaffID:  req.StaffID,
		Role:     req.Role,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Notes:    req.Notes,
	}
	if err := s.ShiftRepo.Create(shift); err != nil {
		return nil, err
	}
	return shift, nil
}

func (s *ShiftService) Update(id uint, req ShiftRequest) (*model.Shift, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	shift, err := s.ShiftRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	shift.StaffID = req.StaffID
	shift.Role = req.Role
	shift.StartsAt = req.StartsAt
	shift.EndsAt = req.EndsAt
	shift.Notes = req.Notes
	if err := s.ShiftRepo.Save(shift); err != nil {
		return nil, err
	}
	return shift, nil
}

func (s *ShiftService) Delete(id uint) error {
	return s.ShiftRepo.Delete(id)
}

// WeekRoster 从 weekStart 起 7 天的全店排班
func (s *ShiftService) WeekRoster(weekStart time.Time) ([]model.Shift, error) {
	return s.ShiftRepo.ListBetween(weekStart, weekStart.AddDate(0, 0, 7))
}

// MyShifts 员工本人从 from 起 days 天内的班次
func (s *ShiftService) MyShifts(staffID uint, from time.Time, days int) ([]model.Shift, error) {
	return s.ShiftRepo.ListByStaffBetween(staffID, from, from.AddDate(0, 0, days))
}
