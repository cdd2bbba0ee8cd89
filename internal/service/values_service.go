package service

import (
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/repository"
)

// ValuesService 企业价值观手册与确认流程。
// 确认成功后通知旅程聚合器推进 values 里程碑。
type ValuesService struct {
	ValueRepo  *repository.ValueRepository
	JourneySvc *JourneyService
}

func NewValuesService(valueRepo *repository.ValueRepository, journeySvc *JourneyService) *ValuesService {
	return &ValuesService{
		ValueRepo:  valueRepo,
		JourneySvc: journeySvc,
	}
}

func (s *ValuesService) ListValues() ([]model.CompanyValue, error) {
	return s.ValueRepo.ListEnabled()
}

// Acknowledge 重复确认无害，旅程更新幂等
func (s *ValuesService) Acknowledge(staffID uint) error {
	if err := s.ValueRepo.CreateAcknowledgment(staffID); err != nil {
		return err
	}
	return s.JourneySvc.OnCultureAcknowledged(staffID)
}

func (s *ValuesService) HasAcknowledged(staffID uint) (bool, error) {
	return s.ValueRepo.HasAcknowledged(staffID)
}
