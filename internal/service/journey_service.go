package service

import (
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/repository"
	"time"
)

// JourneyService 跨模块入职旅程聚合器。
// 里程碑序列固定：values → hygiene → certification。
// currentStep 只进不退——即使之后证书过期，旅程也不回滚，
// 它记录的是「走到过哪里」，不是实时合规状态。
type JourneyService struct {
	JourneyRepo *repository.JourneyRepository
}

func NewJourneyService(journeyRepo *repository.JourneyRepository) *JourneyService {
	return &JourneyService{JourneyRepo: journeyRepo}
}

// advance 按已完成的里程碑推导目标步骤，只允许前移
func advance(jp *model.JourneyProgress) {
	target := model.JourneyStepValues
	if jp.ValuesCompleted {
		target = model.JourneyStepHygiene
	}
	if jp.HygieneCompleted {
		target = model.JourneyStepCertification
	}

	if model.JourneyStepOrder(target) > model.JourneyStepOrder(jp.CurrentStep) {
		jp.CurrentStep = target
	}
}

// OnTierCompleted 等级完成回调。hygieneCompleted 在 L1/L2/L3 中
// 任意一级首次完成时置位——里程碑的含义是「已开始正式卫生培训」，
// 不要求三级全部通过。Foundation 完成不影响旅程。
func (s *JourneyService) OnTierCompleted(staffID uint, tier model.Tier) error {
	if !TierIsHygiene(tier) {
		return nil
	}

	jp, err := s.JourneyRepo.FindOrCreate(staffID)
	if err != nil {
		return err
	}
	if jp.HygieneCompleted {
		return nil
	}

	jp.HygieneCompleted = true
	jp.LastUpdated = time.Now()
	advance(jp)
	return s.JourneyRepo.Save(jp)
}

// OnCultureAcknowledged 由价值观确认模块调用
func (s *JourneyService) OnCultureAcknowledged(staffID uint) error {
	jp, err := s.JourneyRepo.FindOrCreate(staffID)
	if err != nil {
		return err
	}
	if jp.ValuesCompleted {
		return nil
	}

	jp.ValuesCompleted = true
	jp.LastUpdated = time.Now()
	advance(jp)
	return s.JourneyRepo.Save(jp)
}

func (s *JourneyService) Get(staffID uint) (*model.JourneyProgress, error) {
	return s.JourneyRepo.FindOrCreate(staffID)
}

// TierIsHygiene Foundation 之上的三级都属于卫生培训
func TierIsHygiene(tier model.Tier) bool {
	return tier == model.TierL1 || tier == model.TierL2 || tier == model.TierL3
}
