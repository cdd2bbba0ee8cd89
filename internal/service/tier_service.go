package service

import (
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/repository"
)

// TierService 等级门禁解析器。
// 解锁状态每次都从 ProgressRecord 现算，不做缓存：管理员事后改正某条
// 进度记录时，下一次评估自动得到正确结果。
type TierService struct {
	CourseRepo   *repository.CourseRepository
	ProgressRepo *repository.ProgressRepository
}

func NewTierService(courseRepo *repository.CourseRepository, progressRepo *repository.ProgressRepository) *TierService {
	return &TierService{
		CourseRepo:   courseRepo,
		ProgressRepo: progressRepo,
	}
}

// TierSummary 单个等级的聚合视图
type TierSummary struct {
	Tier            model.Tier       `json:"tier"`
	DisplayName     string           `json:"displayName"`
	Status          model.TierStatus `json:"status"`
	ProgressPercent int              `json:"progressPercent"`
	CourseCount     int              `json:"courseCount"`
	CompletedCount  int              `json:"completedCount"`
}

// tierCounts 返回等级内已发布课程总数与该员工完成数
func (s *TierService) tierCounts(staffID uint, tier model.Tier) (total int, completed int, err error) {
	courses, err := s.CourseRepo.ListByTier(tier, true)
	if err != nil {
		return 0, 0, err
	}

	courseIDs := make([]uint, len(courses))
	for i, c := range courses {
		courseIDs[i] = c.ID
	}

	done, err := s.ProgressRepo.CountCompleted(staffID, courseIDs)
	if err != nil {
		return 0, 0, err
	}
	return len(courses), int(done), nil
}

// tierComplete 完成判定：等级内每门课都有 completed 状态的进度记录。
// 没有课程的等级视为天然完成。
func (s *TierService) tierComplete(staffID uint, tier model.Tier) (bool, error) {
	total, completed, err := s.tierCounts(staffID, tier)
	if err != nil {
		return false, err
	}
	return completed >= total, nil
}

// IsUnlocked Foundation 永远解锁；第 n 级解锁当且仅当第 n-1 级完成
func (s *TierService) IsUnlocked(staffID uint, tier model.Tier) (bool, error) {
	prev, ok := model.PreviousTier(tier)
	if !ok {
		return tier.Valid(), nil
	}
	return s.tierComplete(staffID, prev)
}

// TierStatus locked / unlocked_incomplete / complete
func (s *TierService) TierStatus(staffID uint, tier model.Tier) (model.TierStatus, error) {
	unlocked, err := s.IsUnlocked(staffID, tier)
	if err != nil {
		return "", err
	}
	if !unlocked {
		return model.TierLocked, nil
	}

	complete, err := s.tierComplete(staffID, tier)
	if err != nil {
		return "", err
	}
	if complete {
		return model.TierComplete, nil
	}
	return model.TierUnlockedIncomplete, nil
}

// TierProgress 展示用百分比，100% 等价于完成
func (s *TierService) TierProgress(staffID uint, tier model.Tier) (int, error) {
	total, completed, err := s.tierCounts(staffID, tier)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	return 100 * completed / total, nil
}

// Overview 四个等级的汇总，驱动学院首页
func (s *TierService) Overview(staffID uint) ([]TierSummary, error) {
	summaries := make([]TierSummary, 0, 4)
	for _, tier := range model.AllTiers() {
		status, err := s.TierStatus(staffID, tier)
		if err != nil {
			return nil, err
		}
		total, completed, err := s.tierCounts(staffID, tier)
		if err != nil {
			return nil, err
		}
		percent := 0
		if total > 0 {
			percent = 100 * completed / total
		}
		summaries = append(summaries, TierSummary{
			Tier:            tier,
			DisplayName:     tier.DisplayName(),
			Status:          status,
			ProgressPercent: percent,
			CourseCount:     total,
			CompletedCount:  completed,
		})
	}
	return summaries, nil
}
