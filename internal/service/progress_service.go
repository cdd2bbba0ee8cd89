package service

import (
	"errors"
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/repository"
	"resto_ops_backend/internal/util"
	"resto_ops_backend/pkg/logger"
	"resto_ops_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProgressService 课程完成记录器。ProgressRecord 的所有状态迁移都走这里，
// 每次写入后同步跑一遍显式的完成链（等级重评 → 证书签发 → 旅程更新），
// 不依赖任何界面回调。
type ProgressService struct {
	CourseRepo   *repository.CourseRepository
	ProgressRepo *repository.ProgressRepository
	TierSvc      *TierService
	CertSvc      *CertificateService
	JourneySvc   *JourneyService
}

func NewProgressService(
	courseRepo *repository.CourseRepository,
	progressRepo *repository.ProgressRepository,
	tierSvc *TierService,
	certSvc *CertificateService,
	journeySvc *JourneyService,
) *ProgressService {
	return &ProgressService{
		CourseRepo:   courseRepo,
		ProgressRepo: progressRepo,
		TierSvc:      tierSvc,
		CertSvc:      certSvc,
		JourneySvc:   journeySvc,
	}
}

// CompletionResult 一次 recordCompletion 的结果
type CompletionResult struct {
	Record        *model.ProgressRecord `json:"record"`
	Score         int                   `json:"score"`
	Passed        bool                  `json:"passed"`
	PassMark      int                   `json:"passMark"`
	AwaitsReflect bool                  `json:"awaitsReflection"`
	Certificate   *model.Certificate    `json:"certificate,omitempty"`
}

func (s *ProgressService) loadCourse(courseID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUnknownCourse
		}
		return nil, err
	}
	return course, nil
}

// guardUnlocked 锁定等级拒绝一切课程交互
func (s *ProgressService) guardUnlocked(staffID uint, course *model.Course) error {
	unlocked, err := s.TierSvc.IsUnlocked(staffID, course.Tier)
	if err != nil {
		return err
	}
	if !unlocked {
		return util.ErrTierLocked
	}
	return nil
}

// RecordCompletion 记录一次课程交互的结果。
// 阅读课 answers 传 nil；测验课必须带完整答卷。
func (s *ProgressService) RecordCompletion(staffID, courseID uint, answers QuizAnswers) (*CompletionResult, error) {
	course, err := s.loadCourse(courseID)
	if err != nil {
		return nil, err
	}
	if err := s.guardUnlocked(staffID, course); err != nil {
		return nil, err
	}

	if course.ContentType == model.CourseTypeQuiz {
		return s.recordQuizOutcome(staffID, course, answers)
	}
	return s.recordReadingDone(staffID, course)
}

// recordReadingDone 阅读课没有测验，直接完成
func (s *ProgressService) recordReadingDone(staffID uint, course *model.Course) (*CompletionResult, error) {
	rec, err := s.ProgressRepo.FindOrCreate(staffID, course.ID)
	if err != nil {
		return nil, err
	}

	result := &CompletionResult{Record: rec}
	if rec.Status == model.ProgressCompleted {
		return result, nil
	}

	now := time.Now()
	rec.Status = model.ProgressCompleted
	rec.ProgressPercent = model.ProgressPercentDone
	rec.CompletedAt = &now
	if err := s.ProgressRepo.Save(rec); err != nil {
		return nil, err
	}

	result.Certificate = s.afterCompletion(staffID, course.Tier)
	return result, nil
}

// recordQuizOutcome 评分发生在任何写入之前；不完整答卷不会留下痕迹。
// 通过的压轴课保持在 in_progress/90，完成推迟到反思门禁放行。
// 重考不限次数，失败只会累计 attemptCount。
func (s *ProgressService) recordQuizOutcome(staffID uint, course *model.Course, answers QuizAnswers) (*CompletionResult, error) {
	score, err := ScoreQuiz(course.Questions, answers)
	if err != nil {
		return nil, err
	}
	passed := QuizPassed(course, score)

	rec, err := s.ProgressRepo.FindOrCreate(staffID, course.ID)
	if err != nil {
		return nil, err
	}

	rec.AttemptCount++
	rec.LastQuizScore = score

	result := &CompletionResult{
		Score:    score,
		Passed:   passed,
		PassMark: course.PassMark(),
	}

	alreadyComplete := rec.Status == model.ProgressCompleted

	switch {
	case alreadyComplete:
		// 完成后的重考只更新成绩与次数，状态不回退
	case !passed:
		rec.Status = model.ProgressInProgress
		rec.ProgressPercent = model.ProgressPercentFailed
	case course.IsCapstone:
		rec.Status = model.ProgressInProgress
		rec.ProgressPercent = model.ProgressPercentReflecting
		result.AwaitsReflect = true
	default:
		now := time.Now()
		rec.Status = model.ProgressCompleted
		rec.ProgressPercent = model.ProgressPercentDone
		rec.CompletedAt = &now
	}

	if err := s.ProgressRepo.Save(rec); err != nil {
		return nil, err
	}
	result.Record = rec

	verdict := "fail"
	if passed {
		verdict = "pass"
	}
	monitoring.QuizSubmissions.WithLabelValues(verdict).Inc()

	if !alreadyComplete && rec.Status == model.ProgressCompleted {
		result.Certificate = s.afterCompletion(staffID, course.Tier)
	}
	return result, nil
}

// PendingCapstonePass 校验存在一条测验已通过、等待反思放行的进度记录
func (s *ProgressService) PendingCapstonePass(staffID uint, course *model.Course) error {
	rec, err := s.ProgressRepo.FindByStaffAndCourse(staffID, course.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNoPendingPass
		}
		return err
	}
	if rec.Status != model.ProgressInProgress || !QuizPassed(course, rec.LastQuizScore) {
		return util.ErrNoPendingPass
	}
	return nil
}

// FinalizeCapstone 由反思门禁调用：把被扣住的 in_progress/90 记录推进到
// completed/100，完成时间取反思提交时刻而不是更早的测验通过时刻。
func (s *ProgressService) FinalizeCapstone(staffID uint, course *model.Course, completedAt time.Time) (*model.ProgressRecord, *model.Certificate, error) {
	rec, err := s.ProgressRepo.FindByStaffAndCourse(staffID, course.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrNoPendingPass
		}
		return nil, nil, err
	}

	if rec.Status == model.ProgressCompleted {
		return rec, nil, nil
	}
	if rec.Status != model.ProgressInProgress || !QuizPassed(course, rec.LastQuizScore) {
		return nil, nil, util.ErrNoPendingPass
	}

	rec.Status = model.ProgressCompleted
	rec.ProgressPercent = model.ProgressPercentDone
	rec.CompletedAt = &completedAt
	if err := s.ProgressRepo.Save(rec); err != nil {
		return nil, nil, err
	}

	cert := s.afterCompletion(staffID, course.Tier)
	return rec, cert, nil
}

// afterCompletion 完成链：等级刚好补齐时签发证书并更新旅程。
// 链上的失败不回滚进度写入——证书签发与旅程更新都是幂等的，
// 下一次完成事件会把它们补上。
func (s *ProgressService) afterCompletion(staffID uint, tier model.Tier) *model.Certificate {
	status, err := s.TierSvc.TierStatus(staffID, tier)
	if err != nil {
		logger.Log.Error("tier re-evaluation failed",
			zap.Uint("staffId", staffID), zap.String("tier", string(tier)), zap.Error(err))
		return nil
	}
	if status != model.TierComplete {
		return nil
	}

	cert, err := s.CertSvc.IssueIfEligible(staffID, tier)
	if err != nil {
		logger.Log.Error("certificate issuance failed",
			zap.Uint("staffId", staffID), zap.String("tier", string(tier)), zap.Error(err))
	}

	if err := s.JourneySvc.OnTierCompleted(staffID, tier); err != nil {
		logger.Log.Error("journey update failed",
			zap.Uint("staffId", staffID), zap.String("tier", string(tier)), zap.Error(err))
	}
	return cert
}

// CourseState 员工视角的课程状态
type CourseState struct {
	Course model.Course          `json:"course"`
	Record *model.ProgressRecord `json:"record,omitempty"`
}

// ListTierCourses 等级内课程与本人进度；锁定等级返回 ErrTierLocked，
// 界面应先查 isUnlocked 再放行课程打开
func (s *ProgressService) ListTierCourses(staffID uint, tier model.Tier) ([]CourseState, error) {
	unlocked, err := s.TierSvc.IsUnlocked(staffID, tier)
	if err != nil {
		return nil, err
	}
	if !unlocked {
		return nil, util.ErrTierLocked
	}

	courses, err := s.CourseRepo.ListByTier(tier, true)
	if err != nil {
		return nil, err
	}
	courseIDs := make([]uint, len(courses))
	for i, c := range courses {
		courseIDs[i] = c.ID
	}

	recs, err := s.ProgressRepo.ListByStaffAndCourses(staffID, courseIDs)
	if err != nil {
		return nil, err
	}
	recByCourse := make(map[uint]*model.ProgressRecord, len(recs))
	for i := range recs {
		recByCourse[recs[i].CourseID] = &recs[i]
	}

	states := make([]CourseState, len(courses))
	for i, c := range courses {
		states[i] = CourseState{
			Course: c,
			Record: recByCourse[c.ID],
		}
	}
	return states, nil
}
