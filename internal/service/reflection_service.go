package service

import (
	"errors"
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/repository"
	"resto_ops_backend/internal/util"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ReflectionService 反思门禁：压轴课在测验通过后被扣在 in_progress/90，
// 直到员工提交一份结构化反思才算完成。知识测验先过、反思后补，
// 但「完成」永远以反思为准。
type ReflectionService struct {
	ReflectionRepo *repository.ReflectionRepository
	CourseRepo     *repository.CourseRepository
	ValueRepo      *repository.ValueRepository
	ProgressSvc    *ProgressService
}

func NewReflectionService(
	reflectionRepo *repository.ReflectionRepository,
	courseRepo *repository.CourseRepository,
	valueRepo *repository.ValueRepository,
	progressSvc *ProgressService,
) *ReflectionService {
	return &ReflectionService{
		ReflectionRepo: reflectionRepo,
		CourseRepo:     courseRepo,
		ValueRepo:      valueRepo,
		ProgressSvc:    progressSvc,
	}
}

// ReflectionSubmission 三个字段都必须是去除空白后非空的内容
type ReflectionSubmission struct {
	Learned     string `json:"learned"`
	ValueCode   string `json:"valueCode"`
	ProudMoment string `json:"proudMoment"`
	Visibility  string `json:"visibility"`
}

func (r *ReflectionSubmission) normalize() {
	r.Learned = strings.TrimSpace(r.Learned)
	r.ValueCode = strings.TrimSpace(r.ValueCode)
	r.ProudMoment = strings.TrimSpace(r.ProudMoment)
	if r.Visibility != model.ReflectionPrivate {
		r.Visibility = model.ReflectionPublic
	}
}

// SubmitReflection 校验失败不落任何状态；成功时先持久化反思记录，
// 再把进度记录推进到 completed/100，完成时间取提交时刻。
func (s *ReflectionService) SubmitReflection(staffID, courseID uint, sub ReflectionSubmission) (*model.ReflectionRecord, *model.Certificate, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrUnknownCourse
		}
		return nil, nil, err
	}
	if !course.IsCapstone {
		return nil, nil, util.ErrNotCapstone
	}

	sub.normalize()
	if sub.Learned == "" || sub.ValueCode == "" || sub.ProudMoment == "" {
		return nil, nil, util.ErrIncompleteReflection
	}
	if _, err := s.ValueRepo.FindByCode(sub.ValueCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrIncompleteReflection
		}
		return nil, nil, err
	}

	// 幂等：同一次完成事件只产生一条反思记录
	if existing, err := s.ReflectionRepo.FindByStaffAndCourse(staffID, courseID); err == nil {
		return existing, nil, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	// 必须存在被扣住的通过成绩，反思才有对象可完成
	if err := s.ProgressSvc.PendingCapstonePass(staffID, course); err != nil {
		return nil, nil, err
	}

	now := time.Now()
	rec := &model.ReflectionRecord{
		StaffID:     staffID,
		CourseID:    courseID,
		Learned:     sub.Learned,
		ValueCode:   sub.ValueCode,
		ProudMoment: sub.ProudMoment,
		Visibility:  sub.Visibility,
	}

	// 先写反思再推进完成：压轴课的进度记录在反思存在之前
	// 永远不会到达 completed
	if err := s.ReflectionRepo.Create(rec); err != nil {
		return nil, nil, err
	}

	_, cert, err := s.ProgressSvc.FinalizeCapstone(staffID, course, now)
	if err != nil {
		return nil, nil, err
	}
	return rec, cert, nil
}

func (s *ReflectionService) GetForStaff(staffID, courseID uint) (*model.ReflectionRecord, error) {
	return s.ReflectionRepo.FindByStaffAndCourse(staffID, courseID)
}

func (s *ReflectionService) ListVisible(role model.UserRole, page, pageSize int) ([]model.ReflectionRecord, int64, error) {
	includePrivate := role == model.Admin
	return s.ReflectionRepo.ListVisible(includePrivate, page, pageSize)
}
