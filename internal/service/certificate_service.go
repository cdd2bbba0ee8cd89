package service

import (
	"fmt"
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/repository"
	"resto_ops_backend/pkg/monitoring"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CertificateService 证书签发。每个 (员工, 等级) 至多一张；
// 重复触发返回既有证书而不是错误。
type CertificateService struct {
	CertRepo     *repository.CertificateRepository
	CourseRepo   *repository.CourseRepository
	ProgressRepo *repository.ProgressRepository
	TierSvc      *TierService
}

func NewCertificateService(
	certRepo *repository.CertificateRepository,
	courseRepo *repository.CourseRepository,
	progressRepo *repository.ProgressRepository,
	tierSvc *TierService,
) *CertificateService {
	return &CertificateService{
		CertRepo:     certRepo,
		CourseRepo:   courseRepo,
		ProgressRepo: progressRepo,
		TierSvc:      tierSvc,
	}
}

// certificateNumber 每次调用生成新编号；重试的调用即使命中冲突
// 也不会复用编号，丢弃的是整行插入
func certificateNumber(staffID uint, tier model.Tier) string {
	return fmt.Sprintf("CERT-%s-%d-%s", strings.ToUpper(string(tier)), staffID, uuid.New().String())
}

// snapshotScore 等级内所有非零测验成绩的均值；
// 纯阅读等级没有成绩时回退到等级及格线，保证证书总有可展示的分数
func (s *CertificateService) snapshotScore(staffID uint, tier model.Tier) (int, error) {
	courses, err := s.CourseRepo.ListByTier(tier, true)
	if err != nil {
		return 0, err
	}
	courseIDs := make([]uint, len(courses))
	for i, c := range courses {
		courseIDs[i] = c.ID
	}

	recs, err := s.ProgressRepo.ListByStaffAndCourses(staffID, courseIDs)
	if err != nil {
		return 0, err
	}

	sum, n := 0, 0
	for _, rec := range recs {
		if rec.LastQuizScore > 0 {
			sum += rec.LastQuizScore
			n++
		}
	}
	if n == 0 {
		return model.TierPassMark(tier), nil
	}
	return sum / n, nil
}

// IssueIfEligible 幂等签发。等级完成且尚无证书时创建；否则返回既有证书
// （或 nil，如果等级还没完成）。检查加创建必须是对存储的单次条件插入，
// 两个并发的完成事件只会产生一张证书、一个编号。
func (s *CertificateService) IssueIfEligible(staffID uint, tier model.Tier) (*model.Certificate, error) {
	if !tier.Valid() {
		return nil, nil
	}

	if existing, err := s.CertRepo.FindByStaffAndTier(staffID, tier); err == nil {
		return existing, nil
	}

	status, err := s.TierSvc.TierStatus(staffID, tier)
	if err != nil {
		return nil, err
	}
	if status != model.TierComplete {
		return nil, nil
	}

	score, err := s.snapshotScore(staffID, tier)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cert := &model.Certificate{
		StaffID:           staffID,
		Tier:              tier,
		TierName:          tier.DisplayName(),
		CertificateNumber: certificateNumber(staffID, tier),
		IssuedAt:          now,
		ExpiresAt:         now.AddDate(0, model.CertificateValidityMonths, 0),
		ScoreSnapshot:     score,
	}

	final, inserted, err := s.CertRepo.CreateIfAbsent(cert)
	if err != nil {
		return nil, err
	}
	if inserted {
		monitoring.CertificatesIssued.WithLabelValues(string(tier)).Inc()
	}
	return final, nil
}

// CertificateView 证书及按当前时间推导的有效期分类
type CertificateView struct {
	model.Certificate
	Validity model.CertificateValidity `json:"validity"`
}

// ListForStaff 过期证书照常返回并标记为 expired——这是「需要重新培训」的
// 运营信号，引擎从不删除或撤销证书
func (s *CertificateService) ListForStaff(staffID uint) ([]CertificateView, error) {
	certs, err := s.CertRepo.ListByStaff(staffID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]CertificateView, len(certs))
	for i, c := range certs {
		views[i] = CertificateView{
			Certificate: c,
			Validity:    c.ValidityAt(now),
		}
	}
	return views, nil
}

func (s *CertificateService) ListAll(page, pageSize int) ([]CertificateView, int64, error) {
	certs, total, err := s.CertRepo.ListAll(page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	views := make([]CertificateView, len(certs))
	for i, c := range certs {
		views[i] = CertificateView{
			Certificate: c,
			Validity:    c.ValidityAt(now),
		}
	}
	return views, total, nil
}
