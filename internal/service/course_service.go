package service

import (
	"context"
	"encoding/json"
	"errors"
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/repository"
	"resto_ops_backend/internal/util"
	"resto_ops_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const catalogCacheKey = "academy:catalog:published"
const catalogCacheTTL = 10 * time.Minute

// CourseService 课程目录：管理员编排，员工只读。
// 已发布目录读多写少，走 redis 缓存，作者端写入时失效。
type CourseService struct {
	CourseRepo *repository.CourseRepository
	Redis      *redis.Client
}

func NewCourseService(courseRepo *repository.CourseRepository, rdb *redis.Client) *CourseService {
	return &CourseService{
		CourseRepo: courseRepo,
		Redis:      rdb,
	}
}

type CourseQuestionRequest struct {
	Stem          string   `json:"stem" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	CorrectOption int      `json:"correctOption"`
}

type CourseRequest struct {
	Title            string                  `json:"title" binding:"required"`
	Description      string                  `json:"description"`
	Tier             model.Tier              `json:"tier" binding:"required"`
	ContentType      string                  `json:"contentType" binding:"required"`
	OrderIndex       int                     `json:"orderIndex"`
	IsMandatory      bool                    `json:"isMandatory"`
	IsCapstone       bool                    `json:"isCapstone"`
	Body             string                  `json:"body"`
	IsPublished      bool                    `json:"isPublished"`
	PassMarkOverride int                     `json:"passMarkOverride"`
	Questions        []CourseQuestionRequest `json:"questions"`
}

func (s *CourseService) validate(req *CourseRequest) error {
	if !req.Tier.Valid() {
		return errors.New("invalid tier")
	}
	if req.ContentType != model.CourseTypeReading && req.ContentType != model.CourseTypeQuiz {
		return errors.New("contentType must be reading or quiz")
	}
	if req.ContentType == model.CourseTypeQuiz && len(req.Questions) == 0 {
		return errors.New("quiz course requires at least one question")
	}
	for _, q := range req.Questions {
		if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
			return errors.New("correctOption out of range")
		}
	}
	return nil
}

func (s *CourseService) buildQuestions(req *CourseRequest) []model.CourseQuestion {
	questions := make([]model.CourseQuestion, 0, len(req.Questions))
	for i, q := range req.Questions {
		optionsJSON, _ := json.Marshal(q.Options)
		questions = append(questions, model.CourseQuestion{
			Stem:          q.Stem,
			Options:       string(optionsJSON),
			CorrectOption: q.CorrectOption,
			OrderIndex:    i + 1,
		})
	}
	return questions
}

func (s *CourseService) CreateCourse(req CourseRequest) (*model.Course, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	course := &model.Course{
		Title:            req.Title,
		Description:      req.Description,
		Tier:             req.Tier,
		ContentType:      req.ContentType,
		OrderIndex:       req.OrderIndex,
		IsMandatory:      req.IsMandatory,
		IsCapstone:       req.IsCapstone,
		Body:             req.Body,
		IsPublished:      req.IsPublished,
		PassMarkOverride: req.PassMarkOverride,
		Questions:        s.buildQuestions(&req),
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}

	s.invalidateCatalog()
	return course, nil
}

func (s *CourseService) UpdateCourse(id uint, req CourseRequest) (*model.Course, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUnknownCourse
		}
		return nil, err
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Tier = req.Tier
	course.ContentType = req.ContentType
	course.OrderIndex = req.OrderIndex
	course.IsMandatory = req.IsMandatory
	course.IsCapstone = req.IsCapstone
	course.Body = req.Body
	course.IsPublished = req.IsPublished
	course.PassMarkOverride = req.PassMarkOverride
	course.Questions = nil

	if err := s.CourseRepo.Save(course); err != nil {
		return nil, err
	}
	if err := s.CourseRepo.ReplaceQuestions(course.ID, s.buildQuestions(&req)); err != nil {
		return nil, err
	}

	s.invalidateCatalog()
	return s.CourseRepo.FindByID(id)
}

func (s *CourseService) DeleteCourse(id uint) error {
	if err := s.CourseRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCatalog()
	return nil
}

func (s *CourseService) GetCourse(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUnknownCourse
		}
		return nil, err
	}
	return course, nil
}

func (s *CourseService) ListAll() ([]model.Course, error) {
	return s.CourseRepo.ListAll()
}

// ListPublished 员工端目录，redis 缓存未命中时回源数据库
func (s *CourseService) ListPublished() ([]model.Course, error) {
	if s.Redis != nil {
		val, err := s.Redis.Get(context.Background(), catalogCacheKey).Result()
		if err == nil {
			var cached []model.Course
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				return cached, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("catalog cache read failed", zap.Error(err))
		}
	}

	courses, err := s.CourseRepo.ListPublished()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(courses); err == nil {
			if err := s.Redis.Set(context.Background(), catalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
				logger.Log.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return courses, nil
}

func (s *CourseService) invalidateCatalog() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), catalogCacheKey).Err(); err != nil {
		logger.Log.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
