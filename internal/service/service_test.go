package service

import (
	"encoding/json"
	"fmt"
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/repository"
	"resto_ops_backend/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// engine 打包引擎全部服务，测试共用
type engine struct {
	db *gorm.DB

	courseRepo   *repository.CourseRepository
	progressRepo *repository.ProgressRepository
	certRepo     *repository.CertificateRepository
	journeyRepo  *repository.JourneyRepository
	valueRepo    *repository.ValueRepository
	reflRepo     *repository.ReflectionRepository

	tier       *TierService
	cert       *CertificateService
	journey    *JourneyService
	progress   *ProgressService
	reflection *ReflectionService
	values     *ValuesService
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库单连接，避免并发测试各拿一个空库
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.CourseQuestion{},
		&model.ProgressRecord{},
		&model.ReflectionRecord{},
		&model.Certificate{},
		&model.JourneyProgress{},
		&model.CompanyValue{},
		&model.ValueAcknowledgment{},
	))
	return db
}

func newEngine(t *testing.T) *engine {
	t.Helper()
	db := setupTestDB(t)

	e := &engine{
		db:           db,
		courseRepo:   repository.NewCourseRepository(db),
		progressRepo: repository.NewProgressRepository(db),
		certRepo:     repository.NewCertificateRepository(db),
		journeyRepo:  repository.NewJourneyRepository(db),
		valueRepo:    repository.NewValueRepository(db),
		reflRepo:     repository.NewReflectionRepository(db),
	}
	e.tier = NewTierService(e.courseRepo, e.progressRepo)
	e.cert = NewCertificateService(e.certRepo, e.courseRepo, e.progressRepo, e.tier)
	e.journey = NewJourneyService(e.journeyRepo)
	e.progress = NewProgressService(e.courseRepo, e.progressRepo, e.tier, e.cert, e.journey)
	e.reflection = NewReflectionService(e.reflRepo, e.courseRepo, e.valueRepo, e.progress)
	e.values = NewValuesService(e.valueRepo, e.journey)
	return e
}

// mustQuizCourse 建一门 n 题的测验课，正确答案全部是选项 0
func (e *engine) mustQuizCourse(t *testing.T, tier model.Tier, n int, capstone bool) *model.Course {
	t.Helper()

	options, _ := json.Marshal([]string{"right", "wrong", "also wrong"})
	course := &model.Course{
		Title:       fmt.Sprintf("%s quiz", tier),
		Tier:        tier,
		ContentType: model.CourseTypeQuiz,
		IsCapstone:  capstone,
		IsPublished: true,
	}
	for i := 0; i < n; i++ {
		course.Questions = append(course.Questions, model.CourseQuestion{
			Stem:          fmt.Sprintf("question %d", i+1),
			Options:       string(options),
			CorrectOption: 0,
			OrderIndex:    i + 1,
		})
	}
	require.NoError(t, e.courseRepo.Create(course))

	loaded, err := e.courseRepo.FindByID(course.ID)
	require.NoError(t, err)
	return loaded
}

func (e *engine) mustReadingCourse(t *testing.T, tier model.Tier, title string) *model.Course {
	t.Helper()
	course := &model.Course{
		Title:       title,
		Tier:        tier,
		ContentType: model.CourseTypeReading,
		Body:        "read me",
		IsPublished: true,
	}
	require.NoError(t, e.courseRepo.Create(course))
	return course
}

func (e *engine) mustValue(t *testing.T, code string) {
	t.Helper()
	require.NoError(t, e.db.Create(&model.CompanyValue{
		Code:    code,
		Name:    code,
		Enabled: true,
	}).Error)
}

// answersFor 构造一份答卷：前 correct 题答对，其余答错
func answersFor(course *model.Course, correct int) QuizAnswers {
	answers := make(QuizAnswers, len(course.Questions))
	for i, q := range course.Questions {
		if i < correct {
			answers[q.ID] = q.CorrectOption
		} else {
			answers[q.ID] = q.CorrectOption + 1
		}
	}
	return answers
}
