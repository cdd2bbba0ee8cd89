package repository

import (
	"resto_ops_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) Save(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Course{}, id).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index")
	}).First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) ListByTier(tier model.Tier, publishedOnly bool) ([]model.Course, error) {
	var courses []model.Course
	query := r.DB.Where("tier = ?", tier)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	err := query.Order("order_index").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) ListPublished() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("is_published = ?", true).
		Order("tier").Order("order_index").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) ListAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Order("tier").Order("order_index").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) ReplaceQuestions(courseID uint, questions []model.CourseQuestion) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", courseID).Delete(&model.CourseQuestion{}).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		for i := range questions {
			questions[i].CourseID = courseID
		}
		return tx.Create(&questions).Error
	})
}
