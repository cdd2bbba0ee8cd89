package database

import (
	"fmt"
	"log"
	"resto_ops_backend/internal/config"
	"resto_ops_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	Seed(db)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.CourseQuestion{},
		&model.ProgressRecord{},
		&model.ReflectionRecord{},
		&model.Certificate{},
		&model.JourneyProgress{},
		&model.CompanyValue{},
		&model.ValueAcknowledgment{},
		&model.InventoryItem{},
		&model.SupplierOrder{},
		&model.SupplierOrderLine{},
		&model.MenuItem{},
		&model.MenuIngredient{},
		&model.Shift{},
		&model.TemperatureLog{},
	)
}

// Seed 写入默认基础数据，表非空则跳过
func Seed(db *gorm.DB) {
	var vCount int64
	db.Model(&model.CompanyValue{}).Count(&vCount)
	if vCount == 0 {
		defaultValues := []model.CompanyValue{
			{Code: "guest_first", Name: "Guest First", Description: "Every decision starts with the guest experience", Order: 1, Enabled: true},
			{Code: "own_it", Name: "Own It", Description: "See something, fix it or flag it", Order: 2, Enabled: true},
			{Code: "respect_the_craft", Name: "Respect the Craft", Description: "Care about food, tools and technique", Order: 3, Enabled: true},
			{Code: "one_team", Name: "One Team", Description: "Front and back of house win together", Order: 4, Enabled: true},
			{Code: "safe_hands", Name: "Safe Hands", Description: "Food safety is never negotiable", Order: 5, Enabled: true},
		}
		for _, v := range defaultValues {
			db.Create(&v)
		}
	}

	var cCount int64
	db.Model(&model.Course{}).Count(&cCount)
	if cCount == 0 {
		starterCatalog := []model.Course{
			{Title: "Welcome to the Floor", Tier: model.TierFoundation, ContentType: model.CourseTypeReading, OrderIndex: 1, IsMandatory: true, IsPublished: true},
			{Title: "Our Values in Service", Tier: model.TierFoundation, ContentType: model.CourseTypeReading, OrderIndex: 2, IsMandatory: true, IsPublished: true},
			{Title: "Hand Hygiene Essentials", Tier: model.TierL1, ContentType: model.CourseTypeQuiz, OrderIndex: 1, IsMandatory: true, IsPublished: true},
			{Title: "Cross-Contamination Basics", Tier: model.TierL1, ContentType: model.CourseTypeQuiz, OrderIndex: 2, IsMandatory: true, IsPublished: true},
			{Title: "Cold Chain and Storage", Tier: model.TierL2, ContentType: model.CourseTypeQuiz, OrderIndex: 1, IsMandatory: true, IsPublished: true},
			{Title: "Allergen Management", Tier: model.TierL2, ContentType: model.CourseTypeQuiz, OrderIndex: 2, IsMandatory: true, IsPublished: true},
			{Title: "Running a Safe Kitchen", Tier: model.TierL3, ContentType: model.CourseTypeQuiz, OrderIndex: 1, IsMandatory: true, IsCapstone: true, IsPublished: true},
		}
		for _, c := range starterCatalog {
			db.Create(&c)
		}
	}
}
