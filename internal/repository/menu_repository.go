package repository

import (
	"resto_ops_backend/internal/model"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(item *model.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Save(item *model.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&model.MenuItem{}, id).Error
}

func (r *MenuRepository) FindByID(id uint) (*model.MenuItem, error) {
	var item model.MenuItem
	err := r.DB.Preload("Ingredients").First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) List(category string, activeOnly bool) ([]model.MenuItem, error) {
	var items []model.MenuItem
	query := r.DB.Preload("Ingredients").Order("category").Order("name")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *MenuRepository) ReplaceIngredients(menuItemID uint, lines []model.MenuIngredient) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", menuItemID).Delete(&model.MenuIngredient{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		for i := range lines {
			lines[i].MenuItemID = menuItemID
		}
		return tx.Create(&lines).Error
	})
}
