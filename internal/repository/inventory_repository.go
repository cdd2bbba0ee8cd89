package repository

import (
	"resto_ops_backend/internal/model"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	DB *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

func (r *InventoryRepository) CreateItem(item *model.InventoryItem) error {
	return r.DB.Create(item).Error
}

func (r *InventoryRepository) SaveItem(item *model.InventoryItem) error {
	return r.DB.Save(item).Error
}

func (r *InventoryRepository) DeleteItem(id uint) error {
	return r.DB.Delete(&model.InventoryItem{}, id).Error
}

func (r *InventoryRepository) FindItemByID(id uint) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) FindItemsByIDs(ids []uint) ([]model.InventoryItem, error) {
	if len(ids) == 0 {
		return []model.InventoryItem{}, nil
	}
	var items []model.InventoryItem
	err := r.DB.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *InventoryRepository) ListItems(category string) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	query := r.DB.Order("name")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *InventoryRepository) ListLowStock() ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.DB.Where("reorder_level > 0 AND quantity < reorder_level").
		Order("name").Find(&items).Error
	return items, err
}

func (r *InventoryRepository) AdjustQuantity(id uint, delta float64) error {
	return r.DB.Model(&model.InventoryItem{}).Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}

func (r *InventoryRepository) CreateOrder(order *model.SupplierOrder) error {
	return r.DB.Create(order).Error
}

func (r *InventoryRepository) SaveOrder(order *model.SupplierOrder) error {
	return r.DB.Save(order).Error
}

func (r *InventoryRepository) FindOrderByID(id uint) (*model.SupplierOrder, error) {
	var order model.SupplierOrder
	err := r.DB.Preload("Lines").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *InventoryRepository) ListOrders(status string, page, pageSize int) ([]model.SupplierOrder, int64, error) {
	var orders []model.SupplierOrder
	var total int64

	query := r.DB.Model(&model.SupplierOrder{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Lines").Order("created_at DESC").
		Offset(offset).Limit(pageSize).Find(&orders).Error
	return orders, total, err
}
