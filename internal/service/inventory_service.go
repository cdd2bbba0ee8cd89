package service

import (
	"errors"
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/repository"
	"resto_ops_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// InventoryService 库存与采购，纯 CRUD 外加收货时的库存入账
type InventoryService struct {
	InventoryRepo *repository.InventoryRepository
	DB            *gorm.DB
}

func NewInventoryService(inventoryRepo *repository.InventoryRepository, db *gorm.DB) *InventoryService {
	return &InventoryService{
		InventoryRepo: inventoryRepo,
		DB:            db,
	}
}

func (s *InventoryService) CreateItem(item *model.InventoryItem) error {
	return s.InventoryRepo.CreateItem(item)
}

func (s *InventoryService) UpdateItem(item *model.InventoryItem) error {
	return s.InventoryRepo.SaveItem(item)
}

func (s *InventoryService) DeleteItem(id uint) error {
	return s.InventoryRepo.DeleteItem(id)
}

func (s *InventoryService) GetItem(id uint) (*model.InventoryItem, error) {
	return s.InventoryRepo.FindItemByID(id)
}

func (s *InventoryService) ListItems(category string) ([]model.InventoryItem, error) {
	return s.InventoryRepo.ListItems(category)
}

func (s *InventoryService) ListLowStock() ([]model.InventoryItem, error) {
	return s.InventoryRepo.ListLowStock()
}

func (s *InventoryService) AdjustStock(id uint, delta float64) (*model.InventoryItem, error) {
	if err := s.InventoryRepo.AdjustQuantity(id, delta); err != nil {
		return nil, err
	}
	return s.InventoryRepo.FindItemByID(id)
}

type OrderLineRequest struct {
	ItemID   uint    `json:"itemId" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
	UnitCost float64 `json:"unitCost"`
}

type OrderRequest struct {
	SupplierName string             `json:"supplierName" binding:"required"`
	Notes        string             `json:"notes"`
	Lines        []OrderLineRequest `json:"lines" binding:"required"`
}

func (s *InventoryService) PlaceOrder(placedBy uint, req OrderRequest) (*model.SupplierOrder, error) {
	if len(req.Lines) == 0 {
		return nil, errors.New("order requires at least one line")
	}

	now := time.Now()
	order := &model.SupplierOrder{
		SupplierName: req.SupplierName,
		Status:       model.OrderStatusPlaced,
		PlacedBy:     placedBy,
		PlacedAt:     &now,
		Notes:        req.Notes,
	}
	for _, l := range req.Lines {
		order.Lines = append(order.Lines, model.SupplierOrderLine{
			ItemID:   l.ItemID,
			Quantity: l.Quantity,
			UnitCost: l.UnitCost,
		})
	}

	if err := s.InventoryRepo.CreateOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

// ReceiveOrder 收货：订单置为 received 并把各行数量入账到库存
func (s *InventoryService) ReceiveOrder(orderID uint) (*model.SupplierOrder, error) {
	order, err := s.InventoryRepo.FindOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusPlaced {
		return nil, util.ErrOrderNotOpen
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		order.Status = model.OrderStatusReceived
		order.ReceivedAt = &now
		if err := tx.Save(order).Error; err != nil {
			return err
		}

		for _, line := range order.Lines {
			err := tx.Model(&model.InventoryItem{}).Where("id = ?", line.ItemID).
				Update("quantity", gorm.Expr("quantity + ?", line.Quantity)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *InventoryService) ListOrders(status string, page, pageSize int) ([]model.SupplierOrder, int64, error) {
	return s.InventoryRepo.ListOrders(status, page, pageSize)
}
