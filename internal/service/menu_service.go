package service

import (
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/repository"
)

// MenuService 菜单成本核算：菜品成本 = Σ 配料用量 × 库存单位成本
type MenuService struct {
	MenuRepo      *repository.MenuRepository
	InventoryRepo *repository.InventoryRepository
}

func NewMenuService(menuRepo *repository.MenuRepository, inventoryRepo *repository.InventoryRepository) *MenuService {
	return &MenuService{
		MenuRepo:      menuRepo,
		InventoryRepo: inventoryRepo,
	}
}

// MenuItemCosting 菜品连同成本与毛利
type MenuItemCosting struct {
	model.MenuItem
	PlateCost     float64 `json:"plateCost"`
	MarginPercent float64 `json:"marginPercent"`
}

func (s *MenuService) cost(item *model.MenuItem) (float64, error) {
	ids := make([]uint, len(item.Ingredients))
	for i, ing := range item.Ingredients {
		ids[i] = ing.InventoryItemID
	}

	stock, err := s.InventoryRepo.FindItemsByIDs(ids)
	if err != nil {
		return 0, err
	}
	costByID := make(map[uint]float64, len(stock))
	for _, it := range stock {
		costByID[it.ID] = it.UnitCost
	}

	total := 0.0
	for _, ing := range item.Ingredients {
		total += ing.Quantity * costByID[ing.InventoryItemID]
	}
	return total, nil
}

func (s *MenuService) withCosting(item *model.MenuItem) (*MenuItemCosting, error) {
	plateCost, err := s.cost(item)
	if err != nil {
		return nil, err
	}

	margin := 0.0
	if item.SellPrice > 0 {
		margin = 100 * (item.SellPrice - plateCost) / item.SellPrice
	}
	return &MenuItemCosting{
		MenuItem:      *item,
		PlateCost:     plateCost,
		MarginPercent: margin,
	}, nil
}

func (s *MenuService) GetItem(id uint) (*MenuItemCosting, error) {
	item, err := s.MenuRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.withCosting(item)
}

func (s *MenuService) List(category string, activeOnly bool) ([]MenuItemCosting, error) {
	items, err := s.MenuRepo.List(category, activeOnly)
	if err != nil {
		return nil, err
	}

	costed := make([]MenuItemCosting, 0, len(items))
	for i := range items {
		c, err := s.withCosting(&items[i])
		if err != nil {
			return nil, err
		}
		costed = append(costed, *c)
	}
	return costed, nil
}

type MenuIngredientRequest struct {
	InventoryItemID uint    `json:"inventoryItemId" binding:"required"`
	Quantity        float64 `json:"quantity" binding:"required"`
}

type MenuItemRequest struct {
	Name        string                  `json:"name" binding:"required"`
	Category    string                  `json:"category"`
	SellPrice   float64                 `json:"sellPrice"`
	IsActive    bool                    `json:"isActive"`
	Description string                  `json:"description"`
	Ingredients []MenuIngredientRequest `json:"ingredients"`
}

func (s *MenuService) Create(req MenuItemRequest) (*MenuItemCosting, error) {
	item := &model.MenuItem{
		Name:        req.Name,
		Category:    req.Category,
		SellPrice:   req.SellPrice,
		IsActive:    req.IsActive,
		Description: req.Description,
	}
	for _, ing := range req.Ingredients {
		item.Ingredients = append(item.Ingredients, model.MenuIngredient{
			InventoryItemID: ing.InventoryItemID,
			Quantity:        ing.Quantity,
		})
	}

	if err := s.MenuRepo.Create(item); err != nil {
		return nil, err
	}
	return s.withCosting(item)
}

func (s *MenuService) Update(id uint, req MenuItemRequest) (*MenuItemCosting, error) {
	item, err := s.MenuRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	item.Name = req.Name
	item.Category = req.Category
	item.SellPrice = req.SellPrice
	item.IsActive = req.IsActive
	item.Description = req.Description
	item.Ingredients = nil
	if err := s.MenuRepo.Save(item); err != nil {
		return nil, err
	}

	lines := make([]model.MenuIngredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		lines = append(lines, model.MenuIngredient{
			InventoryItemID: ing.InventoryItemID,
			Quantity:        ing.Quantity,
		})
	}
	if err := s.MenuRepo.ReplaceIngredients(id, lines); err != nil {
		return nil, err
	}
	return s.GetItem(id)
}

func (s *MenuService) Delete(id uint) error {
	return s.MenuRepo.Delete(id)
}
