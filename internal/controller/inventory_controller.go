package controller

import (
	"errors"
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/service"
	"resto_ops_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InventoryController 库存与采购
type InventoryController struct {
	service *service.InventoryService
}

func NewInventoryController(s *service.InventoryService) *InventoryController {
	return &InventoryController{service: s}
}

type InventoryItemRequest struct {
	Name         string  `json:"name" binding:"required"`
	SKU          string  `json:"sku"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit" binding:"required"`
	Quantity     float64 `json:"quantity"`
	ReorderLevel float64 `json:"reorderLevel"`
	UnitCost     float64 `json:"unitCost"`
	SupplierName string  `json:"supplierName"`
}

func (c *InventoryController) ListItems(ctx *gin.Context) {
	items, err := c.service.ListItems(ctx.Query("category"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

func (c *InventoryController) ListLowStock(ctx *gin.Context) {
	items, err := c.service.ListLowStock()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

func (c *InventoryController) CreateItem(ctx *gin.Context) {
	var req InventoryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item := &model.InventoryItem{
		Name:         req.Name,
		SKU:          req.SKU,
		Category:     req.Category,
		Unit:         req.Unit,
		Quantity:     req.Quantity,
		ReorderLevel: req.ReorderLevel,
		UnitCost:     req.UnitCost,
		SupplierName: req.SupplierName,
	}
	if err := c.service.CreateItem(item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, item)
}

func (c *InventoryController) UpdateItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid item id")
		return
	}

	var req InventoryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.service.GetItem(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	item.Name = req.Name
	item.SKU = req.SKU
	item.Category = req.Category
	item.Unit = req.Unit
	item.Quantity = req.Quantity
	item.ReorderLevel = req.ReorderLevel
	item.UnitCost = req.UnitCost
	item.SupplierName = req.SupplierName
	if err := c.service.UpdateItem(item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

func (c *InventoryController) DeleteItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid item id")
		return
	}
	if err := c.service.DeleteItem(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type StockAdjustRequest struct {
	Delta float64 `json:"delta" binding:"required"`
}

// AdjustStock 正数入库负数出库，单条原子更新
func (c *InventoryController) AdjustStock(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid item id")
		return
	}

	var req StockAdjustRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.service.AdjustStock(uint(id), req.Delta)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

func (c *InventoryController) PlaceOrder(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	order, err := c.service.PlaceOrder(claims.UserID, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, order)
}

func (c *InventoryController) ReceiveOrder(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid order id")
		return
	}

	order, err := c.service.ReceiveOrder(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrOrderNotOpen) {
			util.Conflict(ctx, err.Error())
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, order)
}

func (c *InventoryController) ListOrders(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))

	orders, total, err := c.service.ListOrders(ctx.Query("status"), page, pageSize)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"orders": orders,
		"total":  total,
	})
}
