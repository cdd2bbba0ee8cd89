package model

import (
	"time"
)

// InventoryItem 库存条目
// swagger:model InventoryItem
type InventoryItem struct {
	BaseModel
	Name         string  `gorm:"size:255;not null" json:"name"`
	SKU          string  `gorm:"size:100;unique" json:"sku"`
	Category     string  `gorm:"size:100;index" json:"category"` // produce / dry / frozen / packaging
	Unit         string  `gorm:"size:20" json:"unit"`            // kg / ea / case
	Quantity     float64 `gorm:"default:0" json:"quantity"`
	ReorderLevel float64 `gorm:"default:0" json:"reorderLevel"` // 低于该值进入低库存列表
	UnitCost     float64 `gorm:"default:0" json:"unitCost"`
	SupplierName string  `gorm:"size:255" json:"supplierName"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

const (
	OrderStatusDraft     = "draft"
	OrderStatusPlaced    = "placed"
	OrderStatusReceived  = "received"
	OrderStatusCancelled = "cancelled"
)

// SupplierOrder 采购单
// swagger:model SupplierOrder
type SupplierOrder struct {
	BaseModel
	SupplierName string     `gorm:"size:255;not null" json:"supplierName"`
	Status       string     `gorm:"size:20;default:'draft'" json:"status"`
	PlacedBy     uint       `gorm:"index;type:bigint unsigned" json:"placedBy"`
	PlacedAt     *time.Time `json:"placedAt,omitempty"`
	ReceivedAt   *time.Time `json:"receivedAt,omitempty"`
	Notes        string     `gorm:"type:text" json:"notes"`

	Lines []SupplierOrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
}

func (SupplierOrder) TableName() string {
	return "supplier_orders"
}

// swagger:model SupplierOrderLine
type SupplierOrderLine struct {
	BaseModel
	OrderID  uint    `gorm:"index;type:bigint unsigned;not null" json:"orderId"`
	ItemID   uint    `gorm:"index;type:bigint unsigned;not null" json:"itemId"`
	Quantity float64 `gorm:"not null" json:"quantity"`
	UnitCost float64 `gorm:"default:0" json:"unitCost"`
}

func (SupplierOrderLine) TableName() string {
	return "supplier_order_lines"
}
