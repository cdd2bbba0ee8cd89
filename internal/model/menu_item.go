package model

// MenuItem 菜单项及售价，成本由配料行汇总得出
// swagger:model MenuItem
type MenuItem struct {
	BaseModel
	Name        string  `gorm:"size:255;not null" json:"name"`
	Category    string  `gorm:"size:100;index" json:"category"` // starter / main / dessert / drink
	SellPrice   float64 `gorm:"default:0" json:"sellPrice"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`
	Description string  `gorm:"type:text" json:"description"`

	Ingredients []MenuIngredient `gorm:"foreignKey:MenuItemID" json:"ingredients,omitempty"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

// MenuIngredient 菜单项配料行，引用库存条目取单位成本
// swagger:model MenuIngredient
type MenuIngredient struct {
	BaseModel
	MenuItemID      uint    `gorm:"index;type:bigint unsigned;not null" json:"menuItemId"`
	InventoryItemID uint    `gorm:"index;type:bigint unsigned;not null" json:"inventoryItemId"`
	Quantity        float64 `gorm:"not null" json:"quantity"`
}

func (MenuIngredient) TableName() string {
	return "menu_ingredients"
}
