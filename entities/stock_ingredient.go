package entities

// StockIngredient is one stock purchase. The Total_* and Unit_Price columns are
// written once at insert and never recomputed.
type StockIngredient struct {
	StockIngredientsID uint    `gorm:"primaryKey" json:"StockIngredientsID"`
	IngredientsID      uint    `gorm:"not null;index" json:"IngredientsID"`
	Container          string  `gorm:"size:50;not null" json:"Container"`
	Quantity           float64 `gorm:"not null" json:"Quantity"`
	ContainerSize      float64 `gorm:"not null" json:"Container_Size"`
	ContainerPrice     float64 `gorm:"not null" json:"Container_Price"`
	TotalQuantity      float64 `gorm:"not null" json:"Total_Quantity"`
	TotalPrice         float64 `gorm:"not null" json:"Total_Price"`
	UnitPrice          float64 `gorm:"not null" json:"Unit_Price"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientsID;references:IngredientsID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (StockIngredient) TableName() string {
	return "stock_ingredients"
}
