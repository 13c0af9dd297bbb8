package domain

var (
	MessageSuccessGetStock    = "success get stock ingredients"
	MessageSuccessCreateStock = "stock ingredient created successfully"
	MessageSuccessGetStockOne = "success get stock ingredient detail"
	MessageSuccessDeleteStock = "Stock ingredient deleted successfully"

	MessageFailedGetStock    = "failed to fetch stock ingredients"
	MessageFailedCreateStock = "failed to create stock ingredient"
	MessageFailedDeleteStock = "failed to delete stock ingredient"
)

type (
	// StockPurchaseRequest carries the caller-supplied fields of a stock purchase.
	// Amounts must be positive before the derived fields are computed.
	StockPurchaseRequest struct {
		IngredientsID  uint    `json:"IngredientsID" validate:"required"`
		Container      string  `json:"Container" validate:"required,max=50"`
		Quantity       float64 `json:"Quantity" validate:"gt=0"`
		ContainerSize  float64 `json:"Container_Size" validate:"gt=0"`
		ContainerPrice float64 `json:"Container_Price" validate:"gt=0"`
	}

	StockListing struct {
		StockIngredientsID uint    `gorm:"column:stock_ingredients_id" json:"StockIngredientsID"`
		IngredientsID      uint    `gorm:"column:ingredients_id" json:"IngredientsID"`
		Container          string  `gorm:"column:container" json:"Container"`
		Quantity           float64 `gorm:"column:quantity" json:"Quantity"`
		ContainerSize      float64 `gorm:"column:container_size" json:"Container_Size"`
		ContainerPrice     float64 `gorm:"column:container_price" json:"Container_Price"`
		TotalQuantity      float64 `gorm:"column:total_quantity" json:"Total_Quantity"`
		TotalPrice         float64 `gorm:"column:total_price" json:"Total_Price"`
		UnitPrice          float64 `gorm:"column:unit_price" json:"Unit_Price"`
		IngredientName     *string `gorm:"column:ingredient_name" json:"IngredientName"`
	}
)
