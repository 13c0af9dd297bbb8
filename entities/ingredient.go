package entities

type Ingredient struct {
	IngredientsID     uint   `gorm:"primaryKey" json:"IngredientsID"`
	IngredientName    string `gorm:"size:100;not null" json:"IngredientName"`
	UnitOfMeasurement string `gorm:"size:20;not null" json:"UnitOfMeasurement"`
	CategoryID        uint   `gorm:"not null;index" json:"CategoryID"`

	Category *Category `gorm:"foreignKey:CategoryID;references:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
