package entities

// Recipe maps one ingredient into one menu item. (MenuID, IngredientsID) is the
// conceptual key; RecipeID is the surrogate.
type Recipe struct {
	RecipeID      uint    `gorm:"primaryKey" json:"RecipeID"`
	MenuID        uint    `gorm:"not null;index" json:"MenuID"`
	IngredientsID uint    `gorm:"not null;index" json:"IngredientsID"`
	Quantity      float64 `gorm:"not null" json:"Quantity"`

	MenuItem   *MenuItem   `gorm:"foreignKey:MenuID;references:MenuID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientsID;references:IngredientsID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Recipe) TableName() string {
	return "recipes"
}
