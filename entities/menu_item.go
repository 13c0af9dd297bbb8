package entities

type MenuItem struct {
	MenuID       uint    `gorm:"primaryKey" json:"MenuID"`
	Menu         string  `gorm:"size:100;not null" json:"Menu"`
	SellingPrice float64 `gorm:"not null" json:"SellingPrice"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
