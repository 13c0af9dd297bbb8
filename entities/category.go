package entities

type Category struct {
	CategoryID uint   `gorm:"primaryKey" json:"CategoryID"`
	Category   string `gorm:"size:100;not null" json:"Category"`
}

func (Category) TableName() string {
	return "categories"
}
