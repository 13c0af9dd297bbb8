package entities

import "time"

type Order struct {
	OrderID    uint      `gorm:"primaryKey" json:"OrderID"`
	MenuID     uint      `gorm:"not null;index" json:"MenuID"`
	Quantity   int       `gorm:"not null" json:"Quantity"`
	TotalPrice float64   `gorm:"not null" json:"TotalPrice"`
	OrderDate  time.Time `gorm:"autoCreateTime" json:"OrderDate"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuID;references:MenuID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}
