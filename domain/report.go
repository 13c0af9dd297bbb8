package domain

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	MessageSuccessGetReport     = "success get report"
	MessageSuccessPublishReport = "report published successfully"
	MessageSuccessMailReport    = "report mailed successfully"

	MessageFailedGetReport     = "failed to get report"
	MessageFailedPublishReport = "failed to publish report"
	MessageFailedMailReport    = "failed to mail report"

	ErrUnknownReport       = errors.New("unknown report")
	ErrReportSinkDisabled  = errors.New("report sink is not configured")
	ErrReportRecipientNone = errors.New("report recipient is required")
)

type (
	TotalStockRow struct {
		IngredientsID     uint    `gorm:"column:ingredients_id" json:"IngredientsID"`
		IngredientName    string  `gorm:"column:ingredient_name" json:"IngredientName"`
		UnitOfMeasurement string  `gorm:"column:unit_of_measurement" json:"UnitOfMeasurement"`
		TotalStock        float64 `gorm:"column:total_stock" json:"TotalStock"`
	}

	IngredientUsageRow struct {
		IngredientsID  uint    `gorm:"column:ingredients_id" json:"IngredientsID"`
		IngredientName string  `gorm:"column:ingredient_name" json:"IngredientName"`
		TotalUsed      float64 `gorm:"column:total_used" json:"TotalUsed"`
	}

	RemainingStockRow struct {
		IngredientsID     uint    `gorm:"column:ingredients_id" json:"IngredientsID"`
		IngredientName    string  `gorm:"column:ingredient_name" json:"IngredientName"`
		UnitOfMeasurement string  `gorm:"column:unit_of_measurement" json:"UnitOfMeasurement"`
		TotalStock        float64 `gorm:"column:total_stock" json:"TotalStock"`
		TotalUsed         float64 `gorm:"column:total_used" json:"TotalUsed"`
		RemainingStock    float64 `gorm:"column:remaining_stock" json:"RemainingStock"`
	}

	MailReportRequest struct {
		To string `json:"to" validate:"required,email"`
	}

	PublishReportResponse struct {
		Location string `json:"location"`
	}
)

func (r TotalStockRow) CSVRecord() []string {
	return []string{fmt.Sprint(r.IngredientsID), r.IngredientName, r.UnitOfMeasurement, formatQuantity(r.TotalStock)}
}

func (r IngredientUsageRow) CSVRecord() []string {
	return []string{fmt.Sprint(r.IngredientsID), r.IngredientName, formatQuantity(r.TotalUsed)}
}

func (r RemainingStockRow) CSVRecord() []string {
	return []string{
		fmt.Sprint(r.IngredientsID),
		r.IngredientName,
		r.UnitOfMeasurement,
		formatQuantity(r.TotalStock),
		formatQuantity(r.TotalUsed),
		formatQuantity(r.RemainingStock),
	}
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
