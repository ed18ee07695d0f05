package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"github.com/woodora/woodora-api/initializers"
	"github.com/woodora/woodora-api/models"
)

// ExportOrdersToExcel streams every order as an xlsx download for the back office.
func ExportOrdersToExcel(ctx *gin.Context) {
	var orders []models.Order
	if err := initializers.DB.Preload("OrderItems").Order("created_at desc").Find(&orders).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch orders", err)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create Excel sheet", err)
		return
	}

	headers := []string{
		"ID", "Customer", "Email", "Phone", "City", "PaymentMethod",
		"ItemsPrice", "ShippingPrice", "TaxPrice", "TotalPrice",
		"IsPaid", "Status", "CreatedAt", "DeliveredAt",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range orders {
		row := sheet.AddRow()

		row.AddCell().SetValue(o.ID)
		row.AddCell().SetValue(o.ShippingAddress.Name)
		row.AddCell().SetValue(o.ShippingAddress.Email)
		row.AddCell().SetValue(o.ShippingAddress.Phone)
		row.AddCell().SetValue(o.ShippingAddress.City)
		row.AddCell().SetValue(o.PaymentMethod)
		row.AddCell().SetValue(o.ItemsPrice)
		row.AddCell().SetValue(o.ShippingPrice)
		row.AddCell().SetValue(o.TaxPrice)
		row.AddCell().SetValue(o.TotalPrice)
		row.AddCell().SetValue(o.IsPaid)
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		if o.DeliveredAt != nil {
			row.AddCell().SetValue(o.DeliveredAt.Format("2006-01-02 15:04:05"))
		} else {
			row.AddCell().SetValue("")
		}
	}

	ctx.Header("Content-Disposition", "attachment; filename=orders.xlsx")
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Header("Content-Transfer-Encoding", "binary")
	ctx.Header("Expires", "0")

	if err := file.Write(ctx.Writer); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to write Excel file", err)
	}
}
