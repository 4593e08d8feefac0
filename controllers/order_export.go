package controllers

import (
	"fmt"
	"time"

	"pos-backend/entity"
	"pos-backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

// GET /orders/export → one row per order, newest first
func (oc *OrderController) Export(c *gin.Context) {
	orders, err := oc.Orders.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	file, err := buildOrdersWorkbook(orders)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	name := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+name)
	if err := file.Write(c.Writer); err != nil {
		resp.ServerError(c, err)
	}
}

var orderExportHeaders = []string{
	"Order ID", "Ordered At", "Customer", "Phone", "Address", "Status",
	"Items", "Subtotal", "Tax", "Discount", "Total",
}

func buildOrdersWorkbook(orders []entity.Order) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return nil, err
	}

	header := sheet.AddRow()
	for _, h := range orderExportHeaders {
		header.AddCell().SetValue(h)
	}

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(o.ID))
		row.AddCell().SetValue(o.OrderedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetValue(o.CustomerName)
		row.AddCell().SetValue(o.CustomerPhone)
		row.AddCell().SetValue(o.CustomerAddress)
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(describeLines(o.Lines))
		for _, d := range []decimal.Decimal{o.Subtotal, o.Tax, o.Discount, o.Total} {
			row.AddCell().SetFloatWithFormat(d.InexactFloat64(), "0.00")
		}
	}
	return file, nil
}

func describeLines(lines []entity.OrderLine) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%dx %s", l.Quantity, l.Name)
	}
	return out
}
