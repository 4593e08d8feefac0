package controllers

import (
	"strconv"
	"strings"

	"pos-backend/pkg/resp"
	"pos-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

// POST /menu/import (multipart "file")
// Columns: Name | Price | Description | Preparation Time | Image. Row 1 is the header.
func (mc *MenuController) Import(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "excel file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer f.Close()

	book, err := xlsx.OpenReaderAt(f, fh.Size)
	if err != nil {
		resp.BadRequest(c, "failed to parse excel file")
		return
	}
	if len(book.Sheets) == 0 || len(book.Sheets[0].Rows) < 2 {
		resp.BadRequest(c, "excel file is empty or missing header row")
		return
	}

	res, err := mc.Service.Import(menuRowsFromSheet(book.Sheets[0]))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, res)
}

func menuRowsFromSheet(sheet *xlsx.Sheet) []services.ImportRow {
	out := make([]services.ImportRow, 0, len(sheet.Rows))
	for i := 1; i < len(sheet.Rows); i++ {
		row := sheet.Rows[i]
		get := func(idx int) string {
			if row == nil || idx >= len(row.Cells) {
				return ""
			}
			return strings.TrimSpace(row.Cells[idx].String())
		}
		if get(0) == "" && get(1) == "" {
			continue
		}

		in := services.MenuItemInput{
			Name:        get(0),
			Description: get(2),
			Image:       get(4),
		}
		if p, err := decimal.NewFromString(get(1)); err == nil {
			in.Price = &p
		}
		if n, err := strconv.Atoi(get(3)); err == nil {
			in.PreparationTime = &n
		}
		out = append(out, services.ImportRow{Row: i + 1, Input: in})
	}
	return out
}
