// Package export renders order history as an Excel workbook.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/tealeg/xlsx"

	"github.com/shashiranjanraj/storefront/app/models"
)

// ContentType is the MIME type of the workbook produced here.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// OrdersWorkbook builds a workbook with an "Orders" summary sheet and an
// "Items" sheet holding one row per line item.
func OrdersWorkbook(orders []models.Order) (*xlsx.File, error) {
	file := xlsx.NewFile()

	summary, err := file.AddSheet("Orders")
	if err != nil {
		return nil, fmt.Errorf("export: add orders sheet: %w", err)
	}
	header(summary, "Order", "Date", "Status", "Items", "Total", "Ship To", "Address", "Phone", "Email")
	for _, o := range orders {
		row := summary.AddRow()
		row.AddCell().SetValue(o.FormattedID())
		row.AddCell().SetValue(o.Timestamp.Format("2006-01-02 15:04:05"))
		row.AddCell().SetValue(o.Status)
		row.AddCell().SetValue(models.SumQuantity(o.Items))
		row.AddCell().SetFloatWithFormat(o.Total, "0.00")
		row.AddCell().SetValue(o.FullName)
		row.AddCell().SetValue(o.Address)
		row.AddCell().SetValue(o.Phone)
		row.AddCell().SetValue(o.Email)
	}

	lines, err := file.AddSheet("Items")
	if err != nil {
		return nil, fmt.Errorf("export: add items sheet: %w", err)
	}
	header(lines, "Order", "Product ID", "Product", "Unit Price", "Quantity", "Line Total")
	for _, o := range orders {
		for _, it := range o.Items {
			row := lines.AddRow()
			row.AddCell().SetValue(o.FormattedID())
			row.AddCell().SetValue(it.Product.ID)
			row.AddCell().SetValue(it.Product.Name)
			row.AddCell().SetFloatWithFormat(it.Product.Price, "0.00")
			row.AddCell().SetValue(it.Quantity)
			row.AddCell().SetFloatWithFormat(it.Total(), "0.00")
		}
	}
	return file, nil
}

// OrdersToXLSX writes the workbook for orders to w.
func OrdersToXLSX(w io.Writer, orders []models.Order) error {
	file, err := OrdersWorkbook(orders)
	if err != nil {
		return err
	}
	if err := file.Write(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

// OrdersToFile writes the workbook for orders to path.
func OrdersToFile(path string, orders []models.Order) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := OrdersToXLSX(f, orders); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func header(sheet *xlsx.Sheet, titles ...string) {
	row := sheet.AddRow()
	for _, t := range titles {
		row.AddCell().SetValue(t)
	}
}
