package documents

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/Govind-619/Plug233/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// InvoicePDF renders an A4 invoice for an order.
func InvoicePDF(order *models.Order, customer *models.Profile, ref string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Company header
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, models.SenderName)
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, models.SenderAddress)
	pdf.Ln(8)
	pdf.Cell(100, 8, models.SenderContact)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "INVOICE")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(70, 8, "Order: #"+ref)
	pdf.Cell(70, 8, "Date: "+order.CreatedAt.Format("2006-01-02 15:04"))
	pdf.Ln(8)
	pdf.Cell(70, 8, "Payment Method: "+string(order.PaymentMethod))
	pdf.Cell(70, 8, "Status: "+string(order.Status))
	pdf.Ln(10)

	if customer != nil {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(100, 8, "Billed To:")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(100, 8, tr(customer.DisplayName()))
		pdf.Ln(6)
		if customer.Email != "" && customer.Email != customer.DisplayName() {
			pdf.Cell(100, 8, customer.Email)
			pdf.Ln(6)
		}
		if customer.Phone != "" {
			pdf.Cell(100, 8, "Phone: "+customer.Phone)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(80, 8, "Item", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Price", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Total", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)

	subtotal := decimal.Zero
	for _, item := range order.Items {
		name := item.Name
		if name == "" {
			name = "Product"
		}
		pdf.CellFormat(80, 8, tr(name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, item.Price.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, item.LineTotal().StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
		subtotal = subtotal.Add(item.LineTotal())
	}
	if len(order.Items) == 0 {
		// Orders converted from a request carry no lines.
		subtotal = order.TotalPrice.Add(order.DiscountAmount)
		pdf.CellFormat(80, 8, "Sourced item (request)", "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, "1", "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, subtotal.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, subtotal.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	totalsRow(pdf, "Subtotal:", order.Currency, subtotal, false)
	totalsRow(pdf, "Discount:", order.Currency, order.DiscountAmount, false)
	totalsRow(pdf, "Grand Total:", order.Currency, order.TotalPrice, true)

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 12)
	pdf.Cell(0, 10, "Thank you for shopping with 233Plug!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func totalsRow(pdf *gofpdf.Fpdf, label, currency string, amount decimal.Decimal, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(135, 8, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", style, 12)
	pdf.CellFormat(35, 8, fmt.Sprintf("%s %s", currency, amount.StringFixed(2)), "", 1, "R", false, 0, "")
}
