package documents

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Govind-619/Plug233/models"
	"github.com/jung-kurt/gofpdf"
)

// LabelsPDF renders one 4x6 inch page per label.
func LabelsPDF(labels []models.ShippingLabel) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           gofpdf.SizeType{Wd: 4, Ht: 6},
	})
	pdf.SetMargins(0.25, 0.25, 0.25)
	pdf.SetAutoPageBreak(false, 0.25)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, l := range labels {
		pdf.AddPage()

		// From
		pdf.SetFont("Arial", "B", 7)
		pdf.CellFormat(3.5, 0.18, "FROM", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(3.5, 0.2, models.SenderName, "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(3.5, 0.16, models.SenderAddress, "", 1, "L", false, 0, "")
		pdf.CellFormat(3.5, 0.16, models.SenderContact, "", 1, "L", false, 0, "")
		pdf.Ln(0.1)
		pdf.Line(0.25, pdf.GetY(), 3.75, pdf.GetY())
		pdf.Ln(0.1)

		// To
		r := l.Recipient
		pdf.SetFont("Arial", "B", 7)
		pdf.CellFormat(3.5, 0.18, "SHIP TO", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "B", 14)
		pdf.MultiCell(3.5, 0.26, tr(r.Name), "", "L", false)
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(3.5, 0.2, tr(r.Address), "", "L", false)
		if place := joinNonEmpty(", ", r.City, r.Country); place != "" {
			pdf.CellFormat(3.5, 0.2, tr(place), "", 1, "L", false, 0, "")
		}
		if r.Phone != "" {
			pdf.CellFormat(3.5, 0.2, tr("Tel: "+r.Phone), "", 1, "L", false, 0, "")
		}
		pdf.Ln(0.15)
		pdf.Line(0.25, pdf.GetY(), 3.75, pdf.GetY())
		pdf.Ln(0.1)

		// Reference
		kind := "Order"
		if l.Kind == "request" {
			kind = "Request"
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(3.5, 0.24, fmt.Sprintf("%s #%s", kind, l.Ref), "", 1, "L", false, 0, "")
		if l.Description != "" {
			pdf.SetFont("Arial", "", 9)
			pdf.MultiCell(3.5, 0.18, tr(l.Description), "", "L", false)
		}
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(3.5, 0.18, tr("Batch: "+l.BatchName), "", 1, "L", false, 0, "")

		// Tracking number in monospace; this is not a scannable barcode.
		if l.TrackingNumber != "" {
			pdf.SetY(4.7)
			pdf.SetFont("Arial", "B", 7)
			pdf.CellFormat(3.5, 0.16, "TRACKING", "", 1, "C", false, 0, "")
			pdf.SetFont("Courier", "B", 14)
			pdf.CellFormat(3.5, 0.35, spaced(l.TrackingNumber), "1", 1, "C", false, 0, "")
		}

		pdf.SetY(5.55)
		pdf.SetFont("Arial", "I", 7)
		pdf.CellFormat(3.5, 0.15, "233plug.com", "", 1, "C", false, 0, "")
	}

	if len(labels) == 0 {
		pdf.AddPage()
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(3.5, 0.2, "No items in this batch to print labels for.", "", "C", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
