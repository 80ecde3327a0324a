package documents

import (
	"bytes"

	"github.com/Govind-619/Plug233/models"
	"github.com/tealeg/xlsx"
)

// ManifestXLSX exports a batch and its labels as a spreadsheet.
func ManifestXLSX(batch *models.ShipmentBatch, labels []models.ShippingLabel) ([]byte, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Manifest")
	if err != nil {
		return nil, err
	}

	bold := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	bold.Font = *font

	title := sheet.AddRow()
	cell := title.AddCell()
	cell.SetString(models.SenderName + " shipment manifest")
	cell.SetStyle(bold)

	info := [][]string{
		{"Batch", batch.BatchName},
		{"Status", string(batch.Status)},
		{"Tracking Number", batch.TrackingNumber},
		{"Shipment Date", formatDate(batch.ShipmentDate)},
		{"Estimated Delivery", formatDate(batch.EstimatedDelivery)},
	}
	for _, kv := range info {
		row := sheet.AddRow()
		row.AddCell().SetString(kv[0])
		row.AddCell().SetString(kv[1])
	}
	sheet.AddRow() // spacing

	headers := []string{"Type", "Ref", "Description", "Recipient", "Address", "City", "Country", "Phone"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		c := headerRow.AddCell()
		c.SetString(h)
		c.SetStyle(bold)
	}
	for _, l := range labels {
		row := sheet.AddRow()
		row.AddCell().SetString(l.Kind)
		row.AddCell().SetString(l.Ref)
		row.AddCell().SetString(l.Description)
		row.AddCell().SetString(l.Recipient.Name)
		row.AddCell().SetString(l.Recipient.Address)
		row.AddCell().SetString(l.Recipient.City)
		row.AddCell().SetString(l.Recipient.Country)
		row.AddCell().SetString(l.Recipient.Phone)
	}

	sheet.AddRow()
	total := sheet.AddRow()
	c := total.AddCell()
	c.SetString("Total items")
	c.SetStyle(bold)
	total.AddCell().SetInt(len(labels))

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
