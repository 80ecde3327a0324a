package models

// Sender block printed on every shipping label.
const (
	SenderName    = "233Plug"
	SenderAddress = "Accra, Ghana"
	SenderContact = "Contact via 233plug.com"
)

// Recipient fallbacks used when a profile carries no usable data.
const (
	DefaultRecipientName    = "Customer"
	DefaultRecipientAddress = "Address not provided"
	DefaultRecipientCountry = "Ghana"
)

type LabelRecipient struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

// ShippingLabel is one printable 4x6 label for a batch member.
type ShippingLabel struct {
	Kind           string         `json:"kind"`
	EntityID       string         `json:"entity_id"`
	Ref            string         `json:"ref"`
	Description    string         `json:"description"`
	Recipient      LabelRecipient `json:"recipient"`
	BatchName      string         `json:"batch_name"`
	TrackingNumber string         `json:"tracking_number"`
}
