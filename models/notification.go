package models

// NotificationType tags what triggered a notification.
type NotificationType string

const (
	NotificationQuote         NotificationType = "quote"
	NotificationStatus        NotificationType = "status"
	NotificationOrder         NotificationType = "order"
	NotificationShipment      NotificationType = "shipment"
	NotificationPaymentStatus NotificationType = "payment"
)

type Notification struct {
	Model
	UserID  string           `json:"user_id" gorm:"size:36;not null;index"`
	Type    NotificationType `json:"type" gorm:"size:20;not null"`
	Message string           `json:"message" gorm:"not null"`
	Read    bool             `json:"read" gorm:"default:false"`
}
