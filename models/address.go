package models

type Address struct {
	Model
	UserID    string `json:"user_id" gorm:"size:36;not null;index"`
	Label     string `json:"label"`
	Address   string `json:"address" gorm:"not null"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	IsDefault bool   `json:"is_default" gorm:"default:false"`
}
