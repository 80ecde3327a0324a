package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Model carries the UUID primary key and timestamps shared by every table.
type Model struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a new UUID unless the caller already set one.
func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Role gates access to the admin area
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleStaff      Role = "staff"
	RoleSuperAdmin Role = "super_admin"
)

// IsBackOffice reports whether the role may use the admin area.
func (r Role) IsBackOffice() bool {
	return r == RoleAdmin || r == RoleStaff || r == RoleSuperAdmin
}

// Profile is the storefront view of an authenticated account. The ID is the
// subject issued by the auth service.
type Profile struct {
	Model
	Name          string          `json:"name"`
	Email         string          `json:"email" gorm:"index"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Role          Role            `json:"role" gorm:"size:20;not null;default:user"`
	ReferralCode  string          `json:"referral_code" gorm:"uniqueIndex;size:16"`
	ReferredByID  *string         `json:"referred_by_id" gorm:"size:36"`
	WalletBalance decimal.Decimal `json:"wallet_balance" gorm:"type:numeric(12,2);not null;default:0"`
	AvatarURL     string          `json:"avatar_url"`
}

// DisplayName falls back to the email when no name was captured.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Email
}

// All lists every table for AutoMigrate, parents first.
func All() []interface{} {
	return []interface{}{
		&Profile{},
		&Address{},
		&Category{},
		&Product{},
		&ProductVariant{},
		&Coupon{},
		&ShipmentBatch{},
		&Order{},
		&OrderItem{},
		&Request{},
		&Payment{},
		&WalletTransaction{},
		&Referral{},
		&Notification{},
		&WishlistItem{},
		&HeroSlide{},
		&FAQ{},
		&SitePage{},
		&ContactSubmission{},
	}
}
