package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Page bounds a list query.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) apply(q *gorm.DB) *gorm.DB {
	if p.Limit > 0 {
		q = q.Limit(p.Limit)
	}
	if p.Offset > 0 {
		q = q.Offset(p.Offset)
	}
	return q
}

// Repositories bundles the typed repositories over one gorm handle. A bundle
// built from a transaction handle scopes every repository to that transaction.
type Repositories struct {
	db *gorm.DB

	Profiles      *ProfileRepo
	Addresses     *AddressRepo
	Categories    *CategoryRepo
	Products      *ProductRepo
	Orders        *OrderRepo
	Requests      *RequestRepo
	Coupons       *CouponRepo
	Shipments     *ShipmentRepo
	Payments      *PaymentRepo
	Wallet        *WalletRepo
	Referrals     *ReferralRepo
	Notifications *NotificationRepo
	Wishlist      *WishlistRepo
	Content       *ContentRepo
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		db:            db,
		Profiles:      &ProfileRepo{DB: db},
		Addresses:     &AddressRepo{DB: db},
		Categories:    &CategoryRepo{DB: db},
		Products:      &ProductRepo{DB: db},
		Orders:        &OrderRepo{DB: db},
		Requests:      &RequestRepo{DB: db},
		Coupons:       &CouponRepo{DB: db},
		Shipments:     &ShipmentRepo{DB: db},
		Payments:      &PaymentRepo{DB: db},
		Wallet:        &WalletRepo{DB: db},
		Referrals:     &ReferralRepo{DB: db},
		Notifications: &NotificationRepo{DB: db},
		Wishlist:      &WishlistRepo{DB: db},
		Content:       &ContentRepo{DB: db},
	}
}

// DB exposes the underlying handle.
func (r *Repositories) DB() *gorm.DB {
	return r.db
}

// Transaction runs fn with a bundle bound to a single database transaction.
// Returning an error from fn rolls the transaction back.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}

func affected(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
