package models

type WishlistItem struct {
	Model
	UserID    string   `json:"user_id" gorm:"size:36;not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID string   `json:"product_id" gorm:"size:36;not null;uniqueIndex:idx_wishlist_user_product"`
	Product   *Product `json:"product,omitempty"`
}
