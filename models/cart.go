package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CartSessionKey is the stable name the cart is persisted under.
const CartSessionKey = "233plug-cart"

type CartItem struct {
	ProductID string          `json:"product_id"`
	VariantID string          `json:"variant_id,omitempty"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

func (i CartItem) sameLine(productID, variantID string) bool {
	return i.ProductID == productID && i.VariantID == variantID
}

// Cart is a serializable value owned by one session. Methods return a new
// Cart and never mutate the receiver's backing array.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add merges the quantity into an existing line for the same product and
// variant, or appends a new line.
func (c Cart) Add(item CartItem) Cart {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	out := make([]CartItem, 0, len(c.Items)+1)
	merged := false
	for _, it := range c.Items {
		if it.sameLine(item.ProductID, item.VariantID) {
			it.Quantity += item.Quantity
			merged = true
		}
		out = append(out, it)
	}
	if !merged {
		out = append(out, item)
	}
	return Cart{Items: out}
}

func (c Cart) Remove(productID, variantID string) Cart {
	out := make([]CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		if !it.sameLine(productID, variantID) {
			out = append(out, it)
		}
	}
	return Cart{Items: out}
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or less
// drops the line.
func (c Cart) UpdateQuantity(productID, variantID string, quantity int) Cart {
	out := make([]CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.sameLine(productID, variantID) {
			it.Quantity = quantity
		}
		if it.Quantity > 0 {
			out = append(out, it)
		}
	}
	return Cart{Items: out}
}

func (c Cart) Clear() Cart {
	return Cart{Items: []CartItem{}}
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) TotalItems() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Encode serializes the cart for session storage.
func (c Cart) Encode() (string, error) {
	if c.Items == nil {
		c.Items = []CartItem{}
	}
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeCart parses a stored cart. An empty string yields an empty cart.
func DecodeCart(raw string) (Cart, error) {
	var c Cart
	if raw == "" {
		return Cart{Items: []CartItem{}}, nil
	}
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return Cart{Items: []CartItem{}}, err
	}
	if c.Items == nil {
		c.Items = []CartItem{}
	}
	return c, nil
}
