// Package cart holds the session-scoped shopping cart as a plain value.
// Operations return a new cart instead of mutating shared state; the
// session layer is responsible for persisting the result.
package cart

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/real-danalex/butterburst-api/models"
)

// Line is one (product, quantity) pair. The cart never caches prices;
// totals are always resolved against the live catalog.
type Line struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type Cart []Line

// Add increments the quantity of an existing line or appends a new one.
// A non-positive quantity defaults to 1.
func (c Cart) Add(productID uint, quantity int) Cart {
	if quantity <= 0 {
		quantity = 1
	}
	out := make(Cart, len(c))
	copy(out, c)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity += quantity
			return out
		}
	}
	return append(out, Line{ProductID: productID, Quantity: quantity})
}

// SetQuantity replaces the stored quantity for a product. A quantity of
// zero or less removes the line.
func (c Cart) SetQuantity(productID uint, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(productID)
	}
	out := make(Cart, len(c))
	copy(out, c)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity = quantity
			break
		}
	}
	return out
}

// Remove drops the line for a product. Removing an absent product is a no-op.
func (c Cart) Remove(productID uint) Cart {
	out := make(Cart, 0, len(c))
	for _, line := range c {
		if line.ProductID != productID {
			out = append(out, line)
		}
	}
	return out
}

// Count returns the total number of units across all lines.
func (c Cart) Count() int {
	n := 0
	for _, line := range c {
		n += line.Quantity
	}
	return n
}

// ResolvedLine is a cart line joined against the live product row.
type ResolvedLine struct {
	Product  models.Product  `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Materialize joins each line against the catalog. Lines whose product no
// longer exists are dropped from the result and excluded from the total.
func Materialize(db *gorm.DB, c Cart) ([]ResolvedLine, decimal.Decimal, error) {
	resolved := make([]ResolvedLine, 0, len(c))
	total := decimal.Zero
	for _, line := range c {
		var product models.Product
		if err := db.First(&product, line.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, decimal.Zero, err
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		resolved = append(resolved, ResolvedLine{
			Product:  product,
			Quantity: line.Quantity,
			Subtotal: subtotal,
		})
		total = total.Add(subtotal)
	}
	return resolved, total, nil
}
