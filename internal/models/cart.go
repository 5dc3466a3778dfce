package models

import (
	"slices"

	"github.com/shopspring/decimal"
)

type LineItem struct {
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	Quantity    int      `json:"quantity"`
	Unit        string   `json:"unit"`
	Price       *float64 `json:"price,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
}

// Subtotal is price*quantity; ok is false for items without a price.
func (i LineItem) Subtotal() (subtotal decimal.Decimal, ok bool) {
	if i.Price == nil {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(*i.Price).Mul(decimal.NewFromInt(int64(i.Quantity))), true
}

func (i LineItem) clone() LineItem {
	if i.Price != nil {
		p := *i.Price
		i.Price = &p
	}
	return i
}

// Cart is an ordered list of line items, at most one per product. Methods never
// mutate the receiver; transitions return a new Cart.
type Cart struct {
	Items []LineItem `json:"items"`
}

type CartSummary struct {
	Items []LineItem `json:"items"`
	Lines int        `json:"lines"`
	Units int        `json:"units"`
	Total float64    `json:"total"`
	// Priced is false when at least one item carries no price; Total then only
	// covers the priced items and UIs show Units instead.
	Priced bool `json:"priced"`
}

func NewCart(items []LineItem) Cart {
	return Cart{Items: items}.Normalize()
}

func (c Cart) Clone() Cart {
	items := make([]LineItem, len(c.Items))
	for i, it := range c.Items {
		items[i] = it.clone()
	}
	return Cart{Items: items}
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) Find(productID string) (LineItem, bool) {
	idx := c.index(productID)
	if idx < 0 {
		return LineItem{}, false
	}
	return c.Items[idx].clone(), true
}

func (c Cart) index(productID string) int {
	return slices.IndexFunc(c.Items, func(it LineItem) bool { return it.ProductID == productID })
}

// WithAdded increments the product's line by one, or appends a new line copying
// the product's current name, price, unit and image.
func (c Cart) WithAdded(p Product) Cart {
	next := c.Clone()

	if idx := next.index(p.ID); idx >= 0 {
		next.Items[idx].Quantity++
		return next
	}

	price := p.Price
	next.Items = append(next.Items, LineItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    1,
		Unit:        p.Unit,
		Price:       &price,
		ImageURL:    p.ImageURL,
	})

	return next
}

// MaxQuantityDelta bounds a single quantity change.
const MaxQuantityDelta = 1000

// WithDelta adds delta to the product's quantity, dropping the line when the
// result is zero or less. Deltas are clamped to ±MaxQuantityDelta. found is
// false when the product is not in the cart.
func (c Cart) WithDelta(productID string, delta int) (next Cart, found bool) {
	idx := c.index(productID)
	if idx < 0 {
		return c.Clone(), false
	}

	delta = max(-MaxQuantityDelta, min(delta, MaxQuantityDelta))

	next = c.Clone()
	qty := next.Items[idx].Quantity + delta
	if qty <= 0 {
		next.Items = slices.Delete(next.Items, idx, idx+1)
		return next, true
	}

	next.Items[idx].Quantity = qty
	return next, true
}

// Minus takes the quantities in placed off the cart. Lines that were not part
// of placed, or grew after it was taken, keep what is left.
func (c Cart) Minus(placed Cart) Cart {
	ordered := make(map[string]int, len(placed.Items))
	for _, item := range placed.Items {
		ordered[item.ProductID] += item.Quantity
	}

	next := Cart{Items: make([]LineItem, 0, len(c.Items))}
	for _, item := range c.Items {
		item = item.clone()
		item.Quantity -= ordered[item.ProductID]
		if item.Quantity > 0 {
			next.Items = append(next.Items, item)
		}
	}

	return next
}

func (c Cart) Without(productID string) (next Cart, found bool) {
	idx := c.index(productID)
	if idx < 0 {
		return c.Clone(), false
	}

	next = c.Clone()
	next.Items = slices.Delete(next.Items, idx, idx+1)
	return next, true
}

// Normalize enforces the cart invariants on data read from storage: lines
// without a product id or with a non-positive quantity are dropped and
// duplicate products are merged into the first occurrence.
func (c Cart) Normalize() Cart {
	out := Cart{Items: make([]LineItem, 0, len(c.Items))}

	for _, it := range c.Items {
		if it.ProductID == "" || it.Quantity <= 0 {
			continue
		}
		if idx := out.index(it.ProductID); idx >= 0 {
			out.Items[idx].Quantity += it.Quantity
			continue
		}
		out.Items = append(out.Items, it.clone())
	}

	return out
}

func (c Cart) Total() float64 {
	total := decimal.Zero
	for _, it := range c.Items {
		if sub, ok := it.Subtotal(); ok {
			total = total.Add(sub)
		}
	}
	f, _ := total.Float64()
	return f
}

func (c Cart) Units() int {
	units := 0
	for _, it := range c.Items {
		units += it.Quantity
	}
	return units
}

func (c Cart) Summary() CartSummary {
	priced := true
	for _, it := range c.Items {
		if it.Price == nil {
			priced = false
			break
		}
	}

	return CartSummary{
		Items:  c.Clone().Items,
		Lines:  len(c.Items),
		Units:  c.Units(),
		Total:  c.Total(),
		Priced: priced,
	}
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type UpdateCartItemRequest struct {
	Delta int `json:"delta" validate:"required,min=-1000,max=1000"`
}
