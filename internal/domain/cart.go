package domain

// CartItem is a product snapshot with the quantity ordered
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart holds the items of one shopping session
type Cart struct {
	Items []CartItem `json:"items"`
}

// TotalItems returns the number of units in the cart
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price times quantity over all lines
func (c Cart) TotalPrice() int {
	total := 0
	for _, item := range c.Items {
		total += item.Price * item.Quantity
	}
	return total
}

// CartView is the cart as returned to clients
type CartView struct {
	Items        []CartItem `json:"items"`
	TotalItems   int        `json:"total_items"`
	TotalPrice   int        `json:"total_price"`
	ShippingCost int        `json:"shipping_cost"`
	GrandTotal   int        `json:"grand_total"`
}

// View computes the totals. Shipping is free.
func (c Cart) View() CartView {
	items := c.Items
	if items == nil {
		items = []CartItem{}
	}
	total := c.TotalPrice()
	return CartView{
		Items:      items,
		TotalItems: c.TotalItems(),
		TotalPrice: total,
		GrandTotal: total,
	}
}

// CartItemInput adds a product to the cart
type CartItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CartQuantityInput sets the quantity of a cart line
type CartQuantityInput struct {
	Quantity int `json:"quantity"`
}
