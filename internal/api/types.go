package api

// Category groups products.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Product is an inventory item.
type Product struct {
	ID          int       `json:"id"`
	Img         string    `json:"img,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	DateAdded   string    `json:"dateAdded"`
	CategoryID  int       `json:"categoryId"`
	Category    *Category `json:"category,omitempty"`
}

// CategoryName returns the embedded category name if the backend expanded it.
func (p Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// Sale records units of a product sold.
type Sale struct {
	ID           int      `json:"id"`
	Product      *Product `json:"product,omitempty"`
	ProductID    int      `json:"productId"`
	QuantitySold int      `json:"quantitySold"`
	TotalPrice   float64  `json:"totalPrice"`
	DateAdded    string   `json:"dateAdded"`
}

// ProductName returns the embedded product name if the backend expanded it.
func (s Sale) ProductName() string {
	if s.Product == nil {
		return ""
	}
	return s.Product.Name
}

// ProductInput is the create/update payload for products.
type ProductInput struct {
	Img         string  `json:"img,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	CategoryID  int     `json:"categoryId"`
}

// CategoryInput is the create/update payload for categories.
type CategoryInput struct {
	Name string `json:"name"`
}

// SaleInput is the create payload for sales.
type SaleInput struct {
	ProductID    int `json:"productId"`
	QuantitySold int `json:"quantitySold"`
}

// InventoryLevel is one slice of an inventory-levels chart.
type InventoryLevel struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Revenue is one bar of a revenue chart.
type Revenue struct {
	ItemName string  `json:"itemName"`
	Revenue  float64 `json:"revenue"`
}

// ItemsSold is one bar of an items-sold chart.
type ItemsSold struct {
	ItemName     string `json:"itemName"`
	QuantitySold int    `json:"quantitySold"`
}

// TotalRevenue is the total-revenue payload.
type TotalRevenue struct {
	TotalRevenue float64 `json:"totalRevenue"`
}

// TotalItemsSold is the total-items-sold payload.
type TotalItemsSold struct {
	TotalItemsSold int `json:"totalItemsSold"`
}
