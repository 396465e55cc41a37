package models

// Product is a catalog entry. Products are written once by the seeder and
// are read-only in normal operation.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

// DisplayPrice formats Price as "$129.99".
func (p Product) DisplayPrice() string { return FormatMoney(p.Price) }
