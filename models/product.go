package models

// Currency is the ISO-like code a product price is expressed in.
type Currency string

const (
	USD Currency = "USD"
	GBP Currency = "GBP"
	EUR Currency = "EUR"
)

// Product is a catalogue entry shown to authenticated users.
type Product struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Currency Currency `json:"currency"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// MainPage is the payload returned to an authenticated user on the main page:
// the caller's login name and the full product catalogue.
type MainPage struct {
	Username string    `json:"username"`
	Products []Product `json:"products"`
}
