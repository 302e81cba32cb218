package model

// TicketType is a purchasable admission tier. PriceIndian and
// PriceForeigner are the per-adult nationality rates; children pay half.
type TicketType struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	PriceIndian    float64  `json:"priceIndian"`
	PriceForeigner float64  `json:"priceForeigner"`
	Features       []string `json:"features"`
}
