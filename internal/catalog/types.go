package catalog

import "github.com/shopspring/decimal"

// Product is an immutable catalog record. DisplayPrice is the formatted
// string shown in product cards; RawPrice is the only value used for
// cart arithmetic.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	Category     string          `json:"category"`
	Condition    string          `json:"condition"` // new, refurbished, open-box
	Rating       float64         `json:"rating"`
	ImageURL     *string         `json:"image_url,omitempty"`
	DisplayPrice string          `json:"display_price"`
	RawPrice     decimal.Decimal `json:"raw_price"`
	Colors       []string        `json:"colors,omitempty"`
	StorageTiers []string        `json:"storage_tiers,omitempty"`
}
