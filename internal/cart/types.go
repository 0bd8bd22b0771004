package cart

import (
	"strings"

	"github.com/shopspring/decimal"
)

// protectionRate is the flat surcharge for the per-line protection
// add-on: 5% of the pre-protection line subtotal.
var protectionRate = decimal.New(5, -2)

type NegotiationStatus string

const (
	NegotiationNone     NegotiationStatus = "none"
	NegotiationAccepted NegotiationStatus = "accepted"
)

// Variant is the buyer's selection attached at add-to-cart time.
// Color and Storage participate in line identity; SecondaryColor is
// informational only and affects neither identity nor price.
type Variant struct {
	Color          string `json:"color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
	Storage        string `json:"storage,omitempty"`
}

// LineKey identifies a line item within a cart. It is a comparable
// struct rather than a joined string so attribute values containing a
// would-be separator can never collide.
type LineKey struct {
	ProductID string `json:"product_id"`
	Color     string `json:"color,omitempty"`
	Storage   string `json:"storage,omitempty"`
}

// String renders a human-readable id for display and logs. Not used
// for lookup.
func (k LineKey) String() string {
	parts := []string{k.ProductID}
	if k.Color != "" {
		parts = append(parts, k.Color)
	}
	if k.Storage != "" {
		parts = append(parts, k.Storage)
	}
	return strings.Join(parts, " / ")
}

// LineItem is a cart entry: a snapshot of the product taken at add
// time plus the cart-owned mutable state. NegotiatedUnitPrice is nil
// until a negotiation is accepted, so "not negotiated" is never
// confused with "negotiated to zero".
type LineItem struct {
	Key LineKey `json:"key"`

	LineItemID   string          `json:"line_item_id"`
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	Category     string          `json:"category"`
	Condition    string          `json:"condition"`
	Rating       float64         `json:"rating"`
	ImageURL     *string         `json:"image_url,omitempty"`
	DisplayPrice string          `json:"display_price"`
	RawPrice     decimal.Decimal `json:"raw_price"`

	Quantity            int               `json:"quantity"`
	NegotiatedUnitPrice *decimal.Decimal  `json:"negotiated_unit_price,omitempty"`
	NegotiationStatus   NegotiationStatus `json:"negotiation_status"`
	HasProtection       bool              `json:"has_protection"`

	SelectedColor          string `json:"selected_color,omitempty"`
	SelectedSecondaryColor string `json:"selected_secondary_color,omitempty"`
	SelectedStorage        string `json:"selected_storage,omitempty"`
}

// EffectiveUnitPrice is the price used for all arithmetic on this
// line: the negotiated price when set, the raw price otherwise.
func (li *LineItem) EffectiveUnitPrice() decimal.Decimal {
	if li.NegotiatedUnitPrice != nil {
		return *li.NegotiatedUnitPrice
	}
	return li.RawPrice
}

// Subtotal is effective unit price times quantity, before protection.
func (li *LineItem) Subtotal() decimal.Decimal {
	return li.EffectiveUnitPrice().Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func (li *LineItem) ProtectionCost() decimal.Decimal {
	if !li.HasProtection {
		return decimal.Zero
	}
	return li.Subtotal().Mul(protectionRate)
}

// Total is the line's contribution to the cart subtotal.
func (li *LineItem) Total() decimal.Decimal {
	return li.Subtotal().Add(li.ProtectionCost())
}

// Totals is the derived view of the whole cart, recomputed on demand.
type Totals struct {
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
