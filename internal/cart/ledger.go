package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"voltmart/internal/catalog"
)

// Ledger owns one cart's line items and all derived pricing. Items
// keep insertion order for stable rendering. Every operation on a key
// that is not in the cart is a silent no-op; a stale UI double-firing
// a click must never turn into an error.
//
// The mutex exists for the multi-session server embedding: each cart
// is still single-owner, but its operations serialize per request.
type Ledger struct {
	mu    sync.Mutex
	items []*LineItem
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// find returns the index of the line with the given key, or -1.
// Callers hold l.mu.
func (l *Ledger) find(key LineKey) int {
	for i, li := range l.items {
		if li.Key == key {
			return i
		}
	}
	return -1
}

// AddItem merges into an existing line when the product+variant
// combination is already in the cart, otherwise appends a new line.
// Repeated calls accumulate quantity. A quantity below 1 is clamped
// to 1 rather than creating invalid state.
func (l *Ledger) AddItem(p catalog.Product, quantity int, v Variant) {
	if quantity < 1 {
		quantity = 1
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	key := LineKey{ProductID: p.ID, Color: v.Color, Storage: v.Storage}
	if i := l.find(key); i >= 0 {
		l.items[i].Quantity += quantity
		return
	}

	l.items = append(l.items, &LineItem{
		Key:                    key,
		LineItemID:             key.String(),
		ProductID:              p.ID,
		Name:                   p.Name,
		Brand:                  p.Brand,
		Category:               p.Category,
		Condition:              p.Condition,
		Rating:                 p.Rating,
		ImageURL:               p.ImageURL,
		DisplayPrice:           p.DisplayPrice,
		RawPrice:               p.RawPrice,
		Quantity:               quantity,
		NegotiationStatus:      NegotiationNone,
		SelectedColor:          v.Color,
		SelectedSecondaryColor: v.SecondaryColor,
		SelectedStorage:        v.Storage,
	})
}

// RemoveItem deletes the line if present. Idempotent.
func (l *Ledger) RemoveItem(key LineKey) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.find(key)
	if i < 0 {
		return
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
}

// ChangeQuantity adjusts the line's quantity by delta, flooring at 1.
// The ledger never auto-removes on decrement; the caller swaps the
// decrement control for an explicit RemoveItem at quantity 1.
func (l *Ledger) ChangeQuantity(key LineKey, delta int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.find(key)
	if i < 0 {
		return
	}
	q := l.items[i].Quantity + delta
	if q < 1 {
		q = 1
	}
	l.items[i].Quantity = q
}

// ToggleProtection flips the 5% protection add-on for the line.
func (l *Ledger) ToggleProtection(key LineKey) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i := l.find(key); i >= 0 {
		l.items[i].HasProtection = !l.items[i].HasProtection
	}
}

// ApplySingleNegotiation stores an accepted per-unit price on the
// line and marks it negotiated. The accept/reject decision belongs to
// the negotiation rule; the ledger only stores the outcome.
func (l *Ledger) ApplySingleNegotiation(key LineKey, unitPrice decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.find(key)
	if i < 0 {
		return
	}
	l.items[i].NegotiatedUnitPrice = &unitPrice
	l.items[i].NegotiationStatus = NegotiationAccepted
}

// ApplyCartWideNegotiation scales every line's effective unit price
// by newTotal / currentBaseTotal so the pre-protection sum lands on
// the accepted total while relative weighting between lines is kept.
// The base respects prior single-line negotiations, so this is a
// one-shot scaling of current state, not a persistent constraint.
// No-op when the base total is zero (empty or fully zero-priced cart).
func (l *Ledger) ApplyCartWideNegotiation(newTotal decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()

	base := decimal.Zero
	for _, li := range l.items {
		base = base.Add(li.Subtotal())
	}
	if !base.IsPositive() {
		return
	}

	ratio := newTotal.Div(base)
	for _, li := range l.items {
		p := li.EffectiveUnitPrice().Mul(ratio)
		li.NegotiatedUnitPrice = &p
		li.NegotiationStatus = NegotiationAccepted
	}
}

// BaseTotal is the pre-protection cart total (the reference price for
// a cart-wide negotiation).
func (l *Ledger) BaseTotal() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := decimal.Zero
	for _, li := range l.items {
		total = total.Add(li.Subtotal())
	}
	return total
}

// Totals recomputes the derived cart values from current state on
// every call; nothing here is cached.
func (l *Ledger) Totals() Totals {
	l.mu.Lock()
	defer l.mu.Unlock()

	t := Totals{Subtotal: decimal.Zero}
	for _, li := range l.items {
		t.ItemCount += li.Quantity
		t.Subtotal = t.Subtotal.Add(li.Total())
	}
	return t
}

// Items returns a snapshot of the lines in insertion order, safe for
// the caller to hold across further mutations.
func (l *Ledger) Items() []LineItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LineItem, len(l.items))
	for i, li := range l.items {
		out[i] = *li
		if li.NegotiatedUnitPrice != nil {
			p := *li.NegotiatedUnitPrice
			out[i].NegotiatedUnitPrice = &p
		}
	}
	return out
}

// Item returns a copy of a single line.
func (l *Ledger) Item(key LineKey) (LineItem, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.find(key)
	if i < 0 {
		return LineItem{}, false
	}
	li := *l.items[i]
	if l.items[i].NegotiatedUnitPrice != nil {
		p := *l.items[i].NegotiatedUnitPrice
		li.NegotiatedUnitPrice = &p
	}
	return li, true
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Clear empties the cart.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
}
