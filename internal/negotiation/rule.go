// Package negotiation implements the price haggling rule and the
// dialog state machine that fronts it. The rule decides; the cart
// ledger only stores accepted prices.
package negotiation

import "github.com/shopspring/decimal"

// maxDiscount is the largest discount the rule accepts. The boundary
// is inclusive: an offer at exactly 20% off is accepted.
var maxDiscount = decimal.New(2, -1)

type Verdict string

const (
	VerdictAccepted Verdict = "accepted"
	// VerdictTooHigh rejects offers at or above the reference price;
	// there is nothing to negotiate, buy at list price.
	VerdictTooHigh Verdict = "rejected_too_high"
	// VerdictTooLow rejects offers cut deeper than maxDiscount.
	VerdictTooLow Verdict = "rejected_too_low"
)

func (v Verdict) Accepted() bool { return v == VerdictAccepted }

// Message is the user-facing text for the verdict.
func (v Verdict) Message() string {
	switch v {
	case VerdictAccepted:
		return "Offer accepted! The negotiated price has been applied."
	case VerdictTooHigh:
		return "Your offer is at or above the current price. You can buy at the listed price instead."
	case VerdictTooLow:
		return "Your offer is too low. Try something closer to the current price."
	default:
		return ""
	}
}

// Decide evaluates a proposed total against the current reference
// total. Stateless: every attempt is judged against whatever the
// reference is now, which may already reflect an earlier accepted
// negotiation.
func Decide(reference, offer decimal.Decimal) Verdict {
	if offer.GreaterThanOrEqual(reference) {
		return VerdictTooHigh
	}
	// offer < reference; accept iff discount <= maxDiscount, i.e.
	// offer >= reference * (1 - maxDiscount). Exact decimal compare,
	// no division.
	floor := reference.Mul(decimal.NewFromInt(1).Sub(maxDiscount))
	if offer.LessThan(floor) {
		return VerdictTooLow
	}
	return VerdictAccepted
}

// UnitPrice converts an accepted line total into the per-unit value
// the ledger stores.
func UnitPrice(offerTotal decimal.Decimal, quantity int) decimal.Decimal {
	if quantity <= 1 {
		return offerTotal
	}
	return offerTotal.Div(decimal.NewFromInt(int64(quantity)))
}
