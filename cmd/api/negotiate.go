package main

import (
	"fmt"
	"net/http"

	"voltmart/internal/negotiation"

	"github.com/shopspring/decimal"
)

type negotiateItemPayload struct {
	lineKeyPayload
	Offer float64 `json:"offer" validate:"required,gt=0"`
}

type negotiateCartPayload struct {
	Offer float64 `json:"offer" validate:"required,gt=0"`
}

type negotiationResponse struct {
	Verdict  negotiation.Verdict `json:"verdict"`
	Message  string              `json:"message"`
	Accepted bool                `json:"accepted"`
	Cart     cartResponse        `json:"cart"`
}

// negotiateItemHandler runs one dialog attempt against a single
// line's current total (effective price times quantity). On
// acceptance the offer is converted to a per-unit price and stored on
// the line.
func (app *application) negotiateItemHandler(w http.ResponseWriter, r *http.Request) {
	var payload negotiateItemPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ledger := app.carts.Ledger(getSessionID(r))

	key := payload.key()
	line, ok := ledger.Item(key)
	if !ok {
		app.notFoundResponse(w, r, fmt.Errorf("line item %q is not in the cart", key))
		return
	}

	offer := decimal.NewFromFloat(payload.Offer)
	dialog := negotiation.NewDialog(app.config.negotiation.processingDelay)

	verdict, err := dialog.Propose(r.Context(), line.Subtotal(), offer)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if verdict.Accepted() {
		ledger.ApplySingleNegotiation(key, negotiation.UnitPrice(offer, line.Quantity))
	}

	resp := negotiationResponse{
		Verdict:  verdict,
		Message:  verdict.Message(),
		Accepted: verdict.Accepted(),
		Cart:     cartView(ledger),
	}
	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// negotiateCartHandler runs one dialog attempt against the whole
// cart's pre-protection total. On acceptance the total is
// redistributed proportionally across all lines.
func (app *application) negotiateCartHandler(w http.ResponseWriter, r *http.Request) {
	var payload negotiateCartPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ledger := app.carts.Ledger(getSessionID(r))

	reference := ledger.BaseTotal()
	if !reference.IsPositive() {
		app.badRequestResponse(w, r, fmt.Errorf("cannot negotiate an empty cart"))
		return
	}

	offer := decimal.NewFromFloat(payload.Offer)
	dialog := negotiation.NewDialog(app.config.negotiation.processingDelay)

	verdict, err := dialog.Propose(r.Context(), reference, offer)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if verdict.Accepted() {
		ledger.ApplyCartWideNegotiation(offer)
	}

	resp := negotiationResponse{
		Verdict:  verdict,
		Message:  verdict.Message(),
		Accepted: verdict.Accepted(),
		Cart:     cartView(ledger),
	}
	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
