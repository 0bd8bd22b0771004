package main

import (
	"errors"
	"fmt"
	"net/http"

	"voltmart/internal/cart"
	"voltmart/internal/catalog"
)

// --- payloads ---

type lineKeyPayload struct {
	ProductID string `json:"product_id" validate:"required"`
	Color     string `json:"color"`
	Storage   string `json:"storage"`
}

func (p lineKeyPayload) key() cart.LineKey {
	return cart.LineKey{ProductID: p.ProductID, Color: p.Color, Storage: p.Storage}
}

type addItemPayload struct {
	ProductID      string `json:"product_id" validate:"required"`
	Quantity       int    `json:"quantity" validate:"omitempty,min=1"`
	Color          string `json:"color"`
	SecondaryColor string `json:"secondary_color"`
	Storage        string `json:"storage"`
}

type changeQuantityPayload struct {
	lineKeyPayload
	Delta int `json:"delta" validate:"required"`
}

// --- responses ---

type cartLineResponse struct {
	LineItemID     string        `json:"line_item_id"`
	Key            cart.LineKey  `json:"key"`
	ProductID      string        `json:"product_id"`
	Name           string        `json:"name"`
	Brand          string        `json:"brand"`
	Category       string        `json:"category"`
	Condition      string        `json:"condition"`
	ImageURL       *string       `json:"image_url,omitempty"`
	DisplayPrice   string        `json:"display_price"`
	Quantity       int           `json:"quantity"`
	ListUnitPrice  float64       `json:"list_unit_price"`
	UnitPrice      float64       `json:"unit_price"`
	Negotiated     bool          `json:"negotiated"`
	HasProtection  bool          `json:"has_protection"`
	ProtectionCost float64       `json:"protection_cost"`
	LineTotal      float64       `json:"line_total"`
	Color          string        `json:"color,omitempty"`
	SecondaryColor string        `json:"secondary_color,omitempty"`
	Storage        string        `json:"storage,omitempty"`
}

type cartResponse struct {
	Items     []cartLineResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Subtotal  float64            `json:"subtotal"`
}

func cartView(l *cart.Ledger) cartResponse {
	items := l.Items()
	totals := l.Totals()

	resp := cartResponse{
		Items:     make([]cartLineResponse, 0, len(items)),
		ItemCount: totals.ItemCount,
		Subtotal:  totals.Subtotal.InexactFloat64(),
	}
	for i := range items {
		li := &items[i]
		resp.Items = append(resp.Items, cartLineResponse{
			LineItemID:     li.LineItemID,
			Key:            li.Key,
			ProductID:      li.ProductID,
			Name:           li.Name,
			Brand:          li.Brand,
			Category:       li.Category,
			Condition:      li.Condition,
			ImageURL:       li.ImageURL,
			DisplayPrice:   li.DisplayPrice,
			Quantity:       li.Quantity,
			ListUnitPrice:  li.RawPrice.InexactFloat64(),
			UnitPrice:      li.EffectiveUnitPrice().InexactFloat64(),
			Negotiated:     li.NegotiationStatus == cart.NegotiationAccepted,
			HasProtection:  li.HasProtection,
			ProtectionCost: li.ProtectionCost().InexactFloat64(),
			LineTotal:      li.Total().InexactFloat64(),
			Color:          li.SelectedColor,
			SecondaryColor: li.SelectedSecondaryColor,
			Storage:        li.SelectedStorage,
		})
	}
	return resp
}

// --- handlers ---

func (app *application) getCartHandler(w http.ResponseWriter, r *http.Request) {
	ledger := app.carts.Ledger(getSessionID(r))

	if err := app.jsonResponse(w, http.StatusOK, cartView(ledger)); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var payload addItemPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	p, err := app.catalog.Get(payload.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	qty := payload.Quantity
	if qty == 0 {
		qty = 1
	}

	ledger := app.carts.Ledger(getSessionID(r))
	ledger.AddItem(p, qty, cart.Variant{
		Color:          payload.Color,
		SecondaryColor: payload.SecondaryColor,
		Storage:        payload.Storage,
	})

	if err := app.jsonResponse(w, http.StatusCreated, cartView(ledger)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// removeCartItemHandler deletes a line; removing an absent line still
// returns the current cart, matching the ledger's idempotent remove.
func (app *application) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	productID := q.Get("product_id")
	if productID == "" {
		app.badRequestResponse(w, r, fmt.Errorf("query parameter 'product_id' is required"))
		return
	}
	key := cart.LineKey{ProductID: productID, Color: q.Get("color"), Storage: q.Get("storage")}

	ledger := app.carts.Ledger(getSessionID(r))
	ledger.RemoveItem(key)

	if err := app.jsonResponse(w, http.StatusOK, cartView(ledger)); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) changeQuantityHandler(w http.ResponseWriter, r *http.Request) {
	var payload changeQuantityPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ledger := app.carts.Ledger(getSessionID(r))
	ledger.ChangeQuantity(payload.key(), payload.Delta)

	if err := app.jsonResponse(w, http.StatusOK, cartView(ledger)); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) toggleProtectionHandler(w http.ResponseWriter, r *http.Request) {
	var payload lineKeyPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ledger := app.carts.Ledger(getSessionID(r))
	ledger.ToggleProtection(payload.key())

	if err := app.jsonResponse(w, http.StatusOK, cartView(ledger)); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	ledger := app.carts.Ledger(getSessionID(r))
	ledger.Clear()

	if err := app.jsonResponse(w, http.StatusOK, cartView(ledger)); err != nil {
		app.internalServerError(w, r, err)
	}
}
