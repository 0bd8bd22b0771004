package main

import (
	"errors"
	"net/http"

	"voltmart/internal/catalog"

	"github.com/go-chi/chi/v5"
)

type savedProductPayload struct {
	ProductID string `json:"product_id" validate:"required"`
}

// resolveProducts maps saved ids back to catalog records, dropping
// ids whose products have since left the catalog.
func (app *application) resolveProducts(ids []string) []catalog.Product {
	out := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, err := app.catalog.Get(id); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func (app *application) getWishlistHandler(w http.ResponseWriter, r *http.Request) {
	ids, err := app.saved.Wishes(getSessionID(r))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, app.resolveProducts(ids)); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) addWishHandler(w http.ResponseWriter, r *http.Request) {
	var payload savedProductPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if _, err := app.catalog.Get(payload.ProductID); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.saved.AddWish(getSessionID(r), payload.ProductID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (app *application) removeWishHandler(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	if err := app.saved.RemoveWish(getSessionID(r), productID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
