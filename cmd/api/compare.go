package main

import (
	"errors"
	"net/http"

	"voltmart/internal/catalog"
	"voltmart/internal/wishlist"

	"github.com/go-chi/chi/v5"
)

func (app *application) getComparisonHandler(w http.ResponseWriter, r *http.Request) {
	ids, err := app.saved.Compares(getSessionID(r))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, app.resolveProducts(ids)); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) addCompareHandler(w http.ResponseWriter, r *http.Request) {
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

	if err := app.saved.AddCompare(getSessionID(r), payload.ProductID); err != nil {
		if errors.Is(err, wishlist.ErrCompareFull) {
			app.conflictResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (app *application) removeCompareHandler(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	if err := app.saved.RemoveCompare(getSessionID(r), productID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
