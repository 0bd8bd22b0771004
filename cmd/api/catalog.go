package main

import (
	"errors"
	"fmt"
	"net/http"

	"voltmart/internal/catalog"

	"github.com/go-chi/chi/v5"
)

func (app *application) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	products := app.catalog.List()

	if err := app.jsonResponse(w, http.StatusOK, products); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) getProductHandler(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	p, err := app.catalog.Get(productID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, p); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) searchProductsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		app.badRequestResponse(w, r, fmt.Errorf("query parameter 'q' is required"))
		return
	}

	results := app.catalog.Search(query)
	if results == nil {
		results = []catalog.Product{}
	}

	if err := app.jsonResponse(w, http.StatusOK, results); err != nil {
		app.internalServerError(w, r, err)
	}
}
