package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"
)

var ErrInvalidID = errors.New("invalid ID format")

type CreateProductRequest struct {
	Name  string           `json:"name" validate:"required"`
	Price *decimal.Decimal `json:"price" validate:"required"`
}

type ChangePriceRequest struct {
	Price *decimal.Decimal `json:"price" validate:"required"`
}

// createProductHandler godoc
//
//	@Summary		Create product
//	@Description	Creates a catalog product with a validated name and price
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Product to create"
//	@Success		201		{object}	domain.Product
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/products [post]
func (app *application) createProductHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product, err := app.productService.Create(r.Context(), req.Name, req.Price)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, product); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listProductsHandler godoc
//
//	@Summary		List products
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}	domain.Product
//	@Failure		500	{object}	map[string]string
//	@Router			/products [get]
func (app *application) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := app.productService.FindAll(r.Context())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, products); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getProductHandler godoc
//
//	@Summary		Get product by ID
//	@Tags			products
//	@Produce		json
//	@Param			product_id	path		string	true	"Product ID"
//	@Success		200			{object}	domain.Product
//	@Failure		404			{object}	map[string]string
//	@Router			/products/{product_id} [get]
func (app *application) getProductHandler(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	product, err := app.productService.GetByID(r.Context(), productID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, product); err != nil {
		app.internalServerError(w, r, err)
	}
}

// changeProductPriceHandler godoc
//
//	@Summary		Change product price
//	@Description	Updates the product price and hides any menu whose declared price becomes inconsistent
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product_id	path		string				true	"Product ID"
//	@Param			request		body		ChangePriceRequest	true	"New price"
//	@Success		200			{object}	domain.Product
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/products/{product_id}/price [put]
func (app *application) changeProductPriceHandler(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req ChangePriceRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product, err := app.productService.ChangePrice(r.Context(), productID, req.Price)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, product); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getProductAuditHandler godoc
//
//	@Summary		Get product price audit
//	@Description	Lists recent price changes of a product, newest first
//	@Tags			products
//	@Produce		json
//	@Param			product_id	path		string	true	"Product ID"
//	@Param			limit		query		int		false	"Max entries"
//	@Success		200			{array}		domain.ProductPriceAudit
//	@Failure		500			{object}	map[string]string
//	@Router			/products/{product_id}/audit [get]
func (app *application) getProductAuditHandler(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			app.badRequestResponse(w, r, errors.New("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	audits, err := app.productService.GetPriceAudit(r.Context(), productID, limit)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, audits); err != nil {
		app.internalServerError(w, r, err)
	}
}
