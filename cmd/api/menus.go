package main

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"

	"github.com/eleeje97/kitchen-catalog/internal/service"
)

type CreateMenuRequest struct {
	Name         string            `json:"name" validate:"required"`
	Price        *decimal.Decimal  `json:"price" validate:"required"`
	MenuGroupID  string            `json:"menu_group_id" validate:"required"`
	MenuProducts []MenuProductItem `json:"menu_products" validate:"dive"`
}

type MenuProductItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required"`
}

// createMenuHandler godoc
//
//	@Summary		Create menu
//	@Description	Creates a menu; the declared price must not exceed the sum of its line item prices
//	@Tags			menus
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateMenuRequest	true	"Menu to create"
//	@Success		201		{object}	domain.Menu
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		422		{object}	map[string]string
//	@Router			/menus [post]
func (app *application) createMenuHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	items := make([]service.LineItemInput, 0, len(req.MenuProducts))
	for _, item := range req.MenuProducts {
		items = append(items, service.LineItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	menu, err := app.menuService.Create(r.Context(), service.CreateMenuInput{
		Name:        req.Name,
		Price:       req.Price,
		MenuGroupID: req.MenuGroupID,
		LineItems:   items,
	})
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, menu); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listMenusHandler godoc
//
//	@Summary		List menus
//	@Tags			menus
//	@Produce		json
//	@Success		200	{array}	domain.Menu
//	@Failure		500	{object}	map[string]string
//	@Router			/menus [get]
func (app *application) listMenusHandler(w http.ResponseWriter, r *http.Request) {
	menus, err := app.menuService.FindAll(r.Context())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, menus); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getMenuHandler godoc
//
//	@Summary		Get menu by ID
//	@Tags			menus
//	@Produce		json
//	@Param			menu_id	path		string	true	"Menu ID"
//	@Success		200		{object}	domain.Menu
//	@Failure		404		{object}	map[string]string
//	@Router			/menus/{menu_id} [get]
func (app *application) getMenuHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	if menuID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	menu, err := app.menuService.GetByID(r.Context(), menuID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, menu); err != nil {
		app.internalServerError(w, r, err)
	}
}

// changeMenuPriceHandler godoc
//
//	@Summary		Change menu price
//	@Description	Rejects the new price when it exceeds the current sum of line item prices
//	@Tags			menus
//	@Accept			json
//	@Produce		json
//	@Param			menu_id	path		string				true	"Menu ID"
//	@Param			request	body		ChangePriceRequest	true	"New price"
//	@Success		200		{object}	domain.Menu
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		422		{object}	map[string]string
//	@Router			/menus/{menu_id}/price [put]
func (app *application) changeMenuPriceHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	if menuID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req ChangePriceRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	menu, err := app.menuService.ChangePrice(r.Context(), menuID, req.Price)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, menu); err != nil {
		app.internalServerError(w, r, err)
	}
}

// displayMenuHandler godoc
//
//	@Summary		Display menu
//	@Description	Re-displays a hidden menu after re-checking price consistency
//	@Tags			menus
//	@Produce		json
//	@Param			menu_id	path		string	true	"Menu ID"
//	@Success		200		{object}	domain.Menu
//	@Failure		404		{object}	map[string]string
//	@Failure		422		{object}	map[string]string
//	@Router			/menus/{menu_id}/display [put]
func (app *application) displayMenuHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	if menuID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	menu, err := app.menuService.Display(r.Context(), menuID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, menu); err != nil {
		app.internalServerError(w, r, err)
	}
}

// hideMenuHandler godoc
//
//	@Summary		Hide menu
//	@Tags			menus
//	@Produce		json
//	@Param			menu_id	path		string	true	"Menu ID"
//	@Success		200		{object}	domain.Menu
//	@Failure		404		{object}	map[string]string
//	@Router			/menus/{menu_id}/hide [put]
func (app *application) hideMenuHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	if menuID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	menu, err := app.menuService.Hide(r.Context(), menuID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, menu); err != nil {
		app.internalServerError(w, r, err)
	}
}
