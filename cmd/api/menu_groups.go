package main

import (
	"net/http"
)

type CreateMenuGroupRequest struct {
	Name string `json:"name" validate:"required"`
}

// createMenuGroupHandler godoc
//
//	@Summary		Create menu group
//	@Tags			menu-groups
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateMenuGroupRequest	true	"Menu group to create"
//	@Success		201		{object}	domain.MenuGroup
//	@Failure		400		{object}	map[string]string
//	@Router			/menu-groups [post]
func (app *application) createMenuGroupHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuGroupRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	group, err := app.menuGroupService.Create(r.Context(), req.Name)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, group); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listMenuGroupsHandler godoc
//
//	@Summary		List menu groups
//	@Tags			menu-groups
//	@Produce		json
//	@Success		200	{array}	domain.MenuGroup
//	@Failure		500	{object}	map[string]string
//	@Router			/menu-groups [get]
func (app *application) listMenuGroupsHandler(w http.ResponseWriter, r *http.Request) {
	groups, err := app.menuGroupService.FindAll(r.Context())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, groups); err != nil {
		app.internalServerError(w, r, err)
	}
}
