package api

import (
	"fmt"
	"net/http"

	"github.com/UnknownOlympus/choprest/internal/models"
)

func (h *Handler) menus(w http.ResponseWriter, r *http.Request, filter models.MenuFilter) {
	storeID, err := queryID(r, "storeId")
	if err != nil {
		h.fail(w, r, "Failed to get menus", err)
		return
	}
	filter.StoreID = storeID

	menus, err := h.Menus.List(r.Context(), filter)
	if err != nil {
		h.fail(w, r, "Failed to get menus", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(menus))
}

func (h *Handler) listMenus(w http.ResponseWriter, r *http.Request) {
	h.menus(w, r, models.MenuFilter{})
}

func (h *Handler) popularMenus(w http.ResponseWriter, r *http.Request) {
	h.menus(w, r, models.MenuFilter{Popular: true})
}

func (h *Handler) recommendedMenus(w http.ResponseWriter, r *http.Request) {
	h.menus(w, r, models.MenuFilter{Recommended: true})
}

func (h *Handler) menusByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		h.fail(w, r, "Failed to get menus", fmt.Errorf("%w: category is required", errBadRequest))
		return
	}

	h.menus(w, r, models.MenuFilter{Category: category})
}

func (h *Handler) menuCategories(w http.ResponseWriter, r *http.Request) {
	storeID, err := queryID(r, "storeId")
	if err != nil {
		h.fail(w, r, "Failed to get menu categories", err)
		return
	}

	categories, err := h.Menus.Categories(r.Context(), storeID)
	if err != nil {
		h.fail(w, r, "Failed to get menu categories", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(categories))
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to get menu", err)
		return
	}

	menu, err := h.Menus.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, "Failed to get menu", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, menu)
}

func (h *Handler) createMenu(w http.ResponseWriter, r *http.Request) {
	var menu models.Menu
	if err := decode(r, &menu); err != nil {
		h.fail(w, r, "Failed to create menu", err)
		return
	}

	created, err := h.Menus.Create(r.Context(), menu)
	if err != nil {
		h.fail(w, r, "Failed to create menu", err)
		return
	}

	h.respond(w, r, "Menu created", envelope{"menu": created})
}

func (h *Handler) updateMenu(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to update menu", err)
		return
	}

	var menu models.Menu
	if err = decode(r, &menu); err != nil {
		h.fail(w, r, "Failed to update menu", err)
		return
	}

	updated, err := h.Menus.Update(r.Context(), id, menu)
	if err != nil {
		h.fail(w, r, "Failed to update menu", err)
		return
	}

	h.respond(w, r, "Menu updated", envelope{"menu": updated})
}

func (h *Handler) deleteMenu(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to delete menu", err)
		return
	}

	if err = h.Menus.Delete(r.Context(), id); err != nil {
		h.fail(w, r, "Failed to delete menu", err)
		return
	}

	h.respond(w, r, "Menu deleted", nil)
}
