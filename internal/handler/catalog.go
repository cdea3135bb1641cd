package handler

import "net/http"

type loadRequest struct {
	Category string `json:"category"`
}

type categoryFilterRequest struct {
	Category    string `json:"category"`
	SubCategory string `json:"subCategory"`
}

type priceFilterRequest struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (h *Handler) catalogView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Snapshot())
}

func (h *Handler) catalogLoad(w http.ResponseWriter, r *http.Request) {
	var req loadRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	h.catalog.LoadProducts(r.Context(), req.Category)
	writeJSON(w, http.StatusOK, h.catalog.Snapshot())
}

func (h *Handler) catalogSetCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryFilterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	h.catalog.SetCategoryFilter(req.Category, req.SubCategory)
	writeJSON(w, http.StatusOK, h.catalog.Snapshot())
}

func (h *Handler) catalogSetPrice(w http.ResponseWriter, r *http.Request) {
	var req priceFilterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Min < 0 || req.Max < req.Min {
		writeError(w, http.StatusBadRequest, "price range must satisfy 0 <= min <= max")
		return
	}

	h.catalog.SetPriceFilter(req.Min, req.Max)
	writeJSON(w, http.StatusOK, h.catalog.Snapshot())
}

func (h *Handler) catalogClearFilters(w http.ResponseWriter, r *http.Request) {
	h.catalog.ClearFilters()
	writeJSON(w, http.StatusOK, h.catalog.Snapshot())
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.ListCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
