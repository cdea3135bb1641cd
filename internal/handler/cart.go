package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront-core/internal/product"
)

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) cartView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cart.Snapshot())
}

func (h *Handler) cartAdd(w http.ResponseWriter, r *http.Request) {
	var p product.Product
	if !decodeJSON(w, r, &p) {
		return
	}
	if err := p.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.cart.Add(p)
	writeJSON(w, http.StatusOK, h.cart.Snapshot())
}

func (h *Handler) cartSetQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	h.cart.SetQuantity(chi.URLParam(r, "productID"), req.Quantity)
	writeJSON(w, http.StatusOK, h.cart.Snapshot())
}

func (h *Handler) cartRemove(w http.ResponseWriter, r *http.Request) {
	h.cart.Remove(chi.URLParam(r, "productID"))
	writeJSON(w, http.StatusOK, h.cart.Snapshot())
}

func (h *Handler) cartClear(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	writeJSON(w, http.StatusOK, h.cart.Snapshot())
}
