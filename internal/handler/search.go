package handler

import (
	"net/http"

	"storefront-core/internal/product"
)

type searchInputRequest struct {
	Term string `json:"term"`
}

type searchKeyRequest struct {
	Key string `json:"key"`
}

type commitResponse struct {
	Committed bool             `json:"committed"`
	Product   *product.Product `json:"product,omitempty"`
}

func (h *Handler) searchView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.search.Snapshot())
}

func (h *Handler) searchInput(w http.ResponseWriter, r *http.Request) {
	var req searchInputRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	h.search.Input(req.Term)
	writeJSON(w, http.StatusOK, h.search.Snapshot())
}

func (h *Handler) searchKey(w http.ResponseWriter, r *http.Request) {
	var req searchKeyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	switch req.Key {
	case "ArrowDown":
		h.search.SelectNext()
	case "ArrowUp":
		h.search.SelectPrev()
	case "Escape":
		h.search.Dismiss()
	case "Enter":
		picked, ok := h.search.Commit()
		resp := commitResponse{Committed: ok}
		if ok {
			resp.Product = &picked
		}
		writeJSON(w, http.StatusOK, resp)
		return
	default:
		writeError(w, http.StatusBadRequest, "unsupported key")
		return
	}

	writeJSON(w, http.StatusOK, h.search.Snapshot())
}

// searchBlur handles a click outside the search surface.
func (h *Handler) searchBlur(w http.ResponseWriter, r *http.Request) {
	h.search.CloseDropdown()
	writeJSON(w, http.StatusOK, h.search.Snapshot())
}
