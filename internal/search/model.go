package search

import "storefront-core/internal/product"

// Status is the suggestion state machine's current state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusDebouncing Status = "debouncing"
	StatusLoading    Status = "loading"
	StatusResults    Status = "results"
	StatusEmpty      Status = "empty"
	StatusError      Status = "error"
)

// NoSelection is the SelectedIndex value when no suggestion is highlighted.
const NoSelection = -1

// Snapshot is the derived search state the suggestion panel renders.
type Snapshot struct {
	Term          string            `json:"term"`
	Status        Status            `json:"status"`
	Results       []product.Product `json:"results"`
	SelectedIndex int               `json:"selectedIndex"`
	DropdownOpen  bool              `json:"dropdownOpen"`
	ErrMessage    string            `json:"errorMessage,omitempty"`
}
