package models

// Ingredient is a stocked kitchen ingredient.
type Ingredient struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity"`
	MinThreshold float64 `json:"minThreshold"`
	// StorageAssetID is the asset (fridge, freezer, shelf) the ingredient is kept in.
	StorageAssetID *int64 `json:"storageAssetId,omitempty"`
}

// LowStock reports whether the quantity has fallen to the reorder threshold.
func (i Ingredient) LowStock() bool {
	return i.Quantity <= i.MinThreshold
}

// MenuItem is a dish or drink sold at a branch.
type MenuItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
}
