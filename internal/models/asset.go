package models

import "fmt"

// AssetStatus is the lifecycle state of an asset.
type AssetStatus string

const (
	AssetActive      AssetStatus = "ACTIVE"
	AssetInRepair    AssetStatus = "IN_REPAIR"
	AssetTransferred AssetStatus = "IN_TRANSFER"
	AssetDisposed    AssetStatus = "DISPOSED"
)

// Asset is a tracked piece of equipment or furniture.
type Asset struct {
	ID           int64       `json:"id"`
	Code         string      `json:"code"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	CategoryID   int64       `json:"categoryId"`
	CategoryName string      `json:"categoryName,omitempty"`
	BranchID     *int64      `json:"branchId,omitempty"`
	DepartmentID *int64      `json:"departmentId,omitempty"`
	LocationID   *int64      `json:"locationId,omitempty"`
	AssignedTo   *int64      `json:"assignedTo,omitempty"`
	Status       AssetStatus `json:"status"`
	// PurchaseDate is an ISO date (YYYY-MM-DD).
	PurchaseDate string  `json:"purchaseDate,omitempty"`
	PurchaseCost float64 `json:"purchaseCost,omitempty"`
	// FoodEligible marks assets usable as food storage or preparation equipment.
	FoodEligible bool `json:"foodEligible,omitempty"`
}

// Validate rejects assets without an identifier.
func (a *Asset) Validate() error {
	if a.ID <= 0 {
		return fmt.Errorf("%w: asset id %d", ErrInvalid, a.ID)
	}
	return nil
}

// Category groups assets.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
}

// Branch is a restaurant or store location.
type Branch struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code,omitempty"`
	Address string `json:"address,omitempty"`
}

// Department is an organisational unit inside a branch.
type Department struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	BranchID *int64 `json:"branchId,omitempty"`
}

// Location is a physical place inside a branch (kitchen, storage, floor).
type Location struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	BranchID *int64 `json:"branchId,omitempty"`
}
