package models

import (
	"fmt"
	"time"
)

// TransferStatus is the state of an asset transfer request.
type TransferStatus string

const (
	TransferPending   TransferStatus = "PENDING"
	TransferApproved  TransferStatus = "APPROVED"
	TransferRejected  TransferStatus = "REJECTED"
	TransferCompleted TransferStatus = "COMPLETED"
	TransferCancelled TransferStatus = "CANCELLED"
)

var transferTransitions = map[TransferStatus][]TransferStatus{
	TransferPending:  {TransferApproved, TransferRejected, TransferCancelled},
	TransferApproved: {TransferCompleted, TransferCancelled},
}

// Valid reports whether s is a known status.
func (s TransferStatus) Valid() bool {
	switch s {
	case TransferPending, TransferApproved, TransferRejected, TransferCompleted, TransferCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transfer in status s may move to next.
// REJECTED, COMPLETED and CANCELLED are terminal.
func (s TransferStatus) CanTransitionTo(next TransferStatus) bool {
	for _, allowed := range transferTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transfer moves an asset between branches.
type Transfer struct {
	ID           int64          `json:"id"`
	Reference    string         `json:"reference"`
	AssetID      int64          `json:"assetId"`
	AssetName    string         `json:"assetName,omitempty"`
	FromBranchID int64          `json:"fromBranchId"`
	ToBranchID   int64          `json:"toBranchId"`
	RequestedBy  int64          `json:"requestedBy,omitempty"`
	Status       TransferStatus `json:"status"`
	Reason       string         `json:"reason,omitempty"`
	Note         string         `json:"note,omitempty"`
	RequestedAt  time.Time      `json:"requestedAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Validate rejects transfers with an unknown status.
func (t *Transfer) Validate() error {
	if !t.Status.Valid() {
		return fmt.Errorf("%w: transfer status %q", ErrInvalid, t.Status)
	}
	return nil
}

// TransferRequest is the body of POST /asset-transfers.
type TransferRequest struct {
	AssetID    int64  `json:"assetId"`
	ToBranchID int64  `json:"toBranchId"`
	Reason     string `json:"reason,omitempty"`
}

// TransferStatusUpdate is the body of PATCH /asset-transfers/{id}/status.
type TransferStatusUpdate struct {
	Status TransferStatus `json:"status"`
	Note   string         `json:"note,omitempty"`
}
