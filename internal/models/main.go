// Package models defines the records exchanged between the dashboard client
// and the asset-management backend.
package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by Validate implementations when a decoded record
// does not have the shape the endpoint promises.
var ErrInvalid = errors.New("invalid record")

// Validator is implemented by records that can check themselves after decoding.
type Validator interface {
	Validate() error
}

// Page is the {content, totalElements} envelope returned by list endpoints.
type Page[T any] struct {
	// Content holds the items of the requested page, in server order.
	Content []T `json:"content"`
	// TotalElements is the total number of items across all pages.
	TotalElements int64 `json:"totalElements"`
}

// Validate checks the envelope and every item that implements Validator.
func (p *Page[T]) Validate() error {
	if p.TotalElements < 0 {
		return fmt.Errorf("%w: negative totalElements %d", ErrInvalid, p.TotalElements)
	}
	for i := range p.Content {
		if v, ok := any(&p.Content[i]).(Validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("content[%d]: %w", i, err)
			}
		}
	}
	return nil
}

// User represents a dashboard user.
type User struct {
	// ID is the unique identifier for the user.
	ID int64 `json:"id"`
	// Username is the login name.
	Username string `json:"username"`
	// FullName is the display name.
	FullName string `json:"fullName,omitempty"`
	// Email is the contact address.
	Email string `json:"email,omitempty"`
	// Role is the access role ("ADMIN", "MANAGER", "STAFF").
	Role string `json:"role,omitempty"`
	// BranchID is the branch the user belongs to, if any.
	BranchID *int64 `json:"branchId,omitempty"`
	// PasswordHash is the bcrypt hash; never serialized.
	PasswordHash []byte `json:"-"`
}

// LoginRequest carries credentials for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	// Token is the bearer token to attach to later requests.
	Token string `json:"token"`
	// User is the authenticated user.
	User User `json:"user"`
}

// Validate rejects a login response without a token.
func (r *LoginResponse) Validate() error {
	if r.Token == "" {
		return fmt.Errorf("%w: empty token", ErrInvalid)
	}
	return nil
}

// ErrorResponse is the JSON body of every non-2xx backend response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ListParams selects one page of a list query. Zero-valued filters are ignored.
type ListParams struct {
	Page       int
	Size       int
	Search     string
	Status     string
	CategoryID int64
	BranchID   int64
	DateFrom   time.Time
	DateTo     time.Time
	Sort       string
}

// Offset returns the row offset of the page.
func (p ListParams) Offset() int {
	return p.Page * p.Size
}
