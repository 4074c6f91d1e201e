// Package service implements the business rules of the asset-management
// backend, delegating persistence to repository interfaces.
package service

import "errors"

var (
	// ErrInvalidInput is wrapped with a description of the rejected field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials is returned by Login for an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidTransition is returned when a transfer cannot move to the requested status.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrAssetUnavailable is returned when an asset cannot be transferred in its current state.
	ErrAssetUnavailable = errors.New("asset is not available for transfer")
)
