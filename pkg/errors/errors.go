package errors

import (
	"errors"
	"fmt"
)

type ResourceNotFoundError struct {
	Kind string
	ID   string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func NewRegionNotFoundError(url string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Kind: "region", ID: url}
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// PersistenceError is returned when the record files cannot be read or written.
// It is fatal for the running operation.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func NewPersistenceError(path string, err error) *PersistenceError {
	return &PersistenceError{Path: path, Err: err}
}

func IsPersistenceError(err error) bool {
	var e *PersistenceError
	return errors.As(err, &e)
}

type AuthenticationFailedError struct {
	URL string
	Err error
}

func (e *AuthenticationFailedError) Error() string {
	return fmt.Sprintf("failed to login to region %s", e.URL)
}

func (e *AuthenticationFailedError) Unwrap() error {
	return e.Err
}

func NewAuthenticationFailedError(url string, err error) *AuthenticationFailedError {
	return &AuthenticationFailedError{URL: url, Err: err}
}

func IsAuthenticationFailedError(err error) bool {
	var e *AuthenticationFailedError
	return errors.As(err, &e)
}

type UnsupportedRegionError struct {
	URL        string
	RegionType string
}

func (e *UnsupportedRegionError) Error() string {
	return fmt.Sprintf("unsupported region type %s for region %s", e.RegionType, e.URL)
}

func NewUnsupportedRegionError(url, regionType string) *UnsupportedRegionError {
	return &UnsupportedRegionError{URL: url, RegionType: regionType}
}

func IsUnsupportedRegionError(err error) bool {
	var e *UnsupportedRegionError
	return errors.As(err, &e)
}

type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(err error) *ValidationError {
	return &ValidationError{Err: err}
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}
