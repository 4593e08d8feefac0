package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateKey       = errors.New("already exists")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError rejects caller input before anything is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// InvalidReferenceError names the first cart line whose menu item does not exist.
type InvalidReferenceError struct {
	MenuItemID uint
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("menu item with ID %d not found", e.MenuItemID)
}

func notFound(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotFound)
}

func duplicate(what string) error {
	return fmt.Errorf("%s %w", what, ErrDuplicateKey)
}

// storeErr turns gorm errors into the service vocabulary; what names the record.
func storeErr(what string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound(what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate(what)
	default:
		return err
	}
}
