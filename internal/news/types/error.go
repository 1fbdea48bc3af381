package types

import (
	"errors"
	"fmt"
)

var (
	// Configuration errors
	ErrInvalidProviderID = errors.New("invalid provider ID")
	ErrInvalidAPIHost    = errors.New("invalid API host")
	ErrMissingAPIKey     = errors.New("missing API key")

	// Request errors
	ErrEmptyQuery   = errors.New("empty search query")
	ErrInvalidCount = errors.New("article count must be between 2 and 10")

	// Provider errors
	ErrProviderNotFound = errors.New("provider not found")
)

// ProviderError wraps a failure from a news-search backend.
type ProviderError struct {
	Provider ProviderID
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.Provider, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Provider, e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
