// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"sitegen-api/core/errors"
)

// quotaExceededError carries the quota body shape the clients expect:
// { message, currentCount, limit }.
type quotaExceededError struct {
	Message      string `json:"message"`
	CurrentCount int    `json:"currentCount"`
	Limit        int    `json:"limit"`
}

// Error implements the error interface
func (e *quotaExceededError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError
func (e *quotaExceededError) GetStatus() int {
	return http.StatusForbidden
}

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsUnauthorized(err) {
		return huma.Error401Unauthorized(err.Error())
	}

	if errors.IsQuotaExceeded(err) {
		var quotaErr *errors.QuotaExceededError
		if stderrors.As(err, &quotaErr) {
			return &quotaExceededError{
				Message:      "Website limit reached for your plan",
				CurrentCount: quotaErr.CurrentCount,
				Limit:        quotaErr.Limit,
			}
		}
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsExternalAPI(err) {
		var apiErr *errors.ExternalAPIError
		if stderrors.As(err, &apiErr) {
			switch {
			case apiErr.StatusCode >= 500:
				return huma.Error503ServiceUnavailable("External service error", err)
			case apiErr.StatusCode == 429:
				return huma.Error429TooManyRequests("Rate limited by external service")
			default:
				return huma.Error500InternalServerError("Unexpected external service response", err)
			}
		}
	}

	// Storage failures and anything unclassified are internal errors
	return huma.Error500InternalServerError("Internal server error", err)
}
