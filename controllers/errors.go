package controllers

import (
	"errors"
	"net/http"

	"go-burjo-pos/services"
)

// statusForServiceError memetakan error taksonomi service ke kode HTTP.
// Semua error service bersifat recoverable; tidak ada yang fatal.
func statusForServiceError(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidTable),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrOrderNotActive):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrTableOccupied),
		errors.Is(err, services.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, services.ErrEmptyQueue),
		errors.Is(err, services.ErrEmptyLog):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
