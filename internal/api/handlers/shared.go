package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/apperrors"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondServiceError maps service-layer sentinel errors to HTTP statuses.
// Unrecognized errors become 500s with the message as context.
func respondServiceError(w http.ResponseWriter, message string, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrPlanNotFound),
		errors.Is(err, apperrors.ErrSnapshotNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidProfile),
		errors.Is(err, apperrors.ErrInvalidAllocationInput),
		errors.Is(err, apperrors.ErrInvalidThreshold),
		errors.Is(err, apperrors.ErrEmptyPortfolio),
		errors.Is(err, apperrors.ErrUnknownStrategy),
		errors.Is(err, apperrors.ErrInvalidUUID),
		errors.Is(err, apperrors.ErrEmptyID):
		status = http.StatusBadRequest
	}

	errorResponse := map[string]string{
		"error":  message,
		"detail": err.Error(),
	}
	respondJSON(w, status, errorResponse)
}

// decodeJSON decodes the request body into dst, responding with 400 on failure.
// Returns false when decoding failed and a response was already written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		errorResponse := map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return false
	}
	return true
}
