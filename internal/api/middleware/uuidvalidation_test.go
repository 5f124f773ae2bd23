package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/api/middleware"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/testutil"
)

// TestValidatePlanIDMiddleware tests plan ID validation on routed requests.
//
// WHY: Every nested plan route relies on this middleware; a malformed ID must
// be stopped with a 400 before any handler or database work happens.
func TestValidatePlanIDMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := middleware.ValidatePlanIDMiddleware(next)

	tests := []struct {
		name       string
		planID     string
		wantStatus int
	}{
		{"valid UUID passes through", testutil.MakeID(), http.StatusOK},
		{"missing ID returns 400", "", http.StatusBadRequest},
		{"malformed ID returns 400", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := map[string]string{}
			if tt.planID != "" {
				params["planId"] = tt.planID
			}

			req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/plan/"+tt.planID, params)
			rec := httptest.NewRecorder()

			wrapped.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}
