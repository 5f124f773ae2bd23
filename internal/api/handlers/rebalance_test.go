package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/api/handlers"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/testutil"
)

// TestRebalanceHandler_Allocation tests the current allocation endpoint.
//
// WHY: This is the simplest client-facing computation; the handler must pass
// values through unchanged and turn an empty portfolio into a 400.
func TestRebalanceHandler_Allocation(t *testing.T) {
	handler := handlers.NewRebalanceHandler(testutil.NewTestRebalanceService(t))

	t.Run("returns percentages for holdings", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/rebalance/allocation",
			map[string]interface{}{
				"current_values": map[string]float64{"largecap": 750000, "fd": 250000},
			}, nil)
		rec := httptest.NewRecorder()

		handler.Allocation(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var body struct {
			CurrentPercentages map[string]float64 `json:"current_percentages"`
		}
		testutil.DecodeResponse(t, rec, &body)
		if body.CurrentPercentages["largecap"] != 75 || body.CurrentPercentages["fd"] != 25 {
			t.Errorf("Unexpected percentages: %v", body.CurrentPercentages)
		}
	})

	t.Run("empty portfolio returns 400", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/rebalance/allocation",
			map[string]interface{}{"current_values": map[string]float64{}}, nil)
		rec := httptest.NewRecorder()

		handler.Allocation(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/rebalance/allocation", nil)
		rec := httptest.NewRecorder()

		handler.Allocation(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}

// TestRebalanceHandler_Check tests the drift check endpoint.
//
// WHY: The handler accepts either values or percentages and applies the
// configured default threshold; both paths must resolve to the same verdict.
func TestRebalanceHandler_Check(t *testing.T) {
	handler := handlers.NewRebalanceHandler(testutil.NewTestRebalanceService(t))

	t.Run("values take precedence and default threshold applies", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/rebalance/check",
			map[string]interface{}{
				"current_values":     map[string]float64{"largecap": 400000, "midcap": 150000, "smallcap": 180000, "fd": 270000},
				"target_allocations": map[string]float64{"largecap": 45, "midcap": 30, "smallcap": 25, "fd": 0},
			}, nil)
		rec := httptest.NewRecorder()

		handler.Check(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var body handlers.DriftCheckResponse
		testutil.DecodeResponse(t, rec, &body)
		if !body.NeedsRebalance {
			t.Error("Expected NeedsRebalance to be true")
		}
		if body.Threshold != testutil.TestDriftThreshold {
			t.Errorf("Expected default threshold %v, got %v", testutil.TestDriftThreshold, body.Threshold)
		}
	})

	t.Run("explicit threshold overrides the default", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/rebalance/check",
			map[string]interface{}{
				"current_percentages": map[string]float64{"largecap": 52, "fd": 48},
				"target_allocations":  map[string]float64{"largecap": 50, "fd": 50},
				"drift_threshold":     1.0,
			}, nil)
		rec := httptest.NewRecorder()

		handler.Check(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var body handlers.DriftCheckResponse
		testutil.DecodeResponse(t, rec, &body)
		if !body.NeedsRebalance {
			t.Error("Expected drift with threshold 1.0")
		}
		if body.Threshold != 1.0 {
			t.Errorf("Expected threshold 1.0, got %v", body.Threshold)
		}
	})

	t.Run("invalid threshold returns 400", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/rebalance/check",
			map[string]interface{}{
				"current_percentages": map[string]float64{"largecap": 100},
				"target_allocations":  map[string]float64{"largecap": 100},
				"drift_threshold":     -1.0,
			}, nil)
		rec := httptest.NewRecorder()

		handler.Check(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}

// TestRebalanceHandler_Trades tests the trades endpoint.
func TestRebalanceHandler_Trades(t *testing.T) {
	handler := handlers.NewRebalanceHandler(testutil.NewTestRebalanceService(t))

	t.Run("returns signed trade amounts", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/rebalance/trades",
			map[string]interface{}{
				"current_values":     map[string]float64{"largecap": 400000, "midcap": 150000, "smallcap": 180000, "fd": 270000},
				"target_allocations": map[string]float64{"largecap": 45, "midcap": 30, "smallcap": 25, "fd": 0},
			}, nil)
		rec := httptest.NewRecorder()

		handler.Trades(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var body struct {
			Trades map[string]float64 `json:"trades"`
		}
		testutil.DecodeResponse(t, rec, &body)
		if body.Trades["fd"] != -270000 {
			t.Errorf("Expected fd trade of -270000, got %v", body.Trades["fd"])
		}
		if body.Trades["largecap"] != 50000 {
			t.Errorf("Expected largecap trade of 50000, got %v", body.Trades["largecap"])
		}
	})

	t.Run("short target allocation returns 400", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/rebalance/trades",
			map[string]interface{}{
				"current_values":     map[string]float64{"largecap": 100000},
				"target_allocations": map[string]float64{"largecap": 90},
			}, nil)
		rec := httptest.NewRecorder()

		handler.Trades(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}
