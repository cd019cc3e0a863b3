package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/asglabs/mission-control/internal/core/domain"
)

func TestAnalyticsHandler_Utilization(t *testing.T) {
	svc := newStubLedgerService(
		domain.TimeEntry{ClientID: "meridian", Hours: 10, Status: domain.StatusBilled},
		domain.TimeEntry{ClientID: "meridian", Hours: 5, Status: domain.StatusUnbilled},
	)
	h := NewAnalyticsHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/utilization", nil)
	rec := httptest.NewRecorder()
	if err := h.Utilization(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp utilizationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Clients) != len(domain.EngagementClients) {
		t.Fatalf("got %d rows, want one per engagement", len(resp.Clients))
	}
	if resp.Totals.HoursBilled != 10 || resp.Totals.HoursUnbilled != 5 {
		t.Errorf("totals = %+v", resp.Totals)
	}

	// Meridian bills at 450: revenue must reflect the rate table.
	for _, row := range resp.Clients {
		if row.ClientID != "meridian" {
			continue
		}
		if row.RevenueBilled != 4500 {
			t.Errorf("meridian revenue billed = %v, want 4500", row.RevenueBilled)
		}
	}
}

func TestAnalyticsHandler_Disparities(t *testing.T) {
	h := NewAnalyticsHandler(newStubLedgerService())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/disparities", nil)
	rec := httptest.NewRecorder()
	if err := h.Disparities(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp disparitiesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// The fixed series always yields at least the two growth flags.
	if len(resp.Flags) < 2 {
		t.Errorf("got %d flags", len(resp.Flags))
	}
}

func TestAnalyticsHandler_Clients(t *testing.T) {
	h := NewAnalyticsHandler(newStubLedgerService())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/clients", nil)
	rec := httptest.NewRecorder()
	if err := h.Clients(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp clientsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Clients) != 8 {
		t.Errorf("got %d clients, want 8", len(resp.Clients))
	}
}
