package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/asglabs/mission-control/internal/core/analytics"
	"github.com/asglabs/mission-control/internal/core/domain"
	"github.com/asglabs/mission-control/internal/core/ports"
)

// AnalyticsHandler serves the computed budget-utilization and WIP disparity
// views. The engagement table and monthly series are static; only the ledger
// aggregates are live.
type AnalyticsHandler struct {
	ledger ports.LedgerService
}

func NewAnalyticsHandler(ledger ports.LedgerService) *AnalyticsHandler {
	return &AnalyticsHandler{ledger: ledger}
}

// --- Response types ---

type utilizationTotals struct {
	HoursBilled     float64 `json:"hours_billed"`
	HoursUnbilled   float64 `json:"hours_unbilled"`
	RevenueBilled   float64 `json:"revenue_billed"`
	RevenueUnbilled float64 `json:"revenue_unbilled"`
	Budget          float64 `json:"budget"`
}

type utilizationResponse struct {
	Clients []analytics.ClientUtilization `json:"clients"`
	Totals  utilizationTotals             `json:"totals"`
}

type disparitiesResponse struct {
	Flags []analytics.DisparityFlag `json:"flags"`
}

type clientsResponse struct {
	Clients []domain.EngagementClient `json:"clients"`
}

type wipResponse struct {
	Months []domain.MonthlyWIP `json:"months"`
}

// Utilization handles GET /v1/analytics/utilization.
//
// @Summary      Budget utilization per engagement
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  utilizationResponse
// @Router       /v1/analytics/utilization [get]
func (h *AnalyticsHandler) Utilization(c echo.Context) error {
	aggregates := h.ledger.AggregateByClient(c.Request().Context())
	rows := analytics.ComputeAll(domain.EngagementClients, aggregates)

	var totals utilizationTotals
	for _, r := range rows {
		totals.HoursBilled += r.HoursBilled
		totals.HoursUnbilled += r.HoursUnbilled
		totals.RevenueBilled += r.RevenueBilled
		totals.RevenueUnbilled += r.RevenueUnbilled
		totals.Budget += r.Budget
	}

	return c.JSON(http.StatusOK, utilizationResponse{Clients: rows, Totals: totals})
}

// Disparities handles GET /v1/analytics/disparities.
//
// @Summary      Anomaly flags over the monthly WIP series
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  disparitiesResponse
// @Router       /v1/analytics/disparities [get]
func (h *AnalyticsHandler) Disparities(c echo.Context) error {
	flags := analytics.DetectDisparities(domain.MonthlyWIPData)
	if flags == nil {
		flags = []analytics.DisparityFlag{}
	}
	return c.JSON(http.StatusOK, disparitiesResponse{Flags: flags})
}

// WIP handles GET /v1/analytics/wip.
//
// @Summary      Monthly WIP, billings, and collections series
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  wipResponse
// @Router       /v1/analytics/wip [get]
func (h *AnalyticsHandler) WIP(c echo.Context) error {
	return c.JSON(http.StatusOK, wipResponse{Months: domain.MonthlyWIPData})
}

// Clients handles GET /v1/clients.
//
// @Summary      Engagement client roster
// @Tags         clients
// @Produce      json
// @Success      200  {object}  clientsResponse
// @Router       /v1/clients [get]
func (h *AnalyticsHandler) Clients(c echo.Context) error {
	return c.JSON(http.StatusOK, clientsResponse{Clients: domain.EngagementClients})
}
