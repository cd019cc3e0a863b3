// Package analytics computes budget-utilization and month-over-month
// disparity figures from ledger aggregates and the static engagement table.
// Everything in this package is a pure function over its inputs.
package analytics

import (
	"math"

	"github.com/asglabs/mission-control/internal/core/domain"
)

// Classification thresholds and projection parameters. These cutoffs are
// load-bearing for behavioral parity and are not configurable.
const (
	AtRiskThreshold   = 0.70
	CriticalThreshold = 0.85

	projectionContingency = 1.15
	budgetIncrement       = 500
)

// ClientUtilization is the computed budget picture for one engagement.
type ClientUtilization struct {
	ClientID        string  `json:"client_id"`
	ClientName      string  `json:"client_name"`
	Rate            float64 `json:"rate"`
	HoursBilled     float64 `json:"hours_billed"`
	HoursUnbilled   float64 `json:"hours_unbilled"`
	Budget          float64 `json:"budget"`
	RevenueBilled   float64 `json:"revenue_billed"`
	RevenueUnbilled float64 `json:"revenue_unbilled"`
	RevenueTotal    float64 `json:"revenue_total"`
	// Utilization is RevenueTotal / Budget: the fraction of the budget
	// ceiling already incurred as WIP.
	Utilization float64 `json:"utilization"`
	AtRisk      bool    `json:"at_risk"`
	Critical    bool    `json:"critical"`
	// SuggestedBudget and SuggestedIncrease are zero when no hours have
	// been logged yet (projection is undefined at zero utilization).
	SuggestedBudget   float64 `json:"suggested_budget"`
	SuggestedIncrease float64 `json:"suggested_increase"`
}

// ComputeUtilization combines one engagement's static rate/budget with its
// live ledger hours. A client with no hours is never at risk and carries no
// budget suggestion.
func ComputeUtilization(client domain.EngagementClient, hours domain.Hours) ClientUtilization {
	u := ClientUtilization{
		ClientID:      client.ID,
		ClientName:    client.Name,
		Rate:          client.Rate,
		HoursBilled:   hours.Billed,
		HoursUnbilled: hours.Unbilled,
		Budget:        client.Budget,
	}

	u.RevenueBilled = client.Rate * hours.Billed
	u.RevenueUnbilled = client.Rate * hours.Unbilled
	u.RevenueTotal = u.RevenueBilled + u.RevenueUnbilled
	u.Utilization = u.RevenueTotal / client.Budget

	if u.Utilization == 0 {
		return u
	}

	u.AtRisk = u.Utilization >= AtRiskThreshold
	u.Critical = u.Utilization >= CriticalThreshold

	// Extrapolate the current burn to full budget consumption, add a 15%
	// contingency, and round up to the next 500-unit increment. Never
	// suggest shrinking an existing budget.
	projected := roundUpTo(u.RevenueTotal/u.Utilization*projectionContingency, budgetIncrement)
	u.SuggestedBudget = math.Max(projected, client.Budget)
	u.SuggestedIncrease = u.SuggestedBudget - client.Budget

	return u
}

// ComputeAll evaluates the whole engagement table against the ledger
// aggregates, preserving table order.
func ComputeAll(clients []domain.EngagementClient, aggregates map[string]domain.Hours) []ClientUtilization {
	out := make([]ClientUtilization, 0, len(clients))
	for _, c := range clients {
		out = append(out, ComputeUtilization(c, aggregates[c.ID]))
	}
	return out
}

func roundUpTo(n float64, increment int) float64 {
	return math.Ceil(n/float64(increment)) * float64(increment)
}
