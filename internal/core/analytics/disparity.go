package analytics

import (
	"fmt"
	"math"

	"github.com/asglabs/mission-control/internal/core/domain"
)

// Disparity-detection thresholds, fixed for behavioral parity.
const (
	momThreshold    = 0.25
	spreadThreshold = 0.40
)

// FlagSeverity distinguishes warnings from informational flags.
type FlagSeverity string

const (
	SeverityWarn FlagSeverity = "warn"
	SeverityInfo FlagSeverity = "info"
)

// DisparityFlag is one anomaly detected in the monthly WIP series.
type DisparityFlag struct {
	Month    string       `json:"month"`
	Type     string       `json:"type"`
	Detail   string       `json:"detail"`
	Severity FlagSeverity `json:"severity"`
}

// DetectDisparities scans an ordered monthly series for month-over-month
// WIP swings beyond ±25%, billings/WIP spreads beyond 40%, and appends
// first-to-last growth figures for both series as informational flags.
func DetectDisparities(data []domain.MonthlyWIP) []DisparityFlag {
	var flags []DisparityFlag

	for i := 1; i < len(data); i++ {
		prev, curr := data[i-1], data[i]

		momDelta := (curr.Revenue - prev.Revenue) / prev.Revenue
		if math.Abs(momDelta) > momThreshold {
			kind := "WIP spike"
			direction := "up"
			severity := SeverityInfo
			if momDelta < 0 {
				kind = "WIP drop"
				direction = "down"
				severity = SeverityWarn
			}
			flags = append(flags, DisparityFlag{
				Month: curr.Month,
				Type:  kind,
				Detail: fmt.Sprintf("WIP %s %d%% vs %s (%s → %s)",
					direction, int(math.Round(math.Abs(momDelta)*100)), prev.Month,
					formatAmount(prev.Revenue), formatAmount(curr.Revenue)),
				Severity: severity,
			})
		}

		spread := math.Abs(curr.Billings-curr.Revenue) / curr.Revenue
		if spread > spreadThreshold {
			higher, lower := "Billings", "WIP"
			if curr.Revenue > curr.Billings {
				higher, lower = "WIP", "billings"
			}
			flags = append(flags, DisparityFlag{
				Month: curr.Month,
				Type:  fmt.Sprintf("%s / %s spread", higher, lower),
				Detail: fmt.Sprintf("%s exceeded %s by %d%% — %s billed vs %s incurred",
					higher, lower, int(math.Round(spread*100)),
					formatAmount(curr.Billings), formatAmount(curr.Revenue)),
				Severity: SeverityWarn,
			})
		}
	}

	if len(data) >= 2 {
		first, last := data[0], data[len(data)-1]
		flags = append(flags,
			growthFlag("WIP growth", first.Month, last.Month, first.Revenue, last.Revenue),
			growthFlag("Billings growth", first.Month, last.Month, first.Billings, last.Billings),
		)
	}

	return flags
}

func growthFlag(kind, fromMonth, toMonth string, from, to float64) DisparityFlag {
	growth := int(math.Round((to - from) / from * 100))
	return DisparityFlag{
		Month: "Year-over-Year",
		Type:  fmt.Sprintf("%s (%s → %s)", kind, fromMonth, toMonth),
		Detail: fmt.Sprintf("%+d%% — %s → %s",
			growth, formatAmount(from), formatAmount(to)),
		Severity: SeverityInfo,
	}
}

// formatAmount renders a dollar figure with thousands separators.
func formatAmount(n float64) string {
	v := int64(math.Round(n))
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return sign + "$" + s
}
