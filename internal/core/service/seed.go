package service

import "github.com/asglabs/mission-control/internal/core/domain"

type seedEntry struct {
	ClientID    string
	Date        string
	Hours       float64
	Description string
	Status      domain.EntryStatus
}

// seedEntries is the February 2026 demo workload. Per-client totals line up
// with the engagement table so the analytics views are coherent out of the
// box (e.g. Meridian: 28 billed + 6 unbilled).
var seedEntries = []seedEntry{
	{ClientID: "meridian", Date: "2026-02-03", Hours: 8, Description: "M&A tax due diligence — target federal return review and NOL analysis", Status: domain.StatusBilled},
	{ClientID: "meridian", Date: "2026-02-10", Hours: 8, Description: "§338(h)(10) election analysis and §1060 purchase price allocation schedule", Status: domain.StatusBilled},
	{ClientID: "meridian", Date: "2026-02-18", Hours: 8, Description: "NY/OH apportionment analysis for surviving entity post-acquisition", Status: domain.StatusBilled},
	{ClientID: "meridian", Date: "2026-02-25", Hours: 4, Description: "Due diligence memo draft — partner review preparation", Status: domain.StatusBilled},
	{ClientID: "meridian", Date: "2026-02-26", Hours: 6, Description: "Final memo revisions and buyer counsel coordination", Status: domain.StatusUnbilled},

	{ClientID: "cascade", Date: "2026-02-02", Hours: 10, Description: "FY2025 multistate returns — CA, NY, TX, FL, IL apportionment workpapers", Status: domain.StatusBilled},
	{ClientID: "cascade", Date: "2026-02-09", Hours: 12, Description: "NJ, OH, PA, NC, GA, CO, AZ nexus and apportionment factor review", Status: domain.StatusBilled},
	{ClientID: "cascade", Date: "2026-02-17", Hours: 12, Description: "Hotel management contract revenue sourcing — cost of performance analysis", Status: domain.StatusBilled},
	{ClientID: "cascade", Date: "2026-02-24", Hours: 8, Description: "Consolidated return workpaper review — all 12 states final check", Status: domain.StatusBilled},
	{ClientID: "cascade", Date: "2026-02-26", Hours: 12, Description: "State returns final prep and filing team handoff package", Status: domain.StatusUnbilled},

	{ClientID: "northbrook", Date: "2026-02-04", Hours: 7, Description: "LP restructuring analysis — §751 hot asset review, incoming LP admission", Status: domain.StatusBilled},
	{ClientID: "northbrook", Date: "2026-02-12", Hours: 8, Description: "§743(b) basis adjustment schedule — secondary LP interest transfers", Status: domain.StatusBilled},
	{ClientID: "northbrook", Date: "2026-02-19", Hours: 7, Description: "§755 asset allocation of §743(b) adjustment — partnership asset classes", Status: domain.StatusBilled},
	{ClientID: "northbrook", Date: "2026-02-25", Hours: 8, Description: "§754 election statement draft and LP admission document coordination", Status: domain.StatusUnbilled},

	{ClientID: "pinnacle", Date: "2026-02-05", Hours: 6, Description: "NYS DTF residency audit — day-count analysis, domicile factor review", Status: domain.StatusBilled},
	{ClientID: "pinnacle", Date: "2026-02-13", Hours: 7, Description: "Manhattan co-op usage documentation — travel records and expense analysis", Status: domain.StatusBilled},
	{ClientID: "pinnacle", Date: "2026-02-20", Hours: 5, Description: "FL domicile memo — six domicile factor analysis and supporting evidence", Status: domain.StatusBilled},
	{ClientID: "pinnacle", Date: "2026-02-25", Hours: 4, Description: "IDR response draft — coordination with litigation counsel", Status: domain.StatusUnbilled},

	{ClientID: "trident", Date: "2026-02-04", Hours: 8, Description: "R&D credit QRE identification — software development activities review", Status: domain.StatusBilled},
	{ClientID: "trident", Date: "2026-02-11", Hours: 8, Description: "IRC 41 wage and supply cost documentation — employee interviews and records", Status: domain.StatusBilled},
	{ClientID: "trident", Date: "2026-02-19", Hours: 8, Description: "R&D credit computation and ASC 740 FIN 48 reserve analysis", Status: domain.StatusBilled},
	{ClientID: "trident", Date: "2026-02-26", Hours: 6, Description: "R&D credit study report draft — partner review preparation", Status: domain.StatusUnbilled},

	{ClientID: "harborview", Date: "2026-02-06", Hours: 5, Description: "OZ fund investment compliance — IRC 1400Z-2 deferred gain calculation", Status: domain.StatusBilled},
	{ClientID: "harborview", Date: "2026-02-17", Hours: 5, Description: "10-year exclusion planning and QOF investment basis step-up analysis", Status: domain.StatusBilled},
	{ClientID: "harborview", Date: "2026-02-24", Hours: 3, Description: "Annual OZ compliance report — Form 8996 and investor disclosure package", Status: domain.StatusUnbilled},

	{ClientID: "bluestone", Date: "2026-02-05", Hours: 5, Description: "NY PTET election analysis — 2023/2024 overpayment calculation", Status: domain.StatusBilled},
	{ClientID: "bluestone", Date: "2026-02-13", Hours: 5, Description: "§111 tax benefit rule analysis — PTET refund federal taxability research", Status: domain.StatusBilled},
	{ClientID: "bluestone", Date: "2026-02-20", Hours: 4, Description: "Notice 2020-75 application — entity-level deduction and partner credit review", Status: domain.StatusBilled},
	{ClientID: "bluestone", Date: "2026-02-26", Hours: 4, Description: "Client memo draft — PTET refund taxability advisory", Status: domain.StatusUnbilled},

	{ClientID: "keystone", Date: "2026-02-09", Hours: 4, Description: "COD income analysis — §108 insolvency exclusion qualification", Status: domain.StatusBilled},
	{ClientID: "keystone", Date: "2026-02-18", Hours: 4, Description: "Tax attribute reduction schedule — NOLs, credits, basis under §1017", Status: domain.StatusBilled},
	{ClientID: "keystone", Date: "2026-02-25", Hours: 2, Description: "Phase 1 memo — §108 exclusion and attribute reduction summary", Status: domain.StatusUnbilled},
}
