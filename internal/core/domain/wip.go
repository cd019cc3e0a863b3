package domain

// MonthlyWIP is one month of firm-level figures: work incurred (revenue),
// amounts invoiced (billings), and cash collected. The dataset is static
// demo input to the disparity detector.
type MonthlyWIP struct {
	Month     string  `json:"month"`
	Revenue   float64 `json:"revenue"`
	Billings  float64 `json:"billings"`
	Collected float64 `json:"collected"`
}

// MonthlyWIPData covers Feb 2025 through Feb 2026.
var MonthlyWIPData = []MonthlyWIP{
	{Month: "Feb 25", Revenue: 42000, Billings: 38000, Collected: 35000},
	{Month: "Mar 25", Revenue: 78000, Billings: 55000, Collected: 72000},
	{Month: "Apr 25", Revenue: 95000, Billings: 88000, Collected: 68000},
	{Month: "May 25", Revenue: 52000, Billings: 46000, Collected: 85000},
	{Month: "Jun 25", Revenue: 38000, Billings: 41000, Collected: 44000},
	{Month: "Jul 25", Revenue: 29000, Billings: 33000, Collected: 38000},
	{Month: "Aug 25", Revenue: 34000, Billings: 28000, Collected: 31000},
	{Month: "Sep 25", Revenue: 61000, Billings: 58000, Collected: 27000},
	{Month: "Oct 25", Revenue: 74000, Billings: 62000, Collected: 55000},
	{Month: "Nov 25", Revenue: 88000, Billings: 79000, Collected: 71000},
	{Month: "Dec 25", Revenue: 56000, Billings: 92000, Collected: 48000},
	{Month: "Jan 26", Revenue: 82000, Billings: 67000, Collected: 88000},
	{Month: "Feb 26", Revenue: 94000, Billings: 94000, Collected: 41000},
}
