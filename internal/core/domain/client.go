package domain

// EngagementClient is a row of the static engagement table: a known client
// with its hourly rate and budget ceiling. The table is read-only input to
// the analytics engine; live hours come from the ledger.
type EngagementClient struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ShortName string  `json:"short_name"`
	Specialty string  `json:"specialty"`
	Rate      float64 `json:"rate"`
	Budget    float64 `json:"budget"`
}

// EngagementClients is the closed roster of known clients.
var EngagementClients = []EngagementClient{
	{ID: "meridian", Name: "Meridian Capital Partners LLC", ShortName: "Meridian Capital", Specialty: "M&A Tax Structuring", Rate: 450, Budget: 24000},
	{ID: "cascade", Name: "Cascade Hospitality Group Inc.", ShortName: "Cascade Hospitality", Specialty: "Multistate Compliance", Rate: 350, Budget: 22000},
	{ID: "northbrook", Name: "Northbrook Equity Partners LP", ShortName: "Northbrook Equity", Specialty: "Partnership Tax", Rate: 400, Budget: 18000},
	{ID: "pinnacle", Name: "Pinnacle Manufacturing LLC", ShortName: "Pinnacle Mfg", Specialty: "Tax Controversy", Rate: 375, Budget: 16000},
	{ID: "trident", Name: "Trident Software Holdings Inc.", ShortName: "Trident Software", Specialty: "R&D Tax Credits", Rate: 350, Budget: 14000},
	{ID: "harborview", Name: "Harborview Real Estate Group LLC", ShortName: "Harborview RE", Specialty: "Opportunity Zone Planning", Rate: 350, Budget: 8000},
	{ID: "bluestone", Name: "BlueStone Family Office LLC", ShortName: "BlueStone Family", Specialty: "PTET / Family Office", Rate: 425, Budget: 12000},
	{ID: "keystone", Name: "Keystone Logistics Partners Inc.", ShortName: "Keystone Logistics", Specialty: "COD Income / Restructuring", Rate: 325, Budget: 6000},
}

// ClientByID looks up a client in the engagement table.
func ClientByID(id string) (EngagementClient, bool) {
	for _, c := range EngagementClients {
		if c.ID == id {
			return c, true
		}
	}
	return EngagementClient{}, false
}

// ClientAliases maps every spoken form of a client name to its canonical id.
// The command parser resolves the client phrase of a billing command against
// this table.
var ClientAliases = map[string]string{
	"meridian": "meridian", "meridian capital": "meridian", "meridian capital partners": "meridian",
	"cascade": "cascade", "cascade hospitality": "cascade", "cascade hospitality group": "cascade",
	"northbrook": "northbrook", "northbrook equity": "northbrook", "northbrook equity partners": "northbrook",
	"pinnacle": "pinnacle", "pinnacle manufacturing": "pinnacle", "pinnacle mfg": "pinnacle",
	"trident": "trident", "trident software": "trident", "trident software holdings": "trident",
	"harborview": "harborview", "harborview real estate": "harborview", "harborview re": "harborview",
	"bluestone": "bluestone", "bluestone family": "bluestone", "bluestone family office": "bluestone",
	"keystone": "keystone", "keystone logistics": "keystone", "keystone logistics partners": "keystone",
}

// ClientNames maps canonical ids to full display names, for confirmation
// messages and parser results.
func ClientNames() map[string]string {
	names := make(map[string]string, len(EngagementClients))
	for _, c := range EngagementClients {
		names[c.ID] = c.Name
	}
	return names
}
