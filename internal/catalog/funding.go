package catalog

import (
	"time"

	"github.com/saf-hub/sentinel/internal/signal"
)

// Funding tracks climate finance, grants, concessional debt and blended
// finance opportunities relevant to SAF development in Africa.
func Funding() Definition {
	return Definition{
		Category: signal.CategoryFunding,
		Capacity: 30,
		Keywords: []string{
			"biofuel", "bioenergy", "SAF", "sustainable aviation",
			"biomass", "ethanol", "renewable fuel", "cassava",
			"agricultural waste", "clean energy", "aviation",
		},
		LookBack: 14 * 24 * time.Hour,
		MinCount: 3,
		MaxCount: 5,
		ScoreMin: 70,
		ScoreMax: 99,
		Live: []LiveSource{
			{Name: "World Bank", Kind: SourceWorldBank, URL: "https://api.worldbank.org/v2/projects"},
			{Name: "Green Climate Fund", Kind: SourceGCF, URL: "https://data.greenclimate.fund/api/projects"},
		},
		Entries: []Entry{
			{
				Source: "Green Climate Fund",
				Title:  "GCF Readiness Support for SAF Project Development in West Africa",
				Payload: map[string]any{
					"amount_usd":   2500000,
					"funding_type": "Grant",
					"url":          "https://www.greenclimate.fund/project/readiness-saf-west-africa",
					"deadline":     "2025-06-30",
					"eligibility":  []string{"Nigeria", "Ghana", "Senegal"},
					"focus_areas":  []string{"SAF", "biofuels", "climate mitigation"},
				},
			},
			{
				Source: "African Development Bank",
				Title:  "AfDB SEFA Grant for Sustainable Aviation Feasibility Studies",
				Payload: map[string]any{
					"amount_usd":   1000000,
					"funding_type": "Technical Assistance",
					"url":          "https://www.afdb.org/sefa-saf-feasibility",
					"deadline":     "2025-04-15",
					"eligibility":  []string{"African Union Member States"},
					"focus_areas":  []string{"feasibility study", "SAF", "aviation decarbonization"},
				},
			},
			{
				Source: "EU Global Gateway",
				Title:  "Team Europe Initiative: African Green Hydrogen and SAF Corridor",
				Payload: map[string]any{
					"amount_usd":   50000000,
					"funding_type": "Blended Finance",
					"url":          "https://ec.europa.eu/global-gateway/africa-saf-corridor",
					"deadline":     "2025-09-01",
					"eligibility":  []string{"ECOWAS countries"},
					"focus_areas":  []string{"green hydrogen", "SAF", "infrastructure"},
				},
			},
			{
				Source: "USAID Power Africa",
				Title:  "Off-Grid Bioenergy for SAF Feedstock Processing",
				Payload: map[string]any{
					"amount_usd":   5000000,
					"funding_type": "Grant",
					"url":          "https://www.usaid.gov/powerafrica/bioenergy-saf",
					"deadline":     "2025-05-20",
					"eligibility":  []string{"Nigeria", "Kenya", "South Africa"},
					"focus_areas":  []string{"bioenergy", "feedstock processing", "rural electrification"},
				},
			},
			{
				Source: "Climate Investment Funds",
				Title:  "CIF Accelerating Coal Transition - Biofuels Alternative Track",
				Payload: map[string]any{
					"amount_usd":   15000000,
					"funding_type": "Concessional Loan",
					"url":          "https://www.cif.org/act-biofuels",
					"deadline":     "2025-08-15",
					"eligibility":  []string{"CIF eligible countries"},
					"focus_areas":  []string{"just transition", "biofuels", "SAF"},
				},
			},
			{
				Source: "Shell Foundation",
				Title:  "Cassava-to-SAF Value Chain Development Grant",
				Payload: map[string]any{
					"amount_usd":   750000,
					"funding_type": "Grant",
					"url":          "https://shellfoundation.org/cassava-saf",
					"deadline":     "Rolling",
					"eligibility":  []string{"Nigeria", "Tanzania", "Mozambique"},
					"focus_areas":  []string{"cassava", "value chain", "SAF"},
				},
			},
			{
				Source: "IFC",
				Title:  "IFC Upstream: Early-Stage SAF Project Preparation Facility",
				Payload: map[string]any{
					"amount_usd":   3000000,
					"funding_type": "Technical Assistance",
					"url":          "https://www.ifc.org/upstream-saf",
					"deadline":     "2025-07-01",
					"eligibility":  []string{"IDA countries"},
					"focus_areas":  []string{"project preparation", "SAF", "bankability"},
				},
			},
		},
	}
}
