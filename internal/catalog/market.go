package catalog

import (
	"time"

	"github.com/saf-hub/sentinel/internal/signal"
)

// MarketAccess tracks airline SAF commitments, offtake opportunities and
// airport infrastructure updates relevant to West African producers.
func MarketAccess() Definition {
	return Definition{
		Category: signal.CategoryMarketAccess,
		Capacity: 25,
		Keywords: []string{"SAF", "offtake", "airline", "agreement", "sustainable", "biofuel", "carbon"},
		LookBack: 30 * 24 * time.Hour,
		MinCount: 3,
		MaxCount: 5,
		ScoreMin: 60,
		ScoreMax: 95,
		Live: []LiveSource{
			{Name: "GreenAir News", Kind: SourceRSS, URL: "https://www.greenairnews.com/feed/"},
		},
		Entries: []Entry{
			{
				Source: "Ethiopian Airlines",
				Title:  "Ethiopian Airlines Commits to 10% SAF by 2030",
				Payload: map[string]any{
					"signal_type":          "SAF Commitment",
					"region":               "Africa",
					"volume_tonnes_annual": 50000,
					"timeframe":            "2025-2030",
					"url":                  "https://www.ethiopianairlines.com/sustainability/saf-commitment",
					"relevance_note":       "Direct West African market access opportunity",
				},
			},
			{
				Source: "Air France-KLM",
				Title:  "Air France-KLM Issues RFP for African-Origin SAF Supply",
				Payload: map[string]any{
					"signal_type":          "Offtake RFP",
					"region":               "Europe",
					"volume_tonnes_annual": 100000,
					"timeframe":            "2026-2030",
					"url":                  "https://www.airfranceklm.com/saf-rfp-africa",
					"relevance_note":       "European carrier seeking African feedstock supply",
				},
			},
			{
				Source: "Kenya Airways",
				Title:  "Kenya Airways Partners with SkyNRG for SAF Supply Chain Study",
				Payload: map[string]any{
					"signal_type":          "Partnership Announcement",
					"region":               "Africa",
					"volume_tonnes_annual": 25000,
					"timeframe":            "2025-2027",
					"url":                  "https://www.kenya-airways.com/skynrg-partnership",
					"relevance_note":       "Regional carrier building SAF infrastructure",
				},
			},
			{
				Source: "Emirates",
				Title:  "Emirates Targets 50% SAF Blend for Africa Routes by 2035",
				Payload: map[string]any{
					"signal_type":          "SAF Commitment",
					"region":               "Middle East",
					"volume_tonnes_annual": 200000,
					"timeframe":            "2030-2035",
					"url":                  "https://www.emirates.com/sustainability/saf-africa",
					"relevance_note":       "Major hub carrier with significant West African routes",
				},
			},
			{
				Source: "British Airways",
				Title:  "IAG Invests in African Biomass-to-SAF Developer",
				Payload: map[string]any{
					"signal_type":          "Investment",
					"region":               "Europe",
					"volume_tonnes_annual": 75000,
					"timeframe":            "2027-2032",
					"url":                  "https://www.iairgroup.com/saf-africa-investment",
					"relevance_note":       "Direct investment in African SAF production",
				},
			},
			{
				Source: "Air Peace",
				Title:  "Air Peace Signs MoU for Nigerian-Produced SAF",
				Payload: map[string]any{
					"signal_type":          "MoU Signed",
					"region":               "West Africa",
					"volume_tonnes_annual": 15000,
					"timeframe":            "2026-2028",
					"url":                  "https://www.flyairpeace.com/saf-mou",
					"relevance_note":       "Nigerian carrier commitment - key local demand signal",
				},
			},
			{
				Source: "Qatar Airways",
				Title:  "Qatar Airways Announces Net Zero Plan with African SAF Component",
				Payload: map[string]any{
					"signal_type":          "SAF Commitment",
					"region":               "Middle East",
					"volume_tonnes_annual": 150000,
					"timeframe":            "2028-2035",
					"url":                  "https://www.qatarairways.com/net-zero-saf",
					"relevance_note":       "Major Middle Eastern carrier with Africa hub strategy",
				},
			},
			{
				Source: "Lufthansa Group",
				Title:  "Lufthansa Signs Long-Term SAF Offtake with Book-and-Claim for Africa",
				Payload: map[string]any{
					"signal_type":          "Offtake Agreement",
					"region":               "Europe",
					"volume_tonnes_annual": 80000,
					"timeframe":            "2026-2031",
					"url":                  "https://www.lufthansagroup.com/saf-africa-offtake",
					"relevance_note":       "Book-and-claim mechanism enables African origin supply",
				},
			},
			{
				Source: "Lagos Murtala Muhammed (LOS)",
				Title:  "Lagos Airport Begins SAF Blending Infrastructure Study",
				Payload: map[string]any{
					"signal_type": "Airport Update",
					"country":     "Nigeria",
					"update_type": "Feasibility Study",
					"status":      "Planning",
				},
			},
			{
				Source: "Accra Kotoka (ACC)",
				Title:  "Ghana Announces SAF Incentive Framework for Kotoka",
				Payload: map[string]any{
					"signal_type": "Airport Update",
					"country":     "Ghana",
					"update_type": "Policy Announcement",
					"status":      "Policy Development",
				},
			},
			{
				Source: "Addis Ababa Bole (ADD)",
				Title:  "Bole Airport to Install SAF Blending Facility by 2027",
				Payload: map[string]any{
					"signal_type": "Airport Update",
					"country":     "Ethiopia",
					"update_type": "Infrastructure Investment",
					"status":      "Approved",
				},
			},
		},
	}
}
